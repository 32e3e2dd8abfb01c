package redisx

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/ayurlanka/admin-api/internal/store"
)

const (
	// Satu hash per path koleksi: doc:/products -> {pushKey: dokumen json}
	keyDocs = "doc:"

	// Counter id per path (dipakai CounterAllocator): seq:/products
	keyCounter = "seq:"
)

// Store adalah driver redis untuk document store: HSET/HGETALL/HDEL di satu
// hash per koleksi, field name = push key yang kita generate sendiri.
type Store struct{ RDB *redis.Client }

var _ store.Store = (*Store)(nil)

func (s *Store) ReadAll(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	vals, err := s.RDB.HGetAll(ctx, keyDocs+path).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(vals))
	for k, v := range vals {
		out[k] = json.RawMessage(v)
	}
	return out, nil
}

func (s *Store) Append(ctx context.Context, path string, doc json.RawMessage) (string, error) {
	key := store.NewPushKey()
	if err := s.RDB.HSet(ctx, keyDocs+path, key, string(doc)).Err(); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) Delete(ctx context.Context, path, key string) error {
	n, err := s.RDB.HDel(ctx, keyDocs+path, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrKeyNotFound
	}
	return nil
}

// CounterAllocator: alternatif atomic untuk snapshot allocator, pakai INCR
// per path. Bebas race, tapi tidak pernah reuse id setelah dokumen max-id
// dihapus — beda perilaku itu alasan snapshot tetap jadi default.
type CounterAllocator struct{ RDB *redis.Client }

func (a *CounterAllocator) NextID(ctx context.Context, path string) (int, error) {
	n, err := a.RDB.Incr(ctx, keyCounter+path).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
