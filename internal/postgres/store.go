package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayurlanka/admin-api/internal/store"
)

// Store adalah driver postgres untuk document store: satu tabel documents
// keyed (path, key). Key tetap push key yang kita generate, bukan serial —
// kontraknya sama dengan driver lain.
type Store struct{ DB *pgxpool.Pool }

var _ store.Store = (*Store)(nil)

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			path TEXT  NOT NULL,
			key  TEXT  NOT NULL,
			doc  JSONB NOT NULL,
			PRIMARY KEY (path, key)
		)`)
	return err
}

func (s *Store) ReadAll(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	rows, err := s.DB.Query(ctx, `SELECT key, doc FROM documents WHERE path=$1`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var doc []byte
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, err
		}
		out[key] = json.RawMessage(doc)
	}
	return out, rows.Err()
}

func (s *Store) Append(ctx context.Context, path string, doc json.RawMessage) (string, error) {
	key := store.NewPushKey()
	_, err := s.DB.Exec(ctx, `INSERT INTO documents(path, key, doc) VALUES ($1,$2,$3)`,
		path, key, []byte(doc))
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) Delete(ctx context.Context, path, key string) error {
	ct, err := s.DB.Exec(ctx, `DELETE FROM documents WHERE path=$1 AND key=$2`, path, key)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return store.ErrKeyNotFound
	}
	return nil
}
