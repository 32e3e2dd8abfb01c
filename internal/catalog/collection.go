package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayurlanka/admin-api/internal/store"
)

var ErrNotFound = errors.New("not found")

// Entity = record dengan business id sequential (Product, Practitioner).
// Business id beda dengan storage key: id milik domain, key milik store.
type Entity interface {
	GetID() int
	SetID(int)
}

// Collection: create/list/delete-by-business-id generik di atas Store.
type Collection[T any, PT interface {
	*T
	Entity
}] struct {
	Store store.Store
	Path  string
	Alloc Allocator
}

type (
	Products      = Collection[Product, *Product]
	Practitioners = Collection[Practitioner, *Practitioner]
)

// Create mengabaikan id kiriman client: allocator yang menentukan, lalu
// di-stamp ke payload sebelum append. Tepat satu read (di allocator) + satu
// append ke store.
func (c *Collection[T, PT]) Create(ctx context.Context, e PT) (key string, id int, err error) {
	id, err = c.Alloc.NextID(ctx, c.Path)
	if err != nil {
		return "", 0, err
	}
	e.SetID(id)
	doc, err := json.Marshal(e)
	if err != nil {
		return "", 0, err
	}
	key, err = c.Store.Append(ctx, c.Path, doc)
	if err != nil {
		return "", 0, fmt.Errorf("append %s: %w", c.Path, err)
	}
	return key, id, nil
}

// List mengembalikan semua dokumen sesuai urutan iterasi snapshot.
// Urutan insert TIDAK dijamin — client jangan bergantung ke urutan.
func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	snap, err := c.Store.ReadAll(ctx, c.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.Path, err)
	}
	out := make([]T, 0, len(snap))
	for key, raw := range snap {
		var e T
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.Path, key, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// DeleteByID: linear scan cari dokumen dengan field id yang cocok, hapus via
// storage key-nya. Koleksi kosong atau id tidak ada -> ErrNotFound. Kalau ada
// id kembar (efek race allocator), yang ketemu duluan yang dihapus.
func (c *Collection[T, PT]) DeleteByID(ctx context.Context, id int) error {
	snap, err := c.Store.ReadAll(ctx, c.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Path, err)
	}
	for key, raw := range snap {
		var e T
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		if PT(&e).GetID() != id {
			continue
		}
		if err := c.Store.Delete(ctx, c.Path, key); err != nil {
			return fmt.Errorf("delete %s/%s: %w", c.Path, key, err)
		}
		return nil
	}
	return ErrNotFound
}
