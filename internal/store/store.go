package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Path koleksi, satu node per koleksi (konvensi sama dengan store remote).
const (
	PathProducts      = "/products"
	PathPractitioners = "/practitioners"
	PathOrders        = "/orders"
	PathSuppliers     = "/suppliers"
)

var ErrKeyNotFound = errors.New("storage key not found")

// Store = kontrak minimal ke document store eksternal.
// Append men-generate storage key unik yang terurut menurut waktu pembuatan;
// key hanya dipakai sebagai handle untuk delete, tidak diinterpretasi.
// Tidak ada atomicity lintas operasi — siapa pun yang butuh lebih dari satu
// append/delete atomik harus menyediakannya sendiri di atas kontrak ini.
type Store interface {
	// ReadAll mengembalikan snapshot seluruh dokumen di path.
	// Koleksi kosong -> map kosong, bukan error.
	ReadAll(ctx context.Context, path string) (map[string]json.RawMessage, error)
	Append(ctx context.Context, path string, doc json.RawMessage) (string, error)
	Delete(ctx context.Context, path, key string) error
}
