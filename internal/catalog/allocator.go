package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayurlanka/admin-api/internal/store"
)

// Allocator menentukan business id berikutnya untuk satu koleksi.
// Default-nya SnapshotAllocator; interface ini seam untuk menggantinya
// dengan counter atomic milik store (mis. redisx.CounterAllocator) tanpa
// mengubah kontrak Collection.
type Allocator interface {
	NextID(ctx context.Context, path string) (int, error)
}

// NextID menghitung max(id)+1 dari snapshot koleksi. Dokumen tanpa field id
// (atau yang tidak bisa di-decode) dihitung 0. Koleksi kosong -> 1.
func NextID(snapshot map[string]json.RawMessage) int {
	max := 0
	for _, raw := range snapshot {
		var d struct {
			ID int `json:"id"`
		}
		_ = json.Unmarshal(raw, &d)
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1
}

// SnapshotAllocator: read-then-write TANPA guard transaksi. Dua alokasi yang
// interleave bisa melihat snapshot sama dan menghasilkan id kembar begitu
// kedua append mendarat. Itu perilaku terdokumentasi koleksi ini, jangan
// "diperbaiki" diam-diam di sini — ganti allocator-nya kalau butuh atomic.
//
// Catatan reuse: hapus dokumen ber-id max, alokasi berikutnya memakai id itu
// lagi.
type SnapshotAllocator struct {
	Store store.Store
}

func (a *SnapshotAllocator) NextID(ctx context.Context, path string) (int, error) {
	snap, err := a.Store.ReadAll(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return NextID(snap), nil
}
