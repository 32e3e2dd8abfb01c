package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ayurlanka/admin-api/internal/store"
)

// Orders pakai strategi identitas yang beda dengan koleksi katalog:
// order_id token random (uuid v4), dipilih sebelum satu-satunya write.
// Tidak ada cek unik terhadap order lama — probabilitas tabrakan dianggap
// negligible, bukan dijamin lewat verifikasi.
type Orders struct {
	Store store.Store
}

// Create mengabaikan order_id kiriman client dan menyimpan line items apa
// adanya (lihat catatan Total di OrderedProduct).
func (o *Orders) Create(ctx context.Context, ord *Order) (key string, err error) {
	ord.OrderID = uuid.NewString()
	doc, err := json.Marshal(ord)
	if err != nil {
		return "", err
	}
	key, err = o.Store.Append(ctx, store.PathOrders, doc)
	if err != nil {
		return "", fmt.Errorf("append %s: %w", store.PathOrders, err)
	}
	return key, nil
}

// List: semua order dalam urutan snapshot, tanpa filter dan pagination.
func (o *Orders) List(ctx context.Context) ([]Order, error) {
	snap, err := o.Store.ReadAll(ctx, store.PathOrders)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", store.PathOrders, err)
	}
	out := make([]Order, 0, len(snap))
	for key, raw := range snap {
		var ord Order
		if err := json.Unmarshal(raw, &ord); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", store.PathOrders, key, err)
		}
		out = append(out, ord)
	}
	return out, nil
}
