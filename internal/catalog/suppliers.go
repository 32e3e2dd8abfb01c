package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayurlanka/admin-api/internal/store"
)

// Suppliers append-only: tanpa business id, tanpa delete.
type Suppliers struct {
	Store store.Store
}

func (s *Suppliers) Submit(ctx context.Context, f *SupplierForm) (string, error) {
	doc, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	key, err := s.Store.Append(ctx, store.PathSuppliers, doc)
	if err != nil {
		return "", fmt.Errorf("append %s: %w", store.PathSuppliers, err)
	}
	return key, nil
}

func (s *Suppliers) List(ctx context.Context) ([]SupplierForm, error) {
	snap, err := s.Store.ReadAll(ctx, store.PathSuppliers)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", store.PathSuppliers, err)
	}
	out := make([]SupplierForm, 0, len(snap))
	for key, raw := range snap {
		var f SupplierForm
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", store.PathSuppliers, key, err)
		}
		out = append(out, f)
	}
	return out, nil
}
