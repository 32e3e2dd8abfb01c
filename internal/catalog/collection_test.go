package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ayurlanka/admin-api/internal/store"
)

func newProducts(st store.Store) *Products {
	return &Products{Store: st, Path: store.PathProducts, Alloc: &SnapshotAllocator{Store: st}}
}

func TestDeleteOnEmptyCollectionNotFound(t *testing.T) {
	c := newProducts(store.NewMemory())
	err := c.DeleteByID(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateIgnoresClientID(t *testing.T) {
	ctx := context.Background()
	c := newProducts(store.NewMemory())

	_, id, err := c.Create(ctx, &Product{ID: 99, Name: "p"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 1 {
		t.Fatalf("assigned id %d, want 1 (client id must be ignored)", id)
	}
}

func TestCreateThenListContainsDoc(t *testing.T) {
	ctx := context.Background()
	c := newProducts(store.NewMemory())

	in := Product{Name: "Oil", Price: 1200, Category: 1, ImgPath: "x", Description: "d"}
	key, id, err := c.Create(ctx, &in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if key == "" || id != 1 {
		t.Fatalf("key=%q id=%d", key, id)
	}

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list len %d, want 1", len(list))
	}
	got := list[0]
	want := Product{ID: 1, Name: "Oil", Price: 1200, Category: 1, ImgPath: "x", Description: "d"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// Skenario end-to-end: dua create, hapus business id 1, sisa hanya id 2.
func TestCreateDeleteListFlow(t *testing.T) {
	ctx := context.Background()
	c := newProducts(store.NewMemory())

	_, id1, err := c.Create(ctx, &Product{Name: "Oil", Price: 1200, Category: 1, ImgPath: "x", Description: "d"})
	if err != nil || id1 != 1 {
		t.Fatalf("first create: id=%d err=%v", id1, err)
	}
	_, id2, err := c.Create(ctx, &Product{Name: "Tea", Price: 800, Category: 2, ImgPath: "y", Description: "e"})
	if err != nil || id2 != 2 {
		t.Fatalf("second create: id=%d err=%v", id2, err)
	}

	if err := c.DeleteByID(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != 2 {
		t.Fatalf("expected exactly one product with id 2, got %+v", list)
	}

	// hapus id yang sudah tidak ada -> NotFound
	if err := c.DeleteByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListEmptyCollection(t *testing.T) {
	c := newProducts(store.NewMemory())
	list, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", list)
	}
}

func TestPractitionerCollection(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	c := &Practitioners{Store: st, Path: store.PathPractitioners, Alloc: &SnapshotAllocator{Store: st}}

	_, id, err := c.Create(ctx, &Practitioner{Name: "Dr. Nimal", Contact: "0771234567", Specialities: "general"})
	if err != nil || id != 1 {
		t.Fatalf("create: id=%d err=%v", id, err)
	}

	list, err := c.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v (%d docs)", err, len(list))
	}
	if list[0].Name != "Dr. Nimal" || list[0].ID != 1 {
		t.Fatalf("unexpected practitioner %+v", list[0])
	}

	if err := c.DeleteByID(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
