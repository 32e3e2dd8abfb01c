package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMemoryReadAllEmpty(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	snap, err := m.ReadAll(ctx, PathProducts)
	if err != nil {
		t.Fatalf("readall: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("expected empty snapshot, got %d docs", len(snap))
	}
}

func TestMemoryAppendReadDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	key, err := m.Append(ctx, PathProducts, json.RawMessage(`{"id":1}`))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if key == "" {
		t.Fatal("empty storage key")
	}

	snap, err := m.ReadAll(ctx, PathProducts)
	if err != nil {
		t.Fatalf("readall: %v", err)
	}
	if string(snap[key]) != `{"id":1}` {
		t.Fatalf("unexpected doc %s", snap[key])
	}

	// path lain tidak kena
	other, _ := m.ReadAll(ctx, PathOrders)
	if len(other) != 0 {
		t.Fatalf("orders path should be empty, got %d", len(other))
	}

	if err := m.Delete(ctx, PathProducts, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap, _ = m.ReadAll(ctx, PathProducts)
	if len(snap) != 0 {
		t.Fatalf("expected empty after delete, got %d", len(snap))
	}
}

func TestMemoryDeleteMissingKey(t *testing.T) {
	m := NewMemory()
	err := m.Delete(context.Background(), PathProducts, "nope")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}
