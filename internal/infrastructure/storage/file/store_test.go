package file

import (
	"context"
	"errors"
	"testing"

	"github.com/circuna/circuna/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "user", []byte(`{"id":1}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "user")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"id":1}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestStore_GetAbsentKey(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "user")
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	ctx := context.Background()

	_ = store.Set(ctx, "user", []byte(`{"id":1}`))
	_ = store.Set(ctx, "user", []byte(`{"id":2}`))

	got, err := store.Get(ctx, "user")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"id":2}` {
		t.Fatalf("expected overwritten value, got %s", got)
	}
}

func TestStore_RemoveThenGet(t *testing.T) {
	store, _ := NewStore(t.TempDir())
	ctx := context.Background()

	_ = store.Set(ctx, "user", []byte(`{}`))
	if err := store.Remove(ctx, "user"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := store.Get(ctx, "user"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
	}
}

func TestStore_RemoveAbsentKeyIsNoop(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	if err := store.Remove(context.Background(), "user"); err != nil {
		t.Fatalf("remove of absent key should be a no-op, got %v", err)
	}
}
