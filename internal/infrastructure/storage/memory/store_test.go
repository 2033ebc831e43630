package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/circuna/circuna/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "user"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, "user", []byte("a")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := store.Get(ctx, "user")
	if err != nil || string(got) != "a" {
		t.Fatalf("get = %q, %v", got, err)
	}

	if err := store.Remove(ctx, "user"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := store.Get(ctx, "user"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
	}
}

func TestStore_ValueIsCopied(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	value := []byte("original")
	_ = store.Set(ctx, "user", value)
	value[0] = 'X'

	got, _ := store.Get(ctx, "user")
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller's slice: %q", got)
	}

	got[0] = 'Y'
	again, _ := store.Get(ctx, "user")
	if string(again) != "original" {
		t.Fatalf("returned value aliased stored slice: %q", again)
	}
}
