package ports

import (
	"context"

	"github.com/circuna/circuna/internal/core/domain"
)

// SessionService owns the persisted session record from login through
// logout. At most one user is logged in at a time.
type SessionService interface {
	// Login resolves a raw phone input against the remote API and persists
	// the resulting user as the session record.
	Login(ctx context.Context, rawPhone string) (*domain.User, error)
	// Current returns the persisted session record, or domain.ErrNoSession.
	Current(ctx context.Context) (*domain.User, error)
	// Refresh re-syncs the session record from the remote source of truth.
	// On any remote failure the cached copy is returned unchanged.
	Refresh(ctx context.Context, id int) (*domain.User, error)
	// Logout clears the session slot. Callers must clear before navigating.
	Logout(ctx context.Context) error
}
