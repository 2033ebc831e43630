package ports

import (
	"context"

	"github.com/circuna/circuna/internal/core/domain"
)

// ProfileService manages the locally-owned custom profile collection.
type ProfileService interface {
	// Create appends a new custom profile for the user. The title is
	// required after trimming; the description is optional.
	Create(ctx context.Context, userID int, title, description string) (*domain.CustomProfile, error)
	// ListForUser returns the user's custom profiles, oldest first. An
	// absent slot yields an empty list.
	ListForUser(ctx context.Context, userID int) ([]domain.CustomProfile, error)
}
