package ports

import (
	"context"

	"github.com/circuna/circuna/internal/core/domain"
)

// RegistrationRequest is the composed creation payload sent to the remote
// API. PhoneNumber must already be canonical and text fields trimmed.
type RegistrationRequest struct {
	PhoneNumber string
	Name        string
	Location    string
	Email       string
	RoleIDs     []int
	Provider    *domain.ProviderProfile
}

// UserGateway is the remote API boundary. Implementations map the external
// snake_case record shape onto domain.User; callers never see wire fields.
//
// Error contract:
//   - UserByPhone returns domain.ErrUserNotFound on 404 and *domain.StatusError
//     on any other non-success status.
//   - Register returns *domain.APIError carrying the server's detail message
//     (or the status text) on any non-success status.
type UserGateway interface {
	UserByPhone(ctx context.Context, e164 string) (*domain.User, error)
	UserByID(ctx context.Context, id int) (*domain.User, error)
	Roles(ctx context.Context) ([]domain.Role, error)
	Register(ctx context.Context, req RegistrationRequest) (*domain.User, error)
}
