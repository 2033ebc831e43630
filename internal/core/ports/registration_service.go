package ports

import (
	"context"

	"github.com/circuna/circuna/internal/core/domain"
)

// CustomerInput holds raw form values for customer registration. Phone may
// carry display formatting; text fields are trimmed by the service.
type CustomerInput struct {
	Phone    string
	Name     string
	Location string
	Email    string
}

// BusinessInput extends CustomerInput with the provider fields.
type BusinessInput struct {
	CustomerInput
	BusinessName string
	Rating       int
}

type RegistrationService interface {
	RegisterCustomer(ctx context.Context, in CustomerInput) (*domain.User, error)
	RegisterBusiness(ctx context.Context, in BusinessInput) (*domain.User, error)
}
