// Package devapi is a local stand-in for the remote Circuna API. It serves
// the four endpoints the client consumes so the app can be exercised without
// the production backend. The wire shape is snake_case, matching the real
// service.
package devapi

import (
	"errors"

	"github.com/circuna/circuna/internal/core/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPhoneRegistered = errors.New("phone number already registered")
	ErrUnknownRole     = errors.New("unknown role id")
)

// User is the server-side record, serialized snake_case like the production
// API.
type User struct {
	ID              int              `json:"id" bson:"id"`
	PhoneNumber     string           `json:"phone_number" bson:"phone_number"`
	Name            string           `json:"name" bson:"name"`
	Location        string           `json:"location" bson:"location"`
	Email           string           `json:"email,omitempty" bson:"email,omitempty"`
	Roles           []domain.Role    `json:"roles" bson:"roles"`
	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty" bson:"provider_profile,omitempty"`
}

type ProviderProfile struct {
	BusinessName string `json:"business_name" bson:"business_name"`
	Rating       int    `json:"rating,omitempty" bson:"rating,omitempty"`
}

// SeedRoles is the role list served by /roles.
var SeedRoles = []domain.Role{
	{ID: 1, Name: "customer"},
	{ID: 2, Name: "provider"},
}
