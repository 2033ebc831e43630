package remote

import "github.com/circuna/circuna/internal/core/domain"

// The remote API speaks snake_case; the client model is camelCase. These
// types are the only place the wire shape exists, and mapUser is the single
// translation point every call site goes through.

type wireRole struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type wireProviderProfile struct {
	BusinessName string `json:"business_name"`
	Rating       int    `json:"rating,omitempty"`
}

type wireClientProfile struct {
	Notes string `json:"notes,omitempty"`
}

type wireUser struct {
	ID              int                  `json:"id"`
	PhoneNumber     string               `json:"phone_number"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	Email           string               `json:"email,omitempty"`
	Roles           []wireRole           `json:"roles"`
	ProviderProfile *wireProviderProfile `json:"provider_profile,omitempty"`
	ClientProfile   *wireClientProfile   `json:"client_profile,omitempty"`
}

// mapUser translates the external record onto the internal model. A missing
// roles field always becomes an empty list, never nil.
func mapUser(w wireUser) *domain.User {
	roles := make([]domain.Role, 0, len(w.Roles))
	for _, r := range w.Roles {
		roles = append(roles, domain.Role{ID: r.ID, Name: r.Name})
	}

	u := &domain.User{
		ID:          w.ID,
		PhoneNumber: w.PhoneNumber,
		Name:        w.Name,
		Location:    w.Location,
		Email:       w.Email,
		Roles:       roles,
	}
	if w.ProviderProfile != nil {
		u.ProviderProfile = &domain.ProviderProfile{
			BusinessName: w.ProviderProfile.BusinessName,
			Rating:       w.ProviderProfile.Rating,
		}
	}
	if w.ClientProfile != nil {
		u.ClientProfile = &domain.ClientProfile{Notes: w.ClientProfile.Notes}
	}
	return u
}

type registerPayload struct {
	PhoneNumber     string               `json:"phone_number"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	Email           string               `json:"email,omitempty"`
	Roles           []int                `json:"roles"`
	ProviderProfile *wireProviderProfile `json:"provider_profile,omitempty"`
}

// errorBody is the failure envelope: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}
