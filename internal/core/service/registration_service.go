package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
)

// RegistrationService composes and submits account creation requests.
// Validation short-circuits on the first failure, in a fixed order: phone,
// required text fields, optional email, then role resolution.
type RegistrationService struct {
	gateway ports.UserGateway
	store   ports.KVStore
	v       *validator.Validate
	log     zerolog.Logger
}

func NewRegistrationService(gateway ports.UserGateway, store ports.KVStore, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		gateway: gateway,
		store:   store,
		v:       validator.New(),
		log:     log,
	}
}

// RegisterCustomer fetches the role list, validates the form, and submits a
// creation payload tagged with the server's "customer" role id. A missing
// customer role is a server/client contract mismatch, not a user mistake,
// and is surfaced as a configuration error.
func (s *RegistrationService) RegisterCustomer(ctx context.Context, in ports.CustomerInput) (*domain.User, error) {
	roles, err := s.gateway.Roles(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("role listing failed")
		return nil, domain.ErrRolesUnavailable
	}

	if err := s.validateBase(in, domain.ErrMissingFields); err != nil {
		return nil, err
	}

	customer, ok := findRole(roles, domain.RoleCustomer)
	if !ok {
		return nil, domain.ErrRoleNotConfigured
	}

	return s.submit(ctx, ports.RegistrationRequest{
		PhoneNumber: domain.CanonicalPhone(in.Phone),
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		Email:       strings.TrimSpace(in.Email),
		RoleIDs:     []int{customer.ID},
	})
}

// RegisterBusiness submits a provider registration. No role resolution is
// involved; the provider_profile extension record marks the account type.
func (s *RegistrationService) RegisterBusiness(ctx context.Context, in ports.BusinessInput) (*domain.User, error) {
	if err := s.validateBase(in.CustomerInput, domain.ErrMissingBusinessFields); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.BusinessName) == "" {
		return nil, domain.ErrMissingBusinessFields
	}

	return s.submit(ctx, ports.RegistrationRequest{
		PhoneNumber: domain.CanonicalPhone(in.Phone),
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		Email:       strings.TrimSpace(in.Email),
		RoleIDs:     []int{},
		Provider: &domain.ProviderProfile{
			BusinessName: strings.TrimSpace(in.BusinessName),
			Rating:       in.Rating,
		},
	})
}

// validateBase enforces the shared checks in order: phone format first, then
// required text fields, then the optional email.
func (s *RegistrationService) validateBase(in ports.CustomerInput, missing *domain.Alert) error {
	if !domain.ValidPhone(in.Phone) {
		return domain.ErrInvalidPhone
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return missing
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		if err := s.v.Var(email, "email"); err != nil {
			return domain.ErrInvalidEmail
		}
	}
	return nil
}

func (s *RegistrationService) submit(ctx context.Context, req ports.RegistrationRequest) (*domain.User, error) {
	user, err := s.gateway.Register(ctx, req)
	if err != nil {
		var ae *domain.APIError
		if errors.As(err, &ae) {
			return nil, domain.RegistrationFailure(ae.Detail)
		}
		return nil, domain.RegistrationFailure("")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, ports.SessionKey, raw); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session after registration")
		return nil, err
	}

	s.log.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

func findRole(roles []domain.Role, name string) (domain.Role, bool) {
	for _, r := range roles {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return domain.Role{}, false
}
