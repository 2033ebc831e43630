package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
	"github.com/circuna/circuna/internal/infrastructure/storage/memory"
)

func rolesOK(_ context.Context) ([]domain.Role, error) {
	return []domain.Role{{ID: 1, Name: "customer"}, {ID: 2, Name: "provider"}}, nil
}

func TestRegisterCustomer_ValidationOrder_PhoneFirst(t *testing.T) {
	gw := &stubGateway{rolesFn: rolesOK}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	// Both the phone and the name are invalid; the phone alert must win.
	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone: "555",
		Name:  "",
	})
	if !errors.Is(err, domain.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestRegisterCustomer_MissingFields(t *testing.T) {
	gw := &stubGateway{rolesFn: rolesOK}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "1234567890",
		Name:     "   ",
		Location: "Denver",
	})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRegisterCustomer_InvalidEmail(t *testing.T) {
	gw := &stubGateway{rolesFn: rolesOK}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "1234567890",
		Name:     "Alice",
		Location: "Denver",
		Email:    "not-an-email",
	})
	if !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegisterCustomer_RoleMissing_ConfigurationError(t *testing.T) {
	gw := &stubGateway{
		rolesFn: func(_ context.Context) ([]domain.Role, error) {
			return []domain.Role{{ID: 2, Name: "provider"}}, nil
		},
	}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "1234567890",
		Name:     "Alice",
		Location: "Denver",
	})
	if !errors.Is(err, domain.ErrRoleNotConfigured) {
		t.Fatalf("expected ErrRoleNotConfigured, got %v", err)
	}

	var alert *domain.Alert
	if !errors.As(err, &alert) || alert.Title != "Configuration Error" {
		t.Fatalf("expected Configuration Error alert, got %v", err)
	}
}

func TestRegisterCustomer_RolesUnavailable_BlocksRegistration(t *testing.T) {
	gw := &stubGateway{
		rolesFn: func(_ context.Context) ([]domain.Role, error) {
			return nil, &domain.StatusError{Code: 500, Text: "Internal Server Error"}
		},
	}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "1234567890",
		Name:     "Alice",
		Location: "Denver",
	})
	if !errors.Is(err, domain.ErrRolesUnavailable) {
		t.Fatalf("expected ErrRolesUnavailable, got %v", err)
	}
}

func TestRegisterCustomer_Success_ComposesPayloadAndPersists(t *testing.T) {
	var got ports.RegistrationRequest
	gw := &stubGateway{
		rolesFn: rolesOK,
		registerFn: func(_ context.Context, req ports.RegistrationRequest) (*domain.User, error) {
			got = req
			return testUser(), nil
		},
	}
	store := memory.NewStore()
	svc := NewRegistrationService(gw, store, zerolog.Nop())

	user, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "(123) 456-7890",
		Name:     "  Test User  ",
		Location: " Denver, CO ",
		Email:    " test@example.com ",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("unexpected user: %+v", user)
	}

	if got.PhoneNumber != "+11234567890" {
		t.Fatalf("expected canonical phone, got %q", got.PhoneNumber)
	}
	if got.Name != "Test User" || got.Location != "Denver, CO" || got.Email != "test@example.com" {
		t.Fatalf("fields not trimmed: %+v", got)
	}
	if len(got.RoleIDs) != 1 || got.RoleIDs[0] != 1 {
		t.Fatalf("expected customer role id 1, got %v", got.RoleIDs)
	}

	if _, err := store.Get(context.Background(), ports.SessionKey); err != nil {
		t.Fatalf("session slot not written: %v", err)
	}
}

func TestRegisterCustomer_ServerDetailSurfaced(t *testing.T) {
	gw := &stubGateway{
		rolesFn: rolesOK,
		registerFn: func(_ context.Context, _ ports.RegistrationRequest) (*domain.User, error) {
			return nil, &domain.APIError{Status: 400, Detail: "Phone number already registered"}
		},
	}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterCustomer(context.Background(), ports.CustomerInput{
		Phone:    "1234567890",
		Name:     "Alice",
		Location: "Denver",
	})

	var alert *domain.Alert
	if !errors.As(err, &alert) {
		t.Fatalf("expected alert, got %v", err)
	}
	if alert.Title != "Registration Failed" || alert.Message != "Phone number already registered" {
		t.Fatalf("unexpected alert: %+v", alert)
	}
}

func TestRegisterBusiness_RequiresBusinessName(t *testing.T) {
	gw := &stubGateway{}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	_, err := svc.RegisterBusiness(context.Background(), ports.BusinessInput{
		CustomerInput: ports.CustomerInput{
			Phone:    "1234567890",
			Name:     "Bob",
			Location: "Denver",
		},
		BusinessName: "  ",
	})
	if !errors.Is(err, domain.ErrMissingBusinessFields) {
		t.Fatalf("expected ErrMissingBusinessFields, got %v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("expected no network call, got %d", gw.calls)
	}
}

func TestRegisterBusiness_Success_CarriesProviderProfile(t *testing.T) {
	var got ports.RegistrationRequest
	gw := &stubGateway{
		registerFn: func(_ context.Context, req ports.RegistrationRequest) (*domain.User, error) {
			got = req
			u := testUser()
			u.ProviderProfile = req.Provider
			return u, nil
		},
	}
	svc := NewRegistrationService(gw, memory.NewStore(), zerolog.Nop())

	user, err := svc.RegisterBusiness(context.Background(), ports.BusinessInput{
		CustomerInput: ports.CustomerInput{
			Phone:    "1234567890",
			Name:     "Bob",
			Location: "Denver",
		},
		BusinessName: " Bob's Bikes ",
		Rating:       4,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if got.Provider == nil || got.Provider.BusinessName != "Bob's Bikes" || got.Provider.Rating != 4 {
		t.Fatalf("unexpected provider payload: %+v", got.Provider)
	}
	if got.RoleIDs == nil || len(got.RoleIDs) != 0 {
		t.Fatalf("business registration should send empty roles, got %v", got.RoleIDs)
	}
	if user.ProviderProfile == nil {
		t.Fatalf("expected provider profile on user")
	}
}
