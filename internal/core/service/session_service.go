package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
)

// SessionService implements login-by-phone, screen-focus refresh, and logout
// over the injected session slot.
type SessionService struct {
	gateway ports.UserGateway
	store   ports.KVStore
	log     zerolog.Logger
}

func NewSessionService(gateway ports.UserGateway, store ports.KVStore, log zerolog.Logger) *SessionService {
	return &SessionService{gateway: gateway, store: store, log: log}
}

// Login validates the raw phone input before any network call, then resolves
// it against the remote API. A 404 means the subject is unregistered, which
// is a distinct condition from a server failure.
func (s *SessionService) Login(ctx context.Context, rawPhone string) (*domain.User, error) {
	if !domain.ValidPhone(rawPhone) {
		return nil, domain.ErrInvalidPhone
	}

	user, err := s.gateway.UserByPhone(ctx, domain.CanonicalPhone(rawPhone))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotRegistered
		}
		var se *domain.StatusError
		if errors.As(err, &se) {
			return nil, domain.ServerFailure(se.Code)
		}
		return nil, err
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Current reads the session slot.
func (s *SessionService) Current(ctx context.Context) (*domain.User, error) {
	raw, err := s.store.Get(ctx, ports.SessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrNoSession
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh reconciles the cached session record against the remote source of
// truth. Remote failures are silently tolerated: the stale local copy is
// kept and returned, so returning to the profile never breaks on a flaky
// network.
func (s *SessionService) Refresh(ctx context.Context, id int) (*domain.User, error) {
	cached, err := s.Current(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoSession) {
		return nil, err
	}

	user, err := s.gateway.UserByID(ctx, id)
	if err != nil {
		s.log.Debug().Err(err).Int("user_id", id).Msg("refresh skipped, keeping cached user")
		if cached != nil {
			return cached, nil
		}
		return nil, domain.ErrNoSession
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session slot. The store write completes before this
// returns, so callers can safely navigate afterwards without a stale
// re-render.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, ports.SessionKey); err != nil {
		return err
	}
	s.log.Info().Msg("session cleared")
	return nil
}

func (s *SessionService) persist(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, ports.SessionKey, raw); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return err
	}
	return nil
}
