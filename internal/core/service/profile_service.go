package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/circuna/circuna/internal/core/domain"
	"github.com/circuna/circuna/internal/core/ports"
)

// ProfileService manages the custom profile slot. Every mutation is a full
// read-append-rewrite of the stored collection; there are no partial writes.
type ProfileService struct {
	store ports.KVStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewProfileService(store ports.KVStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{store: store, log: log, now: time.Now}
}

// Create appends a custom profile stamped with the owning user id and the
// current time. Storage failures never propagate raw: they are logged and
// surfaced as the generic could-not-save alert.
func (s *ProfileService) Create(ctx context.Context, userID int, title, description string) (*domain.CustomProfile, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	all, err := s.readAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read custom profiles")
		return nil, domain.ErrProfileNotSaved
	}

	profile := domain.CustomProfile{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	all = append(all, profile)

	raw, err := json.Marshal(all)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode custom profiles")
		return nil, domain.ErrProfileNotSaved
	}
	if err := s.store.Set(ctx, ports.ProfilesKey, raw); err != nil {
		s.log.Error().Err(err).Msg("failed to write custom profiles")
		return nil, domain.ErrProfileNotSaved
	}

	return &profile, nil
}

// ListForUser filters the full stored collection down to the given owner.
// The scan is O(n) with no index; the collection is client-local and small.
func (s *ProfileService) ListForUser(ctx context.Context, userID int) ([]domain.CustomProfile, error) {
	all, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]domain.CustomProfile, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func (s *ProfileService) readAll(ctx context.Context) ([]domain.CustomProfile, error) {
	raw, err := s.store.Get(ctx, ports.ProfilesKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var all []domain.CustomProfile
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	return all, nil
}
