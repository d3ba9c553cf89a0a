package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confcompanion/internal/domain"
)

type catalogService struct {
	conferences    domain.ConferenceService
	sessions       domain.SessionRepository
	vendors        domain.VendorRepository
	prizes         domain.PrizeRepository
	venue          domain.VenueRepository
	contextTimeout time.Duration
}

// NewCatalogService creates a CatalogService over the given repositories.
func NewCatalogService(
	conferences domain.ConferenceService,
	sessions domain.SessionRepository,
	vendors domain.VendorRepository,
	prizes domain.PrizeRepository,
	venue domain.VenueRepository,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		conferences:    conferences,
		sessions:       sessions,
		vendors:        vendors,
		prizes:         prizes,
		venue:          venue,
		contextTimeout: timeout,
	}
}

// scope resolves slug to a conference ID; "" stays unscoped.
func (s *catalogService) scope(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", nil
	}
	return s.conferences.ResolveConferenceID(ctx, slug)
}

// list runs a scoped listing and never returns a nil slice.
func list[T any](ctx context.Context, s *catalogService, slug, what string, fn func(ctx context.Context, conferenceID string) ([]*T, error)) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.scope(ctx, slug)
	if err != nil {
		return nil, err
	}
	out, err := fn(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

func (s *catalogService) ListSessions(ctx context.Context, slug string, filter domain.SessionFilter) ([]*domain.Session, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	filter.Day = strings.ToLower(strings.TrimSpace(filter.Day))
	return list(ctx, s, slug, "sessions", func(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
		return s.sessions.ListSessions(ctx, conferenceID, filter)
	})
}

func (s *catalogService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.sessions.GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *catalogService) ListVendors(ctx context.Context, slug string) ([]*domain.Vendor, error) {
	return list(ctx, s, slug, "vendors", s.vendors.ListVendors)
}

func (s *catalogService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.vendors.GetVendorByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

func (s *catalogService) ListDoorPrizes(ctx context.Context, slug string) ([]*domain.DoorPrize, error) {
	return list(ctx, s, slug, "door prizes", s.prizes.ListDoorPrizes)
}

func (s *catalogService) AddDoorPrize(ctx context.Context, slug string, prize *domain.DoorPrize) (*domain.DoorPrize, error) {
	if prize == nil || strings.TrimSpace(prize.PrizeName) == "" || strings.TrimSpace(prize.BadgeNumber) == "" {
		return nil, fmt.Errorf("%w: badgeNumber and prizeName are required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.conferences.ResolveConferenceID(ctx, slug)
	if err != nil {
		return nil, err
	}
	prize.ConferenceID = conferenceID
	prize.CallSign = strings.ToUpper(strings.TrimSpace(prize.CallSign))
	if err := s.prizes.AddDoorPrize(ctx, prize); err != nil {
		return nil, fmt.Errorf("add door prize: %w", err)
	}
	return prize, nil
}

func (s *catalogService) ListTHuntingWinners(ctx context.Context, slug string) ([]*domain.THuntingWinner, error) {
	return list(ctx, s, slug, "T-hunting winners", s.prizes.ListTHuntingWinners)
}

func (s *catalogService) AddTHuntingWinner(ctx context.Context, slug string, winner *domain.THuntingWinner) (*domain.THuntingWinner, error) {
	if winner == nil || winner.Rank < 1 || winner.HuntNumber < 1 || strings.TrimSpace(winner.CallSign) == "" {
		return nil, fmt.Errorf("%w: rank, huntNumber and callSign are required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.conferences.ResolveConferenceID(ctx, slug)
	if err != nil {
		return nil, err
	}
	winner.ConferenceID = conferenceID
	winner.CallSign = strings.ToUpper(strings.TrimSpace(winner.CallSign))
	if err := s.prizes.AddTHuntingWinner(ctx, winner); err != nil {
		return nil, fmt.Errorf("add T-hunting winner: %w", err)
	}
	return winner, nil
}

func (s *catalogService) ListTHuntingSchedule(ctx context.Context, slug string) ([]*domain.THuntingSchedule, error) {
	return list(ctx, s, slug, "T-hunting schedule", s.prizes.ListTHuntingSchedule)
}

func (s *catalogService) ListRadioContacts(ctx context.Context, slug string) ([]*domain.RadioContact, error) {
	return list(ctx, s, slug, "radio contacts", s.venue.ListRadioContacts)
}

func (s *catalogService) ListVenueInfo(ctx context.Context, slug string) ([]*domain.VenueInfo, error) {
	return list(ctx, s, slug, "venue info", s.venue.ListVenueInfo)
}

func (s *catalogService) ListConferenceImages(ctx context.Context, slug, imageType string) ([]*domain.ConferenceImage, error) {
	imageType = strings.TrimSpace(imageType)
	return list(ctx, s, slug, "conference images", func(ctx context.Context, conferenceID string) ([]*domain.ConferenceImage, error) {
		return s.venue.ListConferenceImages(ctx, conferenceID, imageType)
	})
}
