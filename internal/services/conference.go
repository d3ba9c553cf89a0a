package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"confcompanion/internal/domain"
	"confcompanion/internal/metrics"
)

type conferenceService struct {
	repo           domain.ConferenceRepository
	cache          domain.ConferenceCache
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewConferenceService returns a ConferenceService reading through cache.
func NewConferenceService(repo domain.ConferenceRepository, cache domain.ConferenceCache, logger *slog.Logger, timeout time.Duration) domain.ConferenceService {
	return &conferenceService{
		repo:           repo,
		cache:          cache,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *conferenceService) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	confs, err := s.repo.ListConferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	return confs, nil
}

func (s *conferenceService) GetConference(ctx context.Context, slug string) (*domain.Conference, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: conference slug is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cached, err := s.cache.Get(ctx, slug)
	switch {
	case err != nil:
		metrics.CacheRequests.WithLabelValues("error").Inc()
		s.logger.Warn("conference cache lookup failed", "slug", slug, "error", err)
	case cached != nil:
		metrics.CacheRequests.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	conf, err := s.repo.GetConferenceBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if err := s.cache.Set(ctx, conf); err != nil {
		s.logger.Warn("conference cache store failed", "slug", slug, "error", err)
	}
	return conf, nil
}

func (s *conferenceService) UpdateConference(ctx context.Context, slug string, patch domain.ConferencePatch) (*domain.Conference, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.repo.UpdateConferenceBySlug(ctx, slug, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update conference: %w", err)
	}
	if err := s.cache.Delete(ctx, slug); err != nil {
		s.logger.Warn("conference cache eviction failed", "slug", slug, "error", err)
	}
	return conf, nil
}

func (s *conferenceService) ResolveConferenceID(ctx context.Context, slug string) (string, error) {
	conf, err := s.GetConference(ctx, slug)
	if err != nil {
		return "", err
	}
	return conf.ID, nil
}
