package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"confcompanion/internal/domain"
)

// defaultImportCategory is used for sessions without a Sessionize category.
const defaultImportCategory = "general"

type scheduleImportService struct {
	conferences    domain.ConferenceService
	sessions       domain.SessionRepository
	fetcher        domain.SessionFetcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewScheduleImportService creates a ScheduleImportService backed by a Sessionize fetcher.
func NewScheduleImportService(conferences domain.ConferenceService, sessions domain.SessionRepository, fetcher domain.SessionFetcher, logger *slog.Logger, timeout time.Duration) domain.ScheduleImportService {
	return &scheduleImportService{
		conferences:    conferences,
		sessions:       sessions,
		fetcher:        fetcher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *scheduleImportService) ImportSessionize(ctx context.Context, slug, sessionizeID string) (int, error) {
	sessionizeID = strings.TrimSpace(sessionizeID)
	if sessionizeID == "" {
		return 0, fmt.Errorf("%w: sessionize id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.conferences.ResolveConferenceID(ctx, slug)
	if err != nil {
		return 0, err
	}

	feed, err := s.fetcher.Fetch(ctx, sessionizeID)
	if err != nil {
		return 0, fmt.Errorf("fetch sessionize feed: %w", err)
	}

	sessions := sessionsFromFeed(feed)
	n, err := s.sessions.UpsertImportedSessions(ctx, conferenceID, sessions)
	if err != nil {
		return 0, fmt.Errorf("import sessions: %w", err)
	}
	s.logger.InfoContext(ctx, "sessionize schedule imported",
		"conference", slug, "sessionize_id", sessionizeID, "sessions", n, "skipped", len(feed.Sessions)-len(sessions))
	return n, nil
}

// sessionsFromFeed maps feed sessions to schedule sessions. Sessions
// without a start time cannot be placed on a day and are skipped.
func sessionsFromFeed(feed *domain.SessionizeFeed) []*domain.Session {
	speakers := make(map[string]domain.FeedSpeaker, len(feed.Speakers))
	for _, sp := range feed.Speakers {
		speakers[sp.ID] = sp
	}
	rooms := make(map[int]string, len(feed.Rooms))
	for _, r := range feed.Rooms {
		rooms[r.ID] = r.Name
	}
	categories := make(map[int]string)
	for _, c := range feed.Categories {
		for _, item := range c.Items {
			categories[item.ID] = item.Name
		}
	}

	out := make([]*domain.Session, 0, len(feed.Sessions))
	for _, fs := range feed.Sessions {
		if fs.StartsAt == nil || fs.StartsAt.IsZero() {
			continue
		}
		extID := fs.ID
		sess := &domain.Session{
			ExternalID: &extID,
			Title:      strings.TrimSpace(fs.Title),
			Abstract:   fs.Description,
			Day:        strings.ToLower(fs.StartsAt.Weekday().String()),
			StartTime:  clockTime(fs.StartsAt.Time),
			Category:   defaultImportCategory,
		}
		if fs.EndsAt != nil && !fs.EndsAt.IsZero() {
			sess.EndTime = clockTime(fs.EndsAt.Time)
		}
		if fs.RoomID != nil {
			sess.Room = rooms[*fs.RoomID]
		}
		for _, id := range fs.CategoryItems {
			if name, ok := categories[id]; ok && name != "" {
				sess.Category = strings.ToLower(name)
				break
			}
		}

		var names []string
		for _, id := range fs.Speakers {
			sp, ok := speakers[id]
			if !ok {
				continue
			}
			names = append(names, sp.FullName)
			if sess.SpeakerBio == nil && sp.Bio != "" {
				bio := sp.Bio
				sess.SpeakerBio = &bio
			}
		}
		sess.Speaker = strings.Join(names, ", ")
		out = append(out, sess)
	}
	return out
}

// clockTime formats t the way seeded schedule times are written ("09:00 am").
func clockTime(t time.Time) string {
	return t.Format("03:04 pm")
}
