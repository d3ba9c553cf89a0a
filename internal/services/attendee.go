package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"confcompanion/internal/domain"
)

type attendeeService struct {
	conferences    domain.ConferenceService
	sessions       domain.SessionRepository
	bookmarks      domain.BookmarkRepository
	surveys        domain.SurveyRepository
	users          domain.UserRepository
	email          domain.EmailService
	defaultSlug    string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// AttendeeDeps groups the collaborators of the attendee service.
type AttendeeDeps struct {
	Conferences domain.ConferenceService
	Sessions    domain.SessionRepository
	Bookmarks   domain.BookmarkRepository
	Surveys     domain.SurveyRepository
	Users       domain.UserRepository
	// Email is optional; nil disables survey receipts.
	Email domain.EmailService
	// DefaultConferenceSlug scopes surveys submitted without a conference.
	DefaultConferenceSlug string
}

// NewAttendeeService creates an AttendeeService.
func NewAttendeeService(deps AttendeeDeps, logger *slog.Logger, timeout time.Duration) domain.AttendeeService {
	return &attendeeService{
		conferences:    deps.Conferences,
		sessions:       deps.Sessions,
		bookmarks:      deps.Bookmarks,
		surveys:        deps.Surveys,
		users:          deps.Users,
		email:          deps.Email,
		defaultSlug:    deps.DefaultConferenceSlug,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *attendeeService) ListBookmarks(ctx context.Context, userID, slug string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID := ""
	if slug != "" {
		id, err := s.conferences.ResolveConferenceID(ctx, slug)
		if err != nil {
			return nil, err
		}
		conferenceID = id
	}
	ids, err := s.bookmarks.ListBookmarks(ctx, userID, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// bookmarkConference returns the conference of the session. When slug is given it must
// name that same conference; a session of another conference is reported as not found.
func (s *attendeeService) bookmarkConference(ctx context.Context, slug, sessionID string) (string, error) {
	sess, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	if slug == "" {
		return sess.ConferenceID, nil
	}
	conferenceID, err := s.conferences.ResolveConferenceID(ctx, slug)
	if err != nil {
		return "", err
	}
	if sess.ConferenceID != conferenceID {
		return "", fmt.Errorf("session %s is not part of conference %s: %w", sessionID, slug, domain.ErrNotFound)
	}
	return conferenceID, nil
}

func (s *attendeeService) AddBookmark(ctx context.Context, userID, slug, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.bookmarkConference(ctx, slug, sessionID)
	if err != nil {
		return err
	}
	if err := s.bookmarks.AddBookmark(ctx, userID, conferenceID, sessionID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

func (s *attendeeService) RemoveBookmark(ctx context.Context, userID, slug, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferenceID, err := s.bookmarkConference(ctx, slug, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Nothing can be bookmarked against an unknown session or conference.
			return nil
		}
		return err
	}
	if err := s.bookmarks.RemoveBookmark(ctx, userID, conferenceID, sessionID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

func (s *attendeeService) ListSurveys(ctx context.Context, userID string) ([]*domain.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	out, err := s.surveys.ListSurveyResponses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list survey responses: %w", err)
	}
	if out == nil {
		out = []*domain.SurveyResponse{}
	}
	return out, nil
}

func (s *attendeeService) SubmitSurvey(ctx context.Context, claims *domain.IdentityClaims, slug, surveyType string, responses json.RawMessage) (*domain.SurveyResponse, error) {
	if !domain.ValidSurveyType(surveyType) {
		return nil, fmt.Errorf("%w: unknown survey type %q", domain.ErrInvalidInput, surveyType)
	}
	if len(responses) == 0 || string(responses) == "null" {
		responses = json.RawMessage("{}")
	}
	if slug == "" {
		slug = s.defaultSlug
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.conferences.GetConference(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := &domain.SurveyResponse{
		UserID:       claims.Subject,
		ConferenceID: conf.ID,
		SurveyType:   surveyType,
		Responses:    responses,
		Completed:    true,
	}
	if err := s.surveys.SubmitSurvey(ctx, resp); err != nil {
		return nil, fmt.Errorf("submit survey: %w", err)
	}

	s.sendReceipt(ctx, claims, conf, surveyType)
	return resp, nil
}

// sendReceipt mails a confirmation; failures are only logged.
func (s *attendeeService) sendReceipt(ctx context.Context, claims *domain.IdentityClaims, conf *domain.Conference, surveyType string) {
	if s.email == nil || claims.Email == "" {
		return
	}
	err := s.email.SendSurveyReceipt(ctx, &domain.SurveyReceiptEmailData{
		Email:          claims.Email,
		Name:           domain.DisplayName(claims.FirstName, claims.LastName),
		ConferenceName: conf.Name,
		SurveyType:     surveyType,
	})
	if err != nil {
		s.logger.Warn("survey receipt not sent", "user_id", claims.Subject, "survey_type", surveyType, "error", err)
	}
}

func (s *attendeeService) SurveyStatus(ctx context.Context, userID, surveyType string) (*domain.SurveyStatus, error) {
	if !domain.ValidSurveyType(surveyType) {
		return nil, fmt.Errorf("%w: unknown survey type %q", domain.ErrInvalidInput, surveyType)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.surveys.GetSurveyResponse(ctx, userID, surveyType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.SurveyStatus{Completed: false}, nil
		}
		return nil, fmt.Errorf("get survey response: %w", err)
	}
	return &domain.SurveyStatus{Completed: true}, nil
}

func (s *attendeeService) GetProfile(ctx context.Context, claims *domain.IdentityClaims) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := s.users.GetUserProfile(ctx, claims.Subject)
	if err != nil {
		var se *domain.StorageError
		if errors.As(err, &se) {
			s.logger.Warn("profile lookup failed, using token claims", "user_id", claims.Subject, "error", err)
			return claims.Profile(), nil
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return profile, nil
}

func (s *attendeeService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no profile fields to update", domain.ErrInvalidInput)
	}
	if patch.CallSign != nil {
		cs := strings.ToUpper(strings.TrimSpace(*patch.CallSign))
		patch.CallSign = &cs
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	profile, err := s.users.UpdateUserProfile(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return profile, nil
}

func (s *attendeeService) CurrentUser(ctx context.Context, claims *domain.IdentityClaims) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	u, err := s.users.UpsertUser(ctx, claims.User())
	if err != nil {
		var se *domain.StorageError
		if errors.As(err, &se) {
			s.logger.Warn("user upsert failed, using token claims", "user_id", claims.Subject, "error", err)
			return claims.User(), nil
		}
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}
