package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"confcompanion/internal/delivery/http/middleware"
	"confcompanion/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testClaims = &domain.IdentityClaims{Subject: "u1", Email: "alice@example.com", FirstName: "Alice"}

const sessionUUID = "3f2c1a9e-6a1b-4c2d-9e8f-0a1b2c3d4e5f"

var errUnavailable = domain.NewStorageError("op", "database temporarily unavailable during op", errors.New("connection refused"), true)

// newRequest builds a request with optional body, path values and claims.
func newRequest(method, target, body string, claims *domain.IdentityClaims, pathValues map[string]string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if claims != nil {
		req = req.WithContext(middleware.SetClaims(req.Context(), claims))
	}
	return req
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}

// fakeConferenceService implements domain.ConferenceService.
type fakeConferenceService struct {
	confs     []*domain.Conference
	err       error
	lastPatch domain.ConferencePatch
}

func (f *fakeConferenceService) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	return f.confs, f.err
}

func (f *fakeConferenceService) GetConference(ctx context.Context, slug string) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.confs {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceService) UpdateConference(ctx context.Context, slug string, patch domain.ConferencePatch) (*domain.Conference, error) {
	f.lastPatch = patch
	c, err := f.GetConference(ctx, slug)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	return c, nil
}

func (f *fakeConferenceService) ResolveConferenceID(ctx context.Context, slug string) (string, error) {
	c, err := f.GetConference(ctx, slug)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// fakeCatalogService implements domain.CatalogService, recording the last slug seen.
type fakeCatalogService struct {
	sessions   []*domain.Session
	vendors    []*domain.Vendor
	err        error
	lastSlug   string
	lastFilter domain.SessionFilter
	lastType   string
	lastPrize  *domain.DoorPrize
	lastWinner *domain.THuntingWinner
}

func (f *fakeCatalogService) ListSessions(ctx context.Context, slug string, filter domain.SessionFilter) ([]*domain.Session, error) {
	f.lastSlug, f.lastFilter = slug, filter
	return f.sessions, f.err
}

func (f *fakeCatalogService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) ListVendors(ctx context.Context, slug string) ([]*domain.Vendor, error) {
	f.lastSlug = slug
	return f.vendors, f.err
}

func (f *fakeCatalogService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.vendors {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalogService) ListDoorPrizes(ctx context.Context, slug string) ([]*domain.DoorPrize, error) {
	f.lastSlug = slug
	return []*domain.DoorPrize{}, f.err
}

func (f *fakeCatalogService) AddDoorPrize(ctx context.Context, slug string, p *domain.DoorPrize) (*domain.DoorPrize, error) {
	f.lastSlug, f.lastPrize = slug, p
	if f.err != nil {
		return nil, f.err
	}
	p.ID = "dp-1"
	return p, nil
}

func (f *fakeCatalogService) ListTHuntingWinners(ctx context.Context, slug string) ([]*domain.THuntingWinner, error) {
	f.lastSlug = slug
	return []*domain.THuntingWinner{}, f.err
}

func (f *fakeCatalogService) AddTHuntingWinner(ctx context.Context, slug string, w *domain.THuntingWinner) (*domain.THuntingWinner, error) {
	f.lastSlug, f.lastWinner = slug, w
	if f.err != nil {
		return nil, f.err
	}
	w.ID = "tw-1"
	return w, nil
}

func (f *fakeCatalogService) ListTHuntingSchedule(ctx context.Context, slug string) ([]*domain.THuntingSchedule, error) {
	f.lastSlug = slug
	return []*domain.THuntingSchedule{}, f.err
}

func (f *fakeCatalogService) ListRadioContacts(ctx context.Context, slug string) ([]*domain.RadioContact, error) {
	f.lastSlug = slug
	return []*domain.RadioContact{}, f.err
}

func (f *fakeCatalogService) ListVenueInfo(ctx context.Context, slug string) ([]*domain.VenueInfo, error) {
	f.lastSlug = slug
	return []*domain.VenueInfo{}, f.err
}

func (f *fakeCatalogService) ListConferenceImages(ctx context.Context, slug, imageType string) ([]*domain.ConferenceImage, error) {
	f.lastSlug, f.lastType = slug, imageType
	return []*domain.ConferenceImage{}, f.err
}

// fakeImporter implements domain.ScheduleImportService.
type fakeImporter struct {
	n                 int
	err               error
	lastSlug, lastSID string
}

func (f *fakeImporter) ImportSessionize(ctx context.Context, slug, sessionizeID string) (int, error) {
	f.lastSlug, f.lastSID = slug, sessionizeID
	return f.n, f.err
}

// fakeAttendeeService implements domain.AttendeeService.
type fakeAttendeeService struct {
	err            error
	bookmarks      []string
	lastUserID     string
	lastSlug       string
	lastSessionID  string
	lastSurveyType string
	lastResponses  json.RawMessage
	lastPatch      domain.ProfilePatch
}

func (f *fakeAttendeeService) ListBookmarks(ctx context.Context, userID, slug string) ([]string, error) {
	f.lastUserID, f.lastSlug = userID, slug
	return f.bookmarks, f.err
}

func (f *fakeAttendeeService) AddBookmark(ctx context.Context, userID, slug, sessionID string) error {
	f.lastUserID, f.lastSlug, f.lastSessionID = userID, slug, sessionID
	return f.err
}

func (f *fakeAttendeeService) RemoveBookmark(ctx context.Context, userID, slug, sessionID string) error {
	f.lastUserID, f.lastSlug, f.lastSessionID = userID, slug, sessionID
	return f.err
}

func (f *fakeAttendeeService) ListSurveys(ctx context.Context, userID string) ([]*domain.SurveyResponse, error) {
	f.lastUserID = userID
	return []*domain.SurveyResponse{}, f.err
}

func (f *fakeAttendeeService) SubmitSurvey(ctx context.Context, claims *domain.IdentityClaims, slug, surveyType string, responses json.RawMessage) (*domain.SurveyResponse, error) {
	f.lastUserID, f.lastSlug, f.lastSurveyType, f.lastResponses = claims.Subject, slug, surveyType, responses
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SurveyResponse{ID: "sr-1", UserID: claims.Subject, SurveyType: surveyType, Responses: responses, Completed: true}, nil
}

func (f *fakeAttendeeService) SurveyStatus(ctx context.Context, userID, surveyType string) (*domain.SurveyStatus, error) {
	f.lastUserID, f.lastSurveyType = userID, surveyType
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SurveyStatus{Completed: true}, nil
}

func (f *fakeAttendeeService) GetProfile(ctx context.Context, claims *domain.IdentityClaims) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return claims.Profile(), nil
}

func (f *fakeAttendeeService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	f.lastUserID, f.lastPatch = userID, patch
	if f.err != nil {
		return nil, f.err
	}
	p := &domain.UserProfile{Name: domain.UnknownUserName}
	if patch.CallSign != nil {
		p.CallSign = *patch.CallSign
	}
	return p, nil
}

func (f *fakeAttendeeService) CurrentUser(ctx context.Context, claims *domain.IdentityClaims) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return claims.User(), nil
}

// fakeChecker implements domain.HealthChecker.
type fakeChecker struct{ up bool }

func (f fakeChecker) CheckConnection(ctx context.Context) bool { return f.up }
