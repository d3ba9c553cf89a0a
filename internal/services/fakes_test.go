package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"confcompanion/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// connErr is a connection-class storage failure.
var connErr = domain.NewStorageError("op", "database temporarily unavailable during op", errors.New("connection refused"), true)

// fakeConferenceRepo is an in-memory ConferenceRepository.
type fakeConferenceRepo struct {
	bySlug  map[string]*domain.Conference
	getHits int
	err     error
}

func newFakeConferenceRepo(confs ...*domain.Conference) *fakeConferenceRepo {
	f := &fakeConferenceRepo{bySlug: make(map[string]*domain.Conference)}
	for _, c := range confs {
		f.bySlug[c.Slug] = c
	}
	return f
}

func (f *fakeConferenceRepo) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Conference
	for _, c := range f.bySlug {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConferenceRepo) GetConferenceBySlug(ctx context.Context, slug string) (*domain.Conference, error) {
	f.getHits++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeConferenceRepo) CreateConference(ctx context.Context, c *domain.Conference) error {
	f.bySlug[c.Slug] = c
	return nil
}

func (f *fakeConferenceRepo) UpdateConferenceBySlug(ctx context.Context, slug string, patch domain.ConferencePatch) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.PrimaryColor != nil {
		c.PrimaryColor = patch.PrimaryColor
	}
	return c, nil
}

// fakeCache is an in-memory ConferenceCache.
type fakeCache struct {
	entries map[string]*domain.Conference
	err     error
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.Conference)}
}

func (f *fakeCache) Get(ctx context.Context, slug string) (*domain.Conference, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[slug], nil
}

func (f *fakeCache) Set(ctx context.Context, c *domain.Conference) error {
	if f.err != nil {
		return f.err
	}
	f.entries[c.Slug] = c
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, slug string) error {
	f.deleted = append(f.deleted, slug)
	delete(f.entries, slug)
	return f.err
}

// fakeSessionRepo is an in-memory SessionRepository.
type fakeSessionRepo struct {
	byID       map[string]*domain.Session
	lastConfID string
	lastFilter domain.SessionFilter
	imported   []*domain.Session
	importConf string
	err        error
}

func newFakeSessionRepo(sessions ...*domain.Session) *fakeSessionRepo {
	f := &fakeSessionRepo{byID: make(map[string]*domain.Session)}
	for _, s := range sessions {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSessionRepo) ListSessions(ctx context.Context, conferenceID string, filter domain.SessionFilter) ([]*domain.Session, error) {
	f.lastConfID, f.lastFilter = conferenceID, filter
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Session
	for _, s := range f.byID {
		if conferenceID != "" && s.ConferenceID != conferenceID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) UpsertImportedSessions(ctx context.Context, conferenceID string, sessions []*domain.Session) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.importConf = conferenceID
	f.imported = sessions
	return len(sessions), nil
}

// fakeVendorRepo is an in-memory VendorRepository.
type fakeVendorRepo struct {
	vendors    []*domain.Vendor
	lastConfID string
	err        error
}

func (f *fakeVendorRepo) ListVendors(ctx context.Context, conferenceID string) ([]*domain.Vendor, error) {
	f.lastConfID = conferenceID
	if f.err != nil {
		return nil, f.err
	}
	return f.vendors, nil
}

func (f *fakeVendorRepo) GetVendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
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

// fakePrizeRepo is an in-memory PrizeRepository.
type fakePrizeRepo struct {
	prizes   []*domain.DoorPrize
	winners  []*domain.THuntingWinner
	schedule []*domain.THuntingSchedule
	err      error
}

func (f *fakePrizeRepo) ListDoorPrizes(ctx context.Context, conferenceID string) ([]*domain.DoorPrize, error) {
	return f.prizes, f.err
}

func (f *fakePrizeRepo) AddDoorPrize(ctx context.Context, p *domain.DoorPrize) error {
	if f.err != nil {
		return f.err
	}
	p.ID = fmt.Sprintf("dp-%d", len(f.prizes)+1)
	f.prizes = append(f.prizes, p)
	return nil
}

func (f *fakePrizeRepo) ListTHuntingWinners(ctx context.Context, conferenceID string) ([]*domain.THuntingWinner, error) {
	return f.winners, f.err
}

func (f *fakePrizeRepo) AddTHuntingWinner(ctx context.Context, w *domain.THuntingWinner) error {
	if f.err != nil {
		return f.err
	}
	w.ID = fmt.Sprintf("tw-%d", len(f.winners)+1)
	f.winners = append(f.winners, w)
	return nil
}

func (f *fakePrizeRepo) ListTHuntingSchedule(ctx context.Context, conferenceID string) ([]*domain.THuntingSchedule, error) {
	return f.schedule, f.err
}

// fakeVenueRepo is an in-memory VenueRepository.
type fakeVenueRepo struct {
	contacts      []*domain.RadioContact
	info          []*domain.VenueInfo
	images        []*domain.ConferenceImage
	lastImageType string
	err           error
}

func (f *fakeVenueRepo) ListRadioContacts(ctx context.Context, conferenceID string) ([]*domain.RadioContact, error) {
	return f.contacts, f.err
}

func (f *fakeVenueRepo) ListVenueInfo(ctx context.Context, conferenceID string) ([]*domain.VenueInfo, error) {
	return f.info, f.err
}

func (f *fakeVenueRepo) ListConferenceImages(ctx context.Context, conferenceID, imageType string) ([]*domain.ConferenceImage, error) {
	f.lastImageType = imageType
	return f.images, f.err
}

type bookmarkKey struct{ user, conf, session string }

// fakeBookmarkRepo is an in-memory BookmarkRepository.
type fakeBookmarkRepo struct {
	rows []bookmarkKey
	err  error
}

func (f *fakeBookmarkRepo) ListBookmarks(ctx context.Context, userID, conferenceID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, r := range f.rows {
		if r.user == userID && (conferenceID == "" || r.conf == conferenceID) {
			out = append(out, r.session)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) AddBookmark(ctx context.Context, userID, conferenceID, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	k := bookmarkKey{userID, conferenceID, sessionID}
	for _, r := range f.rows {
		if r == k {
			return nil
		}
	}
	f.rows = append(f.rows, k)
	return nil
}

func (f *fakeBookmarkRepo) RemoveBookmark(ctx context.Context, userID, conferenceID, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	k := bookmarkKey{userID, conferenceID, sessionID}
	for i, r := range f.rows {
		if r == k {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeSurveyRepo is an in-memory SurveyRepository.
type fakeSurveyRepo struct {
	rows []*domain.SurveyResponse
	err  error
}

func (f *fakeSurveyRepo) ListSurveyResponses(ctx context.Context, userID string) ([]*domain.SurveyResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.SurveyResponse
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSurveyRepo) SubmitSurvey(ctx context.Context, resp *domain.SurveyResponse) error {
	if f.err != nil {
		return f.err
	}
	resp.ID = fmt.Sprintf("sr-%d", len(f.rows)+1)
	f.rows = append(f.rows, resp)
	return nil
}

func (f *fakeSurveyRepo) GetSurveyResponse(ctx context.Context, userID, surveyType string) (*domain.SurveyResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.UserID == userID && r.SurveyType == surveyType {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	lastPatch domain.ProfilePatch
	err       error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpsertUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byID[u.ID]; ok {
		existing.Email, existing.FirstName, existing.LastName = u.Email, u.FirstName, u.LastName
		return existing, nil
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.ProfileFromUser(f.byID[userID]), nil
}

func (f *fakeUserRepo) UpdateUserProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[userID]
	if !ok {
		u = &domain.User{ID: userID}
		f.byID[userID] = u
	}
	if patch.CallSign != nil {
		u.CallSign = patch.CallSign
	}
	if patch.BadgeNumber != nil {
		u.BadgeNumber = patch.BadgeNumber
	}
	if patch.LicenseClass != nil {
		u.LicenseClass = patch.LicenseClass
	}
	if patch.IsRegistered != nil {
		u.IsRegistered = *patch.IsRegistered
	}
	return domain.ProfileFromUser(u), nil
}

// fakeEmailService records survey receipts.
type fakeEmailService struct {
	sent []*domain.SurveyReceiptEmailData
	err  error
}

func (f *fakeEmailService) SendSurveyReceipt(ctx context.Context, data *domain.SurveyReceiptEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeFetcher returns a fixed feed.
type fakeFetcher struct {
	feed  *domain.SessionizeFeed
	err   error
	gotID string
}

func (f *fakeFetcher) Fetch(ctx context.Context, id string) (*domain.SessionizeFeed, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.feed, nil
}

// fakeMailer records sent messages.
type fakeMailer struct {
	to, subject string
	err         error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject = to, subject
	return nil
}

// fakeRenderer renders a fixed subject.
type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.name = name
	if f.err != nil {
		return "", "", "", f.err
	}
	return "Thanks", "<p>thanks</p>", "thanks", nil
}
