package domain

import (
	"context"
	"encoding/json"
)

// AttendeeService covers the authenticated attendee's own data.
// Methods that take a conference slug treat "" as "not given".
type AttendeeService interface {
	ListBookmarks(ctx context.Context, userID, conferenceSlug string) ([]string, error)
	AddBookmark(ctx context.Context, userID, conferenceSlug, sessionID string) error
	RemoveBookmark(ctx context.Context, userID, conferenceSlug, sessionID string) error

	ListSurveys(ctx context.Context, userID string) ([]*SurveyResponse, error)
	SubmitSurvey(ctx context.Context, claims *IdentityClaims, conferenceSlug, surveyType string, responses json.RawMessage) (*SurveyResponse, error)
	SurveyStatus(ctx context.Context, userID, surveyType string) (*SurveyStatus, error)

	// GetProfile falls back to a claims-derived profile when storage fails.
	GetProfile(ctx context.Context, claims *IdentityClaims) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*UserProfile, error)
	// CurrentUser upserts the user on first sight and falls back to a claims-derived user when storage fails.
	CurrentUser(ctx context.Context, claims *IdentityClaims) (*User, error)
}
