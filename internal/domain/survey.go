package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Survey types accepted by the API.
const (
	SurveyAttendee  = "attendee"
	SurveyExhibitor = "exhibitor"
	SurveySpeaker   = "speaker"
	SurveyVolunteer = "volunteer"
	SurveyStaff     = "staff"
)

// ValidSurveyType reports whether t is a known survey type.
func ValidSurveyType(t string) bool {
	switch t {
	case SurveyAttendee, SurveyExhibitor, SurveySpeaker, SurveyVolunteer, SurveyStaff:
		return true
	}
	return false
}

// SurveyResponse is one submitted feedback survey. Responses is stored verbatim.
// swagger:model SurveyResponse
type SurveyResponse struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"userId" db:"user_id"`
	ConferenceID string          `json:"conferenceId" db:"conference_id"`
	SurveyType   string          `json:"surveyType" db:"survey_type"`
	Responses    json.RawMessage `json:"responses" db:"responses" swaggertype:"object"`
	Timestamp    time.Time       `json:"timestamp" db:"submitted_at"`
	Completed    bool            `json:"completed" db:"completed"`
}

// SurveyStatus reports whether a user has completed a survey type.
type SurveyStatus struct {
	Completed bool `json:"completed"`
}

// SurveyRepository defines survey storage.
type SurveyRepository interface {
	ListSurveyResponses(ctx context.Context, userID string) ([]*SurveyResponse, error)
	// SubmitSurvey always inserts; repeated submissions are kept.
	SubmitSurvey(ctx context.Context, resp *SurveyResponse) error
	// GetSurveyResponse returns the first stored response of surveyType, or ErrNotFound.
	GetSurveyResponse(ctx context.Context, userID, surveyType string) (*SurveyResponse, error)
}
