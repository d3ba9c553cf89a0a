package domain

import (
	"context"
	"time"
)

// Session is one schedule item: a forum, talk or programme event.
// swagger:model Session
type Session struct {
	ID           string    `json:"id" db:"id"`
	ConferenceID string    `json:"conferenceId" db:"conference_id"`
	ExternalID   *string   `json:"externalId,omitempty" db:"external_id"`
	Title        string    `json:"title" db:"title"`
	Speaker      string    `json:"speaker" db:"speaker"`
	SpeakerBio   *string   `json:"speakerBio,omitempty" db:"speaker_bio"`
	Abstract     *string   `json:"abstract,omitempty" db:"abstract"`
	Day          string    `json:"day" db:"day"`
	StartTime    string    `json:"startTime" db:"start_time"`
	EndTime      string    `json:"endTime" db:"end_time"`
	Room         string    `json:"room" db:"room"`
	Category     string    `json:"category" db:"category"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// SessionFilter narrows a session listing. Empty fields match everything.
type SessionFilter struct {
	Category string
	Day      string
}

// SessionRepository defines session storage.
type SessionRepository interface {
	ListSessions(ctx context.Context, conferenceID string, filter SessionFilter) ([]*Session, error)
	GetSessionByID(ctx context.Context, id string) (*Session, error)
	// UpsertImportedSessions inserts or refreshes sessions keyed by (conference, external ID).
	UpsertImportedSessions(ctx context.Context, conferenceID string, sessions []*Session) (int, error)
}

// ScheduleImportService imports an external schedule feed into a conference.
type ScheduleImportService interface {
	ImportSessionize(ctx context.Context, conferenceSlug, sessionizeID string) (imported int, err error)
}
