package domain

import "context"

// RadioContact is a frequency attendees can use around the venue.
// swagger:model RadioContact
type RadioContact struct {
	ID           string  `json:"id" db:"id"`
	ConferenceID string  `json:"conferenceId" db:"conference_id"`
	Type         string  `json:"type" db:"type"`
	Frequency    string  `json:"frequency" db:"frequency"`
	Label        string  `json:"label" db:"label"`
	Notes        *string `json:"notes,omitempty" db:"notes"`
}

// VenueInfo is a block of practical venue information (hotel, parking...).
// swagger:model VenueInfo
type VenueInfo struct {
	ID           string  `json:"id" db:"id"`
	ConferenceID string  `json:"conferenceId" db:"conference_id"`
	Category     string  `json:"category" db:"category"`
	Title        string  `json:"title" db:"title"`
	Details      string  `json:"details" db:"details"`
	Hours        *string `json:"hours,omitempty" db:"hours"`
}

// ConferenceImage is a map or other image shown for a conference.
// swagger:model ConferenceImage
type ConferenceImage struct {
	ID           string `json:"id" db:"id"`
	ConferenceID string `json:"conferenceId" db:"conference_id"`
	Type         string `json:"type" db:"type"`
	URL          string `json:"url" db:"url"`
	AltText      string `json:"altText" db:"alt_text"`
	SortOrder    int    `json:"sortOrder" db:"sort_order"`
}

// VenueRepository defines storage for venue reference data.
type VenueRepository interface {
	ListRadioContacts(ctx context.Context, conferenceID string) ([]*RadioContact, error)
	ListVenueInfo(ctx context.Context, conferenceID string) ([]*VenueInfo, error)
	// ListConferenceImages filters by imageType when it is non-empty.
	ListConferenceImages(ctx context.Context, conferenceID, imageType string) ([]*ConferenceImage, error)
}
