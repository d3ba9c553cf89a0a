package domain

import (
	"context"
	"time"
)

// Conference is a tenant: every other conference-scoped row points at one.
// swagger:model Conference
type Conference struct {
	ID              string    `json:"id" db:"id"`
	Slug            string    `json:"slug" db:"slug"`
	Name            string    `json:"name" db:"name"`
	Year            int       `json:"year" db:"year"`
	Location        string    `json:"location" db:"location"`
	StartDate       time.Time `json:"startDate" db:"start_date"`
	EndDate         time.Time `json:"endDate" db:"end_date"`
	Timezone        string    `json:"timezone" db:"timezone"`
	Division        string    `json:"division" db:"division"`
	GridSquare      string    `json:"gridSquare" db:"grid_square"`
	GPS             string    `json:"gps" db:"gps"`
	LocationAddress string    `json:"locationAddress" db:"location_address"`
	DirectionsHTML  *string   `json:"directionsHtml,omitempty" db:"directions_html"`
	LogoURL         *string   `json:"logoUrl,omitempty" db:"logo_url"`
	FaviconURL      *string   `json:"faviconUrl,omitempty" db:"favicon_url"`
	PrimaryColor    *string   `json:"primaryColor,omitempty" db:"primary_color"`
	AccentColor     *string   `json:"accentColor,omitempty" db:"accent_color"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// ConferencePatch holds the editable conference fields. Nil fields are left unchanged.
type ConferencePatch struct {
	Name            *string `json:"name"`
	Location        *string `json:"location"`
	LocationAddress *string `json:"locationAddress"`
	Timezone        *string `json:"timezone"`
	DirectionsHTML  *string `json:"directionsHtml"`
	LogoURL         *string `json:"logoUrl"`
	FaviconURL      *string `json:"faviconUrl"`
	PrimaryColor    *string `json:"primaryColor"`
	AccentColor     *string `json:"accentColor"`
	IsActive        *bool   `json:"isActive"`
}

// Empty reports whether the patch changes nothing.
func (p ConferencePatch) Empty() bool {
	return p.Name == nil && p.Location == nil && p.LocationAddress == nil && p.Timezone == nil &&
		p.DirectionsHTML == nil && p.LogoURL == nil && p.FaviconURL == nil &&
		p.PrimaryColor == nil && p.AccentColor == nil && p.IsActive == nil
}

// ConferenceRepository defines conference storage.
type ConferenceRepository interface {
	ListConferences(ctx context.Context) ([]*Conference, error)
	GetConferenceBySlug(ctx context.Context, slug string) (*Conference, error)
	CreateConference(ctx context.Context, c *Conference) error
	UpdateConferenceBySlug(ctx context.Context, slug string, patch ConferencePatch) (*Conference, error)
}

// ConferenceCache caches conferences by slug. A miss is (nil, nil).
type ConferenceCache interface {
	Get(ctx context.Context, slug string) (*Conference, error)
	Set(ctx context.Context, c *Conference) error
	Delete(ctx context.Context, slug string) error
}

// ConferenceService exposes conference lookups and branding updates.
type ConferenceService interface {
	ListConferences(ctx context.Context) ([]*Conference, error)
	GetConference(ctx context.Context, slug string) (*Conference, error)
	UpdateConference(ctx context.Context, slug string, patch ConferencePatch) (*Conference, error)
	// ResolveConferenceID maps a slug to its conference ID. Returns ErrNotFound for unknown slugs.
	ResolveConferenceID(ctx context.Context, slug string) (string, error)
}
