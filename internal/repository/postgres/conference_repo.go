package postgres

import (
	"context"
	"fmt"
	"strings"

	"confcompanion/internal/domain"
)

const conferenceColumns = `id, slug, name, year, location, start_date, end_date, timezone, division,
	grid_square, gps, location_address, directions_html, logo_url, favicon_url,
	primary_color, accent_color, is_active, created_at`

// ListConferences returns the active conferences, newest first.
func (s *Storage) ListConferences(ctx context.Context) ([]*domain.Conference, error) {
	return run(ctx, s, "list conferences", func(ctx context.Context) ([]*domain.Conference, error) {
		query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE is_active = TRUE ORDER BY start_date DESC`
		out := []*domain.Conference{}
		if err := s.db.SelectContext(ctx, &out, query); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (s *Storage) GetConferenceBySlug(ctx context.Context, slug string) (*domain.Conference, error) {
	return run(ctx, s, "get conference", func(ctx context.Context) (*domain.Conference, error) {
		query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE slug = $1`
		c := &domain.Conference{}
		if err := s.db.GetContext(ctx, c, query, slug); err != nil {
			return nil, notFound(err)
		}
		return c, nil
	})
}

// CreateConference inserts c and fills its ID and CreatedAt.
func (s *Storage) CreateConference(ctx context.Context, c *domain.Conference) error {
	return exec(ctx, s, "create conference", func(ctx context.Context) error {
		return insertConference(ctx, s.db, c)
	})
}

func insertConference(ctx context.Context, q queryer, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (slug, name, year, location, start_date, end_date, timezone, division,
			grid_square, gps, location_address, directions_html, logo_url, favicon_url,
			primary_color, accent_color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at
	`
	return q.QueryRowxContext(ctx, query,
		c.Slug, c.Name, c.Year, c.Location, c.StartDate, c.EndDate, c.Timezone, c.Division,
		c.GridSquare, c.GPS, c.LocationAddress, c.DirectionsHTML, c.LogoURL, c.FaviconURL,
		c.PrimaryColor, c.AccentColor, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
}

// UpdateConferenceBySlug applies the non-nil patch fields and returns the updated row.
func (s *Storage) UpdateConferenceBySlug(ctx context.Context, slug string, patch domain.ConferencePatch) (*domain.Conference, error) {
	if patch.Empty() {
		return s.GetConferenceBySlug(ctx, slug)
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.LocationAddress != nil {
		set("location_address", *patch.LocationAddress)
	}
	if patch.Timezone != nil {
		set("timezone", *patch.Timezone)
	}
	if patch.DirectionsHTML != nil {
		set("directions_html", *patch.DirectionsHTML)
	}
	if patch.LogoURL != nil {
		set("logo_url", *patch.LogoURL)
	}
	if patch.FaviconURL != nil {
		set("favicon_url", *patch.FaviconURL)
	}
	if patch.PrimaryColor != nil {
		set("primary_color", *patch.PrimaryColor)
	}
	if patch.AccentColor != nil {
		set("accent_color", *patch.AccentColor)
	}
	if patch.IsActive != nil {
		set("is_active", *patch.IsActive)
	}
	args = append(args, slug)
	query := fmt.Sprintf(`UPDATE conferences SET %s WHERE slug = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), conferenceColumns)

	return run(ctx, s, "update conference", func(ctx context.Context) (*domain.Conference, error) {
		c := &domain.Conference{}
		if err := s.db.GetContext(ctx, c, query, args...); err != nil {
			return nil, notFound(err)
		}
		return c, nil
	})
}
