package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

func (s *Storage) ListRadioContacts(ctx context.Context, conferenceID string) ([]*domain.RadioContact, error) {
	w := scoped(conferenceID)
	query := `SELECT id, conference_id, type, frequency, label, notes FROM radio_contacts` + w.String() + ` ORDER BY created_at, id`
	return run(ctx, s, "list radio contacts", func(ctx context.Context) ([]*domain.RadioContact, error) {
		out := []*domain.RadioContact{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (s *Storage) ListVenueInfo(ctx context.Context, conferenceID string) ([]*domain.VenueInfo, error) {
	w := scoped(conferenceID)
	query := `SELECT id, conference_id, category, title, details, hours FROM venue_info` + w.String() + ` ORDER BY created_at, id`
	return run(ctx, s, "list venue info", func(ctx context.Context) ([]*domain.VenueInfo, error) {
		out := []*domain.VenueInfo{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// ListConferenceImages filters by imageType when it is non-empty.
func (s *Storage) ListConferenceImages(ctx context.Context, conferenceID, imageType string) ([]*domain.ConferenceImage, error) {
	w := scoped(conferenceID)
	w.eqIf("type", imageType)
	query := `SELECT id, conference_id, type, url, alt_text, sort_order FROM conference_images` + w.String() + ` ORDER BY sort_order, id`
	return run(ctx, s, "list conference images", func(ctx context.Context) ([]*domain.ConferenceImage, error) {
		out := []*domain.ConferenceImage{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func insertRadioContact(ctx context.Context, q queryer, r *domain.RadioContact) error {
	query := `
		INSERT INTO radio_contacts (conference_id, type, frequency, label, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, r.ConferenceID, r.Type, r.Frequency, r.Label, r.Notes).Scan(&r.ID)
}

func insertVenueInfo(ctx context.Context, q queryer, v *domain.VenueInfo) error {
	query := `
		INSERT INTO venue_info (conference_id, category, title, details, hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, v.ConferenceID, v.Category, v.Title, v.Details, v.Hours).Scan(&v.ID)
}

func insertConferenceImage(ctx context.Context, q queryer, img *domain.ConferenceImage) error {
	query := `
		INSERT INTO conference_images (conference_id, type, url, alt_text, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, img.ConferenceID, img.Type, img.URL, img.AltText, img.SortOrder).Scan(&img.ID)
}
