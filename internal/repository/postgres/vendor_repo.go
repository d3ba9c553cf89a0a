package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

const vendorColumns = `id, conference_id, name, booth_number, category, description, website`

func (s *Storage) ListVendors(ctx context.Context, conferenceID string) ([]*domain.Vendor, error) {
	w := scoped(conferenceID)
	query := `SELECT ` + vendorColumns + ` FROM vendors` + w.String() + ` ORDER BY created_at, id`
	return run(ctx, s, "list vendors", func(ctx context.Context) ([]*domain.Vendor, error) {
		out := []*domain.Vendor{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (s *Storage) GetVendorByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return run(ctx, s, "get vendor", func(ctx context.Context) (*domain.Vendor, error) {
		out := &domain.Vendor{}
		if err := s.db.GetContext(ctx, out, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id); err != nil {
			return nil, notFound(err)
		}
		return out, nil
	})
}

func insertVendor(ctx context.Context, q queryer, v *domain.Vendor) error {
	query := `
		INSERT INTO vendors (conference_id, name, booth_number, category, description, website)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, v.ConferenceID, v.Name, v.BoothNumber, v.Category, v.Description, v.Website).Scan(&v.ID)
}
