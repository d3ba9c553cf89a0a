package postgres

import (
	"context"
	"errors"

	"confcompanion/internal/domain"
)

const userColumns = `id, email, first_name, last_name, profile_image_url, call_sign, badge_number,
	license_class, is_registered, created_at, updated_at`

func (s *Storage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return run(ctx, s, "get user", func(ctx context.Context) (*domain.User, error) {
		u := &domain.User{}
		if err := s.db.GetContext(ctx, u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
			return nil, notFound(err)
		}
		return u, nil
	})
}

// UpsertUser inserts u or refreshes its identity fields. Attendee-edited
// fields are never touched.
func (s *Storage) UpsertUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url, updated_at = now()
		RETURNING ` + userColumns
	return run(ctx, s, "upsert user", func(ctx context.Context) (*domain.User, error) {
		out := &domain.User{}
		if err := s.db.GetContext(ctx, out, query, u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// GetUserProfile returns the "Unknown User" profile when the user does not exist.
func (s *Storage) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	u, err := s.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ProfileFromUser(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return domain.ProfileFromUser(u), nil
}

// UpdateUserProfile applies the non-nil patch fields, creating the user row if needed.
func (s *Storage) UpdateUserProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	query := `
		INSERT INTO users (id, call_sign, badge_number, license_class, is_registered)
		VALUES ($1, $2, $3, $4, COALESCE($5, FALSE))
		ON CONFLICT (id) DO UPDATE
		SET call_sign = COALESCE($2, users.call_sign),
			badge_number = COALESCE($3, users.badge_number),
			license_class = COALESCE($4, users.license_class),
			is_registered = COALESCE($5, users.is_registered),
			updated_at = now()
		RETURNING ` + userColumns
	return run(ctx, s, "update user profile", func(ctx context.Context) (*domain.UserProfile, error) {
		u := &domain.User{}
		if err := s.db.GetContext(ctx, u, query, userID, patch.CallSign, patch.BadgeNumber, patch.LicenseClass, patch.IsRegistered); err != nil {
			return nil, err
		}
		return domain.ProfileFromUser(u), nil
	})
}
