package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

// ListBookmarks returns the user's bookmarked session IDs, oldest first.
func (s *Storage) ListBookmarks(ctx context.Context, userID, conferenceID string) ([]string, error) {
	w := &where{}
	w.eq("user_id", userID)
	w.eqIf("conference_id", conferenceID)
	query := `SELECT session_id FROM bookmarks` + w.String() + ` ORDER BY created_at`
	return run(ctx, s, "list bookmarks", func(ctx context.Context) ([]string, error) {
		out := []string{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// foreignKeyViolation is SQLSTATE 23503.
const foreignKeyViolation = "23503"

// AddBookmark inserts the bookmark unless an identical one already exists.
// The check and insert are not atomic; a concurrent duplicate is tolerated.
// A session or conference that does not exist yields domain.ErrNotFound.
func (s *Storage) AddBookmark(ctx context.Context, userID, conferenceID, sessionID string) error {
	return exec(ctx, s, "add bookmark", func(ctx context.Context) error {
		var exists bool
		check := `
			SELECT EXISTS (
				SELECT 1 FROM bookmarks WHERE user_id = $1 AND conference_id = $2 AND session_id = $3
			)
		`
		if err := s.db.GetContext(ctx, &exists, check, userID, conferenceID, sessionID); err != nil {
			return err
		}
		if exists {
			return nil
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO bookmarks (user_id, conference_id, session_id) VALUES ($1, $2, $3)`,
			userID, conferenceID, sessionID)
		if sqlState(err) == foreignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	})
}

// RemoveBookmark deletes the bookmark if present; a missing bookmark is not an error.
func (s *Storage) RemoveBookmark(ctx context.Context, userID, conferenceID, sessionID string) error {
	return exec(ctx, s, "remove bookmark", func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM bookmarks WHERE user_id = $1 AND conference_id = $2 AND session_id = $3`,
			userID, conferenceID, sessionID)
		return err
	})
}
