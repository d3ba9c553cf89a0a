package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

const sessionColumns = `id, conference_id, external_id, title, speaker, speaker_bio, abstract, day,
	start_time, end_time, room, category, created_at`

// ListSessions returns sessions in insertion order, optionally filtered.
func (s *Storage) ListSessions(ctx context.Context, conferenceID string, filter domain.SessionFilter) ([]*domain.Session, error) {
	w := scoped(conferenceID)
	w.eqIf("category", filter.Category)
	w.eqIf("day", filter.Day)
	query := `SELECT ` + sessionColumns + ` FROM sessions` + w.String() + ` ORDER BY created_at, id`

	return run(ctx, s, "list sessions", func(ctx context.Context) ([]*domain.Session, error) {
		out := []*domain.Session{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (s *Storage) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	return run(ctx, s, "get session", func(ctx context.Context) (*domain.Session, error) {
		out := &domain.Session{}
		if err := s.db.GetContext(ctx, out, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id); err != nil {
			return nil, notFound(err)
		}
		return out, nil
	})
}

// UpsertImportedSessions writes sessions keyed by external ID in one
// transaction and returns how many rows were written.
func (s *Storage) UpsertImportedSessions(ctx context.Context, conferenceID string, sessions []*domain.Session) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}
	return run(ctx, s, "import sessions", func(ctx context.Context) (int, error) {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return 0, err
		}
		defer tx.Rollback()

		n := 0
		for _, sess := range sessions {
			sess.ConferenceID = conferenceID
			if err := upsertSession(ctx, tx, sess); err != nil {
				return 0, err
			}
			n++
		}
		if err := tx.Commit(); err != nil {
			return 0, err
		}
		return n, nil
	})
}

const upsertSessionQuery = `
	INSERT INTO sessions (conference_id, external_id, title, speaker, speaker_bio, abstract, day,
		start_time, end_time, room, category)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (conference_id, external_id) DO UPDATE
	SET title = EXCLUDED.title, speaker = EXCLUDED.speaker, speaker_bio = EXCLUDED.speaker_bio,
		abstract = EXCLUDED.abstract, day = EXCLUDED.day, start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time, room = EXCLUDED.room, category = EXCLUDED.category
	RETURNING id
`

func upsertSession(ctx context.Context, q queryer, sess *domain.Session) error {
	return q.QueryRowxContext(ctx, upsertSessionQuery,
		sess.ConferenceID, sess.ExternalID, sess.Title, sess.Speaker, sess.SpeakerBio, sess.Abstract,
		sess.Day, sess.StartTime, sess.EndTime, sess.Room, sess.Category,
	).Scan(&sess.ID)
}
