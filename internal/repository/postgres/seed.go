package postgres

import (
	"context"
	"errors"

	"confcompanion/internal/domain"
	"confcompanion/internal/seed"
)

// SeedDatabase populates an empty database with the baseline dataset.
// Failures are logged and never returned.
func (s *Storage) SeedDatabase(ctx context.Context) {
	if err := s.seed(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to seed database (non-fatal)", "err", err)
	}
}

// seed runs three phases, each guarded by its own emptiness check:
// the conference, the sample reference data, and the forum/event programme.
func (s *Storage) seed(ctx context.Context) error {
	data, err := seed.Load()
	if err != nil {
		return err
	}

	var errs []error
	if err := s.seedConference(ctx, data); err != nil {
		errs = append(errs, err)
	}

	conferenceID, err := s.conferenceIDBySlug(ctx, data.ConferenceSlug())
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "no conference found for seeding sessions", "slug", data.ConferenceSlug())
		return errors.Join(errs...)
	}
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	if err := s.seedReferenceData(ctx, data, conferenceID); err != nil {
		errs = append(errs, err)
	}
	if err := s.seedProgramme(ctx, data, conferenceID); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Storage) seedConference(ctx context.Context, data *seed.Dataset) error {
	return exec(ctx, s, "seed conference", func(ctx context.Context) error {
		var exists bool
		if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM conferences)`); err != nil {
			return err
		}
		if exists {
			return nil
		}
		c := data.NewConference()
		if err := insertConference(ctx, s.db, c); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "seeded conference", "slug", c.Slug, "id", c.ID)
		return nil
	})
}

func (s *Storage) conferenceIDBySlug(ctx context.Context, slug string) (string, error) {
	return run(ctx, s, "seed lookup conference", func(ctx context.Context) (string, error) {
		var id string
		if err := s.db.GetContext(ctx, &id, `SELECT id FROM conferences WHERE slug = $1`, slug); err != nil {
			return "", notFound(err)
		}
		return id, nil
	})
}

// seedReferenceData runs only while the sessions table is empty.
func (s *Storage) seedReferenceData(ctx context.Context, data *seed.Dataset, conferenceID string) error {
	return exec(ctx, s, "seed reference data", func(ctx context.Context) error {
		var exists bool
		if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM sessions)`); err != nil {
			return err
		}
		if exists {
			return nil
		}

		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		for _, sess := range data.SampleSessions(conferenceID) {
			if err := upsertSession(ctx, tx, sess); err != nil {
				return err
			}
		}
		for _, v := range data.SampleVendors(conferenceID) {
			if err := insertVendor(ctx, tx, v); err != nil {
				return err
			}
		}
		for _, r := range data.SampleRadioContacts(conferenceID) {
			if err := insertRadioContact(ctx, tx, r); err != nil {
				return err
			}
		}
		for _, v := range data.SampleVenueInfo(conferenceID) {
			if err := insertVenueInfo(ctx, tx, v); err != nil {
				return err
			}
		}
		for _, p := range data.SampleDoorPrizes(conferenceID, s.now().UTC()) {
			if err := insertDoorPrize(ctx, tx, p); err != nil {
				return err
			}
		}
		for _, w := range data.SampleTHuntingWinners(conferenceID) {
			if err := insertTHuntingWinner(ctx, tx, w); err != nil {
				return err
			}
		}
		for _, slot := range data.SampleTHuntingSchedule(conferenceID) {
			if err := insertTHuntingSlot(ctx, tx, slot); err != nil {
				return err
			}
		}
		for _, img := range data.SampleImages(conferenceID) {
			if err := insertConferenceImage(ctx, tx, img); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "seeded reference data", "conference_id", conferenceID)
		return nil
	})
}

// seedProgramme runs only while the conference has no forum or event sessions.
func (s *Storage) seedProgramme(ctx context.Context, data *seed.Dataset, conferenceID string) error {
	return exec(ctx, s, "seed programme", func(ctx context.Context) error {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM sessions WHERE conference_id = $1 AND category IN ($2, $3))`
		if err := s.db.GetContext(ctx, &exists, check, conferenceID, seed.CategoryForum, seed.CategoryEvent); err != nil {
			return err
		}
		if exists {
			s.logger.InfoContext(ctx, "programme already seeded, skipping", "conference_id", conferenceID)
			return nil
		}

		sessions := data.ProgrammeSessions(conferenceID)
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		for _, sess := range sessions {
			if err := upsertSession(ctx, tx, sess); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "seeded programme", "conference_id", conferenceID, "items", len(sessions))
		return nil
	})
}
