package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

const (
	doorPrizeColumns      = `id, conference_id, badge_number, call_sign, prize_name, awarded_at, claimed`
	thuntingWinnerColumns = `id, conference_id, rank, call_sign, completion_time, hunt_number, prize`
	thuntingSlotColumns   = `id, conference_id, hunt_number, start_time, location, difficulty, registration_open`
)

// ListDoorPrizes returns the most recent drawing first.
func (s *Storage) ListDoorPrizes(ctx context.Context, conferenceID string) ([]*domain.DoorPrize, error) {
	w := scoped(conferenceID)
	query := `SELECT ` + doorPrizeColumns + ` FROM door_prizes` + w.String() + ` ORDER BY awarded_at DESC`
	return run(ctx, s, "list door prizes", func(ctx context.Context) ([]*domain.DoorPrize, error) {
		out := []*domain.DoorPrize{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// AddDoorPrize records a drawing. A zero Timestamp means now.
func (s *Storage) AddDoorPrize(ctx context.Context, p *domain.DoorPrize) error {
	if p.Timestamp.IsZero() {
		p.Timestamp = s.now().UTC()
	}
	return exec(ctx, s, "add door prize", func(ctx context.Context) error {
		return insertDoorPrize(ctx, s.db, p)
	})
}

func insertDoorPrize(ctx context.Context, q queryer, p *domain.DoorPrize) error {
	query := `
		INSERT INTO door_prizes (conference_id, badge_number, call_sign, prize_name, awarded_at, claimed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, p.ConferenceID, p.BadgeNumber, p.CallSign, p.PrizeName, p.Timestamp, p.Claimed).Scan(&p.ID)
}

// ListTHuntingWinners returns winners by rank, first place first.
func (s *Storage) ListTHuntingWinners(ctx context.Context, conferenceID string) ([]*domain.THuntingWinner, error) {
	w := scoped(conferenceID)
	query := `SELECT ` + thuntingWinnerColumns + ` FROM thunting_winners` + w.String() + ` ORDER BY rank ASC`
	return run(ctx, s, "list thunting winners", func(ctx context.Context) ([]*domain.THuntingWinner, error) {
		out := []*domain.THuntingWinner{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (s *Storage) AddTHuntingWinner(ctx context.Context, winner *domain.THuntingWinner) error {
	return exec(ctx, s, "add thunting winner", func(ctx context.Context) error {
		return insertTHuntingWinner(ctx, s.db, winner)
	})
}

func insertTHuntingWinner(ctx context.Context, q queryer, w *domain.THuntingWinner) error {
	query := `
		INSERT INTO thunting_winners (conference_id, rank, call_sign, completion_time, hunt_number, prize)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, w.ConferenceID, w.Rank, w.CallSign, w.CompletionTime, w.HuntNumber, w.Prize).Scan(&w.ID)
}

// ListTHuntingSchedule returns hunts in hunt-number order.
func (s *Storage) ListTHuntingSchedule(ctx context.Context, conferenceID string) ([]*domain.THuntingSchedule, error) {
	w := scoped(conferenceID)
	query := `SELECT ` + thuntingSlotColumns + ` FROM thunting_schedules` + w.String() + ` ORDER BY hunt_number ASC`
	return run(ctx, s, "list thunting schedule", func(ctx context.Context) ([]*domain.THuntingSchedule, error) {
		out := []*domain.THuntingSchedule{}
		if err := s.db.SelectContext(ctx, &out, query, w.args...); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func insertTHuntingSlot(ctx context.Context, q queryer, slot *domain.THuntingSchedule) error {
	query := `
		INSERT INTO thunting_schedules (conference_id, hunt_number, start_time, location, difficulty, registration_open)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return q.QueryRowxContext(ctx, query, slot.ConferenceID, slot.HuntNumber, slot.StartTime, slot.Location, slot.Difficulty, slot.RegistrationOpen).Scan(&slot.ID)
}
