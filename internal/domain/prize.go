package domain

import (
	"context"
	"time"
)

// DoorPrize is a door-prize drawing result.
// swagger:model DoorPrize
type DoorPrize struct {
	ID           string    `json:"id" db:"id"`
	ConferenceID string    `json:"conferenceId" db:"conference_id"`
	BadgeNumber  string    `json:"badgeNumber" db:"badge_number"`
	CallSign     string    `json:"callSign" db:"call_sign"`
	PrizeName    string    `json:"prizeName" db:"prize_name"`
	Timestamp    time.Time `json:"timestamp" db:"awarded_at"`
	Claimed      bool      `json:"claimed" db:"claimed"`
}

// THuntingWinner is a placing in a transmitter hunt.
// swagger:model THuntingWinner
type THuntingWinner struct {
	ID             string  `json:"id" db:"id"`
	ConferenceID   string  `json:"conferenceId" db:"conference_id"`
	Rank           int     `json:"rank" db:"rank"`
	CallSign       string  `json:"callSign" db:"call_sign"`
	CompletionTime string  `json:"completionTime" db:"completion_time"`
	HuntNumber     int     `json:"huntNumber" db:"hunt_number"`
	Prize          *string `json:"prize,omitempty" db:"prize"`
}

// THuntingSchedule is one scheduled transmitter hunt.
// swagger:model THuntingSchedule
type THuntingSchedule struct {
	ID               string `json:"id" db:"id"`
	ConferenceID     string `json:"conferenceId" db:"conference_id"`
	HuntNumber       int    `json:"huntNumber" db:"hunt_number"`
	StartTime        string `json:"startTime" db:"start_time"`
	Location         string `json:"location" db:"location"`
	Difficulty       string `json:"difficulty" db:"difficulty"`
	RegistrationOpen bool   `json:"registrationOpen" db:"registration_open"`
}

// PrizeRepository defines storage for door prizes and T-hunting results.
type PrizeRepository interface {
	// ListDoorPrizes returns the most recent drawing first.
	ListDoorPrizes(ctx context.Context, conferenceID string) ([]*DoorPrize, error)
	AddDoorPrize(ctx context.Context, prize *DoorPrize) error
	// ListTHuntingWinners returns winners by rank, first place first.
	ListTHuntingWinners(ctx context.Context, conferenceID string) ([]*THuntingWinner, error)
	AddTHuntingWinner(ctx context.Context, winner *THuntingWinner) error
	ListTHuntingSchedule(ctx context.Context, conferenceID string) ([]*THuntingSchedule, error)
}
