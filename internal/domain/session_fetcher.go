package domain

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

// SessionFetcher fetches a Sessionize schedule feed (or a test double).
type SessionFetcher interface {
	Fetch(ctx context.Context, sessionizeID string) (*SessionizeFeed, error)
}

// SessionizeFeed is the Sessionize "All" view.
type SessionizeFeed struct {
	Sessions   []FeedSession  `json:"sessions"`
	Speakers   []FeedSpeaker  `json:"speakers"`
	Rooms      []FeedRoom     `json:"rooms"`
	Categories []FeedCategory `json:"categories"`
}

type FeedRoom struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type FeedSession struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	StartsAt         *FeedTime `json:"startsAt"`
	EndsAt           *FeedTime `json:"endsAt"`
	Speakers         []string  `json:"speakers"`
	CategoryItems    []int     `json:"categoryItems"`
	RoomID           *int      `json:"roomId"`
	IsServiceSession bool      `json:"isServiceSession"`
}

type FeedSpeaker struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`
	TagLine  string `json:"tagLine"`
}

type FeedCategoryItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FeedCategory is a category group, e.g. "Session format" or "Track".
type FeedCategory struct {
	ID    int                `json:"id"`
	Title string             `json:"title"`
	Items []FeedCategoryItem `json:"items"`
}

// FeedTime is a Sessionize timestamp. Sessionize sends local wall-clock
// times without an offset; RFC 3339 is accepted too.
type FeedTime struct {
	time.Time
}

func (t *FeedTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid sessionize time %q", s)
}
