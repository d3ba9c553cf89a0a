package domain

import (
	"context"
	"time"
)

// Bookmark marks a session as saved by a user within a conference.
type Bookmark struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	ConferenceID string    `json:"conferenceId" db:"conference_id"`
	SessionID    string    `json:"sessionId" db:"session_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// BookmarkRepository defines bookmark storage. AddBookmark and RemoveBookmark are idempotent.
type BookmarkRepository interface {
	// ListBookmarks returns the bookmarked session IDs.
	ListBookmarks(ctx context.Context, userID, conferenceID string) ([]string, error)
	AddBookmark(ctx context.Context, userID, conferenceID, sessionID string) error
	RemoveBookmark(ctx context.Context, userID, conferenceID, sessionID string) error
}
