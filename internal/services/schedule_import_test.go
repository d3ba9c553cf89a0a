package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confcompanion/internal/domain"
)

func feedTime(s string) *domain.FeedTime {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return &domain.FeedTime{Time: t}
}

func sampleFeed() *domain.SessionizeFeed {
	desc := "Intro to fox hunting"
	room := 10
	return &domain.SessionizeFeed{
		Sessions: []domain.FeedSession{
			{
				ID:            "1001",
				Title:         " Fox Hunting 101 ",
				Description:   &desc,
				StartsAt:      feedTime("2025-10-10T14:00:00"),
				EndsAt:        feedTime("2025-10-10T14:50:00"),
				Speakers:      []string{"sp1", "sp2"},
				CategoryItems: []int{7},
				RoomID:        &room,
			},
			{ID: "1002", Title: "Lunch", StartsAt: feedTime("2025-10-11T12:00:00"), IsServiceSession: true},
			{ID: "1003", Title: "Unscheduled"},
		},
		Speakers: []domain.FeedSpeaker{
			{ID: "sp1", FullName: "Joe Walsh, WB6ACU", Bio: "Rock and radio"},
			{ID: "sp2", FullName: "Gordon West, WB6NOA"},
		},
		Rooms:      []domain.FeedRoom{{ID: 10, Name: "Salon E"}},
		Categories: []domain.FeedCategory{{ID: 1, Title: "Format", Items: []domain.FeedCategoryItem{{ID: 7, Name: "Forum"}}}},
	}
}

func TestSessionsFromFeed(t *testing.T) {
	got := sessionsFromFeed(sampleFeed())
	require.Len(t, got, 2)

	s := got[0]
	assert.Equal(t, "1001", *s.ExternalID)
	assert.Equal(t, "Fox Hunting 101", s.Title)
	assert.Equal(t, "friday", s.Day)
	assert.Equal(t, "02:00 pm", s.StartTime)
	assert.Equal(t, "02:50 pm", s.EndTime)
	assert.Equal(t, "Salon E", s.Room)
	assert.Equal(t, "forum", s.Category)
	assert.Equal(t, "Joe Walsh, WB6ACU, Gordon West, WB6NOA", s.Speaker)
	assert.Equal(t, "Rock and radio", *s.SpeakerBio)
	assert.Equal(t, "Intro to fox hunting", *s.Abstract)

	lunch := got[1]
	assert.Equal(t, "saturday", lunch.Day)
	assert.Equal(t, "12:00 pm", lunch.StartTime)
	assert.Empty(t, lunch.EndTime)
	assert.Equal(t, defaultImportCategory, lunch.Category)
	assert.Nil(t, lunch.SpeakerBio)
}

func TestScheduleImportService_ImportSessionize(t *testing.T) {
	sessions := newFakeSessionRepo()
	fetcher := &fakeFetcher{feed: sampleFeed()}
	conferences := NewConferenceService(newFakeConferenceRepo(pacificon()), newFakeCache(), discardLogger, time.Second)
	svc := NewScheduleImportService(conferences, sessions, fetcher, discardLogger, time.Second)

	n, err := svc.ImportSessionize(context.Background(), "pacificon-2025", " abc123 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abc123", fetcher.gotID)
	assert.Equal(t, "conf-1", sessions.importConf)
	assert.Len(t, sessions.imported, 2)
}

func TestScheduleImportService_Errors(t *testing.T) {
	conferences := NewConferenceService(newFakeConferenceRepo(pacificon()), newFakeCache(), discardLogger, time.Second)

	svc := NewScheduleImportService(conferences, newFakeSessionRepo(), &fakeFetcher{feed: sampleFeed()}, discardLogger, time.Second)
	_, err := svc.ImportSessionize(context.Background(), "pacificon-2025", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ImportSessionize(context.Background(), "unknown", "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	fetchErr := errors.New("sessionize returned 404")
	svc = NewScheduleImportService(conferences, newFakeSessionRepo(), &fakeFetcher{err: fetchErr}, discardLogger, time.Second)
	_, err = svc.ImportSessionize(context.Background(), "pacificon-2025", "abc")
	assert.ErrorIs(t, err, fetchErr)

	repo := newFakeSessionRepo()
	repo.err = connErr
	svc = NewScheduleImportService(conferences, repo, &fakeFetcher{feed: sampleFeed()}, discardLogger, time.Second)
	_, err = svc.ImportSessionize(context.Background(), "pacificon-2025", "abc")
	assert.True(t, domain.IsConnectionError(err))
}
