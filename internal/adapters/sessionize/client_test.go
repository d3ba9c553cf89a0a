package sessionize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allView = `{
  "sessions": [
    {"id": "101", "title": "Keynote", "description": "Opening", "startsAt": "2025-10-11T09:00:00",
     "endsAt": "2025-10-11T10:00:00", "speakers": ["sp-1"], "categoryItems": [7], "roomId": 3}
  ],
  "speakers": [{"id": "sp-1", "fullName": "Ada Lovelace", "bio": "Mathematician", "tagLine": "W6ADA"}],
  "rooms": [{"id": 3, "name": "Salon E"}],
  "categories": [{"id": 1, "title": "Format", "items": [{"id": 7, "name": "Talk"}]}]
}`

func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(allView))
	}))
	defer srv.Close()

	feed, err := NewHTTPFetcher(srv.Client(), srv.URL+"/").Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "/abc123/view/All", gotPath)
	require.Len(t, feed.Sessions, 1)
	assert.Equal(t, "Keynote", feed.Sessions[0].Title)
	require.NotNil(t, feed.Sessions[0].RoomID)
	assert.Equal(t, 3, *feed.Sessions[0].RoomID)
	require.NotNil(t, feed.Sessions[0].StartsAt)
	assert.Equal(t, 9, feed.Sessions[0].StartsAt.Hour())
	assert.Equal(t, "Ada Lovelace", feed.Speakers[0].FullName)
	assert.Equal(t, "Talk", feed.Categories[0].Items[0].Name)
}

func TestHTTPFetcher_Errors(t *testing.T) {
	t.Run("non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewHTTPFetcher(srv.Client(), srv.URL).Fetch(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("bad json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"sessions": [`))
		}))
		defer srv.Close()

		_, err := NewHTTPFetcher(srv.Client(), srv.URL).Fetch(context.Background(), "abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}
