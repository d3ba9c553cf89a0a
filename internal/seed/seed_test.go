package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end string
	}{
		{"09:00 am - 05:00 pm", "09:00 am", "05:00 pm"},
		{"1:00 pm - 1:50 pm", "1:00 pm", "1:50 pm"},
		{"12:00 pm Fri - 12:00 pm Sun", "12:00 pm Fri", "12:00 pm Sun"},
		{"After MDARC meeting", "After MDARC meeting", ""},
		{" 7:00 pm ", "7:00 pm", ""},
		{"a - b - c", "a - b - c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end := ParseTimeRange(tt.in)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	c := d.NewConference()
	assert.Equal(t, "pacificon-2025", c.Slug)
	assert.Equal(t, "Pacificon", c.Name)
	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, "CM87us", c.GridSquare)
	assert.True(t, c.IsActive)
	require.NotNil(t, c.PrimaryColor)
	assert.Equal(t, "#1e40af", *c.PrimaryColor)
	assert.Equal(t, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC), c.StartDate.UTC())

	assert.Len(t, d.SampleSessions("c1"), 6)
	assert.Len(t, d.SampleVendors("c1"), 3)
	assert.Len(t, d.SampleRadioContacts("c1"), 4)
	assert.Len(t, d.SampleVenueInfo("c1"), 4)
	assert.Len(t, d.SampleTHuntingWinners("c1"), 4)
	assert.Len(t, d.SampleTHuntingSchedule("c1"), 3)
	assert.Len(t, d.SampleImages("c1"), 2)
}

func TestSampleDoorPrizes_RelativeToNow(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	now := time.Date(2025, 10, 11, 12, 0, 0, 0, time.UTC)
	prizes := d.SampleDoorPrizes("c1", now)
	require.Len(t, prizes, 3)
	assert.Equal(t, now.Add(-time.Hour), prizes[0].Timestamp)
	assert.Equal(t, now.Add(-2*time.Hour), prizes[1].Timestamp)
	assert.True(t, prizes[1].Claimed)
	assert.Equal(t, now.Add(-3*time.Hour), prizes[2].Timestamp)
}

func TestProgrammeSessions(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	sessions := d.ProgrammeSessions("c1")
	var forums, events int
	for _, s := range sessions {
		assert.Equal(t, "c1", s.ConferenceID)
		require.NotNil(t, s.ExternalID)
		switch s.Category {
		case CategoryForum:
			forums++
		case CategoryEvent:
			events++
		default:
			t.Fatalf("unexpected category %q", s.Category)
		}
	}
	assert.Equal(t, 41, forums)
	assert.Equal(t, 49, events)

	first := sessions[0]
	assert.Equal(t, "fri-f1", *first.ExternalID)
	assert.Equal(t, "friday", first.Day)
	assert.Equal(t, "09:00 am", first.StartTime)
	assert.Equal(t, "05:00 pm", first.EndTime)
	assert.Equal(t, "", first.Speaker)

	var drawing, station bool
	for _, s := range sessions {
		if s.ExternalID != nil && *s.ExternalID == "fri-e12" {
			drawing = true
			assert.Equal(t, "After MDARC meeting", s.StartTime)
			assert.Equal(t, "", s.EndTime)
		}
		if s.ExternalID != nil && *s.ExternalID == "fri-e4" {
			station = true
			require.NotNil(t, s.Abstract)
			assert.Equal(t, "Hosted by PAARA", *s.Abstract)
		}
	}
	assert.True(t, drawing)
	assert.True(t, station)
}

func TestDayKeys(t *testing.T) {
	m := map[string]int{"sunday": 1, "monday": 2, "friday": 3, "saturday": 4}
	assert.Equal(t, []string{"friday", "saturday", "sunday", "monday"}, dayKeys(m))
}
