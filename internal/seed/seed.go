// Package seed holds the embedded baseline dataset used to populate an empty database.
package seed

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"confcompanion/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Session categories used by the programme.
const (
	CategoryForum = "forum"
	CategoryEvent = "event"
)

// Days is the display order of conference days.
var Days = []string{"friday", "saturday", "sunday"}

// Dataset is the parsed seed content.
type Dataset struct {
	Conference       conferenceSeed       `yaml:"conference"`
	Sessions         []sessionSeed        `yaml:"sessions"`
	Vendors          []vendorSeed         `yaml:"vendors"`
	RadioContacts    []radioContactSeed   `yaml:"radio_contacts"`
	VenueInfo        []venueInfoSeed      `yaml:"venue_info"`
	DoorPrizes       []doorPrizeSeed      `yaml:"door_prizes"`
	THuntingWinners  []thuntingWinnerSeed `yaml:"thunting_winners"`
	THuntingSchedule []thuntingSlotSeed   `yaml:"thunting_schedule"`
	Images           []imageSeed          `yaml:"images"`

	Programme Programme `yaml:"-"`
}

// Programme is the forum and event schedule, keyed by day.
type Programme struct {
	Forums map[string][]ForumSlot `yaml:"forums"`
	Events map[string][]EventItem `yaml:"events"`
}

// ForumSlot is a time range with the forums running in parallel during it.
type ForumSlot struct {
	Time     string      `yaml:"time"`
	Sessions []ForumItem `yaml:"sessions"`
}

type ForumItem struct {
	ID      string `yaml:"id"`
	Room    string `yaml:"room"`
	Title   string `yaml:"title"`
	Speaker string `yaml:"speaker"`
}

type EventItem struct {
	ID       string `yaml:"id"`
	Time     string `yaml:"time"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Note     string `yaml:"note"`
}

type conferenceSeed struct {
	Slug            string    `yaml:"slug"`
	Name            string    `yaml:"name"`
	Year            int       `yaml:"year"`
	Location        string    `yaml:"location"`
	StartDate       time.Time `yaml:"start_date"`
	EndDate         time.Time `yaml:"end_date"`
	Timezone        string    `yaml:"timezone"`
	Division        string    `yaml:"division"`
	GridSquare      string    `yaml:"grid_square"`
	GPS             string    `yaml:"gps"`
	LocationAddress string    `yaml:"location_address"`
	LogoURL         string    `yaml:"logo_url"`
	FaviconURL      string    `yaml:"favicon_url"`
	PrimaryColor    string    `yaml:"primary_color"`
	AccentColor     string    `yaml:"accent_color"`
}

type sessionSeed struct {
	Title      string `yaml:"title"`
	Speaker    string `yaml:"speaker"`
	SpeakerBio string `yaml:"speaker_bio"`
	Abstract   string `yaml:"abstract"`
	Day        string `yaml:"day"`
	StartTime  string `yaml:"start_time"`
	EndTime    string `yaml:"end_time"`
	Room       string `yaml:"room"`
	Category   string `yaml:"category"`
}

type vendorSeed struct {
	Name        string `yaml:"name"`
	BoothNumber string `yaml:"booth_number"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Website     string `yaml:"website"`
}

type radioContactSeed struct {
	Type      string `yaml:"type"`
	Frequency string `yaml:"frequency"`
	Label     string `yaml:"label"`
	Notes     string `yaml:"notes"`
}

type venueInfoSeed struct {
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Details  string `yaml:"details"`
	Hours    string `yaml:"hours"`
}

type doorPrizeSeed struct {
	BadgeNumber string        `yaml:"badge_number"`
	CallSign    string        `yaml:"call_sign"`
	PrizeName   string        `yaml:"prize_name"`
	AwardedAgo  time.Duration `yaml:"awarded_ago"`
	Claimed     bool          `yaml:"claimed"`
}

type thuntingWinnerSeed struct {
	Rank           int    `yaml:"rank"`
	CallSign       string `yaml:"call_sign"`
	CompletionTime string `yaml:"completion_time"`
	HuntNumber     int    `yaml:"hunt_number"`
	Prize          string `yaml:"prize"`
}

type thuntingSlotSeed struct {
	HuntNumber       int    `yaml:"hunt_number"`
	StartTime        string `yaml:"start_time"`
	Location         string `yaml:"location"`
	Difficulty       string `yaml:"difficulty"`
	RegistrationOpen bool   `yaml:"registration_open"`
}

type imageSeed struct {
	Type      string `yaml:"type"`
	URL       string `yaml:"url"`
	AltText   string `yaml:"alt_text"`
	SortOrder int    `yaml:"sort_order"`
}

// Load parses the embedded dataset.
func Load() (*Dataset, error) {
	var d Dataset
	if err := decode("data/conference.yaml", &d); err != nil {
		return nil, err
	}
	if err := decode("data/programme.yaml", &d.Programme); err != nil {
		return nil, err
	}
	if d.Conference.Slug == "" {
		return nil, fmt.Errorf("seed: conference slug is required")
	}
	return &d, nil
}

func decode(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", name, err)
	}
	if err := yaml.UnmarshalStrict(raw, out); err != nil {
		return fmt.Errorf("seed: parse %s: %w", name, err)
	}
	return nil
}

// ParseTimeRange splits "start - end" into its parts. Strings without a
// single " - " separator are returned whole as the start with an empty end.
func ParseTimeRange(s string) (start, end string) {
	parts := strings.Split(s, " - ")
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(s), ""
}

// ConferenceSlug is the slug of the baseline conference.
func (d *Dataset) ConferenceSlug() string { return d.Conference.Slug }

// NewConference returns the baseline conference, active.
func (d *Dataset) NewConference() *domain.Conference {
	c := d.Conference
	return &domain.Conference{
		Slug:            c.Slug,
		Name:            c.Name,
		Year:            c.Year,
		Location:        c.Location,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Timezone:        c.Timezone,
		Division:        c.Division,
		GridSquare:      c.GridSquare,
		GPS:             c.GPS,
		LocationAddress: c.LocationAddress,
		LogoURL:         optional(c.LogoURL),
		FaviconURL:      optional(c.FaviconURL),
		PrimaryColor:    optional(c.PrimaryColor),
		AccentColor:     optional(c.AccentColor),
		IsActive:        true,
	}
}

// SampleSessions returns the sample talks for conferenceID.
func (d *Dataset) SampleSessions(conferenceID string) []*domain.Session {
	out := make([]*domain.Session, 0, len(d.Sessions))
	for _, s := range d.Sessions {
		out = append(out, &domain.Session{
			ConferenceID: conferenceID,
			Title:        s.Title,
			Speaker:      s.Speaker,
			SpeakerBio:   optional(s.SpeakerBio),
			Abstract:     optional(s.Abstract),
			Day:          s.Day,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			Room:         s.Room,
			Category:     s.Category,
		})
	}
	return out
}

func (d *Dataset) SampleVendors(conferenceID string) []*domain.Vendor {
	out := make([]*domain.Vendor, 0, len(d.Vendors))
	for _, v := range d.Vendors {
		out = append(out, &domain.Vendor{
			ConferenceID: conferenceID,
			Name:         v.Name,
			BoothNumber:  v.BoothNumber,
			Category:     v.Category,
			Description:  v.Description,
			Website:      optional(v.Website),
		})
	}
	return out
}

func (d *Dataset) SampleRadioContacts(conferenceID string) []*domain.RadioContact {
	out := make([]*domain.RadioContact, 0, len(d.RadioContacts))
	for _, r := range d.RadioContacts {
		out = append(out, &domain.RadioContact{
			ConferenceID: conferenceID,
			Type:         r.Type,
			Frequency:    r.Frequency,
			Label:        r.Label,
			Notes:        optional(r.Notes),
		})
	}
	return out
}

func (d *Dataset) SampleVenueInfo(conferenceID string) []*domain.VenueInfo {
	out := make([]*domain.VenueInfo, 0, len(d.VenueInfo))
	for _, v := range d.VenueInfo {
		out = append(out, &domain.VenueInfo{
			ConferenceID: conferenceID,
			Category:     v.Category,
			Title:        v.Title,
			Details:      v.Details,
			Hours:        optional(v.Hours),
		})
	}
	return out
}

// SampleDoorPrizes stamps each prize relative to now.
func (d *Dataset) SampleDoorPrizes(conferenceID string, now time.Time) []*domain.DoorPrize {
	out := make([]*domain.DoorPrize, 0, len(d.DoorPrizes))
	for _, p := range d.DoorPrizes {
		out = append(out, &domain.DoorPrize{
			ConferenceID: conferenceID,
			BadgeNumber:  p.BadgeNumber,
			CallSign:     p.CallSign,
			PrizeName:    p.PrizeName,
			Timestamp:    now.Add(-p.AwardedAgo),
			Claimed:      p.Claimed,
		})
	}
	return out
}

func (d *Dataset) SampleTHuntingWinners(conferenceID string) []*domain.THuntingWinner {
	out := make([]*domain.THuntingWinner, 0, len(d.THuntingWinners))
	for _, w := range d.THuntingWinners {
		out = append(out, &domain.THuntingWinner{
			ConferenceID:   conferenceID,
			Rank:           w.Rank,
			CallSign:       w.CallSign,
			CompletionTime: w.CompletionTime,
			HuntNumber:     w.HuntNumber,
			Prize:          optional(w.Prize),
		})
	}
	return out
}

func (d *Dataset) SampleTHuntingSchedule(conferenceID string) []*domain.THuntingSchedule {
	out := make([]*domain.THuntingSchedule, 0, len(d.THuntingSchedule))
	for _, s := range d.THuntingSchedule {
		out = append(out, &domain.THuntingSchedule{
			ConferenceID:     conferenceID,
			HuntNumber:       s.HuntNumber,
			StartTime:        s.StartTime,
			Location:         s.Location,
			Difficulty:       s.Difficulty,
			RegistrationOpen: s.RegistrationOpen,
		})
	}
	return out
}

func (d *Dataset) SampleImages(conferenceID string) []*domain.ConferenceImage {
	out := make([]*domain.ConferenceImage, 0, len(d.Images))
	for _, img := range d.Images {
		out = append(out, &domain.ConferenceImage{
			ConferenceID: conferenceID,
			Type:         img.Type,
			URL:          img.URL,
			AltText:      img.AltText,
			SortOrder:    img.SortOrder,
		})
	}
	return out
}

// ProgrammeSessions flattens the programme into sessions: forums first, then
// events, each in day order. Seed item IDs become external IDs.
func (d *Dataset) ProgrammeSessions(conferenceID string) []*domain.Session {
	var out []*domain.Session
	for _, day := range dayKeys(d.Programme.Forums) {
		for _, slot := range d.Programme.Forums[day] {
			start, end := ParseTimeRange(slot.Time)
			for _, f := range slot.Sessions {
				out = append(out, &domain.Session{
					ConferenceID: conferenceID,
					ExternalID:   optional(f.ID),
					Title:        f.Title,
					Speaker:      f.Speaker,
					Day:          day,
					StartTime:    start,
					EndTime:      end,
					Room:         f.Room,
					Category:     CategoryForum,
				})
			}
		}
	}
	for _, day := range dayKeys(d.Programme.Events) {
		for _, e := range d.Programme.Events[day] {
			start, end := ParseTimeRange(e.Time)
			out = append(out, &domain.Session{
				ConferenceID: conferenceID,
				ExternalID:   optional(e.ID),
				Title:        e.Title,
				Day:          day,
				StartTime:    start,
				EndTime:      end,
				Room:         e.Location,
				Category:     CategoryEvent,
				Abstract:     optional(e.Note),
			})
		}
	}
	return out
}

// dayKeys returns the map's keys in Days order, unknown days last and sorted.
func dayKeys[T any](m map[string]T) []string {
	rank := make(map[string]int, len(Days))
	for i, d := range Days {
		rank[d] = i
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := rank[keys[i]]
		rj, jok := rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
