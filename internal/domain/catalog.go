package domain

import "context"

// CatalogService serves conference-scoped reference data. An empty slug
// selects the unscoped listing across all conferences.
type CatalogService interface {
	ListSessions(ctx context.Context, conferenceSlug string, filter SessionFilter) ([]*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	ListVendors(ctx context.Context, conferenceSlug string) ([]*Vendor, error)
	GetVendor(ctx context.Context, id string) (*Vendor, error)
	ListDoorPrizes(ctx context.Context, conferenceSlug string) ([]*DoorPrize, error)
	AddDoorPrize(ctx context.Context, conferenceSlug string, prize *DoorPrize) (*DoorPrize, error)
	ListTHuntingWinners(ctx context.Context, conferenceSlug string) ([]*THuntingWinner, error)
	AddTHuntingWinner(ctx context.Context, conferenceSlug string, winner *THuntingWinner) (*THuntingWinner, error)
	ListTHuntingSchedule(ctx context.Context, conferenceSlug string) ([]*THuntingSchedule, error)
	ListRadioContacts(ctx context.Context, conferenceSlug string) ([]*RadioContact, error)
	ListVenueInfo(ctx context.Context, conferenceSlug string) ([]*VenueInfo, error)
	ListConferenceImages(ctx context.Context, conferenceSlug, imageType string) ([]*ConferenceImage, error)
}
