package domain

import "context"

// Storage is the full conference-scoped store.
type Storage interface {
	ConferenceRepository
	UserRepository
	SessionRepository
	VendorRepository
	PrizeRepository
	VenueRepository
	BookmarkRepository
	SurveyRepository
	HealthChecker
	SeedDatabase(ctx context.Context)
}

// HealthChecker probes the backing store.
type HealthChecker interface {
	// CheckConnection reports reachability; it never returns an error.
	CheckConnection(ctx context.Context) bool
}
