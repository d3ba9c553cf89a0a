package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "confcompanion/docs" // registers the Swagger document
	"confcompanion/internal/delivery/http/controllers"
	"confcompanion/internal/delivery/http/middleware"
	"confcompanion/internal/domain"
)

// RouterDeps holds everything the router wires into handlers.
type RouterDeps struct {
	Logger         *slog.Logger
	Conferences    domain.ConferenceService
	Catalog        domain.CatalogService
	Attendee       domain.AttendeeService
	Importer       domain.ScheduleImportService
	Health         domain.HealthChecker
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and
// wraps it in metrics, request logging and CORS.
func NewRouter(d RouterDeps) http.Handler {
	conference := controllers.NewConferenceController(d.Logger, d.Conferences)
	schedule := controllers.NewScheduleController(d.Logger, d.Catalog, d.Importer)
	vendor := controllers.NewVendorController(d.Logger, d.Catalog)
	prize := controllers.NewPrizeController(d.Logger, d.Catalog)
	venue := controllers.NewVenueController(d.Logger, d.Catalog)
	attendee := controllers.NewAttendeeController(d.Logger, d.Attendee)
	auth := controllers.NewAuthController(d.Logger, d.Attendee)
	health := controllers.NewHealthController(d.Health)
	requireAuth := middleware.RequireAuth(d.Verifier, d.Logger)

	mux := http.NewServeMux()

	// Conferences
	mux.HandleFunc("GET /api/conferences", conference.ListConferences)
	mux.HandleFunc("GET /api/conferences/{slug}", conference.GetConference)
	mux.HandleFunc("PUT /api/conferences/{slug}", requireAuth(conference.UpdateConference))

	// Schedule
	mux.HandleFunc("GET /api/conferences/{slug}/sessions", schedule.ListSessions)
	mux.HandleFunc("POST /api/conferences/{slug}/import/sessionize/{sessionizeID}", requireAuth(schedule.ImportSessionize))
	mux.HandleFunc("GET /api/sessions", schedule.ListSessions)
	mux.HandleFunc("GET /api/sessions/{id}", schedule.GetSession)

	// Vendors
	mux.HandleFunc("GET /api/conferences/{slug}/vendors", vendor.ListVendors)
	mux.HandleFunc("GET /api/vendors", vendor.ListVendors)
	mux.HandleFunc("GET /api/vendors/{id}", vendor.GetVendor)

	// Door prizes and T-hunting
	mux.HandleFunc("GET /api/conferences/{slug}/door-prizes", prize.ListDoorPrizes)
	mux.HandleFunc("POST /api/conferences/{slug}/door-prizes", requireAuth(prize.AddDoorPrize))
	mux.HandleFunc("GET /api/door-prizes", prize.ListDoorPrizes)
	mux.HandleFunc("GET /api/conferences/{slug}/thunting/winners", prize.ListTHuntingWinners)
	mux.HandleFunc("POST /api/conferences/{slug}/thunting/winners", requireAuth(prize.AddTHuntingWinner))
	mux.HandleFunc("GET /api/conferences/{slug}/thunting/schedule", prize.ListTHuntingSchedule)
	mux.HandleFunc("GET /api/thunting/winners", prize.ListTHuntingWinners)
	mux.HandleFunc("GET /api/thunting/schedule", prize.ListTHuntingSchedule)

	// Venue
	mux.HandleFunc("GET /api/conferences/{slug}/radio-contacts", venue.ListRadioContacts)
	mux.HandleFunc("GET /api/conferences/{slug}/venue-info", venue.ListVenueInfo)
	mux.HandleFunc("GET /api/conferences/{slug}/images", venue.ListConferenceImages)
	mux.HandleFunc("GET /api/radio-contacts", venue.ListRadioContacts)
	mux.HandleFunc("GET /api/venue-info", venue.ListVenueInfo)

	// Attendee
	mux.HandleFunc("GET /api/bookmarks", requireAuth(attendee.ListBookmarks))
	mux.HandleFunc("POST /api/bookmarks/{sessionId}", requireAuth(attendee.AddBookmark))
	mux.HandleFunc("DELETE /api/bookmarks/{sessionId}", requireAuth(attendee.RemoveBookmark))
	mux.HandleFunc("GET /api/surveys", requireAuth(attendee.ListSurveys))
	mux.HandleFunc("POST /api/surveys/{surveyType}", requireAuth(attendee.SubmitSurvey))
	mux.HandleFunc("GET /api/surveys/{surveyType}/status", requireAuth(attendee.SurveyStatus))
	mux.HandleFunc("GET /api/profile", requireAuth(attendee.GetProfile))
	mux.HandleFunc("PATCH /api/profile", requireAuth(attendee.UpdateProfile))

	// Auth
	mux.HandleFunc("GET /api/auth/user", requireAuth(auth.CurrentUser))

	// Ops
	mux.HandleFunc("GET /api/health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.Metrics(handler)
	handler = middleware.LoggingMiddleware(d.Logger, handler)
	handler = middleware.CORS(d.AllowedOrigins, handler)
	return handler
}
