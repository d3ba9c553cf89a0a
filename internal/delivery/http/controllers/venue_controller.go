package controllers

import (
	"log/slog"
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type VenueController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewVenueController(logger *slog.Logger, catalog domain.CatalogService) *VenueController {
	return &VenueController{Logger: logger, Catalog: catalog}
}

// ListRadioContacts godoc
// @Summary List talk-in and simplex frequencies
// @Tags venue
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.RadioContact
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/radio-contacts [get]
// @Router /api/radio-contacts [get]
func (c *VenueController) ListRadioContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.Catalog.ListRadioContacts(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch radio contacts")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contacts)
}

// ListVenueInfo godoc
// @Summary List venue information (hotel, parking, registration, testing)
// @Tags venue
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.VenueInfo
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/venue-info [get]
// @Router /api/venue-info [get]
func (c *VenueController) ListVenueInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.Catalog.ListVenueInfo(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch venue info")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, info)
}

// ListConferenceImages godoc
// @Summary List conference images such as venue and exhibitor maps
// @Tags venue
// @Produce json
// @Param slug path string true "Conference slug"
// @Param type query string false "Image type (venue-map, exhibitor-map, ...)"
// @Success 200 {array} domain.ConferenceImage
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/images [get]
func (c *VenueController) ListConferenceImages(w http.ResponseWriter, r *http.Request) {
	images, err := c.Catalog.ListConferenceImages(r.Context(), r.PathValue("slug"), r.URL.Query().Get("type"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch conference images")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, images)
}
