package controllers

import (
	"log/slog"
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{Logger: logger, Service: svc}
}

// ListConferences godoc
// @Summary List active conferences
// @Tags conferences
// @Produce json
// @Success 200 {array} domain.Conference
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences [get]
func (c *ConferenceController) ListConferences(w http.ResponseWriter, r *http.Request) {
	confs, err := c.Service.ListConferences(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to fetch conferences")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// GetConference godoc
// @Summary Get a conference by slug
// @Tags conferences
// @Produce json
// @Param slug path string true "Conference slug"
// @Success 200 {object} domain.Conference
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conf, err := c.Service.GetConference(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch conference")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// UpdateConference godoc
// @Summary Update conference branding and details
// @Description Only the fields present in the body are changed.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Conference slug"
// @Param body body domain.ConferencePatch true "Fields to change"
// @Success 200 {object} domain.Conference
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Router /api/conferences/{slug} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}
	var patch domain.ConferencePatch
	if !helpers.DecodeAndValidate(w, r, &patch, false) {
		return
	}
	conf, err := c.Service.UpdateConference(r.Context(), r.PathValue("slug"), patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to update conference")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}
