package controllers

import (
	"log/slog"
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type ScheduleController struct {
	Logger   *slog.Logger
	Catalog  domain.CatalogService
	Importer domain.ScheduleImportService
}

func NewScheduleController(logger *slog.Logger, catalog domain.CatalogService, importer domain.ScheduleImportService) *ScheduleController {
	return &ScheduleController{Logger: logger, Catalog: catalog, Importer: importer}
}

// ListSessions godoc
// @Summary List schedule sessions
// @Description Without a slug, lists sessions across all conferences.
// @Tags schedule
// @Produce json
// @Param slug path string false "Conference slug"
// @Param category query string false "Category filter (forum, event, ...)"
// @Param day query string false "Day filter (friday, saturday, sunday)"
// @Success 200 {array} domain.Session
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/sessions [get]
// @Router /api/sessions [get]
func (c *ScheduleController) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SessionFilter{Category: q.Get("category"), Day: q.Get("day")}
	sessions, err := c.Catalog.ListSessions(r.Context(), r.PathValue("slug"), filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch sessions")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get a session
// @Tags schedule
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} domain.Session
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/sessions/{id} [get]
func (c *ScheduleController) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", "Session not found")
	if !ok {
		return
	}
	sess, err := c.Catalog.GetSession(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Session not found", "Failed to fetch session")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// ImportSessionizeResponse is the body returned by a Sessionize import.
type ImportSessionizeResponse struct {
	Status   string `json:"status"`
	Imported int    `json:"imported"`
}

// ImportSessionize godoc
// @Summary Import schedule from Sessionize
// @Description Inserts or refreshes the conference's sessions from a Sessionize "All" feed. Re-importing updates sessions in place.
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Conference slug"
// @Param sessionizeID path string true "Sessionize ID"
// @Success 200 {object} controllers.ImportSessionizeResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/import/sessionize/{sessionizeID} [post]
func (c *ScheduleController) ImportSessionize(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}
	n, err := c.Importer.ImportSessionize(r.Context(), r.PathValue("slug"), r.PathValue("sessionizeID"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to import schedule")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportSessionizeResponse{Status: "imported successfully", Imported: n})
}
