package controllers

import (
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type HealthController struct {
	Checker domain.HealthChecker
}

func NewHealthController(checker domain.HealthChecker) *HealthController {
	return &HealthController{Checker: checker}
}

// HealthResponse reports service and database reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /api/health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if c.Checker.CheckConnection(r.Context()) {
		helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "connected"})
		return
	}
	helpers.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unavailable"})
}
