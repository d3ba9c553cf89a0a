package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// ListBookmarks godoc
// @Summary List the current user's bookmarked session IDs
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param conference query string false "Conference slug"
// @Success 200 {array} string
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/bookmarks [get]
func (c *AttendeeController) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	ids, err := c.Service.ListBookmarks(r.Context(), claims.Subject, r.URL.Query().Get("conference"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch bookmarks")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// BookmarkRequest is the optional body of POST /api/bookmarks/{sessionId}.
type BookmarkRequest struct {
	Conference string `json:"conference"`
}

// AddBookmark godoc
// @Summary Bookmark a session
// @Description Idempotent. The conference comes from the body or query; without one the session's own conference is used.
// @Tags attendee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID (UUID)"
// @Param conference query string false "Conference slug"
// @Param body body controllers.BookmarkRequest false "Conference slug"
// @Success 200 {object} controllers.StatusResponse
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/bookmarks/{sessionId} [post]
func (c *AttendeeController) AddBookmark(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "sessionId", "Session not found")
	if !ok {
		return
	}
	var req BookmarkRequest
	if !helpers.DecodeAndValidate(w, r, &req, true) {
		return
	}
	slug := strings.TrimSpace(req.Conference)
	if slug == "" {
		slug = r.URL.Query().Get("conference")
	}
	if err := c.Service.AddBookmark(r.Context(), claims.Subject, slug, sessionID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Session not found", "Failed to add bookmark")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Success: true})
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Description Removing a bookmark that does not exist succeeds.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID (UUID)"
// @Param conference query string false "Conference slug"
// @Success 200 {object} controllers.StatusResponse
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/bookmarks/{sessionId} [delete]
func (c *AttendeeController) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "sessionId", "Session not found")
	if !ok {
		return
	}
	if err := c.Service.RemoveBookmark(r.Context(), claims.Subject, r.URL.Query().Get("conference"), sessionID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Session not found", "Failed to remove bookmark")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Success: true})
}

// ListSurveys godoc
// @Summary List the current user's survey responses
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SurveyResponse
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/surveys [get]
func (c *AttendeeController) ListSurveys(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	responses, err := c.Service.ListSurveys(r.Context(), claims.Subject)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to fetch survey responses")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, responses)
}

// SubmitSurveyRequest is the body of POST /api/surveys/{surveyType}.
type SubmitSurveyRequest struct {
	Conference string          `json:"conference"`
	Responses  json.RawMessage `json:"responses" swaggertype:"object"`
}

// Validate implements helpers.Validator.
func (r *SubmitSurveyRequest) Validate() []string {
	trimmed := strings.TrimSpace(string(r.Responses))
	if trimmed != "" && trimmed != "null" && !strings.HasPrefix(trimmed, "{") {
		return []string{"responses must be a JSON object"}
	}
	return nil
}

// SubmitSurvey godoc
// @Summary Submit a feedback survey
// @Description Stores the responses verbatim. Repeated submissions are kept. A receipt email is sent when possible.
// @Tags attendee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param surveyType path string true "attendee, exhibitor, speaker, volunteer or staff"
// @Param body body controllers.SubmitSurveyRequest true "Responses"
// @Success 200 {object} domain.SurveyResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/surveys/{surveyType} [post]
func (c *AttendeeController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	surveyType := r.PathValue("surveyType")
	if !domain.ValidSurveyType(surveyType) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid survey type")
		return
	}
	var req SubmitSurveyRequest
	if !helpers.DecodeAndValidate(w, r, &req, true) {
		return
	}
	resp, err := c.Service.SubmitSurvey(r.Context(), claims, strings.TrimSpace(req.Conference), surveyType, req.Responses)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to submit survey")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// SurveyStatus godoc
// @Summary Check whether the current user completed a survey
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param surveyType path string true "attendee, exhibitor, speaker, volunteer or staff"
// @Success 200 {object} domain.SurveyStatus
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/surveys/{surveyType}/status [get]
func (c *AttendeeController) SurveyStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	surveyType := r.PathValue("surveyType")
	if !domain.ValidSurveyType(surveyType) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid survey type")
		return
	}
	status, err := c.Service.SurveyStatus(r.Context(), claims.Subject, surveyType)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to check survey status")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, status)
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Description When the store is unavailable the profile is built from the token claims.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserProfile
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError
// @Router /api/profile [get]
func (c *AttendeeController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	profile, err := c.Service.GetProfile(r.Context(), claims)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to fetch profile")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags attendee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.ProfilePatch true "Fields to change"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/profile [patch]
func (c *AttendeeController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	var patch domain.ProfilePatch
	if !helpers.DecodeAndValidate(w, r, &patch, false) {
		return
	}
	profile, err := c.Service.UpdateProfile(r.Context(), claims.Subject, patch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to update profile")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profile)
}
