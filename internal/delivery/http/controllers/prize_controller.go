package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type PrizeController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewPrizeController(logger *slog.Logger, catalog domain.CatalogService) *PrizeController {
	return &PrizeController{Logger: logger, Catalog: catalog}
}

// ListDoorPrizes godoc
// @Summary List door prize drawings, most recent first
// @Tags prizes
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.DoorPrize
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/door-prizes [get]
// @Router /api/door-prizes [get]
func (c *PrizeController) ListDoorPrizes(w http.ResponseWriter, r *http.Request) {
	prizes, err := c.Catalog.ListDoorPrizes(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch door prizes")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, prizes)
}

// AddDoorPrizeRequest is the request body for recording a door prize drawing.
type AddDoorPrizeRequest struct {
	BadgeNumber string     `json:"badgeNumber"`
	CallSign    string     `json:"callSign"`
	PrizeName   string     `json:"prizeName"`
	Timestamp   *time.Time `json:"timestamp"`
	Claimed     bool       `json:"claimed"`
}

// Validate implements helpers.Validator.
func (r *AddDoorPrizeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.BadgeNumber) == "" {
		errs = append(errs, "badgeNumber is required")
	}
	if strings.TrimSpace(r.PrizeName) == "" {
		errs = append(errs, "prizeName is required")
	}
	return errs
}

// AddDoorPrize godoc
// @Summary Record a door prize drawing
// @Description timestamp defaults to now.
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Conference slug"
// @Param body body controllers.AddDoorPrizeRequest true "Drawing"
// @Success 201 {object} domain.DoorPrize
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Router /api/conferences/{slug}/door-prizes [post]
func (c *PrizeController) AddDoorPrize(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}
	var req AddDoorPrizeRequest
	if !helpers.DecodeAndValidate(w, r, &req, false) {
		return
	}
	prize := &domain.DoorPrize{
		BadgeNumber: strings.TrimSpace(req.BadgeNumber),
		CallSign:    req.CallSign,
		PrizeName:   strings.TrimSpace(req.PrizeName),
		Claimed:     req.Claimed,
	}
	if req.Timestamp != nil {
		prize.Timestamp = req.Timestamp.UTC()
	}
	created, err := c.Catalog.AddDoorPrize(r.Context(), r.PathValue("slug"), prize)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to add door prize")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListTHuntingWinners godoc
// @Summary List T-hunting winners by rank
// @Tags prizes
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.THuntingWinner
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/thunting/winners [get]
// @Router /api/thunting/winners [get]
func (c *PrizeController) ListTHuntingWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := c.Catalog.ListTHuntingWinners(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch T-hunting winners")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, winners)
}

// AddTHuntingWinnerRequest is the request body for recording a T-hunting placing.
type AddTHuntingWinnerRequest struct {
	Rank           int     `json:"rank"`
	CallSign       string  `json:"callSign"`
	CompletionTime string  `json:"completionTime"`
	HuntNumber     int     `json:"huntNumber"`
	Prize          *string `json:"prize"`
}

// Validate implements helpers.Validator.
func (r *AddTHuntingWinnerRequest) Validate() []string {
	var errs []string
	if r.Rank < 1 {
		errs = append(errs, "rank must be at least 1")
	}
	if r.HuntNumber < 1 {
		errs = append(errs, "huntNumber must be at least 1")
	}
	if strings.TrimSpace(r.CallSign) == "" {
		errs = append(errs, "callSign is required")
	}
	if strings.TrimSpace(r.CompletionTime) == "" {
		errs = append(errs, "completionTime is required")
	}
	return errs
}

// AddTHuntingWinner godoc
// @Summary Record a T-hunting placing
// @Tags prizes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Conference slug"
// @Param body body controllers.AddTHuntingWinnerRequest true "Placing"
// @Success 201 {object} domain.THuntingWinner
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Router /api/conferences/{slug}/thunting/winners [post]
func (c *PrizeController) AddTHuntingWinner(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireClaims(w, r); !ok {
		return
	}
	var req AddTHuntingWinnerRequest
	if !helpers.DecodeAndValidate(w, r, &req, false) {
		return
	}
	winner := &domain.THuntingWinner{
		Rank:           req.Rank,
		CallSign:       req.CallSign,
		CompletionTime: strings.TrimSpace(req.CompletionTime),
		HuntNumber:     req.HuntNumber,
		Prize:          req.Prize,
	}
	created, err := c.Catalog.AddTHuntingWinner(r.Context(), r.PathValue("slug"), winner)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to add T-hunting winner")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListTHuntingSchedule godoc
// @Summary List scheduled T-hunts
// @Tags prizes
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.THuntingSchedule
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/thunting/schedule [get]
// @Router /api/thunting/schedule [get]
func (c *PrizeController) ListTHuntingSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := c.Catalog.ListTHuntingSchedule(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch T-hunting schedule")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schedule)
}
