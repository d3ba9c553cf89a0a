package controllers

import (
	"log/slog"
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAuthController(logger *slog.Logger, svc domain.AttendeeService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// CurrentUser godoc
// @Summary Get the signed-in user
// @Description Creates the user from the token claims on first sight. When the store is unavailable the user is built from the claims.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIError "code: unauthorized"
// @Failure 500 {object} helpers.APIError
// @Router /api/auth/user [get]
func (c *AuthController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}
	user, err := c.Service.CurrentUser(r.Context(), claims)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "", "Failed to fetch user")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
