package controllers

import (
	"log/slog"
	"net/http"

	"confcompanion/internal/delivery/http/helpers"
	"confcompanion/internal/domain"
)

type VendorController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewVendorController(logger *slog.Logger, catalog domain.CatalogService) *VendorController {
	return &VendorController{Logger: logger, Catalog: catalog}
}

// ListVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param slug path string false "Conference slug"
// @Success 200 {array} domain.Vendor
// @Failure 404 {object} helpers.APIError "code: not_found (unknown conference)"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/conferences/{slug}/vendors [get]
// @Router /api/vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := c.Catalog.ListVendors(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Conference not found", "Failed to fetch vendors")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendors)
}

// GetVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID (UUID)"
// @Success 200 {object} domain.Vendor
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 503 {object} helpers.APIError "code: service_unavailable, retryable: true"
// @Failure 500 {object} helpers.APIError
// @Router /api/vendors/{id} [get]
func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id", "Vendor not found")
	if !ok {
		return
	}
	vendor, err := c.Catalog.GetVendor(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "Vendor not found", "Failed to fetch vendor")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, vendor)
}
