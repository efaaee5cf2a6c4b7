package handler

import (
	"net/http"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/delivery/http/validator"
	"safewallet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler serves the settings view
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(settingsUC usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// UpdateSettingsRequest carries the toggles to change; omitted fields are kept
type UpdateSettingsRequest struct {
	GeofenceEnabled  *bool    `json:"geofence_enabled"`
	GeofenceRadius   *float64 `json:"geofence_radius" validate:"omitempty,gt=0"`
	AntitheftEnabled *bool    `json:"antitheft_enabled"`
}

// GetSettings handles GET /api/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.settingsUC.Settings(), "Settings retrieved successfully")
}

// UpdateSettings handles PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), usecase.SettingsUpdate{
		GeofenceEnabled:  req.GeofenceEnabled,
		GeofenceRadius:   req.GeofenceRadius,
		AntitheftEnabled: req.AntitheftEnabled,
	})
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Settings updated successfully")
}
