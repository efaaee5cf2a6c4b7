package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/delivery/http/validator"
	"safewallet/internal/domain/entity"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// tokenHintLength is how much of an FCM token the dashboard may show.
const tokenHintLength = 6

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the phones that receive breach and alarm pushes.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest is sent by the app after FCM hands it a token.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// deviceView is a registered phone as the dashboard shows it. The FCM token
// is a credential for pushing to the phone, so only its tail is returned.
type deviceView struct {
	ID           uuid.UUID `json:"id"`
	DeviceID     string    `json:"device_id"`
	Platform     string    `json:"platform"`
	TokenHint    string    `json:"token_hint"`
	IsActive     bool      `json:"is_active"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newDeviceView(d *entity.PushDevice) deviceView {
	hint := d.FCMToken
	if len(hint) > tokenHintLength {
		hint = "…" + hint[len(hint)-tokenHintLength:]
	}

	return deviceView{
		ID:           d.ID,
		DeviceID:     d.DeviceID,
		Platform:     d.Platform,
		TokenHint:    hint,
		IsActive:     d.IsActive,
		RegisteredAt: d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// RegisterDevice stores a phone, or refreshes the token of a known one.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device input")
	}

	req.FCMToken = strings.TrimSpace(req.FCMToken)
	req.DeviceID = strings.TrimSpace(req.DeviceID)
	req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return handleError(c, err)
	}

	h.logger.Info("Push device registered",
		slog.String("device_id", device.DeviceID),
		slog.String("platform", device.Platform),
	)

	return response.Success(c, http.StatusCreated, newDeviceView(device), "Device registered successfully")
}

// GetDevices lists the phones that currently receive pushes.
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	devices, err := h.deviceUC.GetDevices(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}

	views := make([]deviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, newDeviceView(d))
	}

	return response.Success(c, http.StatusOK, views, "Devices retrieved successfully")
}

// DeactivateDevice stops pushes to a phone without forgetting it.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), deviceID); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": deviceID.String()}, "Device deactivated successfully")
}
