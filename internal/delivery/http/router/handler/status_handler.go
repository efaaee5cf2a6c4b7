package handler

import (
	"log/slog"
	"net/http"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/delivery/http/validator"
	"safewallet/internal/domain/entity"
	"safewallet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	StatusUC   usecase.DeviceStatusUsecase
	PositionUC usecase.PositionUsecase
	Logger     *slog.Logger
}

// StatusHandler serves the wallet status, telemetry and phone position routes
type StatusHandler struct {
	statusUC   usecase.DeviceStatusUsecase
	positionUC usecase.PositionUsecase
	logger     *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		statusUC:   params.StatusUC,
		positionUC: params.PositionUC,
		logger:     params.Logger,
	}
}

// CoordinateRequest is a WGS84 position in decimal degrees
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

func (r *CoordinateRequest) coordinate() entity.Coordinate {
	return entity.Coordinate{Lat: *r.Lat, Lng: *r.Lng}
}

// TelemetryRequest is a partial report from the wallet hardware
type TelemetryRequest struct {
	BatteryLevel *int               `json:"battery_level" validate:"omitempty,min=0,max=100"`
	IsConnected  *bool              `json:"is_connected"`
	Location     *CoordinateRequest `json:"location"`
}

// GetStatus handles GET /api/status
func (h *StatusHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.statusUC.Status(), "Wallet status retrieved successfully")
}

// ApplyTelemetry handles POST /api/status/telemetry
func (h *StatusHandler) ApplyTelemetry(c echo.Context) error {
	var req TelemetryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid telemetry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	telemetry := entity.WalletTelemetry{
		BatteryLevel: req.BatteryLevel,
		IsConnected:  req.IsConnected,
	}
	if req.Location != nil {
		location := req.Location.coordinate()
		telemetry.Location = &location
	}

	status, err := h.statusUC.ApplyTelemetry(c.Request().Context(), telemetry)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Telemetry applied successfully")
}

// ReportPosition handles POST /api/position
func (h *StatusHandler) ReportPosition(c echo.Context) error {
	var req CoordinateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	if err := h.positionUC.ReportPosition(c.Request().Context(), req.coordinate()); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusAccepted, h.statusUC.Status(), "Position accepted")
}
