package handler

import (
	"net/http"

	"safewallet/internal/delivery/http/response"
	domainerrors "safewallet/internal/domain/errors"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AlertHandler serves the voice alert
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	encoder service.ClipEncoder
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(alertUC usecase.AlertUsecase, encoder service.ClipEncoder) *AlertHandler {
	return &AlertHandler{alertUC: alertUC, encoder: encoder}
}

// TriggerAlert handles POST /api/alerts
func (h *AlertHandler) TriggerAlert(c echo.Context) error {
	result, err := h.alertUC.TriggerAlert(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}

	status := http.StatusOK
	if !result.Triggered {
		// another alert is still playing or cooling down
		status = http.StatusAccepted
	}

	return response.Success(c, status, result, "Alert processed")
}

// LatestClip handles GET /api/alerts/latest.wav
func (h *AlertHandler) LatestClip(c echo.Context) error {
	clip, ok := h.alertUC.LatestClip()
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAlertNoClip)
	}

	wav, err := h.encoder.EncodeWAV(clip)
	if err != nil {
		return handleError(c, err)
	}

	return c.Blob(http.StatusOK, "audio/wav", wav)
}
