package handler

import (
	"net/http"

	"safewallet/config"
	"safewallet/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and which optional features are on
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	PositionSource string `json:"position_source"`
	ProximityMode  string `json:"proximity_mode"`
	Assistant      bool   `json:"assistant"` // false when no API key is configured
	Tiles          bool   `json:"tiles"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthResponse{
		Status:         "ok",
		Service:        h.cfg.Env.ServiceName,
		PositionSource: h.cfg.Position.Source,
		ProximityMode:  h.cfg.Proximity.Mode,
		Assistant:      h.cfg.Assistant.APIKey != "",
		Tiles:          h.cfg.Map.PMTiles != nil && h.cfg.Map.PMTiles.Enabled,
	}, "Service is healthy")
}
