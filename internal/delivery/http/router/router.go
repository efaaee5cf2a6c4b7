// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"safewallet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	WalletItemHandler *handler.WalletItemHandler
	StatusHandler     *handler.StatusHandler
	SettingsHandler   *handler.SettingsHandler
	AssistantHandler  *handler.AssistantHandler
	AlertHandler      *handler.AlertHandler
	MapHandler        *handler.MapHandler
	DeviceHandler     *handler.DeviceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	walletItemHandler *handler.WalletItemHandler
	statusHandler     *handler.StatusHandler
	settingsHandler   *handler.SettingsHandler
	assistantHandler  *handler.AssistantHandler
	alertHandler      *handler.AlertHandler
	mapHandler        *handler.MapHandler
	deviceHandler     *handler.DeviceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		walletItemHandler: params.WalletItemHandler,
		statusHandler:     params.StatusHandler,
		settingsHandler:   params.SettingsHandler,
		assistantHandler:  params.AssistantHandler,
		alertHandler:      params.AlertHandler,
		mapHandler:        params.MapHandler,
		deviceHandler:     params.DeviceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Tile passthrough, answers 404 unless a PMTiles archive is configured
	e.GET("/tiles/:z/:x/:file", r.mapHandler.GetTile)

	api := e.Group("/api")

	itemsGroup := api.Group("/wallet/items")
	{
		itemsGroup.GET("", r.walletItemHandler.ListItems)
		itemsGroup.POST("", r.walletItemHandler.AddItem)
		itemsGroup.GET("/:id", r.walletItemHandler.GetItem)
		itemsGroup.PUT("/:id", r.walletItemHandler.UpdateItem)
		itemsGroup.DELETE("/:id", r.walletItemHandler.RemoveItem)
		itemsGroup.GET("/:id/qrcode", r.walletItemHandler.SupportQR)
	}

	api.GET("/status", r.statusHandler.GetStatus)
	api.POST("/status/telemetry", r.statusHandler.ApplyTelemetry)
	api.POST("/position", r.statusHandler.ReportPosition)

	assistantGroup := api.Group("/assistant")
	{
		assistantGroup.GET("/messages", r.assistantHandler.GetMessages)
		assistantGroup.POST("/messages", r.assistantHandler.SendMessage)
		assistantGroup.DELETE("/messages", r.assistantHandler.ResetConversation)
	}

	api.POST("/alerts", r.alertHandler.TriggerAlert)
	api.GET("/alerts/latest.wav", r.alertHandler.LatestClip)

	api.GET("/settings", r.settingsHandler.GetSettings)
	api.PUT("/settings", r.settingsHandler.UpdateSettings)

	api.GET("/map", r.mapHandler.GetMap)

	devicesGroup := api.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
