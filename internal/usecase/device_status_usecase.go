package usecase

import (
	"context"

	"safewallet/internal/domain/entity"
)

// DeviceStatusUsecase owns the observable wallet status.
type DeviceStatusUsecase interface {
	// Status returns the current status.
	Status() entity.WalletStatus

	// OnPositionUpdate records a new user position and recomputes distance and temperature.
	OnPositionUpdate(ctx context.Context, user entity.Coordinate) entity.WalletStatus

	// ApplyTelemetry merges a hardware report into the status.
	ApplyTelemetry(ctx context.Context, telemetry entity.WalletTelemetry) (entity.WalletStatus, error)

	// UserLocation returns the latest user position, if any.
	UserLocation() (entity.Coordinate, bool)
}

// SettingsUpdate carries the settings fields to change. Nil fields are kept.
type SettingsUpdate struct {
	GeofenceEnabled  *bool    `json:"geofence_enabled,omitempty"`
	GeofenceRadius   *float64 `json:"geofence_radius,omitempty"`
	AntitheftEnabled *bool    `json:"antitheft_enabled,omitempty"`
}

// SettingsUsecase exposes the user toggles.
type SettingsUsecase interface {
	Settings() entity.Settings

	// UpdateSettings applies the change and re-evaluates the lost flag.
	UpdateSettings(ctx context.Context, update SettingsUpdate) (entity.Settings, error)
}

// PositionUsecase accepts positions reported by clients.
type PositionUsecase interface {
	ReportPosition(ctx context.Context, coord entity.Coordinate) error
}
