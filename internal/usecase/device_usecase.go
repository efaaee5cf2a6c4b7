package usecase

import (
	"context"

	"safewallet/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the phones that receive wallet alerts
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, deviceInfo *DeviceInfo) (*entity.PushDevice, error)

	// GetDevices retrieves all active devices
	GetDevices(ctx context.Context) ([]*entity.PushDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// ActiveTokens returns the FCM tokens of every active device
	ActiveTokens(ctx context.Context) ([]string, error)

	// RetireTokens deactivates the devices whose tokens the push provider rejected
	RetireTokens(ctx context.Context, tokens []string) (int, error)
}
