// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"safewallet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the phones registered for pushes. Rows are never
// deleted; deactivation keeps the history of a phone across reinstalls.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.PushDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error)
	// FindDeviceByDeviceID looks up the id the app generated at install time.
	FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.PushDevice, error)
	// FindDevices includes inactive devices.
	FindDevices(ctx context.Context) ([]*entity.PushDevice, error)
	FindActiveDevices(ctx context.Context) ([]*entity.PushDevice, error)
	// UpdateFCMToken stores a rotated token and reactivates the device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
	// DeactivateByTokens returns how many active devices it switched off.
	DeactivateByTokens(ctx context.Context, tokens []string) (int, error)
}
