package impl

import (
	"context"
	"slices"
	"time"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"
	"safewallet/internal/errors"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found
var ErrDeviceNotFound = errors.New("device not found")

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

// NewDeviceService keeps the phones that get breach and alarm pushes. It is
// shared by the dashboard (registration) and the notifier (token retirement).
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice upserts by client device id. A token is only ever active on
// one device: a reinstall that hands an old token to a new id retires the old row.
func (s *deviceService) RegisterDevice(ctx context.Context, info *usecase.DeviceInfo) (*entity.PushDevice, error) {
	existing, err := s.deviceRepo.FindDeviceByDeviceID(ctx, info.DeviceID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "find device")
	}

	if existing != nil && existing.IsActive && existing.FCMToken == info.FCMToken {
		return existing, nil
	}

	if _, err := s.deviceRepo.DeactivateByTokens(ctx, []string{info.FCMToken}); err != nil {
		return nil, errors.Wrap(err, "retire previous holder of token")
	}

	if existing != nil {
		return s.refreshToken(ctx, existing.ID, info.FCMToken)
	}

	now := s.now()
	device := &entity.PushDevice{
		ID:        uuid.New(),
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "create device")
	}

	return device, nil
}

func (s *deviceService) refreshToken(ctx context.Context, id uuid.UUID, token string) (*entity.PushDevice, error) {
	if err := s.deviceRepo.UpdateFCMToken(ctx, id, token); err != nil {
		return nil, errors.Wrap(err, "update FCM token")
	}

	updated, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "reload device")
	}

	return updated, nil
}

func (s *deviceService) GetDevices(ctx context.Context) ([]*entity.PushDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find active devices")
	}

	return devices, nil
}

func (s *deviceService) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.deviceRepo.FindDeviceByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}

		return errors.Wrap(err, "find device")
	}

	return errors.Wrap(s.deviceRepo.DeactivateDevice(ctx, id), "deactivate device")
}

// ActiveTokens returns the distinct tokens of the active devices, sorted.
func (s *deviceService) ActiveTokens(ctx context.Context) ([]string, error) {
	devices, err := s.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}
	slices.Sort(tokens)

	return slices.Compact(tokens), nil
}

// RetireTokens deactivates the devices whose tokens FCM rejected.
func (s *deviceService) RetireTokens(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	retired, err := s.deviceRepo.DeactivateByTokens(ctx, tokens)
	if err != nil {
		return 0, errors.Wrap(err, "deactivate devices by token")
	}

	return retired, nil
}
