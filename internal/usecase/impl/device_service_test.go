package impl

import (
	"context"
	"testing"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"
	mockRepo "safewallet/internal/mocks/repository"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	info := &usecase.DeviceInfo{FCMToken: "fcm-pixel", DeviceID: "pixel-8", Platform: "android"}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "pixel-8").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"fcm-pixel"}).Return(0, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(d *entity.PushDevice) bool {
			return d.DeviceID == "pixel-8" && d.FCMToken == "fcm-pixel" && d.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, info)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, "android", device.Platform)
	assert.False(t, device.CreatedAt.IsZero())
}

func TestDeviceService_RegisterDevice_TokenRotated(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByDeviceID(ctx, "iphone-15").
		Return(&entity.PushDevice{ID: id, FCMToken: "old-token", DeviceID: "iphone-15", IsActive: false}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"new-token"}).Return(1, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, id, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, id).
		Return(&entity.PushDevice{ID: id, FCMToken: "new-token", DeviceID: "iphone-15", IsActive: true}, nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "iphone-15", Platform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, id, device.ID)
	assert.Equal(t, "new-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Unchanged(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	existing := &entity.PushDevice{ID: uuid.New(), FCMToken: "same", DeviceID: "pixel-8", IsActive: true}

	fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "pixel-8").Return(existing, nil)

	device, err := fx.service.RegisterDevice(ctx, &usecase.DeviceInfo{FCMToken: "same", DeviceID: "pixel-8", Platform: "android"})
	require.NoError(t, err)
	assert.Same(t, existing, device)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	dbErr := errors.New("database is locked")
	info := &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "android"}

	tests := []struct {
		name    string
		setup   func(repo *mockRepo.MockDeviceRepository)
		wantErr error
	}{
		{
			name: "lookup",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByDeviceID(mock.Anything, "d").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "retire previous holder",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByDeviceID(mock.Anything, "d").Return(nil, repository.ErrDeviceNotFound)
				repo.EXPECT().DeactivateByTokens(mock.Anything, []string{"t"}).Return(0, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "create",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByDeviceID(mock.Anything, "d").Return(nil, repository.ErrDeviceNotFound)
				repo.EXPECT().DeactivateByTokens(mock.Anything, []string{"t"}).Return(0, nil)
				repo.EXPECT().CreateDevice(mock.Anything, mock.Anything).Return(repository.ErrDuplicateDevice)
			},
			wantErr: repository.ErrDuplicateDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx.deviceRepo)

			device, err := fx.service.RegisterDevice(context.Background(), info)
			assert.Nil(t, device)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	id := uuid.New()
	dbErr := errors.New("disk I/O error")

	tests := []struct {
		name    string
		setup   func(repo *mockRepo.MockDeviceRepository)
		wantErr error
	}{
		{
			name: "ok",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, id).Return(&entity.PushDevice{ID: id, IsActive: true}, nil)
				repo.EXPECT().DeactivateDevice(mock.Anything, id).Return(nil)
			},
		},
		{
			name: "not found",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, id).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: ErrDeviceNotFound,
		},
		{
			name: "write fails",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, id).Return(&entity.PushDevice{ID: id}, nil)
				repo.EXPECT().DeactivateDevice(mock.Anything, id).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx.deviceRepo)

			err := fx.service.DeactivateDevice(context.Background(), id)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeviceService_ActiveTokens(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindActiveDevices(ctx).
		Return([]*entity.PushDevice{
			{ID: uuid.New(), FCMToken: "token-2", IsActive: true},
			{ID: uuid.New(), FCMToken: "", IsActive: true},
			{ID: uuid.New(), FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), FCMToken: "token-2", IsActive: true},
		}, nil)

	tokens, err := fx.service.ActiveTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-1", "token-2"}, tokens)
}

func TestDeviceService_GetDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	dbErr := errors.New("database error")

	fx.deviceRepo.EXPECT().FindActiveDevices(ctx).Return(nil, dbErr)

	devices, err := fx.service.GetDevices(ctx)
	assert.Nil(t, devices)
	assert.ErrorIs(t, err, dbErr)

	tokens, err := fx.service.ActiveTokens(ctx)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, dbErr)
}

func TestDeviceService_RetireTokens(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	retired, err := fx.service.RetireTokens(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, retired)

	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale-1", "stale-2"}).Return(2, nil)

	retired, err = fx.service.RetireTokens(ctx, []string{"stale-1", "stale-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, retired)
}
