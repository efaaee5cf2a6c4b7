package impl

import (
	"context"
	"testing"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"
	"safewallet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWalletStatus = entity.WalletStatus{
	BatteryLevel: 92,
	IsConnected:  true,
	Location:     entity.Coordinate{Lat: 46.1966, Lng: 9.0250},
	Distance:     3,
	Temperature:  entity.TemperatureHot,
}

func TestMapService_ViewWithoutUser(t *testing.T) {
	status := mockUsecase.NewMockDeviceStatusUsecase(t)
	settings := mockUsecase.NewMockSettingsUsecase(t)

	status.EXPECT().Status().Return(testWalletStatus)
	status.EXPECT().UserLocation().Return(entity.Coordinate{}, false)
	settings.EXPECT().Settings().Return(entity.Settings{GeofenceEnabled: true, GeofenceRadius: 50})

	svc := NewMapService(newTestConfig(), status, settings, nil)

	view, err := svc.View(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testWalletStatus.Location, view.Wallet)
	assert.Equal(t, testWalletStatus.Location, view.Center)
	assert.Nil(t, view.User)
	assert.Equal(t, 17, view.Zoom)
	assert.InDelta(t, 50, view.GeofenceRadius, 0)
	assert.InDelta(t, 3, view.Distance, 0)
	assert.Equal(t, "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", view.TileURLTemplate)
	assert.Equal(t, usecase.TileAddress{Z: 17, X: 68821, Y: 46527}, view.CenterTile)
}

func TestMapService_ViewCentersOnUser(t *testing.T) {
	status := mockUsecase.NewMockDeviceStatusUsecase(t)
	settings := mockUsecase.NewMockSettingsUsecase(t)
	user := entity.Coordinate{Lat: 46.2, Lng: 9.03}

	status.EXPECT().Status().Return(testWalletStatus)
	status.EXPECT().UserLocation().Return(user, true)
	settings.EXPECT().Settings().Return(entity.Settings{GeofenceEnabled: false, GeofenceRadius: 50})

	svc := NewMapService(newTestConfig(), status, settings, mockService.NewMockTileService(t))

	view, err := svc.View(context.Background())
	require.NoError(t, err)

	require.NotNil(t, view.User)
	assert.Equal(t, user, *view.User)
	assert.Equal(t, user, view.Center)
	assert.Zero(t, view.GeofenceRadius)
	assert.Equal(t, "/tiles/{z}/{x}/{y}.mvt", view.TileURLTemplate)
	assert.Equal(t, usecase.TileAddress{Z: 17, X: 68823, Y: 46525}, view.CenterTile)
}

func TestMapService_Tile(t *testing.T) {
	tests := []struct {
		name    string
		z, x, y int
		setup   func(tiles *mockService.MockTileService)
		want    *service.Tile
		wantErr error
	}{
		{
			name: "found",
			z:    14,
			x:    8602,
			y:    5815,
			setup: func(tiles *mockService.MockTileService) {
				tiles.EXPECT().GetTile(mock.Anything, 14, 8602, 5815, "mvt").
					Return(&service.Tile{Data: []byte{0x1a}}, nil)
			},
			want: &service.Tile{Data: []byte{0x1a}},
		},
		{
			name: "missing from archive",
			z:    14,
			x:    0,
			y:    0,
			setup: func(tiles *mockService.MockTileService) {
				tiles.EXPECT().GetTile(mock.Anything, 14, 0, 0, "mvt").Return(nil, nil)
			},
			wantErr: ErrTileNotFound,
		},
		{
			name:    "x outside pyramid",
			z:       2,
			x:       4,
			y:       0,
			wantErr: ErrTileNotFound,
		},
		{
			name:    "negative zoom",
			z:       -1,
			x:       0,
			y:       0,
			wantErr: ErrTileNotFound,
		},
		{
			name:    "zoom too deep",
			z:       23,
			x:       0,
			y:       0,
			wantErr: ErrTileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := mockService.NewMockTileService(t)
			if tt.setup != nil {
				tt.setup(tiles)
			}

			svc := NewMapService(newTestConfig(), mockUsecase.NewMockDeviceStatusUsecase(t), mockUsecase.NewMockSettingsUsecase(t), tiles)

			got, err := svc.Tile(context.Background(), tt.z, tt.x, tt.y, "mvt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapService_TileErrors(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := NewMapService(newTestConfig(), mockUsecase.NewMockDeviceStatusUsecase(t), mockUsecase.NewMockSettingsUsecase(t), nil)

		_, err := svc.Tile(context.Background(), 0, 0, 0, "mvt")
		assert.ErrorIs(t, err, ErrTilesDisabled)
	})

	t.Run("archive failure", func(t *testing.T) {
		tiles := mockService.NewMockTileService(t)
		readErr := errors.New("bucket read failed")
		tiles.EXPECT().GetTile(mock.Anything, 0, 0, 0, "mvt").Return(nil, readErr)

		svc := NewMapService(newTestConfig(), mockUsecase.NewMockDeviceStatusUsecase(t), mockUsecase.NewMockSettingsUsecase(t), tiles)

		_, err := svc.Tile(context.Background(), 0, 0, 0, "mvt")
		assert.ErrorIs(t, err, readErr)
	})
}
