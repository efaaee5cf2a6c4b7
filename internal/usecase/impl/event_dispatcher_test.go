package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventDispatcher_PublishesGeofenceBreach(t *testing.T) {
	devices := mockUsecase.NewMockDeviceUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewEventDispatcher(devices, publisher, newTestLogger())
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	dispatcher.now = func() time.Time { return fixed }

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	status := entity.WalletStatus{Location: entity.Coordinate{Lat: 46.2, Lng: 9.03}, Distance: 75.4}
	settings := entity.Settings{GeofenceEnabled: true, GeofenceRadius: 50}

	devices.EXPECT().ActiveTokens(mock.Anything).Return([]string{"token-1", "token-2"}, nil)

	var published *entity.WalletEvent
	publisher.EXPECT().
		PublishWalletEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *entity.WalletEvent) { published = e }).
		Return(nil)

	dispatcher.Dispatch(ctx, entity.EventGeofenceBreach, status, settings)

	require.NotNil(t, published)
	assert.NotEmpty(t, published.EventID)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, entity.EventGeofenceBreach, published.Type)
	assert.Equal(t, "Portafoglio fuori dal perimetro", published.Title)
	assert.Equal(t, "Il tuo SafeWallet è a 75.4 m, oltre il raggio di 50 m.", published.Body)
	assert.Equal(t, []string{"token-1", "token-2"}, published.Tokens)
	assert.Equal(t, status.Location, published.Location)
	assert.Equal(t, fixed, published.OccurredAt)
}

func TestEventDispatcher_SkipsWithoutDevices(t *testing.T) {
	devices := mockUsecase.NewMockDeviceUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewEventDispatcher(devices, publisher, newTestLogger())

	devices.EXPECT().ActiveTokens(mock.Anything).Return(nil, nil).Once()
	devices.EXPECT().ActiveTokens(mock.Anything).Return(nil, errors.New("database error")).Once()

	dispatcher.Dispatch(context.Background(), entity.EventAntitheftAlarm, entity.WalletStatus{}, entity.Settings{})
	dispatcher.Dispatch(context.Background(), entity.EventAntitheftAlarm, entity.WalletStatus{}, entity.Settings{})
}

func TestEventDispatcher_PublishErrorIsSwallowed(t *testing.T) {
	devices := mockUsecase.NewMockDeviceUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewEventDispatcher(devices, publisher, newTestLogger())

	devices.EXPECT().ActiveTokens(mock.Anything).Return([]string{"token-1"}, nil)
	publisher.EXPECT().PublishWalletEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), entity.EventAlertFallback, entity.WalletStatus{}, entity.Settings{})
	})
}

func TestEventDispatcher_NilIsNoop(t *testing.T) {
	var dispatcher *EventDispatcher

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), entity.EventGeofenceBreach, entity.WalletStatus{}, entity.Settings{})
	})

	NewEventDispatcher(mockUsecase.NewMockDeviceUsecase(t), nil, newTestLogger()).
		Dispatch(context.Background(), entity.EventGeofenceBreach, entity.WalletStatus{}, entity.Settings{})
}
