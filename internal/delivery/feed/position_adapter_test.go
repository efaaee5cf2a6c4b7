package feed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveAsync(ctx context.Context, adapter *PositionAdapter) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- adapter.Serve(ctx)
	}()

	return errCh
}

func TestPositionAdapter_ForwardsPositions(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	sub := mockService.NewMockSubscription(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	fix := entity.Coordinate{Lat: 46.1966, Lng: 9.025}
	updated := make(chan entity.Coordinate, 1)

	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, onPosition func(entity.Coordinate), onError func(error)) (service.Subscription, error) {
			onError(assert.AnError)
			onPosition(fix)

			return sub, nil
		})
	statusUC.EXPECT().OnPositionUpdate(mock.Anything, fix).
		Run(func(_ context.Context, coord entity.Coordinate) { updated <- coord }).
		Return(entity.WalletStatus{})
	sub.EXPECT().Unsubscribe().Return().Once()

	adapter := NewPositionAdapter(source, nil, statusUC, testLogger())
	ctx, cancel := context.WithCancel(t.Context())
	errCh := serveAsync(ctx, adapter)

	select {
	case got := <-updated:
		assert.Equal(t, fix, got)
	case <-time.After(time.Second):
		t.Fatal("position was not forwarded")
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestPositionAdapter_SecondServeRejected(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	sub := mockService.NewMockSubscription(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	subscribed := make(chan struct{})
	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(entity.Coordinate), func(error)) (service.Subscription, error) {
			close(subscribed)

			return sub, nil
		}).Once()
	sub.EXPECT().Unsubscribe().Return().Once()

	adapter := NewPositionAdapter(source, nil, statusUC, testLogger())
	errCh := serveAsync(t.Context(), adapter)
	<-subscribed

	assert.ErrorIs(t, adapter.Serve(t.Context()), ErrAlreadySubscribed)

	require.NoError(t, adapter.Stop(t.Context()))
	require.NoError(t, <-errCh)
}

func TestPositionAdapter_StopWaitsForUnsubscribe(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	sub := mockService.NewMockSubscription(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	subscribed := make(chan struct{})
	unsubscribed := false
	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(entity.Coordinate), func(error)) (service.Subscription, error) {
			close(subscribed)

			return sub, nil
		})
	sub.EXPECT().Unsubscribe().Run(func() { unsubscribed = true }).Return()

	adapter := NewPositionAdapter(source, nil, statusUC, testLogger())
	errCh := serveAsync(context.Background(), adapter)
	<-subscribed

	require.NoError(t, adapter.Stop(t.Context()))
	assert.True(t, unsubscribed)
	require.NoError(t, <-errCh)

	// stopping an idle adapter is a no-op
	assert.NoError(t, adapter.Stop(t.Context()))
}

func TestPositionAdapter_SubscribeFailure(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	adapter := NewPositionAdapter(source, nil, statusUC, testLogger())
	err := adapter.Serve(t.Context())
	require.ErrorIs(t, err, assert.AnError)

	// the failed attempt released the slot
	assert.NotErrorIs(t, adapter.Serve(t.Context()), ErrAlreadySubscribed)
}

func TestPositionAdapter_ForwardsTelemetry(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	telemetry := mockService.NewMockTelemetrySource(t)
	sub := mockService.NewMockSubscription(t)
	telemetrySub := mockService.NewMockSubscription(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	battery := 41
	report := entity.WalletTelemetry{BatteryLevel: &battery}
	applied := make(chan struct{}, 2)

	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).Return(sub, nil)
	telemetry.EXPECT().SubscribeTelemetry(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, onTelemetry func(entity.WalletTelemetry), _ func(error)) (service.Subscription, error) {
			onTelemetry(report)
			onTelemetry(report)

			return telemetrySub, nil
		})
	statusUC.EXPECT().ApplyTelemetry(mock.Anything, report).
		Run(func(context.Context, entity.WalletTelemetry) { applied <- struct{}{} }).
		Return(entity.WalletStatus{BatteryLevel: battery}, nil).Once()
	statusUC.EXPECT().ApplyTelemetry(mock.Anything, report).
		Run(func(context.Context, entity.WalletTelemetry) { applied <- struct{}{} }).
		Return(entity.WalletStatus{}, assert.AnError).Once()
	telemetrySub.EXPECT().Unsubscribe().Return().Once()
	sub.EXPECT().Unsubscribe().Return().Once()

	adapter := NewPositionAdapter(source, telemetry, statusUC, testLogger())
	ctx, cancel := context.WithCancel(t.Context())
	errCh := serveAsync(ctx, adapter)

	for range 2 {
		select {
		case <-applied:
		case <-time.After(time.Second):
			t.Fatal("telemetry was not forwarded")
		}
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestNew_StopsOnLifecycleStop(t *testing.T) {
	source := mockService.NewMockPositionSource(t)
	sub := mockService.NewMockSubscription(t)
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)

	subscribed := make(chan struct{})
	source.EXPECT().Subscribe(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(entity.Coordinate), func(error)) (service.Subscription, error) {
			close(subscribed)

			return sub, nil
		})
	sub.EXPECT().Unsubscribe().Return()

	lc := fxtest.NewLifecycle(t)
	d := New(Params{Lc: lc, Source: source, StatusUC: statusUC, Logger: testLogger()})

	lc.RequireStart()
	errCh := make(chan error, 1)
	go func() { errCh <- d.Serve(context.Background()) }()
	<-subscribed

	lc.RequireStop()
	require.NoError(t, <-errCh)
}
