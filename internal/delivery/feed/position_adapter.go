// Package feed connects the streaming sources to the wallet status.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"safewallet/internal/delivery"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/usecase"

	"go.uber.org/fx"
)

// ErrAlreadySubscribed is returned by Serve while another Serve call is running.
var ErrAlreadySubscribed = errors.New("position feed already subscribed")

// Params holds dependencies for the PositionAdapter, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Source    service.PositionSource
	Telemetry service.TelemetrySource `optional:"true"`
	StatusUC  usecase.DeviceStatusUsecase
	Logger    *slog.Logger
}

// PositionAdapter pushes every position fix into the status use case and,
// when a telemetry source exists, every hardware report as well.
type PositionAdapter struct {
	source    service.PositionSource
	telemetry service.TelemetrySource
	statusUC  usecase.DeviceStatusUsecase
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds the adapter as a delivery and stops it with the application.
func New(params Params) delivery.Delivery {
	adapter := NewPositionAdapter(params.Source, params.Telemetry, params.StatusUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: adapter.Stop,
	})

	return adapter
}

// NewPositionAdapter creates an adapter. telemetry may be nil.
func NewPositionAdapter(
	source service.PositionSource,
	telemetry service.TelemetrySource,
	statusUC usecase.DeviceStatusUsecase,
	logger *slog.Logger,
) *PositionAdapter {
	return &PositionAdapter{
		source:    source,
		telemetry: telemetry,
		statusUC:  statusUC,
		logger:    logger,
	}
}

// Serve subscribes to the sources and blocks until ctx is done or Stop is called.
// Subscriptions are released before Serve returns.
func (a *PositionAdapter) Serve(ctx context.Context) error {
	ctx, done, err := a.begin(ctx)
	if err != nil {
		return err
	}
	defer a.end(done)

	sub, err := a.source.Subscribe(ctx, func(coord entity.Coordinate) {
		a.statusUC.OnPositionUpdate(ctx, coord)
	}, a.onError("position"))
	if err != nil {
		return errors.Wrap(err, "subscribe position source")
	}
	defer sub.Unsubscribe()

	if a.telemetry != nil {
		telemetrySub, err := a.telemetry.SubscribeTelemetry(ctx, func(telemetry entity.WalletTelemetry) {
			if _, err := a.statusUC.ApplyTelemetry(ctx, telemetry); err != nil {
				a.logger.Warn("[Feed] Telemetry rejected", slog.Any("error", err))
			}
		}, a.onError("telemetry"))
		if err != nil {
			return errors.Wrap(err, "subscribe telemetry source")
		}
		defer telemetrySub.Unsubscribe()
	}

	a.logger.Info("[Feed] Subscribed", slog.Bool("telemetry", a.telemetry != nil))

	<-ctx.Done()

	a.logger.Info("[Feed] Unsubscribing")

	return nil
}

// Stop cancels a running Serve and waits for its subscriptions to be released.
func (a *PositionAdapter) Stop(ctx context.Context) error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (a *PositionAdapter) begin(parent context.Context) (context.Context, chan struct{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return nil, nil, ErrAlreadySubscribed
	}

	ctx, cancel := context.WithCancel(parent)
	a.cancel = cancel
	a.done = make(chan struct{})

	return ctx, a.done, nil
}

func (a *PositionAdapter) end(done chan struct{}) {
	a.mu.Lock()
	a.cancel()
	a.cancel = nil
	a.done = nil
	a.mu.Unlock()

	close(done)
}

// onError logs source failures; the last known values stay in place.
func (a *PositionAdapter) onError(feed string) func(error) {
	return func(err error) {
		a.logger.Warn("[Feed] Source error", slog.String("feed", feed), slog.Any("error", err))
	}
}
