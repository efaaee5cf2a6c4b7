package service

import (
	"context"

	"safewallet/internal/domain/entity"
)

// Subscription is an active source subscription. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// PositionSource streams the user's position.
type PositionSource interface {
	// Subscribe delivers each valid fix to onPosition and each failure to onError.
	// Neither callback is invoked after Unsubscribe returns.
	Subscribe(ctx context.Context, onPosition func(entity.Coordinate), onError func(error)) (Subscription, error)
}

// TelemetrySource streams reports from the wallet hardware.
type TelemetrySource interface {
	SubscribeTelemetry(ctx context.Context, onTelemetry func(entity.WalletTelemetry), onError func(error)) (Subscription, error)
}

// PositionSink accepts positions pushed by clients over HTTP.
type PositionSink interface {
	Push(ctx context.Context, coord entity.Coordinate) error
}

// ProximityEstimator computes the distance in meters between the user and the wallet
type ProximityEstimator interface {
	Estimate(user, wallet entity.Coordinate) float64
}
