package service

import (
	"context"

	"safewallet/internal/domain/entity"
)

// EventPublisher hands wallet events to whatever delivers the pushes.
type EventPublisher interface {
	// PublishWalletEvent returns once the transport accepted the event.
	PublishWalletEvent(ctx context.Context, event *entity.WalletEvent) error
	Close() error
}
