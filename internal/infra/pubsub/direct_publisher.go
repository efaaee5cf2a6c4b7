package pubsub

import (
	"context"
	"log/slog"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"

	"github.com/pkg/errors"
)

// directPublisher skips the bus and sends the push notification in-process.
// Used for single-node installs without a notifier worker.
type directPublisher struct {
	notifier service.NotificationService
	logger   *slog.Logger
}

// NewDirectPublisher creates a publisher backed by the notification service
func NewDirectPublisher(notifier service.NotificationService, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{notifier: notifier, logger: logger}
}

func (p *directPublisher) PublishWalletEvent(ctx context.Context, event *entity.WalletEvent) error {
	report, err := p.notifier.Notify(ctx, event.Tokens, service.PushFor(event))
	if err != nil {
		return errors.Wrap(err, "send wallet event")
	}

	p.logger.Info("[DirectPush] Wallet event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("invalid_tokens", len(report.InvalidTokens)),
	)

	return nil
}

func (p *directPublisher) Close() error {
	return nil
}
