// Package pubsub carries wallet events from the dashboard to the notifier.
package pubsub

import (
	"context"
	"log/slog"

	"safewallet/config"
	"safewallet/internal/domain/constants"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.NotificationService `optional:"true"`
}

// NewEventPublisher picks the transport named by pubsub.provider. Without a
// pubsub section events are only logged.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newProviderPublisher(params.Ctx, params.Config.PubSub, params.Notifier, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing EventPublisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, notifier service.NotificationService, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, wallet events will only be logged")

		return &noopPublisher{logger: logger}, nil
	}

	logger = logger.With(slog.String("provider", cfg.Provider))

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Posting wallet events to the local notifier", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.Errorf("google provider needs projectId and topicId (got %q, %q)", cfg.ProjectID, cfg.TopicID)
		}
		logger.Info("Publishing wallet events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case constants.PubSubProviderDirect:
		if notifier == nil {
			return nil, errors.New("firebase is required for direct provider")
		}
		logger.Info("Sending wallet events directly through Firebase")

		return NewDirectPublisher(notifier, logger), nil
	}

	return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
}

// noopPublisher drops events when no transport is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishWalletEvent(_ context.Context, event *entity.WalletEvent) error {
	p.logger.Debug("[NoopPubSub] Dropping wallet event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("title", event.Title),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// eventAttributes are set on every message so subscriptions can filter by
// type and the notifier can keep the request id
func eventAttributes(event *entity.WalletEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
