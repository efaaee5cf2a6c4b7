package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishFunc sends one message and blocks until the server assigns its id
type publishFunc func(ctx context.Context, msg *pubsub.Message) (string, error)

// googlePubSubPublisher sends wallet events to a Cloud Pub/Sub topic that the
// notifier subscribes to with a push subscription
type googlePubSubPublisher struct {
	topic   string
	publish publishFunc
	release func() error
	logger  *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and checks that it exists
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Fail on start rather than on the first breach
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	topic := client.Publisher(topicID)

	return newGooglePublisher(topicPath,
		func(ctx context.Context, msg *pubsub.Message) (string, error) {
			return topic.Publish(ctx, msg).Get(ctx)
		},
		func() error {
			topic.Stop()

			return client.Close()
		},
		logger,
	), nil
}

func newGooglePublisher(topic string, publish publishFunc, release func() error, logger *slog.Logger) *googlePubSubPublisher {
	return &googlePubSubPublisher{
		topic:   topic,
		publish: publish,
		release: release,
		logger:  logger,
	}
}

// PublishWalletEvent publishes the event as JSON with its routing attributes
func (p *googlePubSubPublisher) PublishWalletEvent(ctx context.Context, event *entity.WalletEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s event to %s", event.Type, p.topic)
	}

	p.logger.Info("[GooglePubSub] Wallet event published",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("server_id", serverID),
		slog.Int("device_count", len(event.Tokens)),
	)

	return nil
}

// Close flushes pending messages and closes the client
func (p *googlePubSubPublisher) Close() error {
	if p.release == nil {
		return nil
	}

	return errors.WithStack(p.release())
}
