package position

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/infra/mqtt"
)

// ErrInvalidPayload is reported for messages that carry no valid position.
var ErrInvalidPayload = errors.New("invalid position payload")

// Subscriber is the MQTT client surface used by the source.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler mqtt.MessageHandler) error
	Unsubscribe(topic string)
}

// MQTTSource reads user positions and wallet telemetry from MQTT topics.
type MQTTSource struct {
	client         Subscriber
	positionTopic  string
	telemetryTopic string
	logger         *slog.Logger
}

// NewMQTTSource creates the MQTT source.
func NewMQTTSource(client Subscriber, positionTopic, telemetryTopic string, logger *slog.Logger) *MQTTSource {
	return &MQTTSource{
		client:         client,
		positionTopic:  positionTopic,
		telemetryTopic: telemetryTopic,
		logger:         logger,
	}
}

// positionPayload accepts both {lat,lng} and {latitude,longitude}.
type positionPayload struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// DecodePosition parses a position message.
func DecodePosition(payload []byte) (entity.Coordinate, error) {
	var p positionPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return entity.Coordinate{}, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	lat, lng := p.Lat, p.Lng
	if lat == nil || lng == nil {
		lat, lng = p.Latitude, p.Longitude
	}
	if lat == nil || lng == nil {
		return entity.Coordinate{}, errors.Wrap(ErrInvalidPayload, "missing coordinates")
	}

	c := entity.Coordinate{Lat: *lat, Lng: *lng}
	if !c.IsValid() {
		return entity.Coordinate{}, errors.Wrap(ErrInvalidPayload, "coordinate out of range")
	}

	return c, nil
}

// DecodeTelemetry parses a wallet telemetry message.
func DecodeTelemetry(payload []byte) (entity.WalletTelemetry, error) {
	var t entity.WalletTelemetry
	if err := json.Unmarshal(payload, &t); err != nil {
		return entity.WalletTelemetry{}, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	return t, nil
}

// Subscribe delivers every valid message on the position topic.
func (s *MQTTSource) Subscribe(ctx context.Context, onPosition func(entity.Coordinate), onError func(error)) (service.Subscription, error) {
	return s.subscribe(ctx, s.positionTopic, func(payload []byte) {
		c, err := DecodePosition(payload)
		if err != nil {
			onError(err)

			return
		}
		onPosition(c)
	})
}

// SubscribeTelemetry delivers every valid message on the telemetry topic.
func (s *MQTTSource) SubscribeTelemetry(ctx context.Context, onTelemetry func(entity.WalletTelemetry), onError func(error)) (service.Subscription, error) {
	return s.subscribe(ctx, s.telemetryTopic, func(payload []byte) {
		t, err := DecodeTelemetry(payload)
		if err != nil {
			onError(err)

			return
		}
		onTelemetry(t)
	})
}

func (s *MQTTSource) subscribe(ctx context.Context, topic string, deliver func([]byte)) (service.Subscription, error) {
	sub := &topicSubscription{client: s.client, topic: topic}

	err := s.client.Subscribe(ctx, topic, func(_ string, payload []byte) {
		sub.mu.Lock()
		defer sub.mu.Unlock()

		if sub.closed {
			return
		}
		deliver(payload)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Subscribed to MQTT topic", slog.String("topic", topic))

	return sub, nil
}

// topicSubscription drops messages that arrive after Unsubscribe.
type topicSubscription struct {
	client Subscriber
	topic  string

	mu     sync.Mutex
	closed bool
}

func (t *topicSubscription) Unsubscribe() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()

		return
	}
	t.closed = true
	t.mu.Unlock()

	t.client.Unsubscribe(t.topic)
}
