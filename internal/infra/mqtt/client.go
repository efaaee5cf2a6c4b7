// Package mqtt wraps the paho client shared by the position feed, the telemetry feed and the speaker player.
package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/lifecycle"
	"safewallet/internal/errors"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const disconnectQuiesce = 250 // milliseconds

// MessageHandler receives the payload published on a subscribed topic.
type MessageHandler func(topic string, payload []byte)

// Client is a connected MQTT client.
type Client struct {
	client  paho.Client
	qos     byte
	timeout time.Duration
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MQTT client, or nil when no broker is configured.
// The connection is opened on start and closed on stop.
func New(params Params) (*Client, error) {
	cfg := params.Config.MQTT
	if cfg == nil || cfg.Broker == "" {
		return nil, nil // MQTT is optional
	}

	c := newClient(cfg, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return c.Connect(ctx)
		},
		OnStop: func(_ context.Context) error {
			c.Disconnect()

			return nil
		},
	})

	return c, nil
}

func newClient(cfg *config.MQTTConfig, logger *slog.Logger) *Client {
	logger = logger.With(slog.String("broker", cfg.Broker))

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetOrderMatters(false).
		SetAutoReconnect(true).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger.Warn("MQTT connection lost", slog.Any("error", err))
		}).
		SetOnConnectHandler(func(paho.Client) {
			logger.Info("MQTT connected")
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	return &Client{
		client:  paho.NewClient(opts),
		qos:     cfg.QoS,
		timeout: cfg.ConnectTimeout,
		logger:  logger,
	}
}

// Connect opens the broker connection.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.wait(ctx, c.client.Connect()); err != nil {
		return errors.Wrap(err, "failed to connect to MQTT broker")
	}

	return nil
}

// Disconnect closes the broker connection.
func (c *Client) Disconnect() {
	if c.client.IsConnected() {
		c.client.Disconnect(disconnectQuiesce)
		c.logger.Info("MQTT disconnected")
	}
}

// Publish sends a payload on a topic and waits for the broker to accept it.
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := c.wait(ctx, c.client.Publish(topic, c.qos, false, payload)); err != nil {
		return errors.Wrapf(err, "failed to publish on %s", topic)
	}

	return nil
}

// Subscribe registers a handler for a topic.
func (c *Client) Subscribe(ctx context.Context, topic string, handler MessageHandler) error {
	token := c.client.Subscribe(topic, c.qos, func(_ paho.Client, msg paho.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if err := c.wait(ctx, token); err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	c.logger.Debug("MQTT subscribed", slog.String("topic", topic))

	return nil
}

// Unsubscribe removes the handler of a topic.
func (c *Client) Unsubscribe(topic string) {
	token := c.client.Unsubscribe(topic)
	if !token.WaitTimeout(c.timeout) {
		c.logger.Warn("MQTT unsubscribe timed out", slog.String("topic", topic))

		return
	}
	if err := token.Error(); err != nil {
		c.logger.Warn("MQTT unsubscribe failed", slog.String("topic", topic), slog.Any("error", err))
	}
}

func (c *Client) wait(ctx context.Context, token paho.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return fmt.Errorf("mqtt: %w", ctx.Err())
	}
}
