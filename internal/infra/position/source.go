// Package position implements the user position sources and the wallet telemetry source.
package position

import (
	"log/slog"

	"safewallet/config"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/infra/mqtt"

	"go.uber.org/fx"
)

// ErrMQTTRequired is returned when the mqtt source is selected without a broker.
var ErrMQTTRequired = errors.New("mqtt position source requires an mqtt broker")

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *mqtt.Client `optional:"true"`
}

// Result exposes the configured sources. Sink is nil unless the http source is selected,
// Telemetry is nil unless a broker is configured.
type Result struct {
	fx.Out

	Source    service.PositionSource
	Sink      service.PositionSink
	Telemetry service.TelemetrySource
}

// New builds the position source selected by position.source.
func New(params Params) (Result, error) {
	cfg := params.Config
	var out Result

	if params.Client != nil {
		out.Telemetry = NewMQTTSource(params.Client, cfg.MQTT.PositionTopic, cfg.MQTT.TelemetryTopic, params.Logger)
	}

	switch cfg.Position.Source {
	case config.PositionSourceSimulated, "":
		out.Source = NewSimulatedSource(cfg, params.Logger)
	case config.PositionSourceMQTT:
		if params.Client == nil {
			return Result{}, ErrMQTTRequired
		}
		out.Source = NewMQTTSource(params.Client, cfg.MQTT.PositionTopic, cfg.MQTT.TelemetryTopic, params.Logger)
	case config.PositionSourceHTTP:
		src := NewHTTPSource()
		out.Source = src
		out.Sink = src
	default:
		return Result{}, errors.Errorf("unknown position source %q", cfg.Position.Source)
	}

	params.Logger.Info("Position source selected", slog.String("source", cfg.Position.Source))

	return out, nil
}
