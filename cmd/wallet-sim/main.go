// Command wallet-sim publishes a simulated phone position and wallet telemetry over MQTT.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safewallet/internal/domain/entity"

	paho "github.com/eclipse/paho.mqtt.golang"
)

func main() {
	brokerAddr := flag.String("broker", "tcp://localhost:1883", "MQTT broker address, e.g. tcp://localhost:1883")
	positionTopic := flag.String("position-topic", "safewallet/user/position", "Topic for phone positions")
	telemetryTopic := flag.String("telemetry-topic", "safewallet/wallet/telemetry", "Topic for wallet telemetry")
	lat := flag.Float64("lat", 46.1966, "Wallet latitude")
	lng := flag.Float64("lng", 9.0250, "Wallet longitude")
	battery := flag.Int("battery", 92, "Initial wallet battery level")
	drainEvery := flag.Int("drain-every", 10, "Ticks per battery percent lost, 0 disables the drain")
	stride := flag.Float64("stride", 2, "Meters the phone walks per tick")
	maxRange := flag.Float64("max-range", 80, "Distance in meters after which the phone walks back")
	interval := flag.Duration("interval", 2*time.Second, "Interval between published messages")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	clientID := fmt.Sprintf("wallet-sim-%d", time.Now().UnixNano())
	opts := paho.NewClientOptions().AddBroker(*brokerAddr).SetClientID(clientID)
	opts = opts.SetOrderMatters(false)

	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Error("Failed to connect to broker", slog.Any("error", token.Error()))
		os.Exit(1)
	}
	logger.Info("Connected to MQTT broker", slog.String("broker", *brokerAddr), slog.String("client_id", clientID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := newSimulator(
		entity.Coordinate{Lat: *lat, Lng: *lng},
		*battery, *drainEvery, *stride, *maxRange,
		rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	tick := func() {
		position, telemetry := sim.step()
		publish(client, logger, *positionTopic, position)
		publish(client, logger, *telemetryTopic, telemetry)
		logger.Info("Published",
			slog.Float64("lat", position.Lat),
			slog.Float64("lng", position.Lng),
			slog.Int("battery", *telemetry.BatteryLevel),
		)
	}

	tick()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Received shutdown signal, disconnecting")
			client.Disconnect(250)

			return
		case <-ticker.C:
			tick()
		}
	}
}

func publish(client paho.Client, logger *slog.Logger, topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode payload", slog.Any("error", err))

		return
	}

	token := client.Publish(topic, 0, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		logger.Warn("Publish failed", slog.String("topic", topic), slog.Any("error", err))
	}
}
