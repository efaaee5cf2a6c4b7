package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	require.NotNil(t, cfg.Wallet)
	assert.True(t, cfg.Wallet.SeedDemoItems)
	assert.Equal(t, 92, cfg.Wallet.InitialBattery)
	assert.InDelta(t, 46.1966, cfg.Wallet.InitialLatitude, 1e-9)

	assert.Equal(t, ProximityModeSimulated, cfg.Proximity.Mode)
	assert.True(t, cfg.Geofence.Enabled)
	assert.Equal(t, 50.0, cfg.Geofence.DefaultRadius)
	assert.Equal(t, PositionSourceSimulated, cfg.Position.Source)
	assert.Equal(t, 3*time.Second, cfg.Alert.Cooldown)
	assert.Equal(t, 24000, cfg.Alert.SampleRate)
	assert.Equal(t, "Kore", cfg.Alert.Voice)
	assert.Equal(t, AlertPlayerWAV, cfg.Alert.Player)
	assert.Equal(t, "gemini-2.5-flash", cfg.Assistant.Model)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Nil(t, cfg.MQTT)
	assert.Equal(t, 8081, cfg.Notifier.Port)
	assert.Nil(t, cfg.PubSub)
}

func TestApplyDefaults_LocalEndpointFollowsNotifierPort(t *testing.T) {
	cfg := &Config{
		PubSub:   &PubSubConfig{Provider: "local"},
		Notifier: &NotifierConfig{Port: 9090},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, "http://localhost:9090/push", cfg.PubSub.LocalEndpoint)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{Mode: ProximityModeHaversine},
		Geofence:  &GeofenceConfig{Enabled: false, DefaultRadius: 120},
		MQTT:      &MQTTConfig{Broker: "tcp://localhost:1883", PositionTopic: "phones/me"},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, ProximityModeHaversine, cfg.Proximity.Mode)
	assert.False(t, cfg.Geofence.Enabled)
	assert.Equal(t, 120.0, cfg.Geofence.DefaultRadius)
	assert.Equal(t, "phones/me", cfg.MQTT.PositionTopic)
	assert.Equal(t, "safewallet/wallet/telemetry", cfg.MQTT.TelemetryTopic)
	assert.Equal(t, "safewallet-server", cfg.MQTT.ClientID)
}
