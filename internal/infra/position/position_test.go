package position

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/infra/mqtt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

func TestDecodePosition(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    entity.Coordinate
		wantErr bool
	}{
		{name: "short keys", payload: `{"lat":46.19,"lng":9.02}`, want: entity.Coordinate{Lat: 46.19, Lng: 9.02}},
		{name: "long keys", payload: `{"latitude":46.19,"longitude":9.02}`, want: entity.Coordinate{Lat: 46.19, Lng: 9.02}},
		{name: "zero is a valid fix", payload: `{"lat":0,"lng":0}`, want: entity.Coordinate{}},
		{name: "missing lng", payload: `{"lat":46.19}`, wantErr: true},
		{name: "out of range", payload: `{"lat":120,"lng":9.02}`, wantErr: true},
		{name: "not json", payload: `46.19,9.02`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePosition([]byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTelemetry(t *testing.T) {
	got, err := DecodeTelemetry([]byte(`{"battery_level":40,"location":{"lat":46.2,"lng":9.03}}`))
	require.NoError(t, err)

	require.NotNil(t, got.BatteryLevel)
	assert.Equal(t, 40, *got.BatteryLevel)
	assert.Nil(t, got.IsConnected)
	require.NotNil(t, got.Location)
	assert.Equal(t, entity.Coordinate{Lat: 46.2, Lng: 9.03}, *got.Location)

	_, err = DecodeTelemetry([]byte(`{`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

type fakeBroker struct {
	mu           sync.Mutex
	handlers     map[string]mqtt.MessageHandler
	unsubscribed []string
	subErr       error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{handlers: make(map[string]mqtt.MessageHandler)}
}

func (f *fakeBroker) Subscribe(_ context.Context, topic string, handler mqtt.MessageHandler) error {
	if f.subErr != nil {
		return f.subErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[topic] = handler

	return nil
}

func (f *fakeBroker) Unsubscribe(topic string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = append(f.unsubscribed, topic)
}

// deliver calls the handler even after unsubscribe, like an in-flight paho callback.
func (f *fakeBroker) deliver(topic, payload string) {
	f.mu.Lock()
	handler := f.handlers[topic]
	f.mu.Unlock()

	handler(topic, []byte(payload))
}

func TestMQTTSource_Subscribe(t *testing.T) {
	broker := newFakeBroker()
	src := NewMQTTSource(broker, "safewallet/user/position", "safewallet/wallet/telemetry", newTestLogger())

	var positions []entity.Coordinate
	var failures []error

	sub, err := src.Subscribe(context.Background(),
		func(c entity.Coordinate) { positions = append(positions, c) },
		func(err error) { failures = append(failures, err) },
	)
	require.NoError(t, err)

	broker.deliver("safewallet/user/position", `{"lat":46.19,"lng":9.02}`)
	broker.deliver("safewallet/user/position", `garbage`)
	broker.deliver("safewallet/user/position", `{"latitude":46.2,"longitude":9.03}`)

	sub.Unsubscribe()
	sub.Unsubscribe()
	broker.deliver("safewallet/user/position", `{"lat":1,"lng":1}`)

	assert.Equal(t, []entity.Coordinate{{Lat: 46.19, Lng: 9.02}, {Lat: 46.2, Lng: 9.03}}, positions)
	assert.Len(t, failures, 1)
	assert.Equal(t, []string{"safewallet/user/position"}, broker.unsubscribed)
}

func TestMQTTSource_SubscribeTelemetry(t *testing.T) {
	broker := newFakeBroker()
	src := NewMQTTSource(broker, "safewallet/user/position", "safewallet/wallet/telemetry", newTestLogger())

	var reports []entity.WalletTelemetry
	sub, err := src.SubscribeTelemetry(context.Background(),
		func(t entity.WalletTelemetry) { reports = append(reports, t) },
		func(error) {},
	)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	broker.deliver("safewallet/wallet/telemetry", `{"is_connected":false}`)

	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].IsConnected)
	assert.False(t, *reports[0].IsConnected)
}

func TestMQTTSource_SubscribeError(t *testing.T) {
	broker := newFakeBroker()
	broker.subErr = assert.AnError
	src := NewMQTTSource(broker, "p", "t", newTestLogger())

	sub, err := src.Subscribe(context.Background(), func(entity.Coordinate) {}, func(error) {})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, sub)
}

func TestSimulatedSource_StreamsUntilUnsubscribed(t *testing.T) {
	cfg := testConfig()
	cfg.Position.Interval = time.Millisecond
	src := NewSimulatedSource(cfg, newTestLogger())

	var mu sync.Mutex
	var fixes []entity.Coordinate

	sub, err := src.Subscribe(context.Background(), func(c entity.Coordinate) {
		mu.Lock()
		fixes = append(fixes, c)
		mu.Unlock()
	}, func(error) {})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(fixes) >= 3
	}, time.Second, time.Millisecond)

	sub.Unsubscribe()

	mu.Lock()
	count := len(fixes)
	first := fixes[0]
	mu.Unlock()

	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, fixes, count, "no fix after unsubscribe")
	assert.Equal(t, entity.Coordinate{Lat: 46.1966, Lng: 9.0250}, first)
	for _, c := range fixes {
		assert.True(t, c.IsValid())
		assert.InDelta(t, 46.1966, c.Lat, 0.01)
		assert.InDelta(t, 9.0250, c.Lng, 0.01)
	}
}

func TestSimulatedSource_Step(t *testing.T) {
	cfg := testConfig()

	cfg.Position.HighAccuracy = true
	assert.InDelta(t, highAccuracyStep, NewSimulatedSource(cfg, newTestLogger()).step, 0)

	cfg.Position.HighAccuracy = false
	src := NewSimulatedSource(cfg, newTestLogger())
	assert.InDelta(t, lowAccuracyStep, src.step, 0)

	src.float = func() float64 { return 1 }
	next := src.next(src.origin)
	assert.InDelta(t, src.origin.Lat+lowAccuracyStep, next.Lat, 1e-12)
}

func TestHTTPSource(t *testing.T) {
	src := NewHTTPSource()
	coord := entity.Coordinate{Lat: 46.19, Lng: 9.02}

	assert.ErrorIs(t, src.Push(context.Background(), coord), ErrNotSubscribed)

	var got []entity.Coordinate
	sub, err := src.Subscribe(context.Background(), func(c entity.Coordinate) { got = append(got, c) }, func(error) {})
	require.NoError(t, err)

	require.NoError(t, src.Push(context.Background(), coord))
	assert.Equal(t, []entity.Coordinate{coord}, got)

	sub.Unsubscribe()
	assert.ErrorIs(t, src.Push(context.Background(), coord), ErrNotSubscribed)
}

func TestHTTPSource_StaleUnsubscribeKeepsNewer(t *testing.T) {
	src := NewHTTPSource()

	old, err := src.Subscribe(context.Background(), func(entity.Coordinate) {}, func(error) {})
	require.NoError(t, err)

	calls := 0
	_, err = src.Subscribe(context.Background(), func(entity.Coordinate) { calls++ }, func(error) {})
	require.NoError(t, err)

	old.Unsubscribe()
	require.NoError(t, src.Push(context.Background(), entity.Coordinate{}))
	assert.Equal(t, 1, calls)
}

func TestNew(t *testing.T) {
	cfg := testConfig()

	out, err := New(Params{Config: cfg, Logger: newTestLogger()})
	require.NoError(t, err)
	assert.IsType(t, &SimulatedSource{}, out.Source)
	assert.Nil(t, out.Sink)
	assert.Nil(t, out.Telemetry)

	cfg.Position.Source = config.PositionSourceHTTP
	out, err = New(Params{Config: cfg, Logger: newTestLogger()})
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, out.Source)
	assert.Same(t, out.Source, out.Sink)

	cfg.Position.Source = config.PositionSourceMQTT
	_, err = New(Params{Config: cfg, Logger: newTestLogger()})
	assert.ErrorIs(t, err, ErrMQTTRequired)

	cfg.Position.Source = "gps"
	_, err = New(Params{Config: cfg, Logger: newTestLogger()})
	assert.Error(t, err)
}
