package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/infra/mqtt"
)

const latestClipName = "latest.wav"

// Publisher sends a payload on an MQTT topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// NewAudioPlayer returns the player selected by the alert configuration.
func NewAudioPlayer(cfg *config.Config, client *mqtt.Client, logger *slog.Logger) (service.AudioPlayer, error) {
	switch cfg.Alert.Player {
	case config.AlertPlayerWAV, "":
		return NewFilePlayer(cfg.Alert.OutputDir, logger)
	case config.AlertPlayerMQTT:
		if client == nil {
			return nil, errors.New("mqtt alert player requires an mqtt broker")
		}

		return NewMQTTPlayer(client, cfg.MQTT.SpeakerTopic, logger), nil
	case config.AlertPlayerLog:
		return NewLogPlayer(logger), nil
	default:
		return nil, errors.Errorf("unknown alert player %q", cfg.Alert.Player)
	}
}

// FilePlayer writes every clip as a WAV file so it can be played on the host.
type FilePlayer struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewFilePlayer creates the output directory and returns a file player.
func NewFilePlayer(dir string, logger *slog.Logger) (*FilePlayer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create alert output directory")
	}

	return &FilePlayer{dir: dir, logger: logger, now: time.Now}, nil
}

// Play writes the clip to a timestamped file and refreshes latest.wav.
func (p *FilePlayer) Play(_ context.Context, clip *entity.AudioClip) error {
	name := fmt.Sprintf("alert-%s.wav", p.now().UTC().Format("20060102T150405.000"))
	path := filepath.Join(p.dir, name)
	if err := writeWAVFile(path, clip); err != nil {
		return errors.Wrap(err, "write alert clip")
	}

	if err := writeWAVFile(filepath.Join(p.dir, latestClipName), clip); err != nil {
		return errors.Wrap(err, "write latest alert clip")
	}

	p.logger.Info("Alert clip written", slog.String("path", path), slog.Duration("duration", clip.Duration()))

	return nil
}

// MQTTPlayer publishes the clip as a WAV payload to the wallet speaker topic.
type MQTTPlayer struct {
	publisher Publisher
	encoder   service.ClipEncoder
	topic     string
	logger    *slog.Logger
}

// NewMQTTPlayer creates a speaker player.
func NewMQTTPlayer(publisher Publisher, topic string, logger *slog.Logger) *MQTTPlayer {
	return &MQTTPlayer{publisher: publisher, encoder: NewWAVEncoder(), topic: topic, logger: logger}
}

// Play publishes the clip.
func (p *MQTTPlayer) Play(ctx context.Context, clip *entity.AudioClip) error {
	payload, err := p.encoder.EncodeWAV(clip)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, p.topic, payload); err != nil {
		return err
	}

	p.logger.Info("Alert clip sent to wallet speaker", slog.String("topic", p.topic), slog.Duration("duration", clip.Duration()))

	return nil
}

// LogPlayer only records that a clip would have been played.
type LogPlayer struct {
	logger *slog.Logger
}

// NewLogPlayer creates a log player.
func NewLogPlayer(logger *slog.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

// Play logs the clip.
func (p *LogPlayer) Play(_ context.Context, clip *entity.AudioClip) error {
	p.logger.Info("Alert clip played",
		slog.Int("sample_rate", clip.SampleRate),
		slog.Int("frames", clip.Frames()),
		slog.Duration("duration", clip.Duration()),
	)

	return nil
}
