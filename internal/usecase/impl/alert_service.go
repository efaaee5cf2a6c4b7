package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"safewallet/config"
	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"
)

// AlertFallbackText is shown when the wallet could not speak.
const AlertFallbackText = "Bip bip! (TTS Fallito)"

type alertService struct {
	mu       sync.Mutex
	inFlight bool
	latest   *entity.AudioClip

	synth     service.SpeechSynthesizer
	player    service.AudioPlayer
	status    usecase.DeviceStatusUsecase
	settings  usecase.SettingsUsecase
	events    *EventDispatcher
	phrase    string
	cooldown  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewAlertService creates the voice alert dispatcher
func NewAlertService(
	cfg *config.Config,
	synth service.SpeechSynthesizer,
	player service.AudioPlayer,
	status usecase.DeviceStatusUsecase,
	settings usecase.SettingsUsecase,
	events *EventDispatcher,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		synth:     synth,
		player:    player,
		status:    status,
		settings:  settings,
		events:    events,
		phrase:    cfg.Alert.Phrase,
		cooldown:  cfg.Alert.Cooldown,
		timeout:   cfg.Alert.Timeout,
		logger:    logger,
		afterFunc: time.AfterFunc,
	}
}

// TriggerAlert speaks the alert phrase through the wallet unless an alert is already in flight
func (s *alertService) TriggerAlert(ctx context.Context) (*usecase.AlertResult, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()

		return &usecase.AlertResult{Triggered: false}, nil
	}
	s.inFlight = true
	s.mu.Unlock()

	// The in-flight flag clears after the cool-down whatever happened to the audio.
	defer s.afterFunc(s.cooldown, s.release)

	logger := deliverycontext.LoggerFrom(ctx, s.logger)

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	clip, err := s.synth.Synthesize(callCtx, s.phrase)
	if err != nil {
		logger.Error("Speech synthesis failed", slog.Any("error", err))

		return s.fallback(ctx), nil
	}
	if clip == nil || clip.Frames() == 0 {
		logger.Warn("Speech synthesis returned no audio")

		return s.fallback(ctx), nil
	}

	if err := s.player.Play(callCtx, clip); err != nil {
		logger.Error("Failed to play alert", slog.Any("error", err))

		return s.fallback(ctx), nil
	}

	s.mu.Lock()
	s.latest = clip
	s.mu.Unlock()

	logger.Info("Alert played", slog.Duration("duration", clip.Duration()))

	return &usecase.AlertResult{Triggered: true, Played: true}, nil
}

// LatestClip returns the last clip that was played
func (s *alertService) LatestClip() (*entity.AudioClip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.latest != nil
}

func (s *alertService) fallback(ctx context.Context) *usecase.AlertResult {
	s.events.Dispatch(ctx, entity.EventAlertFallback, s.status.Status(), s.settings.Settings())

	return &usecase.AlertResult{Triggered: true, Fallback: AlertFallbackText}
}

func (s *alertService) release() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
