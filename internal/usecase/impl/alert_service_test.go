package impl

import (
	"context"
	"testing"
	"time"

	"safewallet/internal/domain/entity"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"
	"safewallet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service   *alertService
	synth     *mockService.MockSpeechSynthesizer
	player    *mockService.MockAudioPlayer
	status    *mockUsecase.MockDeviceStatusUsecase
	settings  *mockUsecase.MockSettingsUsecase
	devices   *mockUsecase.MockDeviceUsecase
	publisher *mockService.MockEventPublisher

	// cooldowns collects the release callbacks scheduled by TriggerAlert.
	cooldowns []func()
	delays    []time.Duration
}

func createTestAlertService(t *testing.T) *alertServiceFixtures {
	fx := &alertServiceFixtures{
		synth:     mockService.NewMockSpeechSynthesizer(t),
		player:    mockService.NewMockAudioPlayer(t),
		status:    mockUsecase.NewMockDeviceStatusUsecase(t),
		settings:  mockUsecase.NewMockSettingsUsecase(t),
		devices:   mockUsecase.NewMockDeviceUsecase(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	events := NewEventDispatcher(fx.devices, fx.publisher, newTestLogger())
	svc := NewAlertService(newTestConfig(), fx.synth, fx.player, fx.status, fx.settings, events, newTestLogger()).(*alertService)
	svc.afterFunc = func(d time.Duration, f func()) *time.Timer {
		fx.delays = append(fx.delays, d)
		fx.cooldowns = append(fx.cooldowns, f)

		return nil
	}
	fx.service = svc

	return fx
}

func testClip() *entity.AudioClip {
	return &entity.AudioClip{
		SampleRate: 24000,
		Channels:   1,
		Samples:    make([]float32, 2400),
		PCM:        make([]byte, 4800),
	}
}

func TestAlertService_PlaysSynthesizedPhrase(t *testing.T) {
	fx := createTestAlertService(t)
	clip := testClip()

	fx.synth.EXPECT().Synthesize(mock.Anything, "SafeWallet è qui. Sicurezza attiva.").Return(clip, nil).Once()
	fx.player.EXPECT().Play(mock.Anything, clip).Return(nil).Once()

	result, err := fx.service.TriggerAlert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &usecase.AlertResult{Triggered: true, Played: true}, result)

	latest, ok := fx.service.LatestClip()
	assert.True(t, ok)
	assert.Same(t, clip, latest)

	require.Len(t, fx.delays, 1)
	assert.Equal(t, 3*time.Second, fx.delays[0])
}

func TestAlertService_SecondTriggerDuringCooldownIsIgnored(t *testing.T) {
	fx := createTestAlertService(t)
	clip := testClip()

	fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(clip, nil).Once()
	fx.player.EXPECT().Play(mock.Anything, clip).Return(nil).Once()

	first, err := fx.service.TriggerAlert(context.Background())
	require.NoError(t, err)
	assert.True(t, first.Triggered)

	second, err := fx.service.TriggerAlert(context.Background())
	require.NoError(t, err)
	assert.False(t, second.Triggered)
	assert.False(t, second.Played)
}

func TestAlertService_TriggerAfterCooldown(t *testing.T) {
	fx := createTestAlertService(t)
	clip := testClip()

	fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(clip, nil).Twice()
	fx.player.EXPECT().Play(mock.Anything, clip).Return(nil).Twice()

	_, err := fx.service.TriggerAlert(context.Background())
	require.NoError(t, err)

	require.Len(t, fx.cooldowns, 1)
	fx.cooldowns[0]()

	result, err := fx.service.TriggerAlert(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Played)
}

func TestAlertService_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx *alertServiceFixtures)
	}{
		{
			name: "synthesis error",
			setup: func(fx *alertServiceFixtures) {
				fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))
			},
		},
		{
			name: "no audio returned",
			setup: func(fx *alertServiceFixtures) {
				fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(&entity.AudioClip{SampleRate: 24000, Channels: 1}, nil)
			},
		},
		{
			name: "nil clip",
			setup: func(fx *alertServiceFixtures) {
				fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(nil, nil)
			},
		},
		{
			name: "playback error",
			setup: func(fx *alertServiceFixtures) {
				clip := testClip()
				fx.synth.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(clip, nil)
				fx.player.EXPECT().Play(mock.Anything, clip).Return(errors.New("broker offline"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlertService(t)
			tt.setup(fx)

			fx.status.EXPECT().Status().Return(entity.WalletStatus{})
			fx.settings.EXPECT().Settings().Return(entity.Settings{})
			fx.devices.EXPECT().ActiveTokens(mock.Anything).Return([]string{"token-1"}, nil)
			fx.publisher.EXPECT().
				PublishWalletEvent(mock.Anything, mock.MatchedBy(func(e *entity.WalletEvent) bool {
					return e.Type == entity.EventAlertFallback && e.Body == AlertFallbackText
				})).
				Return(nil).
				Once()

			result, err := fx.service.TriggerAlert(context.Background())
			require.NoError(t, err)
			assert.True(t, result.Triggered)
			assert.False(t, result.Played)
			assert.Equal(t, AlertFallbackText, result.Fallback)

			_, ok := fx.service.LatestClip()
			assert.False(t, ok)

			// the cool-down still applies after a failure
			assert.Len(t, fx.cooldowns, 1)
		})
	}
}
