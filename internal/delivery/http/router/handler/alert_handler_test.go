package handler

import (
	"errors"
	"net/http"
	"testing"

	"safewallet/internal/domain/entity"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"
	"safewallet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertHandlerFixture struct {
	e       *echo.Echo
	alertUC *mockUsecase.MockAlertUsecase
	encoder *mockService.MockClipEncoder
}

func createTestAlertHandler(t *testing.T) *alertHandlerFixture {
	uc := mockUsecase.NewMockAlertUsecase(t)
	encoder := mockService.NewMockClipEncoder(t)
	h := NewAlertHandler(uc, encoder)

	e := newTestEcho()
	e.POST("/api/alerts", h.TriggerAlert)
	e.GET("/api/alerts/latest.wav", h.LatestClip)

	return &alertHandlerFixture{e: e, alertUC: uc, encoder: encoder}
}

func TestAlertHandler_TriggerAlert(t *testing.T) {
	tests := []struct {
		name       string
		result     *usecase.AlertResult
		wantStatus int
	}{
		{name: "played", result: &usecase.AlertResult{Triggered: true, Played: true}, wantStatus: http.StatusOK},
		{name: "fallback", result: &usecase.AlertResult{Triggered: true, Fallback: "Il portafoglio è qui!"}, wantStatus: http.StatusOK},
		{name: "already in flight", result: &usecase.AlertResult{}, wantStatus: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlertHandler(t)
			fx.alertUC.EXPECT().TriggerAlert(mock.Anything).Return(tt.result, nil)

			rec := serve(fx.e, http.MethodPost, "/api/alerts", "")
			require.Equal(t, tt.wantStatus, rec.Code)

			var result usecase.AlertResult
			decodeData(t, rec, &result)
			assert.Equal(t, *tt.result, result)
		})
	}
}

func TestAlertHandler_LatestClip(t *testing.T) {
	clip := &entity.AudioClip{SampleRate: 24000, Channels: 1, PCM: []byte{0x00, 0x10, 0xff, 0x7f}}

	t.Run("no clip yet", func(t *testing.T) {
		fx := createTestAlertHandler(t)
		fx.alertUC.EXPECT().LatestClip().Return(nil, false)

		rec := serve(fx.e, http.MethodGet, "/api/alerts/latest.wav", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ALERT_NO_CLIP", decode(t, rec).Error.Code)
	})

	t.Run("wav", func(t *testing.T) {
		fx := createTestAlertHandler(t)
		fx.alertUC.EXPECT().LatestClip().Return(clip, true)
		fx.encoder.EXPECT().EncodeWAV(clip).Return([]byte("RIFF....WAVE"), nil)

		rec := serve(fx.e, http.MethodGet, "/api/alerts/latest.wav", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "audio/wav", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "RIFF....WAVE", rec.Body.String())
	})

	t.Run("encoding failure", func(t *testing.T) {
		fx := createTestAlertHandler(t)
		fx.alertUC.EXPECT().LatestClip().Return(clip, true)
		fx.encoder.EXPECT().EncodeWAV(clip).Return(nil, errors.New("short write"))

		rec := serve(fx.e, http.MethodGet, "/api/alerts/latest.wav", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
