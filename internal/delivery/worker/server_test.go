package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"safewallet/config"
	"safewallet/internal/delivery/worker/handler"
	mockService "safewallet/internal/mocks/service"
	mockUsecase "safewallet/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNewEcho_Routes(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:          cfg,
		Logger:          logger,
		NotificationSvc: mockService.NewMockNotificationService(t),
		DeviceUC:        mockUsecase.NewMockDeviceUsecase(t),
	})
	e := NewEcho(cfg, logger, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
