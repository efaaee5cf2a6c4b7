package handler

import (
	"net/http"
	"testing"
	"time"

	"safewallet/internal/domain/entity"
	mockUsecase "safewallet/internal/mocks/usecase"
	"safewallet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusHandlerFixture struct {
	e          *echo.Echo
	statusUC   *mockUsecase.MockDeviceStatusUsecase
	positionUC *mockUsecase.MockPositionUsecase
}

func createTestStatusHandler(t *testing.T) *statusHandlerFixture {
	statusUC := mockUsecase.NewMockDeviceStatusUsecase(t)
	positionUC := mockUsecase.NewMockPositionUsecase(t)
	h := NewStatusHandler(StatusHandlerParams{StatusUC: statusUC, PositionUC: positionUC, Logger: newTestLogger()})

	e := newTestEcho()
	e.GET("/api/status", h.GetStatus)
	e.POST("/api/status/telemetry", h.ApplyTelemetry)
	e.POST("/api/position", h.ReportPosition)

	return &statusHandlerFixture{e: e, statusUC: statusUC, positionUC: positionUC}
}

func testStatus() entity.WalletStatus {
	return entity.WalletStatus{
		IsConnected:  true,
		BatteryLevel: 85,
		LastSeen:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Location:     entity.Coordinate{Lat: 46.0037, Lng: 8.9511},
		Distance:     0.4,
		Temperature:  entity.TemperatureVeryHot,
	}
}

func TestStatusHandler_GetStatus(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().Status().Return(testStatus())

	rec := serve(fx.e, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status entity.WalletStatus
	decodeData(t, rec, &status)
	assert.Equal(t, 85, status.BatteryLevel)
	assert.Equal(t, entity.TemperatureVeryHot, status.Temperature)
}

func TestStatusHandler_ApplyTelemetry(t *testing.T) {
	fx := createTestStatusHandler(t)

	updated := testStatus()
	updated.BatteryLevel = 40
	fx.statusUC.EXPECT().
		ApplyTelemetry(mock.Anything, mock.MatchedBy(func(tm entity.WalletTelemetry) bool {
			return tm.BatteryLevel != nil && *tm.BatteryLevel == 40 &&
				tm.IsConnected == nil &&
				tm.Location != nil && tm.Location.Lat == 46.01
		})).
		Return(updated, nil)

	rec := serve(fx.e, http.MethodPost, "/api/status/telemetry", `{"battery_level":40,"location":{"lat":46.01,"lng":8.95}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var status entity.WalletStatus
	decodeData(t, rec, &status)
	assert.Equal(t, 40, status.BatteryLevel)
}

func TestStatusHandler_ApplyTelemetry_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "battery above range", body: `{"battery_level":150}`, wantCode: "VALIDATION_FAILED"},
		{name: "location missing lng", body: `{"location":{"lat":46}}`, wantCode: "VALIDATION_FAILED"},
		{name: "wrong type", body: `{"battery_level":"full"}`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStatusHandler(t)

			rec := serve(fx.e, http.MethodPost, "/api/status/telemetry", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestStatusHandler_ReportPosition(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.positionUC.EXPECT().ReportPosition(mock.Anything, entity.Coordinate{Lat: 46.0036, Lng: 8.951}).Return(nil)
	fx.statusUC.EXPECT().Status().Return(testStatus())

	rec := serve(fx.e, http.MethodPost, "/api/position", `{"lat":46.0036,"lng":8.951}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestStatusHandler_ReportPosition_ZeroCoordinateAccepted(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.positionUC.EXPECT().ReportPosition(mock.Anything, entity.Coordinate{}).Return(nil)
	fx.statusUC.EXPECT().Status().Return(testStatus())

	rec := serve(fx.e, http.MethodPost, "/api/position", `{"lat":0,"lng":0}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestStatusHandler_ReportPosition_FeedDisabled(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.positionUC.EXPECT().ReportPosition(mock.Anything, mock.Anything).Return(impl.ErrPositionFeedDisabled)

	rec := serve(fx.e, http.MethodPost, "/api/position", `{"lat":46,"lng":8.9}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "POSITION_FEED_DISABLED", decode(t, rec).Error.Code)
}

func TestStatusHandler_ReportPosition_MissingField(t *testing.T) {
	fx := createTestStatusHandler(t)

	rec := serve(fx.e, http.MethodPost, "/api/position", `{"lat":46}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "lng: required")
}
