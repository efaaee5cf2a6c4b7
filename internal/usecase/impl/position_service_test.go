package impl

import (
	"context"
	"testing"

	"safewallet/internal/domain/entity"
	mockService "safewallet/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPositionService_ReportPosition(t *testing.T) {
	coord := entity.Coordinate{Lat: 46.19, Lng: 9.02}

	t.Run("forwards to sink", func(t *testing.T) {
		sink := mockService.NewMockPositionSink(t)
		sink.EXPECT().Push(context.Background(), coord).Return(nil).Once()

		assert.NoError(t, NewPositionService(sink).ReportPosition(context.Background(), coord))
	})

	t.Run("sink failure", func(t *testing.T) {
		sink := mockService.NewMockPositionSink(t)
		pushErr := errors.New("feed closed")
		sink.EXPECT().Push(context.Background(), coord).Return(pushErr)

		assert.ErrorIs(t, NewPositionService(sink).ReportPosition(context.Background(), coord), pushErr)
	})

	t.Run("feed disabled", func(t *testing.T) {
		err := NewPositionService(nil).ReportPosition(context.Background(), coord)
		assert.ErrorIs(t, err, ErrPositionFeedDisabled)
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		sink := mockService.NewMockPositionSink(t)

		err := NewPositionService(sink).ReportPosition(context.Background(), entity.Coordinate{Lat: 91, Lng: 0})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}
