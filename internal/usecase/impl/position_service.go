package impl

import (
	"context"
	"errors"
	"fmt"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"
)

// ErrPositionFeedDisabled is returned when positions are pushed but the HTTP source is not active
var ErrPositionFeedDisabled = errors.New("http position feed disabled")

type positionService struct {
	sink service.PositionSink // nil unless the http source is configured
}

// NewPositionService creates a new position service instance
func NewPositionService(sink service.PositionSink) usecase.PositionUsecase {
	return &positionService{sink: sink}
}

// ReportPosition forwards a client position to the HTTP position source
func (s *positionService) ReportPosition(ctx context.Context, coord entity.Coordinate) error {
	if !coord.IsValid() {
		return ErrInvalidCoordinate
	}
	if s.sink == nil {
		return ErrPositionFeedDisabled
	}

	if err := s.sink.Push(ctx, coord); err != nil {
		return fmt.Errorf("failed to push position: %w", err)
	}

	return nil
}
