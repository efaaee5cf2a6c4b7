package position

import (
	"context"
	"sync"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
)

// ErrNotSubscribed is returned when a position is pushed while nobody listens.
var ErrNotSubscribed = errors.New("position feed is not running")

// HTTPSource relays positions pushed by clients to the subscriber.
type HTTPSource struct {
	mu         sync.Mutex
	onPosition func(entity.Coordinate)
	generation uint64
}

// NewHTTPSource creates an idle HTTP source.
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{}
}

// Subscribe registers the position callback, replacing any previous one.
func (s *HTTPSource) Subscribe(_ context.Context, onPosition func(entity.Coordinate), _ func(error)) (service.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onPosition = onPosition
	s.generation++

	return &httpSubscription{source: s, generation: s.generation}, nil
}

// Push delivers one position to the subscriber.
func (s *HTTPSource) Push(_ context.Context, coord entity.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onPosition == nil {
		return ErrNotSubscribed
	}
	s.onPosition(coord)

	return nil
}

type httpSubscription struct {
	source     *HTTPSource
	generation uint64
}

// Unsubscribe detaches the callback unless a newer subscription replaced it.
func (h *httpSubscription) Unsubscribe() {
	h.source.mu.Lock()
	defer h.source.mu.Unlock()

	if h.source.generation == h.generation {
		h.source.onPosition = nil
	}
}
