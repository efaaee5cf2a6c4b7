package position

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
)

// Random walk step in degrees, about 2 m and 20 m.
const (
	highAccuracyStep = 0.00002
	lowAccuracyStep  = 0.0002
)

// SimulatedSource emits a random walk around the wallet's initial position.
type SimulatedSource struct {
	origin   entity.Coordinate
	interval time.Duration
	step     float64
	logger   *slog.Logger
	float    func() float64
}

// NewSimulatedSource creates the simulated source.
func NewSimulatedSource(cfg *config.Config, logger *slog.Logger) *SimulatedSource {
	step := lowAccuracyStep
	if cfg.Position.HighAccuracy {
		step = highAccuracyStep
	}

	return &SimulatedSource{
		origin:   entity.Coordinate{Lat: cfg.Wallet.InitialLatitude, Lng: cfg.Wallet.InitialLongitude},
		interval: cfg.Position.Interval,
		step:     step,
		logger:   logger,
		float:    rand.Float64,
	}
}

// Subscribe emits one fix immediately and one per interval until unsubscribed.
func (s *SimulatedSource) Subscribe(ctx context.Context, onPosition func(entity.Coordinate), _ func(error)) (service.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := &loopSubscription{cancel: cancel}
	sub.wg.Add(1)

	go func() {
		defer sub.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		current := s.origin
		for {
			onPosition(current)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current = s.next(current)
			}
		}
	}()

	s.logger.Debug("Simulated position source started", slog.Duration("interval", s.interval))

	return sub, nil
}

func (s *SimulatedSource) next(c entity.Coordinate) entity.Coordinate {
	// Drift back toward the origin so the walk stays near the wallet.
	c.Lat += (s.float()*2-1)*s.step + (s.origin.Lat-c.Lat)*0.1
	c.Lng += (s.float()*2-1)*s.step + (s.origin.Lng-c.Lng)*0.1

	return c
}

// loopSubscription stops a producer goroutine and waits for it to exit.
type loopSubscription struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (l *loopSubscription) Unsubscribe() {
	l.cancel()
	l.wg.Wait()
}
