// Package geo provides the user/wallet proximity estimators.
package geo

import (
	"math/rand/v2"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"

	"github.com/paulmach/orb/geo"
)

// simulatedMaxMeters bounds the random distance of the simulated estimator.
const simulatedMaxMeters = 2.0

// NewProximityEstimator returns the estimator selected by the proximity mode.
func NewProximityEstimator(cfg *config.Config) (service.ProximityEstimator, error) {
	mode := config.ProximityModeSimulated
	if cfg.Proximity != nil && cfg.Proximity.Mode != "" {
		mode = cfg.Proximity.Mode
	}

	switch mode {
	case config.ProximityModeSimulated:
		return NewSimulatedEstimator(), nil
	case config.ProximityModeHaversine:
		return NewHaversineEstimator(), nil
	default:
		return nil, errors.Errorf("unknown proximity mode %q", mode)
	}
}

// SimulatedEstimator ignores both positions and reports a distance in [0, 2) meters.
type SimulatedEstimator struct {
	float func() float64
}

// NewSimulatedEstimator creates a simulated estimator.
func NewSimulatedEstimator() *SimulatedEstimator {
	return &SimulatedEstimator{float: rand.Float64}
}

// Estimate returns a random distance.
func (e *SimulatedEstimator) Estimate(_, _ entity.Coordinate) float64 {
	return e.float() * simulatedMaxMeters
}

// HaversineEstimator returns the great-circle distance between the two positions.
type HaversineEstimator struct{}

// NewHaversineEstimator creates a haversine estimator.
func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{}
}

// Estimate returns the distance in meters.
func (HaversineEstimator) Estimate(user, wallet entity.Coordinate) float64 {
	return geo.DistanceHaversine(user.Point(), wallet.Point())
}
