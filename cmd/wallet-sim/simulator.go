package main

import (
	"math/rand/v2"

	"safewallet/internal/domain/entity"

	"github.com/paulmach/orb/geo"
)

// walletJitter is the GPS noise of the wallet fix in meters
const walletJitter = 1.0

// simulator walks a phone around a resting wallet and drains the wallet battery.
type simulator struct {
	wallet     entity.Coordinate
	phone      entity.Coordinate
	battery    int
	drainEvery int
	stride     float64 // meters walked per step
	maxRange   float64 // the phone turns back beyond this distance
	ticks      int
	rng        *rand.Rand
}

func newSimulator(wallet entity.Coordinate, battery, drainEvery int, stride, maxRange float64, rng *rand.Rand) *simulator {
	return &simulator{
		wallet:     wallet,
		phone:      wallet,
		battery:    entity.ClampBattery(battery),
		drainEvery: drainEvery,
		stride:     stride,
		maxRange:   maxRange,
		rng:        rng,
	}
}

// step advances the simulation by one tick.
func (s *simulator) step() (entity.Coordinate, entity.WalletTelemetry) {
	s.ticks++

	bearing := s.rng.Float64() * 360
	if geo.Distance(s.phone.Point(), s.wallet.Point()) > s.maxRange {
		bearing = geo.Bearing(s.phone.Point(), s.wallet.Point())
	}
	s.phone = entity.CoordinateFromPoint(geo.PointAtBearingAndDistance(s.phone.Point(), bearing, s.stride))

	if s.drainEvery > 0 && s.ticks%s.drainEvery == 0 && s.battery > 0 {
		s.battery--
	}

	fix := entity.CoordinateFromPoint(geo.PointAtBearingAndDistance(
		s.wallet.Point(), s.rng.Float64()*360, s.rng.Float64()*walletJitter,
	))
	battery := s.battery
	connected := true

	return s.phone, entity.WalletTelemetry{
		BatteryLevel: &battery,
		IsConnected:  &connected,
		Location:     &fix,
	}
}
