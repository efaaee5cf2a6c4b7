package entity

import (
	"math"
	"time"
)

// Temperature is the qualitative proximity tier shown to the user.
type Temperature string

const (
	TemperatureVeryHot Temperature = "Molto Caldo"
	TemperatureHot     Temperature = "Caldo"
	TemperatureCold    Temperature = "Freddo"
)

// Distance thresholds in meters. A distance equal to a threshold falls in the colder tier.
const (
	VeryHotThreshold = 1.0
	HotThreshold     = 5.0
)

// TemperatureForDistance maps a distance in meters to its tier.
func TemperatureForDistance(meters float64) Temperature {
	switch {
	case meters < VeryHotThreshold:
		return TemperatureVeryHot
	case meters < HotThreshold:
		return TemperatureHot
	default:
		return TemperatureCold
	}
}

// RoundDistance rounds meters to one decimal.
func RoundDistance(meters float64) float64 {
	return math.Round(meters*10) / 10
}

// WalletStatus is the observable state of the tracked wallet.
type WalletStatus struct {
	IsConnected  bool        `json:"is_connected"`
	BatteryLevel int         `json:"battery_level"` // 0-100
	IsLost       bool        `json:"is_lost"`
	LastSeen     time.Time   `json:"last_seen"`
	Location     Coordinate  `json:"location"` // Wallet GPS position.
	Distance     float64     `json:"distance"` // Meters between user and wallet.
	Temperature  Temperature `json:"temperature"`
}

// WalletTelemetry is a partial update reported by the wallet hardware.
// Nil fields are left untouched.
type WalletTelemetry struct {
	BatteryLevel *int        `json:"battery_level,omitempty"`
	IsConnected  *bool       `json:"is_connected,omitempty"`
	Location     *Coordinate `json:"location,omitempty"`
}

// ClampBattery bounds a battery level to 0-100.
func ClampBattery(level int) int {
	return max(0, min(100, level))
}
