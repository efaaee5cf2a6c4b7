package entity

// Settings are the user toggles of the settings view.
type Settings struct {
	GeofenceEnabled  bool    `json:"geofence_enabled"`
	GeofenceRadius   float64 `json:"geofence_radius"` // Meters.
	AntitheftEnabled bool    `json:"antitheft_enabled"`
}

// EffectiveRadius returns the active geofence radius, 0 when the geofence is off.
func (s Settings) EffectiveRadius() float64 {
	if !s.GeofenceEnabled {
		return 0
	}

	return s.GeofenceRadius
}

// IsOutside reports whether a distance breaches the geofence.
func (s Settings) IsOutside(distance float64) bool {
	return s.GeofenceEnabled && distance > s.GeofenceRadius
}
