package entity

import (
	"strconv"
	"time"
)

// WalletEventType names the alerts pushed to registered phones.
type WalletEventType string

const (
	EventGeofenceBreach WalletEventType = "geofence_breach"
	EventAntitheftAlarm WalletEventType = "antitheft_alarm"
	EventAlertFallback  WalletEventType = "alert_fallback"
)

// WalletEvent is published on the event bus and fanned out as a push notification.
type WalletEvent struct {
	EventID    string          `json:"event_id"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       WalletEventType `json:"type"`
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Location   Coordinate      `json:"location"`
	Distance   float64         `json:"distance"`
	Tokens     []string        `json:"tokens"` // FCM tokens resolved at publish time
	OccurredAt time.Time       `json:"occurred_at"`
}

// Data returns the FCM data payload of the event.
func (e *WalletEvent) Data() map[string]string {
	return map[string]string{
		"event_id":  e.EventID,
		"type":      string(e.Type),
		"latitude":  strconv.FormatFloat(e.Location.Lat, 'f', 6, 64),
		"longitude": strconv.FormatFloat(e.Location.Lng, 'f', 6, 64),
		"distance":  strconv.FormatFloat(e.Distance, 'f', 1, 64),
	}
}
