package usecase

import (
	"context"

	"safewallet/internal/domain/entity"
)

// AlertResult describes what a trigger did.
type AlertResult struct {
	Triggered bool   `json:"triggered"`          // False when an alert was already in flight
	Played    bool   `json:"played"`             // Synthesized audio was played
	Fallback  string `json:"fallback,omitempty"` // Notification shown when audio failed
}

// AlertUsecase makes the wallet speak.
type AlertUsecase interface {
	TriggerAlert(ctx context.Context) (*AlertResult, error)

	// LatestClip returns the last clip played, if any.
	LatestClip() (*entity.AudioClip, bool)
}
