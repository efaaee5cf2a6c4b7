package service

import (
	"context"

	"safewallet/internal/domain/entity"
)

// SpeechSynthesizer defines the interface for text-to-speech services
type SpeechSynthesizer interface {
	// Synthesize returns the decoded clip for the given text.
	// A nil or empty clip means the service produced no audio.
	Synthesize(ctx context.Context, text string) (*entity.AudioClip, error)
}

// AudioPlayer plays a decoded clip once
type AudioPlayer interface {
	Play(ctx context.Context, clip *entity.AudioClip) error
}

// ClipEncoder renders a clip in a playable container format
type ClipEncoder interface {
	EncodeWAV(clip *entity.AudioClip) ([]byte, error)
}
