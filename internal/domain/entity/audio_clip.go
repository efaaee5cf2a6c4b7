package entity

import "time"

// AudioClip is a decoded mono or multi-channel PCM clip.
type AudioClip struct {
	SampleRate int       `json:"sample_rate"`
	Channels   int       `json:"channels"`
	Samples    []float32 `json:"-"` // Interleaved, normalized to [-1, 1].
	PCM        []byte    `json:"-"` // Raw 16-bit little-endian source.
}

// Frames returns the number of samples per channel.
func (c *AudioClip) Frames() int {
	if c == nil || c.Channels <= 0 {
		return 0
	}

	return len(c.Samples) / c.Channels
}

// Duration returns the playback length of the clip.
func (c *AudioClip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}
