// Package audio decodes synthesized speech and plays it through the wallet speaker.
package audio

import (
	"encoding/binary"

	"safewallet/internal/domain/entity"
)

// DecodePCM16 turns raw little-endian signed 16-bit PCM into a clip of samples in [-1, 1).
// A trailing odd byte is dropped.
func DecodePCM16(data []byte, sampleRate, channels int) *entity.AudioClip {
	if channels <= 0 {
		channels = 1
	}

	n := len(data) / 2
	samples := make([]float32, n)
	for i := range n {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(data[2*i:]))) / 32768
	}

	return &entity.AudioClip{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    samples,
		PCM:        data[:2*n],
	}
}
