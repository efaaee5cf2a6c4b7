package gemini

import (
	"context"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/infra/audio"

	"google.golang.org/genai"
)

// SpeechSynthesizer turns text into mono PCM speech.
type SpeechSynthesizer struct {
	models     generator
	model      string
	voice      string
	sampleRate int
}

// NewSpeechSynthesizer creates the synthesizer on top of the Gemini client.
func NewSpeechSynthesizer(cfg *config.Config, client *genai.Client) service.SpeechSynthesizer {
	return &SpeechSynthesizer{
		models:     modelsOf(client),
		model:      cfg.Alert.SpeechModel,
		voice:      cfg.Alert.Voice,
		sampleRate: cfg.Alert.SampleRate,
	}
}

// Synthesize returns the decoded clip of the first inline audio part.
// A response without audio yields an empty clip.
func (s *SpeechSynthesizer) Synthesize(ctx context.Context, text string) (*entity.AudioClip, error) {
	if s.models == nil {
		return nil, ErrNotConfigured
	}

	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "synthesize speech")
	}

	return audio.DecodePCM16(inlineAudio(resp), s.sampleRate, 1), nil
}

func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	candidate := firstCandidate(resp)
	if candidate == nil || candidate.Content == nil {
		return nil
	}

	for _, part := range candidate.Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}

	return nil
}
