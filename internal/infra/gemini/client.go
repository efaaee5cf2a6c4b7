// Package gemini implements the assistant model and the speech synthesizer on the Gemini API.
package gemini

import (
	"context"

	"safewallet/config"
	"safewallet/internal/errors"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned by every call when no API key is configured.
var ErrNotConfigured = errors.New("gemini api key not configured")

// generator is the subset of genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates the Gemini client, or nil when no API key is configured.
func NewClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	if cfg.Assistant == nil || cfg.Assistant.APIKey == "" {
		return nil, nil // the assistant and the voice alert fall back to their fixed texts
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Assistant.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return client, nil
}

func modelsOf(client *genai.Client) generator {
	if client == nil {
		return nil
	}

	return client.Models
}

func firstCandidate(resp *genai.GenerateContentResponse) *genai.Candidate {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	return resp.Candidates[0]
}
