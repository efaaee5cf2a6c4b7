package gemini

import (
	"context"
	"log/slog"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"

	"google.golang.org/genai"
)

// AssistantModel answers chat messages with Google Maps grounding.
type AssistantModel struct {
	models generator
	model  string
	logger *slog.Logger
}

// NewAssistantModel creates the assistant model on top of the Gemini client.
func NewAssistantModel(cfg *config.Config, client *genai.Client, logger *slog.Logger) service.AssistantModel {
	return &AssistantModel{
		models: modelsOf(client),
		model:  cfg.Assistant.Model,
		logger: logger,
	}
}

// Generate sends one message with the system instruction and returns the reply text and its sources.
func (m *AssistantModel) Generate(ctx context.Context, req *service.AssistantRequest) (*service.AssistantReply, error) {
	if m.models == nil {
		return nil, ErrNotConfigured
	}

	resp, err := m.models.GenerateContent(ctx, m.model, genai.Text(req.Message), buildGenerateConfig(req))
	if err != nil {
		return nil, errors.Wrap(err, "generate content")
	}

	reply := &service.AssistantReply{Text: resp.Text()}
	if candidate := firstCandidate(resp); candidate != nil {
		reply.Citations = citationsOf(candidate.GroundingMetadata)
	}

	m.logger.Debug("Assistant reply received",
		slog.String("model", m.model),
		slog.Int("citations", len(reply.Citations)),
	)

	return reply, nil
}

func buildGenerateConfig(req *service.AssistantRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}

	if req.UserLocation != nil {
		lat, lng := req.UserLocation.Lat, req.UserLocation.Lng
		cfg.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{Latitude: &lat, Longitude: &lng},
			},
		}
	}

	return cfg
}

// citationsOf collects the maps and web sources of a grounded answer.
func citationsOf(meta *genai.GroundingMetadata) []entity.Citation {
	if meta == nil {
		return nil
	}

	var out []entity.Citation
	for _, chunk := range meta.GroundingChunks {
		switch {
		case chunk == nil:
		case chunk.Maps != nil:
			out = append(out, entity.Citation{Title: chunk.Maps.Title, URI: chunk.Maps.URI})
		case chunk.Web != nil:
			out = append(out, entity.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}

	return entity.CleanCitations(out)
}
