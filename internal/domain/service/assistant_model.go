package service

import (
	"context"

	"safewallet/internal/domain/entity"
)

// AssistantRequest is one turn sent to the conversational model.
type AssistantRequest struct {
	Message           string             // The user's message, verbatim
	SystemInstruction string             // Persona plus the wallet context block
	UserLocation      *entity.Coordinate // Optional retrieval hint for map grounding
}

// AssistantReply is the model's answer to one turn.
type AssistantReply struct {
	Text      string
	Citations []entity.Citation
}

// AssistantModel defines the interface for the remote conversational service
type AssistantModel interface {
	// Generate sends a single turn and returns the reply with its grounding sources
	Generate(ctx context.Context, req *AssistantRequest) (*AssistantReply, error)
}
