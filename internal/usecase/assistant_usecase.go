package usecase

import (
	"context"

	"safewallet/internal/domain/entity"
)

// AssistantUsecase is the single conversation with the SafeWallet assistant.
type AssistantUsecase interface {
	// SendMessage appends the user message, queries the model and appends its reply.
	// A blank message returns (nil, nil) and changes nothing.
	SendMessage(ctx context.Context, text string) (*entity.ChatMessage, error)

	// Transcript returns a copy of the conversation.
	Transcript() []entity.ChatMessage

	// Reset restores the welcome message and discards in-flight replies.
	Reset()

	// IsPending reports whether a request is outstanding.
	IsPending() bool
}
