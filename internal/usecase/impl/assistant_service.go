package impl

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"safewallet/config"
	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"
)

var (
	// ErrRequestPending is returned when a message is sent while a reply is outstanding
	ErrRequestPending = errors.New("assistant request already pending")
	// ErrConversationReset is returned when the conversation was reset while waiting for the reply
	ErrConversationReset = errors.New("conversation reset while request was in flight")
)

type assistantService struct {
	mu         sync.Mutex
	transcript []entity.ChatMessage
	seq        uint64 // last issued request sequence
	pending    uint64 // sequence awaiting a reply, 0 when idle

	model   service.AssistantModel
	items   usecase.WalletItemUsecase
	status  usecase.DeviceStatusUsecase
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewAssistantService creates a conversation holding only the welcome message
func NewAssistantService(
	cfg *config.Config,
	model service.AssistantModel,
	items usecase.WalletItemUsecase,
	status usecase.DeviceStatusUsecase,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	s := &assistantService{
		model:   model,
		items:   items,
		status:  status,
		timeout: cfg.Assistant.Timeout,
		logger:  logger,
		now:     time.Now,
	}
	s.transcript = []entity.ChatMessage{s.welcome()}

	return s
}

// SendMessage appends the user message, queries the model and appends its reply
func (s *assistantService) SendMessage(ctx context.Context, text string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.pending != 0 {
		s.mu.Unlock()

		return nil, ErrRequestPending
	}
	s.seq++
	seq := s.seq
	s.pending = seq
	s.transcript = append(s.transcript, entity.ChatMessage{
		Role:      entity.ChatRoleUser,
		Text:      text,
		Timestamp: s.now(),
	})
	s.mu.Unlock()

	logger := deliverycontext.LoggerFrom(ctx, s.logger)

	req := &service.AssistantRequest{
		Message:           text,
		SystemInstruction: BuildSystemInstruction(s.items.List()),
	}
	if loc, ok := s.status.UserLocation(); ok {
		req.UserLocation = &loc
	}

	// The reply belongs to the conversation, not to the caller: keep going if the client hangs up.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	reply, err := s.model.Generate(callCtx, req)
	cancel()

	msg := entity.ChatMessage{Role: entity.ChatRoleModel, Timestamp: s.now()}
	switch {
	case err != nil:
		logger.Error("Assistant request failed", slog.Uint64("seq", seq), slog.Any("error", err))
		msg.Text = FallbackReply
	case reply == nil || strings.TrimSpace(reply.Text) == "":
		msg.Text = EmptyReply
		if reply != nil {
			msg.Citations = entity.CleanCitations(reply.Citations)
		}
	default:
		msg.Text = reply.Text
		msg.Citations = entity.CleanCitations(reply.Citations)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != seq {
		logger.Info("Discarding stale assistant reply", slog.Uint64("seq", seq))

		return nil, ErrConversationReset
	}
	s.pending = 0
	s.transcript = append(s.transcript, msg)

	return &msg, nil
}

// Transcript returns a copy of the conversation
func (s *assistantService) Transcript() []entity.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.transcript)
	for i := range out {
		out[i].Citations = slices.Clone(out[i].Citations)
	}

	return out
}

// Reset restores the welcome message and abandons the outstanding request
func (s *assistantService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = []entity.ChatMessage{s.welcome()}
	s.pending = 0
}

// IsPending reports whether a reply is outstanding
func (s *assistantService) IsPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending != 0
}

func (s *assistantService) welcome() entity.ChatMessage {
	return entity.ChatMessage{
		Role:      entity.ChatRoleModel,
		Text:      WelcomeMessage,
		Timestamp: s.now(),
	}
}
