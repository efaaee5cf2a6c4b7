package handler

import (
	"net/http"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/delivery/http/validator"
	"safewallet/internal/domain/entity"
	"safewallet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AssistantHandler serves the assistant chat
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(assistantUC usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{assistantUC: assistantUC}
}

// SendMessageRequest is the body of POST /api/assistant/messages
type SendMessageRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

// TranscriptResponse is the chat as the client renders it
type TranscriptResponse struct {
	Messages []entity.ChatMessage `json:"messages"`
	Pending  bool                 `json:"pending"`
}

// SendMessageResponse carries the reply, nil when the message was blank
type SendMessageResponse struct {
	Reply *entity.ChatMessage `json:"reply"`
	TranscriptResponse
}

// GetMessages handles GET /api/assistant/messages
func (h *AssistantHandler) GetMessages(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.transcript(), "Transcript retrieved successfully")
}

// SendMessage handles POST /api/assistant/messages
func (h *AssistantHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	reply, err := h.assistantUC.SendMessage(c.Request().Context(), req.Text)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusOK, SendMessageResponse{
		Reply:              reply,
		TranscriptResponse: h.transcript(),
	}, "Message processed")
}

// ResetConversation handles DELETE /api/assistant/messages
func (h *AssistantHandler) ResetConversation(c echo.Context) error {
	h.assistantUC.Reset()

	return response.Success(c, http.StatusOK, h.transcript(), "Conversation reset")
}

func (h *AssistantHandler) transcript() TranscriptResponse {
	return TranscriptResponse{
		Messages: h.assistantUC.Transcript(),
		Pending:  h.assistantUC.IsPending(),
	}
}
