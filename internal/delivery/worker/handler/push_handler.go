package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"safewallet/config"
	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/constants"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	// fcmBatchSize is the FCM multicast limit
	fcmBatchSize = 500
	// recentCapacity bounds how many delivered message ids are remembered.
	recentCapacity = 1024
)

// PubSubMessage is the body Pub/Sub posts to a push endpoint
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures that Pub/Sub should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return "retryable: " + e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// tokenVerifier checks the OIDC token Google attaches to push requests
type tokenVerifier func(req *http.Request) error

// PushHandler turns wallet events delivered by Pub/Sub into FCM notifications
type PushHandler struct {
	verifyPushAuth  bool
	verifyToken     tokenVerifier
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceUC        usecase.DeviceUsecase
	recent          *lru.Cache[string, struct{}]
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceUC        usecase.DeviceUsecase
}

// NewPushHandler checks Google's OIDC token on every push unless the bus is
// local or the service runs in develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsub := params.Config.PubSub
	// New only fails for a non-positive size.
	recent, _ := lru.New[string, struct{}](recentCapacity)

	return &PushHandler{
		verifyPushAuth: pubsub != nil &&
			pubsub.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop,
		verifyToken:     verifyPubSubToken,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceUC:        params.DeviceUC,
		recent:          recent,
	}
}

// HandlePush answers 200 to acknowledge and 503 to ask for redelivery.
// Malformed bodies get 400, which Pub/Sub also redelivers until the
// subscription's dead letter policy takes over.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Notifier] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Notifier] Rejecting push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, logger := deliverycontext.WithRequestScope(c.Request().Context(), h.logger,
		h.extractRequestID(c.Request().Context(), msg, event))

	// Pub/Sub delivers at least once; a phone must not ring twice.
	messageID := msg.Message.MessageID
	if messageID != "" && h.recent.Contains(messageID) {
		logger.Info("[Notifier] Duplicate delivery acknowledged", slog.String("message_id", messageID))

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Notifier] Processing wallet event",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.Int("token_count", len(event.Tokens)),
	)

	err = h.processEvent(ctx, logger, event)
	switch {
	case err == nil:
		if messageID != "" {
			h.recent.Add(messageID, struct{}{})
		}
	case isRetryableError(err):
		logger.Error("[Notifier] Delivery failed, asking for redelivery",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Error("[Notifier] Dropping undeliverable wallet event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *entity.WalletEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "parse push message")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event entity.WalletEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "parse wallet event")
	}

	return &msg, &event, nil
}

// extractRequestID prefers the message attribute, then the event, then the
// request context, and finally mints a new id
func (h *PushHandler) extractRequestID(ctx context.Context, msg *PubSubMessage, event *entity.WalletEvent) string {
	for _, id := range []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.RequestIDFrom(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *entity.WalletEvent) error {
	if strings.TrimSpace(event.Title) == "" {
		return errors.Errorf("wallet event %q has no title", event.EventID)
	}

	tokens := uniqueTokens(event.Tokens)
	if len(tokens) == 0 {
		logger.Info("[Notifier] No devices to notify", slog.String("event_id", event.EventID))

		return nil
	}

	report, err := h.sendBatches(ctx, tokens, service.PushFor(event))
	if err != nil {
		return err
	}

	h.retireInvalidTokens(ctx, logger, report.InvalidTokens)

	logger.Info("[Notifier] Wallet event delivered",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", report.Sent),
		slog.Int("total_failed", report.Failed),
		slog.Int("invalid_tokens", len(report.InvalidTokens)),
	)

	return nil
}

// sendBatches fans the push out in FCM-sized batches. A transport failure
// aborts the delivery so the whole message is retried.
func (h *PushHandler) sendBatches(ctx context.Context, tokens []string, push service.Push) (service.PushReport, error) {
	var total service.PushReport

	for batch := range slices.Chunk(tokens, fcmBatchSize) {
		report, err := h.notificationSvc.Notify(ctx, batch, push)
		if err != nil {
			return total, newRetryableError(errors.Wrap(err, "send batch"))
		}

		total.Sent += report.Sent
		total.Failed += report.Failed
		total.InvalidTokens = append(total.InvalidTokens, report.InvalidTokens...)
	}

	return total, nil
}

func (h *PushHandler) retireInvalidTokens(ctx context.Context, logger *slog.Logger, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	retired, err := h.deviceUC.RetireTokens(ctx, tokens)
	if err != nil {
		logger.Warn("[Notifier] Failed to retire invalid tokens",
			slog.Int("count", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("[Notifier] Retired devices with invalid tokens", slog.Int("count", retired))
}

func uniqueTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	return out
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
