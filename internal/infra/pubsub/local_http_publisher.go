package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/wallet-events-sub"
	localMaxAttempts  = 3
	localRetryBackoff = 500 * time.Millisecond
)

// localHTTPPublisher posts events to the notifier in the Pub/Sub push format,
// redelivering on 503 the way a push subscription would
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	backoff    time.Duration
}

// PushMessage mirrors the body Google Pub/Sub posts to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		now:        time.Now,
		backoff:    localRetryBackoff,
	}
}

func (p *localHTTPPublisher) envelope(event *entity.WalletEvent) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

// PublishWalletEvent delivers the event, retrying while the notifier answers 503
func (p *localHTTPPublisher) PublishWalletEvent(ctx context.Context, event *entity.WalletEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	var status int
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		status, err = p.post(ctx, body, event.RequestID)
		if err != nil {
			return err
		}

		if status != http.StatusServiceUnavailable {
			break
		}

		p.logger.Warn("[LocalPubSub] Notifier asked for redelivery",
			slog.String("event_id", event.EventID),
			slog.Int("attempt", attempt),
		)

		if attempt < localMaxAttempts {
			select {
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			case <-time.After(p.backoff * time.Duration(attempt)):
			}
		}
	}

	if status < 200 || status >= 300 {
		return errors.Errorf("notifier returned status %d for event %s", status, event.EventID)
	}

	p.logger.Info("[LocalPubSub] Wallet event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.Int("device_count", len(event.Tokens)),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "post to notifier")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
