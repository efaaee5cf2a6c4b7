// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"

	"safewallet/config"
	"safewallet/internal/domain/service"
	"safewallet/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit of tokens per multicast request.
const MaxMulticastTokens = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the FCM notifier. Without a credentials file the
// application default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Notify sends push to at most MaxMulticastTokens tokens in one request.
func (s *firebaseService) Notify(ctx context.Context, tokens []string, push service.Push) (service.PushReport, error) {
	if len(tokens) == 0 {
		return service.PushReport{}, nil
	}
	if len(tokens) > MaxMulticastTokens {
		return service.PushReport{}, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxMulticastTokens)
	}

	res, err := s.client.SendEachForMulticast(ctx, multicast(tokens, push))
	if err != nil {
		return service.PushReport{}, errors.Wrap(err, "send multicast notification")
	}

	report := service.PushReport{
		Sent:          res.SuccessCount,
		Failed:        res.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, r := range res.Responses {
		if r.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])
		}
	}

	return report, nil
}

func multicast(tokens []string, push service.Push) *messaging.MulticastMessage {
	androidPriority, apnsPriority := "normal", "5"
	if push.Urgent {
		androidPriority, apnsPriority = "high", "10"
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: push.Title,
			Body:  push.Body,
		},
		Data: push.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriority},
		},
	}
}
