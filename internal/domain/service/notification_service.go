package service

import (
	"context"

	"safewallet/internal/domain/entity"
)

// Push is the content of one notification fanned out to every phone.
type Push struct {
	Title string
	Body  string
	Data  map[string]string
	// Urgent pushes wake the phone; the rest may be batched by the OS.
	Urgent bool
}

// PushReport summarizes one multicast send.
type PushReport struct {
	Sent   int
	Failed int
	// InvalidTokens were rejected as unregistered and should be retired.
	InvalidTokens []string
}

// NotificationService delivers pushes to registered phones.
type NotificationService interface {
	// Notify sends push to a batch of tokens. An error means nothing was
	// delivered; per-token failures are only counted in the report.
	Notify(ctx context.Context, tokens []string, push Push) (PushReport, error)
}

// PushFor builds the notification of a wallet event. Breaches and alarms
// are urgent, the fallback alert is not.
func PushFor(event *entity.WalletEvent) Push {
	return Push{
		Title:  event.Title,
		Body:   event.Body,
		Data:   event.Data(),
		Urgent: event.Type != entity.EventAlertFallback,
	}
}
