package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
)

// EventDispatcher turns wallet state changes into events for the registered phones.
// Dispatch never fails: a wallet alert is best effort.
type EventDispatcher struct {
	devices   usecase.DeviceUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewEventDispatcher creates a new event dispatcher
func NewEventDispatcher(devices usecase.DeviceUsecase, publisher service.EventPublisher, logger *slog.Logger) *EventDispatcher {
	return &EventDispatcher{
		devices:   devices,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch publishes one event describing the given status.
func (d *EventDispatcher) Dispatch(ctx context.Context, eventType entity.WalletEventType, status entity.WalletStatus, settings entity.Settings) {
	if d == nil || d.publisher == nil {
		return
	}

	logger := deliverycontext.LoggerFrom(ctx, d.logger)

	tokens, err := d.devices.ActiveTokens(ctx)
	if err != nil {
		logger.Warn("Failed to load push devices", slog.Any("error", err))
	}

	if len(tokens) == 0 {
		logger.Debug("No active push devices, skipping wallet event", slog.String("type", string(eventType)))

		return
	}

	title, body := describeEvent(eventType, status, settings)
	event := &entity.WalletEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		Type:       eventType,
		Title:      title,
		Body:       body,
		Location:   status.Location,
		Distance:   status.Distance,
		Tokens:     tokens,
		OccurredAt: d.now(),
	}

	if err := d.publisher.PublishWalletEvent(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("Failed to publish wallet event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Wallet event published",
		slog.String("event_id", event.EventID),
		slog.String("type", string(eventType)),
		slog.Int("devices", len(tokens)),
	)
}

func describeEvent(eventType entity.WalletEventType, status entity.WalletStatus, settings entity.Settings) (title, body string) {
	switch eventType {
	case entity.EventGeofenceBreach:
		return "Portafoglio fuori dal perimetro",
			fmt.Sprintf("Il tuo SafeWallet è a %.1f m, oltre il raggio di %.0f m.", status.Distance, settings.GeofenceRadius)
	case entity.EventAntitheftAlarm:
		return "Allarme antifurto",
			fmt.Sprintf("Il portafoglio si sta allontanando. Ultima posizione: %.5f, %.5f.", status.Location.Lat, status.Location.Lng)
	case entity.EventAlertFallback:
		return "Avviso SafeWallet", AlertFallbackText
	default:
		return "SafeWallet", string(eventType)
	}
}
