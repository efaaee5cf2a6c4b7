package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"safewallet/config"
	"safewallet/internal/delivery"
	"safewallet/internal/delivery/feed"
	"safewallet/internal/delivery/http"
	"safewallet/internal/delivery/http/router/handler"
	"safewallet/internal/domain/repository"
	"safewallet/internal/domain/service"
	"safewallet/internal/infra/audio"
	"safewallet/internal/infra/gemini"
	"safewallet/internal/infra/geo"
	logs "safewallet/internal/infra/log"
	"safewallet/internal/infra/mdns"
	"safewallet/internal/infra/mqtt"
	"safewallet/internal/infra/notification"
	"safewallet/internal/infra/persistence/sqlite"
	"safewallet/internal/infra/position"
	"safewallet/internal/infra/pubsub"
	"safewallet/internal/infra/qrcode"
	"safewallet/internal/infra/tiles"
	"safewallet/internal/usecase"
	"safewallet/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			advertise,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		mqtt.New,
		mdns.New,
		gemini.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewDeviceRepository,
			newSnapshotRepository,
		),
	)
}

// newSnapshotRepository returns nil when snapshots are disabled; the use cases
// then keep their state in memory only
func newSnapshotRepository(cfg *config.Config, db *sql.DB) repository.SnapshotRepository {
	if cfg.Persistence == nil || !cfg.Persistence.SnapshotEnabled {
		return nil
	}

	return sqlite.NewSnapshotRepository(db)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			position.New,
			geo.NewProximityEstimator,
			gemini.NewAssistantModel,
			gemini.NewSpeechSynthesizer,
			audio.NewAudioPlayer,
			fx.Annotate(audio.NewWAVEncoder, fx.As(new(service.ClipEncoder))),
			tiles.NewTileService,
			newFirebaseService,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newFirebaseService creates the push sender, or nil when Firebase is not configured
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewEventDispatcher,
			fx.Annotate(
				impl.NewDeviceStatusService,
				fx.As(new(usecase.DeviceStatusUsecase), new(usecase.SettingsUsecase)),
			),
			impl.NewPositionService,
			impl.NewWalletItemService,
			impl.NewAssistantService,
			impl.NewAlertService,
			impl.NewMapService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewWalletItemHandler,
			handler.NewStatusHandler,
			handler.NewSettingsHandler,
			handler.NewAssistantHandler,
			handler.NewAlertHandler,
			handler.NewMapHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				feed.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// advertise pulls the mDNS advertiser into the graph; it is nil when disabled
func advertise(_ *mdns.Advertiser) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
