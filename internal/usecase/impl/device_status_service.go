package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"safewallet/config"
	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"
)

var (
	// ErrInvalidCoordinate is returned when a position is outside the WGS84 bounds
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius is returned when the geofence radius is not in (0, max]
	ErrInvalidRadius = errors.New("invalid geofence radius")
)

const defaultDistance = 0.5

// DeviceStatusService holds the wallet status and the user settings that drive the lost flag.
// It serves both usecase.DeviceStatusUsecase and usecase.SettingsUsecase.
type DeviceStatusService struct {
	mu       sync.RWMutex
	status   entity.WalletStatus
	user     *entity.Coordinate
	settings entity.Settings

	persistMu sync.Mutex

	maxRadius float64
	estimator service.ProximityEstimator
	events    *EventDispatcher
	snapshots repository.SnapshotRepository // nil when snapshots are disabled
	logger    *slog.Logger
	now       func() time.Time
}

var (
	_ usecase.DeviceStatusUsecase = (*DeviceStatusService)(nil)
	_ usecase.SettingsUsecase     = (*DeviceStatusService)(nil)
)

// NewDeviceStatusService creates the status model with its defaults
func NewDeviceStatusService(
	ctx context.Context,
	cfg *config.Config,
	estimator service.ProximityEstimator,
	events *EventDispatcher,
	snapshots repository.SnapshotRepository,
	logger *slog.Logger,
) *DeviceStatusService {
	s := &DeviceStatusService{
		estimator: estimator,
		events:    events,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}

	s.status = entity.WalletStatus{
		IsConnected:  true,
		BatteryLevel: entity.ClampBattery(cfg.Wallet.InitialBattery),
		LastSeen:     s.now(),
		Location:     entity.Coordinate{Lat: cfg.Wallet.InitialLatitude, Lng: cfg.Wallet.InitialLongitude},
		Distance:     defaultDistance,
		Temperature:  entity.TemperatureForDistance(defaultDistance),
	}

	s.settings = entity.Settings{
		GeofenceEnabled:  cfg.Geofence.Enabled,
		GeofenceRadius:   cfg.Geofence.DefaultRadius,
		AntitheftEnabled: cfg.Geofence.AntitheftEnabled,
	}
	s.maxRadius = cfg.Geofence.MaxRadius

	if snapshots != nil && cfg.Persistence != nil && cfg.Persistence.RestoreOnStart {
		s.restore(ctx)
	}

	return s
}

func (s *DeviceStatusService) restore(ctx context.Context) {
	saved, err := s.snapshots.LoadStatus(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Warn("Failed to restore wallet status", slog.Any("error", err))
		}

		return
	}

	s.status = *saved
	s.status.Temperature = entity.TemperatureForDistance(s.status.Distance)
	s.status.IsLost = s.settings.IsOutside(s.status.Distance)
}

// Status returns the current status
func (s *DeviceStatusService) Status() entity.WalletStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

// UserLocation returns the latest user position
func (s *DeviceStatusService) UserLocation() (entity.Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return entity.Coordinate{}, false
	}

	return *s.user, true
}

// OnPositionUpdate records the user position and recomputes distance and temperature
func (s *DeviceStatusService) OnPositionUpdate(ctx context.Context, user entity.Coordinate) entity.WalletStatus {
	if !user.IsValid() {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("Ignoring invalid user position",
			slog.Float64("lat", user.Lat),
			slog.Float64("lng", user.Lng),
		)

		return s.Status()
	}

	s.mu.Lock()
	s.user = &user
	s.recomputeLocked()
	s.status.LastSeen = s.now()
	breached := s.evaluateLostLocked()
	status, settings := s.status, s.settings
	s.mu.Unlock()

	s.afterChange(ctx, status, settings, breached)

	return status
}

// ApplyTelemetry merges a hardware report into the status
func (s *DeviceStatusService) ApplyTelemetry(ctx context.Context, telemetry entity.WalletTelemetry) (entity.WalletStatus, error) {
	if telemetry.Location != nil && !telemetry.Location.IsValid() {
		return s.Status(), ErrInvalidCoordinate
	}

	s.mu.Lock()
	if telemetry.BatteryLevel != nil {
		s.status.BatteryLevel = entity.ClampBattery(*telemetry.BatteryLevel)
	}
	if telemetry.IsConnected != nil {
		s.status.IsConnected = *telemetry.IsConnected
	}
	if telemetry.Location != nil {
		s.status.Location = *telemetry.Location
		if s.user != nil {
			s.recomputeLocked()
		}
	}
	s.status.LastSeen = s.now()
	breached := s.evaluateLostLocked()
	status, settings := s.status, s.settings
	s.mu.Unlock()

	s.afterChange(ctx, status, settings, breached)

	return status, nil
}

// Settings returns the current settings
func (s *DeviceStatusService) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// UpdateSettings applies the change and re-evaluates the lost flag
func (s *DeviceStatusService) UpdateSettings(ctx context.Context, update usecase.SettingsUpdate) (entity.Settings, error) {
	if update.GeofenceRadius != nil {
		radius := *update.GeofenceRadius
		if radius <= 0 || radius > s.maxRadius {
			return s.Settings(), ErrInvalidRadius
		}
	}

	s.mu.Lock()
	if update.GeofenceEnabled != nil {
		s.settings.GeofenceEnabled = *update.GeofenceEnabled
	}
	if update.GeofenceRadius != nil {
		s.settings.GeofenceRadius = *update.GeofenceRadius
	}
	if update.AntitheftEnabled != nil {
		s.settings.AntitheftEnabled = *update.AntitheftEnabled
	}
	breached := s.evaluateLostLocked()
	status, settings := s.status, s.settings
	s.mu.Unlock()

	deliverycontext.LoggerFrom(ctx, s.logger).Info("Settings updated",
		slog.Bool("geofence_enabled", settings.GeofenceEnabled),
		slog.Float64("geofence_radius", settings.GeofenceRadius),
		slog.Bool("antitheft_enabled", settings.AntitheftEnabled),
	)

	s.afterChange(ctx, status, settings, breached)

	return settings, nil
}

// recomputeLocked derives distance and temperature from the user and wallet positions.
func (s *DeviceStatusService) recomputeLocked() {
	// Tiers follow the raw estimate; only the reported distance is rounded.
	raw := max(s.estimator.Estimate(*s.user, s.status.Location), 0)
	s.status.Distance = entity.RoundDistance(raw)
	s.status.Temperature = entity.TemperatureForDistance(raw)
}

// evaluateLostLocked updates IsLost and reports a not-lost to lost transition.
func (s *DeviceStatusService) evaluateLostLocked() bool {
	wasLost := s.status.IsLost
	s.status.IsLost = s.settings.IsOutside(s.status.Distance)

	return !wasLost && s.status.IsLost
}

func (s *DeviceStatusService) afterChange(ctx context.Context, status entity.WalletStatus, settings entity.Settings, breached bool) {
	if breached {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("Wallet left the geofence",
			slog.Float64("distance", status.Distance),
			slog.Float64("radius", settings.GeofenceRadius),
		)

		s.events.Dispatch(ctx, entity.EventGeofenceBreach, status, settings)
		if settings.AntitheftEnabled {
			s.events.Dispatch(ctx, entity.EventAntitheftAlarm, status, settings)
		}
	}

	s.persist(ctx)
}

// persist writes the latest status. Failures are logged and never reach the caller.
func (s *DeviceStatusService) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	latest := s.Status()
	if err := s.snapshots.SaveStatus(context.WithoutCancel(ctx), &latest); err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("Failed to persist wallet status", slog.Any("error", err))
	}
}
