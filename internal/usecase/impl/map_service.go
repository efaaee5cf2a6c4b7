package impl

import (
	"context"
	"errors"
	"fmt"

	"safewallet/config"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"

	"github.com/paulmach/orb/maptile"
)

var (
	// ErrTilesDisabled is returned when no local tile archive is configured
	ErrTilesDisabled = errors.New("tile passthrough disabled")
	// ErrTileNotFound is returned for tiles outside the pyramid or missing from the archive
	ErrTileNotFound = errors.New("tile not found")
)

const (
	maxTileZoom    = 22
	localTileRoute = "/tiles/{z}/{x}/{y}.mvt"
)

type mapService struct {
	status   usecase.DeviceStatusUsecase
	settings usecase.SettingsUsecase
	tiles    service.TileService // nil unless the PMTiles passthrough is enabled
	zoom     int
	template string
}

// NewMapService creates a new map service instance
func NewMapService(cfg *config.Config, status usecase.DeviceStatusUsecase, settings usecase.SettingsUsecase, tiles service.TileService) usecase.MapUsecase {
	template := cfg.Map.TileURLTemplate
	if tiles != nil {
		template = localTileRoute
	}

	return &mapService{
		status:   status,
		settings: settings,
		tiles:    tiles,
		zoom:     min(max(cfg.Map.Zoom, 0), maxTileZoom),
		template: template,
	}
}

// View returns the wallet and user positions centred on the user when known
func (s *mapService) View(ctx context.Context) (*usecase.MapView, error) {
	status := s.status.Status()

	view := &usecase.MapView{
		Wallet:          status.Location,
		Center:          status.Location,
		Zoom:            s.zoom,
		GeofenceRadius:  s.settings.Settings().EffectiveRadius(),
		TileURLTemplate: s.template,
		Distance:        status.Distance,
	}

	if user, ok := s.status.UserLocation(); ok {
		view.User = &user
		view.Center = user
	}

	tile := maptile.At(view.Center.Point(), maptile.Zoom(s.zoom))
	view.CenterTile = usecase.TileAddress{Z: uint32(tile.Z), X: tile.X, Y: tile.Y}

	return view, nil
}

// Tile returns a tile from the local archive
func (s *mapService) Tile(ctx context.Context, z, x, y int, ext string) (*service.Tile, error) {
	if s.tiles == nil {
		return nil, ErrTilesDisabled
	}

	if z < 0 || z > maxTileZoom || x < 0 || y < 0 || x >= 1<<z || y >= 1<<z {
		return nil, ErrTileNotFound
	}

	tile, err := s.tiles.GetTile(ctx, z, x, y, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to get tile %d/%d/%d: %w", z, x, y, err)
	}
	if tile == nil {
		return nil, ErrTileNotFound
	}

	return tile, nil
}
