package usecase

import (
	"context"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/service"
)

// TileAddress identifies a slippy map tile
type TileAddress struct {
	Z uint32 `json:"z"`
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

// MapView is everything the client needs to draw the map screen
type MapView struct {
	Wallet          entity.Coordinate  `json:"wallet"`
	User            *entity.Coordinate `json:"user,omitempty"`
	Center          entity.Coordinate  `json:"center"`
	Zoom            int                `json:"zoom"`
	GeofenceRadius  float64            `json:"geofence_radius"` // 0 when the geofence is off
	CenterTile      TileAddress        `json:"center_tile"`
	TileURLTemplate string             `json:"tile_url_template"`
	Distance        float64            `json:"distance"`
}

// MapUsecase defines the map use cases
type MapUsecase interface {
	// View returns the current map state
	View(ctx context.Context) (*MapView, error)

	// Tile returns a tile from the local archive
	Tile(ctx context.Context, z, x, y int, ext string) (*service.Tile, error)
}
