package service

import "context"

// Tile is a single map tile ready to be written to the client.
type Tile struct {
	Data    []byte
	Headers map[string]string
}

// TileService serves map tiles from a tile archive
type TileService interface {
	// GetTile returns the tile at z/x/y with the given extension (pbf, png, ...).
	// A missing tile yields (nil, nil).
	GetTile(ctx context.Context, z, x, y int, ext string) (*Tile, error)

	// Close releases the archive
	Close() error
}
