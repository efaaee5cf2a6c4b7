// Package tiles serves map tiles from a PMTiles archive.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"safewallet/config"
	"safewallet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

const defaultCacheSize = 64

// pmtilesService reads tiles through the PMTiles server, which handles local files, HTTP and cloud buckets.
type pmtilesService struct {
	source      string
	tilesetName string // archive name without extension, e.g. "ticino" for "ticino.pmtiles"
	server      *pmtiles.Server
	logger      *slog.Logger
}

// NewTileService creates the tile passthrough, or nil when it is disabled.
func NewTileService(cfg *config.Config, logger *slog.Logger) (service.TileService, error) {
	if cfg.Map == nil || cfg.Map.PMTiles == nil || !cfg.Map.PMTiles.Enabled {
		logger.Info("PMTiles passthrough disabled, map uses the external tile template")

		return nil, nil
	}

	pm := cfg.Map.PMTiles
	if pm.Source == "" {
		return nil, errors.New("PMTiles source is required when enabled")
	}

	cacheSize := pm.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	// The server expects a bucket (directory) and looks up {name}.pmtiles inside it.
	bucketPath, tilesetName := parseSourcePath(pm.Source)

	server, err := pmtiles.NewServer(bucketPath, "", log.New(io.Discard, "", 0), cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("PMTiles passthrough initialized",
		slog.String("source", pm.Source),
		slog.String("tileset", tilesetName),
		slog.Int("cache_size", cacheSize),
	)

	return &pmtilesService{
		source:      pm.Source,
		tilesetName: tilesetName,
		server:      server,
		logger:      logger,
	}, nil
}

// parseSourcePath extracts the bucket and the tileset name from a source.
// Examples:
//   - "/data/ticino.pmtiles" -> ("file:///data", "ticino")
//   - "file:///data/ticino.pmtiles" -> ("file:///data", "ticino")
//   - "https://example.com/tiles/ticino.pmtiles" -> ("https://example.com/tiles", "ticino")
//   - "gs://bucket/maps/ticino.pmtiles" -> ("gs://bucket/maps", "ticino")
func parseSourcePath(source string) (bucketPath, tilesetName string) {
	if path, ok := strings.CutPrefix(source, "file://"); ok {
		return "file://" + filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ".pmtiles")
	}

	if strings.Contains(source, "://") {
		if lastSlash := strings.LastIndex(source, "/"); lastSlash > strings.Index(source, "://")+2 {
			return source[:lastSlash], strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
		}
	}

	return "file://" + filepath.Dir(source), strings.TrimSuffix(filepath.Base(source), ".pmtiles")
}

// GetTile returns the tile at z/x/y, or nil when the archive has none.
func (s *pmtilesService) GetTile(ctx context.Context, z, x, y int, ext string) (*service.Tile, error) {
	tilePath := fmt.Sprintf("/%s/%d/%d/%d.%s", s.tilesetName, z, x, y, ext)

	status, headers, data := s.server.Get(ctx, tilePath)
	switch status {
	case http.StatusOK:
		return &service.Tile{Data: data, Headers: headers}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, nil
	default:
		return nil, errors.Errorf("unexpected PMTiles status %d for %s", status, tilePath)
	}
}

// Close logs the shutdown; the PMTiles server holds no handle that needs releasing.
func (s *pmtilesService) Close() error {
	s.logger.Info("PMTiles passthrough stopped", slog.String("source", s.source))

	return nil
}
