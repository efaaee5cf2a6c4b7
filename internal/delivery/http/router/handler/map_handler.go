package handler

import (
	"net/http"
	"strconv"
	"strings"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/usecase"
	"safewallet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
)

// MapHandler serves the map view and the tile passthrough
type MapHandler struct {
	mapUC usecase.MapUsecase
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(mapUC usecase.MapUsecase) *MapHandler {
	return &MapHandler{mapUC: mapUC}
}

// GetMap handles GET /api/map
func (h *MapHandler) GetMap(c echo.Context) error {
	view, err := h.mapUC.View(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Map retrieved successfully")
}

// GetTile handles GET /tiles/:z/:x/:file where file is "<y>.<ext>"
func (h *MapHandler) GetTile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.Param("z"))
	x, errX := strconv.Atoi(c.Param("x"))
	yPart, ext, found := strings.Cut(c.Param("file"), ".")
	y, errY := strconv.Atoi(yPart)
	if errZ != nil || errX != nil || errY != nil || !found || ext == "" {
		return handleError(c, impl.ErrTileNotFound)
	}

	tile, err := h.mapUC.Tile(c.Request().Context(), z, x, y, ext)
	if err != nil {
		return handleError(c, err)
	}

	for key, value := range tile.Headers {
		c.Response().Header().Set(key, value)
	}

	contentType := tile.Headers["Content-Type"]
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}
