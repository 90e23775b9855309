package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/de0k/mobcard-server/internal/geocode"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
	"github.com/de0k/mobcard-server/internal/pkg/response"
)

type Geocoder interface {
	Lookup(ctx context.Context, address string) (*geocode.Coordinates, error)
}

type GeoHandler struct {
	geocoder Geocoder
}

func NewGeoHandler(geocoder Geocoder) *GeoHandler {
	return &GeoHandler{geocoder: geocoder}
}

// GetCoordinates proxies the upstream address search. A non-2xx upstream
// answer is forwarded with its own status code.
func (h *GeoHandler) GetCoordinates(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		response.Fail(c, http.StatusBadRequest, "No address provided")
		return
	}
	coords, err := h.geocoder.Lookup(c.Request.Context(), address)
	if err != nil {
		var upstream *geocode.UpstreamError
		switch {
		case errors.As(err, &upstream):
			response.Fail(c, upstream.StatusCode, "Error from geocoding service")
		case appErr.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, "No results found")
		default:
			handleError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, coords)
}
