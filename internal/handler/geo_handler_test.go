package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/de0k/mobcard-server/internal/geocode"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

func TestGetCoordinates_Success(t *testing.T) {
	geocoder := &fakeGeocoder{coords: &geocode.Coordinates{Latitude: "37.498", Longitude: "127.028"}}
	router, _ := setupRouter(t, geocoder)

	w := doJSON(t, router, http.MethodGet, "/api/get-coordinates?address=somewhere", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "37.498", body["latitude"])
	require.Equal(t, "127.028", body["longitude"])
}

func TestGetCoordinates_EmptyAddress(t *testing.T) {
	router, _ := setupRouter(t, &fakeGeocoder{})

	w := doJSON(t, router, http.MethodGet, "/api/get-coordinates", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCoordinates_NoResults(t *testing.T) {
	router, _ := setupRouter(t, &fakeGeocoder{err: appErr.ErrNotFound})

	w := doJSON(t, router, http.MethodGet, "/api/get-coordinates?address=nowhere", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No results found", decodeBody(t, w)["error"])
}

func TestGetCoordinates_ForwardsUpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway} {
		router, _ := setupRouter(t, &fakeGeocoder{err: &geocode.UpstreamError{StatusCode: status}})

		w := doJSON(t, router, http.MethodGet, "/api/get-coordinates?address=somewhere", nil)
		require.Equal(t, status, w.Code)
	}
}
