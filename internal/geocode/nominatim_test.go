package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "-8.0476000", r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"display_name":"long name","address":{"road":"Rua da Aurora","house_number":"10","suburb":"Boa Vista","city":"Recife"}}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, srv.Client())

	addr, err := g.ReverseGeocode(context.Background(), models.Coordinates{Latitude: -8.0476, Longitude: -34.877})

	require.NoError(t, err)
	assert.Equal(t, "Rua da Aurora, 10, Boa Vista, Recife", addr)
}

func TestNominatimGeocoder_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	_, err := NewNominatimGeocoder(srv.URL, srv.Client()).ReverseGeocode(context.Background(), models.Coordinates{})

	assert.ErrorIs(t, err, ErrNoResult)
}

func TestNominatimGeocoder_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewNominatimGeocoder(srv.URL, srv.Client()).ReverseGeocode(context.Background(), models.Coordinates{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResult)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New("mapquest", "", "")
	assert.Error(t, err)
}
