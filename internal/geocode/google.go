package geocode

import (
	"context"
	"fmt"

	"github.com/shenikar/sigo_companion/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleGeocoder - обратное геокодирование через Google Maps
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) ReverseGeocode(ctx context.Context, coords models.Coordinates) (string, error) {
	req := &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coords.Latitude, Lng: coords.Longitude},
		Language: "pt-BR",
	}

	resp, err := g.client.ReverseGeocode(ctx, req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	for _, result := range resp {
		if result.FormattedAddress != "" {
			return result.FormattedAddress, nil
		}
	}
	return "", ErrNoResult
}
