package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/sigo_companion/internal/models"
)

// ErrNoResult - для координат не найден адрес
var ErrNoResult = errors.New("no address found for coordinates")

// Geocoder переводит координаты в адрес
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (string, error)
}

// Провайдеры геокодирования
const (
	ProviderGoogle    = "google"
	ProviderNominatim = "nominatim"
)

// New создает геокодер по имени провайдера
func New(provider, googleAPIKey, nominatimURL string) (Geocoder, error) {
	switch provider {
	case ProviderGoogle:
		return NewGoogleGeocoder(googleAPIKey)
	case ProviderNominatim, "":
		return NewNominatimGeocoder(nominatimURL, &http.Client{Timeout: 10 * time.Second}), nil
	default:
		return nil, fmt.Errorf("unknown maps provider %q", provider)
	}
}
