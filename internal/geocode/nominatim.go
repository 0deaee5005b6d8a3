package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/sigo_companion/internal/models"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder - обратное геокодирование через Nominatim (OpenStreetMap)
type NominatimGeocoder struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimGeocoder(baseURL string, httpClient *http.Client) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &NominatimGeocoder{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type nominatimReverse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
	} `json:"address"`
}

// short собирает адрес в формате "Rua, Número, Bairro, Cidade"
func (r nominatimReverse) short() string {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{r.Address.Road, r.Address.HouseNumber, r.Address.Suburb, city} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if r.Address.Road == "" {
		return r.DisplayName
	}
	return strings.Join(parts, ", ")
}

func (n *NominatimGeocoder) ReverseGeocode(ctx context.Context, coords models.Coordinates) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', 7, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', 7, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", "sigo-companion/1.0")
	req.Header.Set("Accept-Language", "pt-BR")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim responded with status %d", resp.StatusCode)
	}

	var result nominatimReverse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if result.Error != "" {
		return "", ErrNoResult
	}
	addr := result.short()
	if addr == "" {
		return "", ErrNoResult
	}
	return addr, nil
}
