package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

const defaultGeocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocodeProvider queries the Google Geocoding API. It is the
// fallback provider: the search service only calls it after the places
// provider returned nothing.
type GoogleGeocodeProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleGeocodeProvider creates a new provider bound to the given API key.
func NewGoogleGeocodeProvider(apiKey string) *GoogleGeocodeProvider {
	return &GoogleGeocodeProvider{
		apiKey:     apiKey,
		baseURL:    defaultGeocodeBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search geocodes a free-text address. An unconfigured key short-circuits
// with model.ErrAPIKeyNotConfigured before any network call.
func (g *GoogleGeocodeProvider) Search(ctx context.Context, query string) ([]model.AddressResult, error) {
	if g.apiKey == "" || g.apiKey == model.APIKeyPlaceholder {
		return nil, model.ErrAPIKeyNotConfigured
	}

	params := url.Values{}
	params.Set("address", query)
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build Geocoding API request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Geocoding API returned an error status: %s", resp.Status)
	}

	var apiResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse Geocoding API response: %w", err)
	}

	results := make([]model.AddressResult, 0, len(apiResp.Results))
	for _, raw := range apiResp.Results {
		results = append(results, raw.toAddressResult())
	}
	return results, nil
}

// --- structs for parsing the Geocoding API response ---

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	PlaceID           string             `json:"place_id"`
	Geometry          geocodeGeometry    `json:"geometry"`
	AddressComponents []geocodeComponent `json:"address_components"`
}

type geocodeGeometry struct {
	Location *placesLocation `json:"location"`
}

type geocodeComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

func (gr geocodeResult) toAddressResult() model.AddressResult {
	// Flatten address_components into a type → name map, preferring the
	// long name as the original UI does.
	components := map[string]string{}
	for _, comp := range gr.AddressComponents {
		name := comp.LongName
		if name == "" {
			name = comp.ShortName
		}
		for _, t := range comp.Types {
			components[t] = name
		}
	}

	result := model.AddressResult{
		PlaceID:           gr.PlaceID,
		DisplayName:       gr.FormattedAddress,
		FormattedAddress:  gr.FormattedAddress,
		AddressComponents: components,
		Source:            model.SourceGeocode,
	}
	if gr.Geometry.Location == nil {
		result.Source = model.SourceError
		return result
	}
	lat, lng := gr.Geometry.Location.Lat, gr.Geometry.Location.Lng
	result.Latitude = &lat
	result.Longitude = &lng
	return result
}
