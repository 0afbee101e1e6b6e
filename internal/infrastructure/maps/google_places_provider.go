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

// GooglePlacesProvider queries the Google Places text-search API and maps
// its reply into the normalized AddressResult shape.
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider creates a new provider bound to the given API key.
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    model.PlacesTextSearchBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search runs a text search. An unconfigured key short-circuits with
// model.ErrAPIKeyNotConfigured before any network call; the search service
// then falls straight through to the geocode provider.
func (g *GooglePlacesProvider) Search(ctx context.Context, query string) ([]model.AddressResult, error) {
	if g.apiKey == "" || g.apiKey == model.APIKeyPlaceholder {
		return nil, model.ErrAPIKeyNotConfigured
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build Places API request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Places API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Places API returned an error status: %s", resp.Status)
	}

	var apiResp placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse Places API response: %w", err)
	}

	results := make([]model.AddressResult, 0, len(apiResp.Results))
	for _, raw := range apiResp.Results {
		results = append(results, raw.toAddressResult())
	}
	return results, nil
}

// --- structs for parsing the Places API response ---

type placesResponse struct {
	Results      []placesResult `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

type placesResult struct {
	Name             string         `json:"name"`
	FormattedAddress string         `json:"formatted_address"`
	PlaceID          string         `json:"place_id"`
	Geometry         placesGeometry `json:"geometry"`
}

type placesGeometry struct {
	Location *placesLocation `json:"location"`
}

type placesLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p placesResult) toAddressResult() model.AddressResult {
	result := model.AddressResult{
		PlaceID:           p.PlaceID,
		DisplayName:       p.Name + ", " + p.FormattedAddress,
		FormattedAddress:  p.FormattedAddress,
		AddressComponents: map[string]string{},
		Source:            model.SourcePlaces,
	}
	// Missing geometry downgrades the result to an error marker rather
	// than failing the whole search.
	if p.Geometry.Location == nil {
		result.Source = model.SourceError
		return result
	}
	lat, lng := p.Geometry.Location.Lat, p.Geometry.Location.Lng
	result.Latitude = &lat
	result.Longitude = &lng
	return result
}
