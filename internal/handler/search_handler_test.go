package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeSearchService replays canned normalized results.
type fakeSearchService struct {
	results []model.AddressResult
}

func (f *fakeSearchService) Search(_ context.Context, _ string) []model.AddressResult {
	if f.results == nil {
		return []model.AddressResult{}
	}
	return f.results
}

func newSearchRouter(h *SearchHandler) *gin.Engine {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/api/places-search", h.PlacesSearch)
	router.GET("/api/search", h.Search)
	return router
}

func TestNewSearchHandler_ProxiesTheTextSearchEndpoint(t *testing.T) {
	h := NewSearchHandler(&fakeSearchService{}, "test-key")
	assert.Equal(t, model.PlacesTextSearchBaseURL, h.baseURL)
}

func TestPlacesSearch_QueryTooShort(t *testing.T) {
	router := newSearchRouter(NewSearchHandler(&fakeSearchService{}, "test-key"))

	for _, q := range []string{"", "ab", "%20%20ab%20"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/places-search?query="+q, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
		assert.JSONEq(t, `{"error": "Query too short"}`, w.Body.String())
	}
}

func TestPlacesSearch_MissingAPIKey(t *testing.T) {
	for _, key := range []string{"", model.APIKeyPlaceholder} {
		router := newSearchRouter(NewSearchHandler(&fakeSearchService{}, key))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/places-search?query=hanoi", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code, "key %q", key)
		assert.JSONEq(t, `{"error": "API key not configured"}`, w.Body.String())
	}
}

func TestPlacesSearch_PassesUpstreamBodyVerbatim(t *testing.T) {
	upstream := `{"status": "ZERO_RESULTS", "results": [], "html_attributions": []}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hanoi vieux quartier", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer srv.Close()

	h := NewSearchHandler(&fakeSearchService{}, "test-key")
	h.baseURL = srv.URL
	router := newSearchRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/places-search?query=hanoi+vieux+quartier", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upstream, w.Body.String(), "upstream JSON must not be reshaped")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPlacesSearch_UpstreamUnreachable(t *testing.T) {
	h := NewSearchHandler(&fakeSearchService{}, "test-key")
	h.baseURL = "http://127.0.0.1:1" // connection refused
	router := newSearchRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/places-search?query=hanoi", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
}

func TestPlacesSearch_PreflightAnsweredDirectly(t *testing.T) {
	router := newSearchRouter(NewSearchHandler(&fakeSearchService{}, "test-key"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/places-search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "OPTIONS")
	assert.Empty(t, w.Body.String())
}

func TestSearch_ReturnsNormalizedResults(t *testing.T) {
	lat, lng := 21.0278, 105.8342
	svc := &fakeSearchService{results: []model.AddressResult{{
		DisplayName:       "Hanoï, Vietnam",
		Latitude:          &lat,
		Longitude:         &lng,
		AddressComponents: map[string]string{"country": "Vietnam"},
		Source:            model.SourceGeocode,
	}}}
	router := newSearchRouter(NewSearchHandler(svc, "test-key"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/search?query=hanoi", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"results": [{
			"display_name": "Hanoï, Vietnam",
			"lat": 21.0278,
			"lng": 105.8342,
			"address": {"country": "Vietnam"},
			"source": "geocode"
		}]
	}`, w.Body.String())
}

func TestSearch_EmptyResultIsAnArray(t *testing.T) {
	router := newSearchRouter(NewSearchHandler(&fakeSearchService{}, "test-key"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/search?query=zz", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": []}`, w.Body.String())
}
