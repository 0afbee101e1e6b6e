package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/service"
)

// SearchHandler exposes the address search: a thin proxy returning the
// Places API reply verbatim, and a normalized endpoint backed by the
// search client with its geocode fallback.
type SearchHandler struct {
	searchService service.AddressSearchService
	apiKey        string
	baseURL       string
	httpClient    *http.Client
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(searchService service.AddressSearchService, apiKey string) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		apiKey:        apiKey,
		baseURL:       model.PlacesTextSearchBaseURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// PlacesSearch GET /api/places-search - forwards the query to the Places
// text-search API and returns the upstream JSON unmodified.
func (h *SearchHandler) PlacesSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if utf8.RuneCountInString(query) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query too short"})
		return
	}

	if h.apiKey == "" || h.apiKey == model.APIKeyPlaceholder {
		logrus.Error("❌ Places proxy called without a configured API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
		return
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", h.apiKey)
	reqURL := fmt.Sprintf("%s?%s", h.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(c.Request.Context(), "GET", reqURL, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		logrus.Errorf("❌ Places proxy upstream error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.Errorf("❌ Places proxy read error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Upstream JSON is passed through verbatim, whatever its status field
	// says; interpreting it is the caller's concern.
	c.Data(http.StatusOK, "application/json", body)
}

// Search GET /api/search - returns normalized AddressResult entries from
// the places/geocode fallback chain. Always 200 with a JSON array.
func (h *SearchHandler) Search(c *gin.Context) {
	results := h.searchService.Search(c.Request.Context(), c.Query("query"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
