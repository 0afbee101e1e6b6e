package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/service"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/infrastructure/database"
	repoimpl "github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/repository"
)

func newLocalRouter(store *service.ItineraryStore, localRepo *repoimpl.BadgerLocalItineraryRepository) *gin.Engine {
	var h *LocalItineraryHandler
	if localRepo == nil {
		h = NewLocalItineraryHandler(store, nil)
	} else {
		h = NewLocalItineraryHandler(store, localRepo)
	}

	router := gin.New()
	local := router.Group("/api/local/itinerary")
	{
		local.GET("", h.List)
		local.DELETE("", h.Clear)
		local.POST("/destinations", h.AddDestination)
		local.DELETE("/destinations/:index", h.RemoveDestination)
		local.GET("/duration", h.TotalDuration)
		local.GET("/export", h.Export)
		local.POST("/import", h.Import)
	}
	return router
}

func addLocalDestination(t *testing.T, router *gin.Engine, name string, lat, lng float64, days, hours, minutes string) {
	t.Helper()
	payload := map[string]any{
		"address": map[string]any{
			"display_name": name,
			"lat":          lat,
			"lng":          lng,
			"address":      map[string]string{"country": "Vietnam"},
			"source":       "geocode",
		},
		"days":    days,
		"hours":   hours,
		"minutes": minutes,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/local/itinerary/destinations", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

func TestLocalItinerary_AddAndList(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)

	addLocalDestination(t, router, "Sapa, Vietnam", 22.3364, 103.8438, "2", "0", "30")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/local/itinerary", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Destinations []model.Destination `json:"destinations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Destinations, 1)
	assert.Equal(t, "Sapa, Vietnam", resp.Destinations[0].Name)
	assert.Equal(t, model.Duration{Days: 2, Minutes: 30}, resp.Destinations[0].Duration)
	assert.Equal(t, "Vietnam", resp.Destinations[0].Address.Country)
}

func TestLocalItinerary_AddRejectsMissingAddress(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)

	for _, payload := range []string{`{"days": "1"}`, `{"address": null, "days": "1"}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/local/itinerary/destinations", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %q", payload)
	}
	assert.Empty(t, store.Points(), "nothing may be appended for a rejected body")
}

func TestLocalItinerary_RemoveDestination(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)
	addLocalDestination(t, router, "Hué", 16.4637, 107.5909, "1", "0", "0")

	t.Run("out-of-range index is 404 and leaves the list alone", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/local/itinerary/destinations/5", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Len(t, store.Points(), 1)
	})

	t.Run("non-integer index is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/local/itinerary/destinations/abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid index removes", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/local/itinerary/destinations/0", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.Points())
	})
}

func TestLocalItinerary_TotalDuration(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)
	addLocalDestination(t, router, "Bangkok", 13.7563, 100.5018, "1", "0", "30")
	addLocalDestination(t, router, "Hanoï", 21.0278, 105.8342, "0", "23", "40")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/local/itinerary/duration", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Duration       model.Duration `json:"duration"`
		DistanceMeters float64        `json:"distance_meters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.Duration{Days: 2, Hours: 0, Minutes: 10}, resp.Duration)
	assert.Greater(t, resp.DistanceMeters, 0.0)
}

func TestLocalItinerary_ExportImportRoundTrip(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)
	addLocalDestination(t, router, "Luang Prabang, Laos", 19.8834, 102.1347, "3", "0", "0")

	export := httptest.NewRecorder()
	router.ServeHTTP(export, httptest.NewRequest("GET", "/api/local/itinerary/export", nil))
	require.Equal(t, http.StatusOK, export.Code)

	// Wipe and restore from the exported document.
	wipe := httptest.NewRecorder()
	router.ServeHTTP(wipe, httptest.NewRequest("DELETE", "/api/local/itinerary", nil))
	require.Equal(t, http.StatusOK, wipe.Code)
	require.Empty(t, store.Points())

	importReq := httptest.NewRequest("POST", "/api/local/itinerary/import", export.Body)
	importReq.Header.Set("Content-Type", "application/json")
	imported := httptest.NewRecorder()
	router.ServeHTTP(imported, importReq)
	require.Equal(t, http.StatusOK, imported.Code)

	points := store.Points()
	require.Len(t, points, 1)
	assert.Equal(t, "Luang Prabang, Laos", points[0].Name)
}

func TestLocalItinerary_ImportRejectsNonArray(t *testing.T) {
	store := service.NewItineraryStore()
	router := newLocalRouter(store, nil)
	addLocalDestination(t, router, "Hué", 16.4637, 107.5909, "1", "0", "0")

	for _, payload := range []string{`{"destinations": []}`, `null`, `broken`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/local/itinerary/import", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %q", payload)
		assert.Len(t, store.Points(), 1, "state must survive rejected import %q", payload)
	}
}

func TestLocalItinerary_MutationsPersistToFallbackStore(t *testing.T) {
	client, err := database.NewBadgerClient("")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	localRepo := repoimpl.NewBadgerLocalItineraryRepository(client.DB)

	store := service.NewItineraryStore()
	router := newLocalRouter(store, localRepo)
	addLocalDestination(t, router, "Chiang Maï, Thaïlande", 18.7883, 98.9853, "2", "0", "0")

	saved, err := localRepo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Chiang Maï, Thaïlande", saved[0].Name)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/local/itinerary", nil))
	require.Equal(t, http.StatusOK, w.Code)

	saved, err = localRepo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saved)
}
