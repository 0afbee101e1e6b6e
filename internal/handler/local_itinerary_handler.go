package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/repository"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/service"
)

// LocalItineraryHandler exposes the non-persisted fallback itinerary used
// without a session. Every mutation is mirrored into the local key-value
// store so the list survives a restart.
type LocalItineraryHandler struct {
	store     *service.ItineraryStore
	localRepo repository.LocalItineraryRepository
}

// NewLocalItineraryHandler creates a new LocalItineraryHandler instance.
func NewLocalItineraryHandler(store *service.ItineraryStore, localRepo repository.LocalItineraryRepository) *LocalItineraryHandler {
	return &LocalItineraryHandler{store: store, localRepo: localRepo}
}

// addLocalDestinationRequest carries the picked address result and the raw
// duration form fields; coercion happens in the store. Address is a pointer
// so a missing or null field fails "required" instead of binding to the
// zero value.
type addLocalDestinationRequest struct {
	Address *model.AddressResult `json:"address" binding:"required"`
	Days    string               `json:"days"`
	Hours   string               `json:"hours"`
	Minutes string               `json:"minutes"`
}

// List GET /api/local/itinerary
func (h *LocalItineraryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": h.store.Points()})
}

// AddDestination POST /api/local/itinerary/destinations
func (h *LocalItineraryHandler) AddDestination(c *gin.Context) {
	var req addLocalDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	point := h.store.AddDestination(req.Address, req.Days, req.Hours, req.Minutes)
	h.persist(c)
	c.JSON(http.StatusCreated, point)
}

// RemoveDestination DELETE /api/local/itinerary/destinations/:index
func (h *LocalItineraryHandler) RemoveDestination(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "index must be an integer",
		})
		return
	}
	if !h.store.RemovePoint(index) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No destination at index " + c.Param("index"),
		})
		return
	}
	h.persist(c)
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Clear DELETE /api/local/itinerary
func (h *LocalItineraryHandler) Clear(c *gin.Context) {
	h.store.Clear()
	h.persist(c)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// TotalDuration GET /api/local/itinerary/duration - also reports the
// haversine length of the trip.
func (h *LocalItineraryHandler) TotalDuration(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"duration":        h.store.TotalDuration(),
		"distance_meters": h.store.TotalDistanceMeters(),
	})
}

// Export GET /api/local/itinerary/export - full-list JSON download.
func (h *LocalItineraryHandler) Export(c *gin.Context) {
	data, err := h.store.ExportJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to export itinerary: " + err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(data))
}

// Import POST /api/local/itinerary/import - replaces the list when the
// body is a JSON array, otherwise rejects without touching state.
func (h *LocalItineraryHandler) Import(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Failed to read body: " + err.Error(),
		})
		return
	}
	if !h.store.ImportJSON(string(body)) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Body must be a JSON array of destinations",
		})
		return
	}
	h.persist(c)
	c.JSON(http.StatusOK, gin.H{"status": "imported", "count": len(h.store.Points())})
}

// persist mirrors the current list into the fallback store. Failures are
// logged only; the in-memory list stays authoritative for the session.
func (h *LocalItineraryHandler) persist(c *gin.Context) {
	if h.localRepo == nil {
		return
	}
	if err := h.localRepo.Save(c.Request.Context(), h.store.Points()); err != nil {
		logrus.Warnf("⚠️ Failed to persist local itinerary: %v", err)
	}
}
