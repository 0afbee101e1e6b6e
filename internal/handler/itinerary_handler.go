package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/application"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// ItineraryHandler exposes the synced (Firestore-backed) itineraries.
type ItineraryHandler struct {
	syncService application.SyncService
}

// NewItineraryHandler creates a new ItineraryHandler instance.
func NewItineraryHandler(syncService application.SyncService) *ItineraryHandler {
	return &ItineraryHandler{syncService: syncService}
}

// addDestinationRequest carries a selected address plus its planned visit
// duration.
type addDestinationRequest struct {
	Name     string         `json:"name" binding:"required"`
	Address  model.Address  `json:"address"`
	Location model.LatLng   `json:"location"`
	Duration model.Duration `json:"duration"`
}

// List GET /api/itineraries - the user's itineraries, most recently
// updated first.
func (h *ItineraryHandler) List(c *gin.Context) {
	itineraries, err := h.syncService.GetItineraries(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to list itineraries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": itineraries})
}

// Current GET /api/itineraries/current - returns the user's first
// itinerary, creating it on first use.
func (h *ItineraryHandler) Current(c *gin.Context) {
	itinerary, err := h.syncService.EnsureItinerary(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "Failed to resolve current itinerary")
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// AddDestination POST /api/itineraries/:id/destinations
func (h *ItineraryHandler) AddDestination(c *gin.Context) {
	var req addDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	destination := &model.Destination{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location,
		Duration: req.Duration,
	}
	created, err := h.syncService.AddDestination(c.Request.Context(), c.Param("id"), destination)
	if err != nil {
		h.writeError(c, err, "Failed to add destination")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListDestinations GET /api/itineraries/:id/destinations - trip order.
func (h *ItineraryHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.syncService.GetDestinations(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "Failed to list destinations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

// writeError maps the service's typed errors onto HTTP statuses.
func (h *ItineraryHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, model.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "not_authenticated",
			"message": message + ": sign in first",
		})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": message + ": " + err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": message + ": " + err.Error(),
		})
	}
}
