package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/application"
)

// OfflineHandler exposes the offline cache worker's fetch path.
type OfflineHandler struct {
	worker application.OfflineWorker
}

// NewOfflineHandler creates a new OfflineHandler instance.
func NewOfflineHandler(worker application.OfflineWorker) *OfflineHandler {
	return &OfflineHandler{worker: worker}
}

// Fetch GET /api/offline/fetch?url= - resolves a resource cache-first and
// replays it with its original status and content type. Blocked search
// URLs come back as the synthetic 503.
func (h *OfflineHandler) Fetch(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "url parameter is required",
		})
		return
	}

	resource, err := h.worker.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "fetch_failed",
			"message": "Failed to fetch resource: " + err.Error(),
		})
		return
	}

	contentType := resource.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(resource.Status, contentType, resource.Body)
}
