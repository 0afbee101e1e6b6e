package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/application"
)

// AuthHandler exposes the session lifecycle over HTTP.
type AuthHandler struct {
	syncService application.SyncService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(syncService application.SyncService) *AuthHandler {
	return &AuthHandler{syncService: syncService}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignIn POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	session, err := h.syncService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The provider's message is surfaced as-is; there is no retry and
		// no rate limiting.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "auth_failed",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignUp POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	session, err := h.syncService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "auth_failed",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// SignOut POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.syncService.SignOut()
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// Session GET /api/auth/session - reports the current session state.
func (h *AuthHandler) Session(c *gin.Context) {
	session := h.syncService.CurrentSession()
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "session": session})
}
