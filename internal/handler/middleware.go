package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/application"
)

// TokenVerifier validates a raw Authorization header value and returns the
// UID it was minted for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// CORSMiddleware mirrors the proxy's permissive CORS policy: any origin,
// and preflight answered with an empty 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// AuthRequired guards the remote itinerary routes. The session check is the
// primary gate; when a bearer token is also sent, it must verify and match
// the session's UID. The verifier may be nil in environments without Admin
// SDK credentials, in which case only the session gate applies.
func AuthRequired(sync application.SyncService, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sync.CurrentSession()
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "not_authenticated",
				"message": "Sign in before accessing itineraries",
			})
			return
		}

		rawToken := c.GetHeader("Authorization")
		if verifier != nil && rawToken != "" {
			uid, err := verifier.VerifyToken(c.Request.Context(), rawToken)
			if err != nil {
				logrus.Warnf("⚠️ Rejected bearer token: %v", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "invalid_token",
					"message": "ID token verification failed",
				})
				return
			}
			if uid != session.UID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "token_mismatch",
					"message": "Token does not belong to the signed-in user",
				})
				return
			}
		}
		c.Next()
	}
}
