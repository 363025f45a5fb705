package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
)

// AdminSecretContextKey is a gin context key for the moderation secret.
const AdminSecretContextKey = "adminSecret"

// AdminRequired extracts the shared moderation secret from the request.
// The gateway only checks presence; the backend is the authority that
// compares the secret on every forwarded call.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(backend.AuthHeader)
		if secret == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(AdminSecretContextKey, secret)
		c.Next()
	}
}
