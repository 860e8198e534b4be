package delivery

import (
	"net/http"

	"contacts-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes using HTTP Basic credentials. The
// Basic username slot carries either a bearer token or a username; the
// password slot carries the plaintext password, ignored on the token path.
// The resolved user lives on the request context only.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier, secret, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="Authentication Required"`)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		user, err := authUsecase.Authenticate(identifier, secret)
		if err != nil {
			// one message for every failure mode, so callers cannot probe
			// which usernames exist
			c.Header("WWW-Authenticate", `Basic realm="Authentication Required"`)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
