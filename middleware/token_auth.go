// middleware/token_auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	gw_errors "github.com/edusphere/integration/errors"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/token"
)

// TokenAuth verifies the bearer token on protected routes and stores the
// verified identity under the "caller" context key for downstream audit
// records.
func TokenAuth(authority token.IAuthority) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.Error(gw_errors.ErrUnauthorized))
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := authority.Verify(tokenString)
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authentication credentials"})
			c.Abort()
			return
		}

		caller := claims.Subject
		if caller == "" {
			caller = claims.ServiceName
		}
		c.Set("caller", caller)
		c.Set("scopes", claims.Scopes)
		c.Next()
	}
}
