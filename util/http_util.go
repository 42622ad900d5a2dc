// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/edusphere/integration/logging"
)

// RespondWithError logs the failure and writes the {"detail": ...} error body
// every route uses.
func RespondWithError(c *gin.Context, code int, detail string, err error) {
	logger.Error(detail,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"detail": detail})
}

// CallerFromContext returns the verified token identity stored by the auth
// middleware, or an empty string on ungated routes.
func CallerFromContext(c *gin.Context) string {
	caller, exists := c.Get("caller")
	if !exists {
		return ""
	}
	id, _ := caller.(string)
	return id
}
