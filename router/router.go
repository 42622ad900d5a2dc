// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edusphere/integration/controller"
	"github.com/edusphere/integration/metrics"
	"github.com/edusphere/integration/middleware"
	"github.com/edusphere/integration/token"
)

// Options toggles the optional middleware. Rate limiting requires Redis and
// stays off when it is not configured.
type Options struct {
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func SetupRouter(
	controllers *controller.Controllers,
	authority token.IAuthority,
	collector *metrics.Collector,
	opts Options,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(collector))
	if opts.RateLimitEnabled {
		router.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitWindow))
	}

	// Public surface
	controllers.System.RegisterRoutes(router)
	controllers.Token.RegisterRoutes(router)
	controllers.External.RegisterRoutes(router)
	controllers.Dashboard.RegisterRoutes(router)

	// The generic proxy exposes every registered service's endpoint space, so
	// it requires a verified token.
	protected := router.Group("/", middleware.TokenAuth(authority))
	controllers.Proxy.RegisterRoutes(protected)

	return router
}
