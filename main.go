package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edusphere/integration/aggregator"
	"github.com/edusphere/integration/audit"
	"github.com/edusphere/integration/config"
	"github.com/edusphere/integration/controller"
	"github.com/edusphere/integration/db"
	"github.com/edusphere/integration/health"
	logger "github.com/edusphere/integration/logging"
	"github.com/edusphere/integration/metrics"
	"github.com/edusphere/integration/proxy"
	"github.com/edusphere/integration/registry"
	"github.com/edusphere/integration/router"
	"github.com/edusphere/integration/token"
	"github.com/edusphere/integration/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger("logging")
	defer logger.Sync()

	// Initialize Redis if configured (backs the rate limiter)
	rateLimitEnabled := false
	if config.GetString("redis.addr") != "" {
		if err := db.InitRedis(); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
		rateLimitEnabled = true
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Audit trail: Elasticsearch when configured, discard otherwise
	var auditRepo audit.Repository = audit.NoopRepository{}
	if esURL := config.GetString("elasticsearch.url"); esURL != "" {
		repo, err := audit.NewElasticsearchRepository(esURL)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
		}
		auditRepo = repo
	}
	audit.NewService(auditRepo, eventBus)

	// Core components
	serviceRegistry := registry.NewServiceRegistry(
		config.GetString("gateway.url"),
		config.GetString("external.url"),
	)
	authority := token.NewAuthority(
		config.GetString("auth.secret"),
		config.GetDuration("auth.tokenTTL"),
	)
	dispatcher := proxy.NewDispatcher(serviceRegistry, config.GetDuration("proxy.timeout"), eventBus)
	dashboardAggregator := aggregator.NewAggregator(dispatcher)
	monitor := health.NewMonitor(
		config.GetString("gateway.url"),
		config.GetString("external.url"),
		config.GetDuration("health.timeout"),
	)
	collector := metrics.NewCollector()

	// Initialize controllers
	controllers := controller.InitializeControllers(
		dispatcher,
		authority,
		dashboardAggregator,
		monitor,
		serviceRegistry,
		collector,
	)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, authority, collector, router.Options{
		RateLimitEnabled:  rateLimitEnabled,
		RateLimitRequests: config.GetInt("ratelimit.requests"),
		RateLimitWindow:   config.GetDuration("ratelimit.window"),
	})

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
