// Package main provides the chat API server entry point.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/campusmate/chatbot-go/internal/api"
	"github.com/campusmate/chatbot-go/internal/buildinfo"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/config"
	"github.com/campusmate/chatbot-go/internal/logger"
	"github.com/campusmate/chatbot-go/internal/metrics"
	"github.com/campusmate/chatbot-go/internal/modules"
	"github.com/campusmate/chatbot-go/internal/ratelimit"
	"github.com/campusmate/chatbot-go/internal/sentry"
	"github.com/campusmate/chatbot-go/internal/storage"
)

// globalRand adapts the process-wide generator to the engine's source.
// The top-level math/rand/v2 functions are safe for concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with optional Better Stack shipping
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting CampusMate chat server")

	// Initialize error reporting (no-op without a token)
	environment := "production"
	if cfg.Debug {
		environment = "debug"
	}
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: environment,
		Release:     buildinfo.Version,
		Debug:       cfg.Debug,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error reporting")
	}
	defer sentry.Flush(2 * time.Second)
	if sentry.IsEnabled() {
		log.Info("Error reporting enabled")
	}

	// Resolve the timezone used for "today"/"tomorrow"
	location, err := cfg.Location()
	if err != nil {
		log.WithError(err).Error("Failed to resolve timezone")
		os.Exit(1)
	}

	// Open the usage log database
	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to open usage database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	usageRepo := storage.NewUsageRepository(db)
	log.WithField("path", db.Path()).Info("Usage database connected")

	// Create Prometheus registry with runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Per-IP rate limiter for the chat endpoint
	limiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyLimiterConfig{
		MaxTokens:     cfg.ChatRateLimitBurst,
		RefillRate:    cfg.ChatRateLimitPerSec,
		CleanupPeriod: cfg.RateLimitCleanupPeriod,
	})

	// Assemble the chat engine over the ordered rule table
	engine := chat.NewEngine(chat.NewRegistry(modules.All()...), chat.EngineOptions{
		Logger:   log,
		Metrics:  m,
		Rand:     globalRand{},
		Location: location,
	})
	log.WithField("rules", len(modules.All())).Info("Chat engine assembled")

	apiHandler := api.NewHandler(api.HandlerConfig{
		Engine:  engine,
		Usage:   usageRepo,
		Limiter: limiter,
		Metrics: m,
		Logger:  log,
	})

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		// Repanic so gin.Recovery still produces the 500 response.
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))

	setupRoutes(router, apiHandler, registry, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
		IdleTimeout:  config.HTTPIdleTimeout,
	}

	// Background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	group, groupCtx := errgroup.WithContext(jobCtx)
	group.Go(func() error {
		cleanupUsageLog(groupCtx, usageRepo, cfg.UsageRetention, m, log)
		return nil
	})

	// Start server
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	apiHandler.Stop()
	cancelJobs()

	jobsDone := make(chan struct{})
	go func() {
		_ = group.Wait()
		close(jobsDone)
	}()
	select {
	case <-jobsDone:
		log.Info("Background jobs stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for background jobs to stop")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}

	log.Info("Server stopped")
}
