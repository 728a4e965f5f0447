// Package main provides the chat API server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusmate/chatbot-go/internal/api"
	"github.com/campusmate/chatbot-go/internal/buildinfo"
	"github.com/campusmate/chatbot-go/internal/config"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, apiHandler *api.Handler, registry *prometheus.Registry, cfg *config.Config) {
	// Root endpoint - service identification
	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "campusmate-chatbot",
			"version": buildinfo.Version,
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe - never checks dependencies, only that the process runs
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe - checks the usage database
	readyHandler := func(c *gin.Context) {
		if err := apiHandler.Ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"database": "connected",
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat API
	router.POST("/api/chat", apiHandler.Chat)
	router.GET("/api/stats", apiHandler.Stats)

	// Prometheus metrics endpoint, basic-auth protected when configured
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
