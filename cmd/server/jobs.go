// Package main provides the chat API server entry point.
package main

import (
	"context"
	"time"

	"github.com/campusmate/chatbot-go/internal/config"
	"github.com/campusmate/chatbot-go/internal/logger"
	"github.com/campusmate/chatbot-go/internal/metrics"
	"github.com/campusmate/chatbot-go/internal/storage"
)

// cleanupUsageLog periodically removes usage buckets past the retention window
func cleanupUsageLog(ctx context.Context, repo *storage.UsageRepository, retention time.Duration, m *metrics.Metrics, log *logger.Logger) {
	// Run initial cleanup after a delay to let the server stabilize
	select {
	case <-ctx.Done():
		return
	case <-time.After(config.UsageCleanupInitialDelay):
		performUsageCleanup(ctx, repo, retention, m, log)
	}

	ticker := time.NewTicker(config.UsageCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			performUsageCleanup(ctx, repo, retention, m, log)
		}
	}
}

// performUsageCleanup executes one retention pass
func performUsageCleanup(ctx context.Context, repo *storage.UsageRepository, retention time.Duration, m *metrics.Metrics, log *logger.Logger) {
	log.Debug("Starting usage log cleanup...")

	removed, err := repo.Cleanup(ctx, retention, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to clean up usage log")
		if m != nil {
			m.RecordUsageLogWrite("error")
		}
		return
	}

	log.WithField("removed", removed).
		WithField("retention", retention.String()).
		Info("Usage log cleanup complete")
}
