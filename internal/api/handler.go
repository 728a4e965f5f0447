// Package api exposes the chat engine over HTTP: the chat endpoint itself,
// usage statistics for operators, and the request plumbing around them
// (validation, rate limiting, metrics).
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/campusmate/chatbot-go/internal/chat"
	apperrors "github.com/campusmate/chatbot-go/internal/errors"
	"github.com/campusmate/chatbot-go/internal/logger"
	"github.com/campusmate/chatbot-go/internal/metrics"
	"github.com/campusmate/chatbot-go/internal/ratelimit"
	"github.com/campusmate/chatbot-go/internal/storage"
)

// usageWriteTimeout bounds the async usage log write so a stalled disk
// cannot pile up goroutines.
const usageWriteTimeout = 5 * time.Second

// Handler serves the chat API.
type Handler struct {
	engine  *chat.Engine
	usage   *storage.UsageRepository
	limiter *ratelimit.PerKeyLimiter
	metrics *metrics.Metrics
	log     *logger.Logger
}

// HandlerConfig assembles a Handler's dependencies. Usage may be nil to
// disable the usage log; Limiter may be nil to disable rate limiting.
type HandlerConfig struct {
	Engine  *chat.Engine
	Usage   *storage.UsageRepository
	Limiter *ratelimit.PerKeyLimiter
	Metrics *metrics.Metrics
	Logger  *logger.Logger
}

// NewHandler creates the API handler and registers custom validators.
func NewHandler(cfg HandlerConfig) *Handler {
	registerValidators()

	h := &Handler{
		engine:  cfg.Engine,
		usage:   cfg.Usage,
		limiter: cfg.Limiter,
		metrics: cfg.Metrics,
		log:     cfg.Logger.WithModule("api"),
	}

	if h.limiter != nil && h.metrics != nil {
		h.limiter.OnDrop(func() {
			h.metrics.RecordRateLimiterDrop("chat")
		})
	}

	return h
}

// registerValidators adds the dayindex rule used by the bundle binding.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dayindex", func(fl validator.FieldLevel) bool {
			day := fl.Field().Int()
			return day >= 0 && day <= 6
		})
	}
}

// Chat handles POST /api/chat: bind the bundle, classify, respond.
func (h *Handler) Chat(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		if h.metrics != nil {
			h.metrics.RecordHTTPError("rate_limit")
		}
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": apperrors.ErrRateLimitExceeded.Error(),
		})
		return
	}

	var bundle chat.RequestBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		if h.metrics != nil {
			h.metrics.RecordHTTPError("invalid_body")
		}
		verr := apperrors.NewValidationError("message", "must be present and at most 500 characters")
		h.log.WithError(err).Debug("rejected chat request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		return
	}

	bundle.Message = sanitizeMessage(bundle.Message)

	start := time.Now()
	resp := h.engine.ClassifyAndRespond(c.Request.Context(), &bundle)
	duration := time.Since(start)

	status := "success"
	if resp.Intent == chat.IntentError {
		status = "error"
	}
	if h.metrics != nil {
		h.metrics.RecordChat(resp.Intent.String(), status, duration.Seconds())
	}

	h.recordUsageAsync(resp.Intent, resp.Metadata.Timestamp)

	c.JSON(http.StatusOK, resp)
}

// recordUsageAsync bumps the intent counter off the request path. A write
// failure is logged and counted, never surfaced to the client.
func (h *Handler) recordUsageAsync(intent chat.Intent, at time.Time) {
	if h.usage == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), usageWriteTimeout)
		defer cancel()

		if err := h.usage.Record(ctx, intent.String(), at); err != nil {
			h.log.WithError(err).Warn("usage log write failed")
			if h.metrics != nil {
				h.metrics.RecordUsageLogWrite("error")
			}
			return
		}
		if h.metrics != nil {
			h.metrics.RecordUsageLogWrite("success")
		}
	}()
}

// Stats handles GET /api/stats: per-intent usage totals over a trailing
// day window (default 7, max 365).
func (h *Handler) Stats(c *gin.Context) {
	if h.usage == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "usage log is disabled"})
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			if h.metrics != nil {
				h.metrics.RecordHTTPError("invalid_body")
			}
			verr := apperrors.NewValidationError("days", "must be between 1 and 365")
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		days = parsed
	}

	stats, err := h.usage.Stats(c.Request.Context(), days, time.Now())
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordHTTPError("internal")
		}
		h.log.WithError(err).Error("usage stats query failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "usage stats are unavailable"})
		return
	}

	if stats == nil {
		stats = []storage.IntentCount{}
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "intents": stats})
}

// Ready reports whether downstream dependencies answer.
func (h *Handler) Ready(ctx context.Context) error {
	if h.usage == nil {
		return nil
	}
	return h.usage.Ready(ctx)
}

// Stop releases background resources held by the handler.
func (h *Handler) Stop() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}
