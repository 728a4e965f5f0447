package config

import "time"

// HTTP server timeouts. Chat classification is CPU-only and fast; the
// read timeout mostly bounds slow clients uploading large bundles.
const (
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 15 * time.Second
	HTTPIdleTimeout  = 60 * time.Second
)

// Usage log cleanup scheduling.
const (
	// UsageCleanupInitialDelay lets the server stabilize before the first run.
	UsageCleanupInitialDelay = 1 * time.Minute
	// UsageCleanupInterval is how often expired usage buckets are removed.
	UsageCleanupInterval = 12 * time.Hour
)
