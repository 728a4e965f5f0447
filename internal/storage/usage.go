package storage

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/campusmate/chatbot-go/internal/errors"
)

// dayFormat is the usage bucket key.
const dayFormat = "2006-01-02"

// UsageRepository records and queries per-day intent counters.
type UsageRepository struct {
	db *DB
}

// NewUsageRepository creates a repository over the given database.
func NewUsageRepository(db *DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Record increments the counter for the intent on the given day.
func (r *UsageRepository) Record(ctx context.Context, intent string, at time.Time) error {
	query := `
	INSERT INTO usage_log (day, intent, count) VALUES (?, ?, 1)
	ON CONFLICT(day, intent) DO UPDATE SET count = count + 1`

	if _, err := r.db.conn.ExecContext(ctx, query, at.Format(dayFormat), intent); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// IntentCount is one intent's total over the queried window.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int64  `json:"count"`
}

// Stats returns per-intent totals for the trailing number of days,
// ordered by count descending.
func (r *UsageRepository) Stats(ctx context.Context, days int, now time.Time) ([]IntentCount, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidInput)
	}

	since := now.AddDate(0, 0, -days).Format(dayFormat)
	query := `
	SELECT intent, SUM(count) FROM usage_log
	WHERE day > ?
	GROUP BY intent
	ORDER BY SUM(count) DESC, intent ASC`

	rows, err := r.db.conn.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage stats: %w", err)
	}
	defer rows.Close()

	var out []IntentCount
	for rows.Next() {
		var ic IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		out = append(out, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read usage rows: %w", err)
	}
	return out, nil
}

// Cleanup deletes usage buckets older than the retention window and
// returns the number of rows removed.
func (r *UsageRepository) Cleanup(ctx context.Context, retention time.Duration, now time.Time) (int64, error) {
	cutoff := now.Add(-retention).Format(dayFormat)

	res, err := r.db.conn.ExecContext(ctx, `DELETE FROM usage_log WHERE day < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up usage log: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned rows: %w", err)
	}
	return removed, nil
}

// Ready reports whether the database answers queries.
func (r *UsageRepository) Ready(ctx context.Context) error {
	if err := r.db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
