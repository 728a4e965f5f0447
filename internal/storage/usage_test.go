package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/campusmate/chatbot-go/internal/errors"
)

func newTestRepo(t *testing.T) *UsageRepository {
	t.Helper()

	db, err := NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewUsageRepository(db)
}

func TestRecordAndStats(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, "GREETING", now))
	require.NoError(t, repo.Record(ctx, "GREETING", now))
	require.NoError(t, repo.Record(ctx, "EXPENSE_MONTHLY", now))
	require.NoError(t, repo.Record(ctx, "GREETING", now.AddDate(0, 0, -1)))

	stats, err := repo.Stats(ctx, 7, now)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, IntentCount{Intent: "GREETING", Count: 3}, stats[0])
	assert.Equal(t, IntentCount{Intent: "EXPENSE_MONTHLY", Count: 1}, stats[1])
}

func TestStatsWindowExcludesOldDays(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, "GUIDANCE", now.AddDate(0, 0, -10)))
	require.NoError(t, repo.Record(ctx, "GUIDANCE", now))

	stats, err := repo.Stats(ctx, 7, now)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(1), stats[0].Count)
}

func TestStatsInvalidDays(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)

	_, err := repo.Stats(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, "GREETING", now.AddDate(0, 0, -100)))
	require.NoError(t, repo.Record(ctx, "GREETING", now))

	removed, err := repo.Cleanup(ctx, 90*24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	stats, err := repo.Stats(ctx, 365, now)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(1), stats[0].Count)
}

func TestReady(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	assert.NoError(t, repo.Ready(context.Background()))
}
