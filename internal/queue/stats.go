package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
)

// Stats returns per-status counts, the age of the oldest pending job, and
// the age distribution of processing jobs.
func (r *Repository) Stats(ctx context.Context) (stats model.QueueStats, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("stats", err, started)
	}()

	const query = `
SELECT
    count(*) FILTER (WHERE status = 'pending'),
    count(*) FILTER (WHERE status = 'processing'),
    count(*) FILTER (WHERE status = 'completed'),
    count(*) FILTER (WHERE status = 'dead'),
    COALESCE(EXTRACT(EPOCH FROM now() - min(created_at) FILTER (WHERE status = 'pending')), 0),
    COALESCE(EXTRACT(EPOCH FROM now() - max(started_at) FILTER (WHERE status = 'processing')), 0),
    COALESCE(EXTRACT(EPOCH FROM now() - min(started_at) FILTER (WHERE status = 'processing')), 0),
    COALESCE(EXTRACT(EPOCH FROM avg(now() - started_at) FILTER (WHERE status = 'processing')), 0)
FROM jobs`

	var oldestPending, minAge, maxAge, avgAge float64
	if err = r.pool.QueryRow(ctx, query).Scan(
		&stats.Pending,
		&stats.Processing,
		&stats.Completed,
		&stats.Dead,
		&oldestPending,
		&minAge,
		&maxAge,
		&avgAge,
	); err != nil {
		return model.QueueStats{}, fmt.Errorf("query queue stats: %w", err)
	}

	stats.OldestPendingAge = secondsToDuration(oldestPending)
	stats.ProcessingAges = model.AgeStats{
		Min: secondsToDuration(minAge),
		Max: secondsToDuration(maxAge),
		Avg: secondsToDuration(avgAge),
	}
	return stats, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
