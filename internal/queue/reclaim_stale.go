package queue

import (
	"context"
	"fmt"
	"time"
)

// ReclaimStale resets processing jobs whose claim is older than timeout back
// to pending, without incrementing attempts: the worker that owned them is
// presumed dead and its increment already happened at claim time. The status
// guard makes the sweep idempotent, so concurrent callers reclaim each stale
// job exactly once between them.
func (r *Repository) ReclaimStale(ctx context.Context, timeout time.Duration) (reclaimed int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("reclaim_stale", err, started)
	}()

	const query = `
UPDATE jobs
SET status = 'pending',
    owner_worker_id = NULL,
    started_at = NULL,
    next_attempt_at = now()
WHERE status = 'processing' AND started_at < now() - make_interval(secs => $1)`

	tag, err := r.pool.Exec(ctx, query, timeout.Seconds())
	if err != nil {
		return 0, fmt.Errorf("reclaim stale jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
