package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/pkg/safe"
)

// Enqueue inserts a pending job for workKey, or raises the priority of the
// existing row when a higher one is supplied. It never creates a second row
// for the same work key and returns the job id either way. Metadata is kept
// as-is on conflict.
func (r *Repository) Enqueue(ctx context.Context, workKey uint64, priority int32, metadata model.Metadata) (id int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("enqueue", err, started)
	}()

	const query = `
INSERT INTO jobs (work_key, status, priority, created_at, next_attempt_at, max_attempts, metadata)
VALUES ($1, 'pending', $2, now(), now(), $3, $4)
ON CONFLICT (work_key) DO UPDATE
SET priority = GREATEST(jobs.priority, EXCLUDED.priority)
RETURNING id`

	if metadata == nil {
		metadata = model.Metadata{}
	}

	key, err := safe.Int64(workKey)
	if err != nil {
		return 0, fmt.Errorf("enqueue work key %d: %w", workKey, err)
	}

	if err = r.pool.QueryRow(ctx, query, key, priority, r.cfg.MaxAttempts, metadata).Scan(&id); err != nil {
		return 0, fmt.Errorf("enqueue work key %d: %w", workKey, err)
	}
	return id, nil
}
