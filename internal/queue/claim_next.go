package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quick-xyz/indexer-sub001/internal/model"
)

// ClaimNext atomically claims the next eligible job for workerID: highest
// priority first, oldest first within a tier. Selection and the transition to
// processing happen in one statement; rows being evaluated by a concurrent
// claimer are skipped, not waited on. Returns (nil, nil) when no job is
// eligible.
func (r *Repository) ClaimNext(ctx context.Context, workerID string) (job *model.Job, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("claim_next", err, started)
	}()

	const query = `
UPDATE jobs
SET status = 'processing',
    owner_worker_id = $1,
    started_at = now(),
    attempts = attempts + 1
WHERE id = (
    SELECT id
    FROM jobs
    WHERE status = 'pending' AND next_attempt_at <= now()
    ORDER BY priority DESC, created_at ASC
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, work_key, status, priority, created_at, started_at, completed_at,
          next_attempt_at, owner_worker_id, attempts, max_attempts, last_error, metadata`

	j, err := scanJob(r.pool.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim next job: %w", err)
	}
	return j, nil
}

// scanJob maps one jobs row onto a model.Job.
func scanJob(row pgx.Row) (*model.Job, error) {
	var (
		j       model.Job
		workKey int64
		owner   *string
		lastErr *string
	)
	if err := row.Scan(
		&j.ID,
		&workKey,
		&j.Status,
		&j.Priority,
		&j.CreatedAt,
		&j.StartedAt,
		&j.CompletedAt,
		&j.NextAttemptAt,
		&owner,
		&j.Attempts,
		&j.MaxAttempts,
		&lastErr,
		&j.Metadata,
	); err != nil {
		return nil, err
	}
	j.WorkKey = uint64(workKey)
	if owner != nil {
		j.OwnerWorkerID = *owner
	}
	if lastErr != nil {
		j.LastError = *lastErr
	}
	return &j, nil
}
