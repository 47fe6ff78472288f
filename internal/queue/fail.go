package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quick-xyz/indexer-sub001/pkg/backoff"
)

// Fail records a processing failure for a job owned by workerID. Retryable
// failures with attempts left go back to pending with a capped exponential
// delay; everything else moves to dead. Like Complete, a call for a job this
// worker no longer owns is a silent no-op.
func (r *Repository) Fail(ctx context.Context, jobID int64, workerID, errMsg string, retryable bool) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fail", err, started)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("fail job %d: begin: %w", jobID, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const selectQuery = `
SELECT attempts, max_attempts
FROM jobs
WHERE id = $1 AND owner_worker_id = $2 AND status = 'processing'
FOR UPDATE`

	var attempts, maxAttempts int32
	if err = tx.QueryRow(ctx, selectQuery, jobID, workerID).Scan(&attempts, &maxAttempts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			return nil
		}
		return fmt.Errorf("fail job %d: select: %w", jobID, err)
	}

	if retryable && attempts < maxAttempts {
		delay := backoff.Delay(r.cfg.BackoffBase, r.cfg.BackoffCap, int(attempts))

		const retryQuery = `
UPDATE jobs
SET status = 'pending',
    owner_worker_id = NULL,
    started_at = NULL,
    next_attempt_at = now() + make_interval(secs => $2),
    last_error = $3
WHERE id = $1`
		if _, err = tx.Exec(ctx, retryQuery, jobID, delay.Seconds(), errMsg); err != nil {
			return fmt.Errorf("fail job %d: requeue: %w", jobID, err)
		}
	} else {
		const deadQuery = `
UPDATE jobs
SET status = 'dead',
    owner_worker_id = NULL,
    completed_at = now(),
    last_error = $2
WHERE id = $1`
		if _, err = tx.Exec(ctx, deadQuery, jobID, errMsg); err != nil {
			return fmt.Errorf("fail job %d: mark dead: %w", jobID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("fail job %d: commit: %w", jobID, err)
	}
	return nil
}
