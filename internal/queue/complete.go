package queue

import (
	"context"
	"fmt"
	"time"
)

// Complete transitions a processing job owned by workerID to completed.
// Completing a job that is already terminal, or that has been reclaimed and
// handed to another worker, matches no row and is a silent no-op: the
// reclaim/backoff design makes that race expected and benign.
func (r *Repository) Complete(ctx context.Context, jobID int64, workerID string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("complete", err, started)
	}()

	const query = `
UPDATE jobs
SET status = 'completed',
    completed_at = now(),
    owner_worker_id = NULL
WHERE id = $1 AND owner_worker_id = $2 AND status = 'processing'`

	if _, err = r.pool.Exec(ctx, query, jobID, workerID); err != nil {
		return fmt.Errorf("complete job %d: %w", jobID, err)
	}
	return nil
}
