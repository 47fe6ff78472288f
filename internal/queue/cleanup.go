package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
)

// Cleanup permanently removes terminal jobs that finished more than olderThan
// ago. Only terminal statuses are accepted; passing none removes nothing.
func (r *Repository) Cleanup(ctx context.Context, olderThan time.Duration, statuses []model.JobStatus) (removed int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("cleanup", err, started)
	}()

	terminal := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if !s.Terminal() {
			return 0, fmt.Errorf("cleanup status %q is not terminal", s)
		}
		terminal = append(terminal, string(s))
	}
	if len(terminal) == 0 {
		return 0, nil
	}

	const query = `
DELETE FROM jobs
WHERE status = ANY($1)
  AND completed_at < now() - make_interval(secs => $2)`

	tag, err := r.pool.Exec(ctx, query, terminal, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("cleanup jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
