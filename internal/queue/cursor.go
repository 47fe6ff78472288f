package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/quick-xyz/indexer-sub001/pkg/safe"
)

// Cursor returns the last work key successfully enqueued by discovery, or
// zero when discovery has never run.
func (r *Repository) Cursor(ctx context.Context) (cursor uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("cursor", err, started)
	}()

	const query = `SELECT COALESCE(max(last_enqueued), 0) FROM orchestrator_cursor`

	var last int64
	if err = r.pool.QueryRow(ctx, query).Scan(&last); err != nil {
		return 0, fmt.Errorf("query cursor: %w", err)
	}
	return uint64(last), nil
}

// AdvanceCursor moves the discovery cursor forward to workKey. The cursor is
// monotone: a stale caller can never move it backwards.
func (r *Repository) AdvanceCursor(ctx context.Context, workKey uint64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("advance_cursor", err, started)
	}()

	const query = `
INSERT INTO orchestrator_cursor (id, last_enqueued, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE
SET last_enqueued = GREATEST(orchestrator_cursor.last_enqueued, EXCLUDED.last_enqueued),
    updated_at = now()`

	key, err := safe.Int64(workKey)
	if err != nil {
		return fmt.Errorf("advance cursor to %d: %w", workKey, err)
	}

	if _, err = r.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("advance cursor to %d: %w", workKey, err)
	}
	return nil
}
