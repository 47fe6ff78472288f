// Package worker implements one queue-driven execution unit. A worker claims
// jobs from the shared store, runs the block processor on each, reports the
// outcome, and emits heartbeats for its supervisor.
package worker

import (
	"context"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	JobQueue interface {
		ClaimNext(ctx context.Context, workerID string) (*model.Job, error)
		Complete(ctx context.Context, jobID int64, workerID string) error
		Fail(ctx context.Context, jobID int64, workerID, errMsg string, retryable bool) error
	}

	// BlockProcessor decodes and stores one block. It must tolerate being
	// invoked more than once for the same work key: retries and stale
	// reclaim can both cause re-execution.
	BlockProcessor interface {
		Process(ctx context.Context, workKey uint64) error
	}

	WorkerMetrics interface {
		ObserveClaim(err error, claimed bool, started time.Time)
		ObserveJob(outcome string, started time.Time)
	}
)
