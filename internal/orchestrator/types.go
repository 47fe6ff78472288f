// Package orchestrator drives the pipeline: it discovers new blocks from the
// chain source, enqueues them as jobs, runs the periodic reclaim and
// retention sweeps, and merges queue and worker state into one status
// snapshot.
package orchestrator

import (
	"context"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// JobQueue is the durable queue surface the orchestrator drives.
	JobQueue interface {
		Enqueue(ctx context.Context, workKey uint64, priority int32, metadata model.Metadata) (int64, error)
		Stats(ctx context.Context) (model.QueueStats, error)
		ReclaimStale(ctx context.Context, timeout time.Duration) (int64, error)
		Cleanup(ctx context.Context, olderThan time.Duration, statuses []model.JobStatus) (int64, error)
		Cursor(ctx context.Context) (uint64, error)
		AdvanceCursor(ctx context.Context, workKey uint64) error
	}

	// HeightSource reports the chain frontier.
	HeightSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
	}

	// WorkerPool exposes the supervised workers for status aggregation.
	WorkerPool interface {
		Snapshot() []model.WorkerSnapshot
	}

	OrchestratorMetrics interface {
		ObserveDiscovery(err error, enqueued int, started time.Time)
		ObserveReclaim(err error, reclaimed int64, started time.Time)
		ObserveCleanup(err error, removed int64, started time.Time)
	}
)
