// Package manager supervises a pool of worker processes: spawn, liveness
// monitoring, bounded-rate restart, coordinated shutdown and runtime
// rescaling. Workers coordinate with each other only through the job store;
// the manager's view of them is local to this process.
package manager

import (
	"context"

	"github.com/quick-xyz/indexer-sub001/internal/worker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Process is one spawned worker under supervision.
	Process interface {
		// Heartbeats delivers liveness reports parsed from the worker's
		// stdout. The channel is closed when the process exits.
		Heartbeats() <-chan worker.Heartbeat
		// Exited delivers the process exit result exactly once.
		Exited() <-chan error
		// Stop asks the worker to finish its current job and exit.
		Stop() error
		// Kill force-terminates the process.
		Kill() error
	}

	// Launcher spawns one worker process with the given id.
	Launcher interface {
		Launch(ctx context.Context, workerID string) (Process, error)
	}

	ManagerMetrics interface {
		SetRunning(n int)
		ObserveSpawn(reason string)
		ObserveCrash()
	}
)
