package model

import "time"

// QueueStats summarizes the job table for status consumers.
type QueueStats struct {
	Pending          uint64        `json:"pending"`
	Processing       uint64        `json:"processing"`
	Completed        uint64        `json:"completed"`
	Dead             uint64        `json:"dead"`
	OldestPendingAge time.Duration `json:"oldest_pending_age"`
	ProcessingAges   AgeStats      `json:"processing_ages"`
}

// AgeStats describes the age distribution of in-flight jobs.
type AgeStats struct {
	Min time.Duration `json:"min"`
	Max time.Duration `json:"max"`
	Avg time.Duration `json:"avg"`
}

// WorkerState describes a supervised worker process.
type WorkerState string

var (
	WorkerStarting WorkerState = "starting"
	WorkerRunning  WorkerState = "running"
	WorkerCrashed  WorkerState = "crashed"
	WorkerStopping WorkerState = "stopping"
	WorkerStopped  WorkerState = "stopped"
)

// WorkerSnapshot is a point-in-time view of one supervised worker.
type WorkerSnapshot struct {
	ID            string      `json:"id"`
	State         WorkerState `json:"state"`
	LastHeartbeat time.Time   `json:"last_heartbeat"`
	JobsProcessed uint64      `json:"jobs_processed"`
	Restarts      uint32      `json:"restarts"`
}

// StatusSnapshot merges queue and worker state for health and metrics
// consumers.
type StatusSnapshot struct {
	Queue               QueueStats       `json:"queue"`
	Workers             []WorkerSnapshot `json:"workers"`
	Cursor              uint64           `json:"cursor"`
	LoopRunning         bool             `json:"loop_running"`
	SourceFailures      uint64           `json:"source_failures"`
	MaintenanceFailures uint64           `json:"maintenance_failures"`
	GeneratedAt         time.Time        `json:"generated_at"`
}

// Ready reports whether at least one worker is registered and responsive.
func (s StatusSnapshot) Ready() bool {
	for _, w := range s.Workers {
		if w.State == WorkerRunning {
			return true
		}
	}
	return false
}
