// Package model defines domain models for the block job queue.
package model

import "time"

// JobStatus describes where a job sits in its lifecycle.
type JobStatus string

var (
	// JobPending marks a job waiting to be claimed.
	JobPending JobStatus = "pending"
	// JobProcessing marks a job currently owned by a worker.
	JobProcessing JobStatus = "processing"
	// JobCompleted marks a job that finished successfully.
	JobCompleted JobStatus = "completed"
	// JobDead marks a job that exhausted its attempts or failed permanently.
	JobDead JobStatus = "dead"
)

// Terminal reports whether s is a final state.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobDead
}

// Metadata is an opaque key/value bag attached to a job at enqueue time.
type Metadata map[string]string

// Job is one schedulable unit of work keyed by a block height.
type Job struct {
	ID            int64
	WorkKey       uint64
	Status        JobStatus
	Priority      int32
	CreatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	NextAttemptAt time.Time
	OwnerWorkerID string
	Attempts      int32
	MaxAttempts   int32
	LastError     string
	Metadata      Metadata
}
