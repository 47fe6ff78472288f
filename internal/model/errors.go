package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies a processing failure for retry purposes.
type FailureKind string

var (
	// FailureTransient marks a failure worth retrying with backoff.
	FailureTransient FailureKind = "transient"
	// FailurePermanent marks a failure that will never succeed on retry.
	FailurePermanent FailureKind = "permanent"
)

// ProcessingError wraps a block processing failure with its retry class.
type ProcessingError struct {
	Kind FailureKind
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// NewTransientError wraps err as a retryable processing failure.
func NewTransientError(err error) *ProcessingError {
	return &ProcessingError{Kind: FailureTransient, Err: err}
}

// NewPermanentError wraps err as a non-retryable processing failure.
func NewPermanentError(err error) *ProcessingError {
	return &ProcessingError{Kind: FailurePermanent, Err: err}
}

// Retryable reports whether err should be requeued with backoff. Errors that
// carry no classification default to transient so that infrastructure hiccups
// never kill a job outright.
func Retryable(err error) bool {
	var perr *ProcessingError
	if errors.As(err, &perr) {
		return perr.Kind != FailurePermanent
	}
	return true
}
