// Package queue implements the durable job queue on PostgreSQL. All
// cross-process coordination happens through the jobs table; no locks are
// held while a job is being worked on.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records duration and outcome of repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config tunes retry policy applied by the repository.
type Config struct {
	MaxAttempts int32
	BackoffBase time.Duration
	BackoffCap  time.Duration
}

// DefaultConfig returns the retry policy used when the caller passes a zero
// Config.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BackoffBase: 30 * time.Second,
		BackoffCap:  30 * time.Minute,
	}
}

// Repository owns all reads and writes to the jobs table.
type Repository struct {
	pool    *pgxpool.Pool
	metrics Metrics
	cfg     Config
}

// NewRepository connects to PostgreSQL and returns a Repository.
func NewRepository(ctx context.Context, dsn string, cfg Config, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("queue metrics is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return NewRepositoryWithPool(pool, cfg, metrics), nil
}

// NewRepositoryWithPool wraps an existing pool; used by integration tests.
func NewRepositoryWithPool(pool *pgxpool.Pool, cfg Config, metrics Metrics) *Repository {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = DefaultConfig().BackoffBase
	}
	if cfg.BackoffCap <= 0 {
		cfg.BackoffCap = DefaultConfig().BackoffCap
	}
	return &Repository{pool: pool, metrics: metrics, cfg: cfg}
}

// Close releases the underlying connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}
