package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/clock"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/pkg/backoff"
	"go.uber.org/zap"
)

const (
	defaultPollInterval      = 2 * time.Second
	defaultHeartbeatInterval = 5 * time.Second
	defaultProcessTimeout    = 5 * time.Minute
	defaultShutdownGrace     = 30 * time.Second
	defaultStoreBackoffBase  = time.Second
	defaultStoreBackoffCap   = time.Minute

	// reportTimeout bounds the complete/fail call made after processing,
	// which must still succeed while the runner context is shutting down.
	reportTimeout = 15 * time.Second
)

// Config tunes one worker runner.
type Config struct {
	WorkerID          string
	PollInterval      time.Duration
	HeartbeatInterval time.Duration
	ProcessTimeout    time.Duration
	ShutdownGrace     time.Duration
	StoreBackoffBase  time.Duration
	StoreBackoffCap   time.Duration
}

func (c *Config) applyDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = defaultHeartbeatInterval
	}
	if c.ProcessTimeout <= 0 {
		c.ProcessTimeout = defaultProcessTimeout
	}
	if c.ShutdownGrace <= 0 {
		c.ShutdownGrace = defaultShutdownGrace
	}
	if c.StoreBackoffBase <= 0 {
		c.StoreBackoffBase = defaultStoreBackoffBase
	}
	if c.StoreBackoffCap <= 0 {
		c.StoreBackoffCap = defaultStoreBackoffCap
	}
}

// Runner is one worker execution unit.
type Runner struct {
	logger     *zap.Logger
	cfg        Config
	queue      JobQueue
	processor  BlockProcessor
	metrics    WorkerMetrics
	heartbeats *HeartbeatWriter

	sleep  func(context.Context, time.Duration) error
	jitter func(time.Duration) time.Duration

	jobsProcessed atomic.Uint64
}

// NewRunner builds a Runner with dependencies.
func NewRunner(
	queue JobQueue,
	processor BlockProcessor,
	metrics WorkerMetrics,
	heartbeats *HeartbeatWriter,
	cfg Config,
	logger *zap.Logger,
) (*Runner, error) {
	if metrics == nil {
		return nil, errors.New("worker metrics is required")
	}
	if cfg.WorkerID == "" {
		return nil, errors.New("worker id is required")
	}
	cfg.applyDefaults()

	return &Runner{
		logger:     logger.With(zap.String("worker_id", cfg.WorkerID)),
		cfg:        cfg,
		queue:      queue,
		processor:  processor,
		metrics:    metrics,
		heartbeats: heartbeats,
		sleep:      clock.SleepWithContext,
		jitter:     clock.Jitter,
	}, nil
}

// Run executes the claim/process loop until ctx is canceled. A job in flight
// when cancellation arrives is finished within the shutdown grace period
// before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.heartbeatLoop(ctx)
	}()
	defer wg.Wait()

	storeFailures := 0
	for {
		if err := ctx.Err(); err != nil {
			r.logger.Info("worker stopping")
			return err
		}

		started := time.Now()
		job, err := r.queue.ClaimNext(ctx, r.cfg.WorkerID)
		r.metrics.ObserveClaim(err, job != nil, started)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			storeFailures++
			delay := backoff.Delay(r.cfg.StoreBackoffBase, r.cfg.StoreBackoffCap, storeFailures-1)
			r.logger.Warn("claim failed, backing off",
				zap.Error(err), zap.Int("failures", storeFailures), zap.Duration("sleep", delay))
			if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		storeFailures = 0

		if job == nil {
			if sleepErr := r.sleep(ctx, r.jitter(r.cfg.PollInterval)); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		r.processJob(ctx, job)
		r.jobsProcessed.Add(1)
	}
}

// processJob runs the processor on one claimed job and reports the outcome.
// Job-level errors never escape: they become queue state transitions.
func (r *Runner) processJob(ctx context.Context, job *model.Job) {
	started := time.Now()
	logger := r.logger.With(zap.Uint64("work_key", job.WorkKey), zap.Int64("job_id", job.ID))

	// The job context is detached from the runner context so that a stop
	// request does not interrupt work in flight; the watchdog below cancels
	// it once the shutdown grace period elapses.
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.ProcessTimeout)
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			select {
			case <-done:
			case <-time.After(r.cfg.ShutdownGrace):
				cancel()
			}
		}
	}()

	err := r.processor.Process(jobCtx, job.WorkKey)

	reportCtx, reportCancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer reportCancel()

	if err == nil {
		r.metrics.ObserveJob("success", started)
		if completeErr := r.queue.Complete(reportCtx, job.ID, r.cfg.WorkerID); completeErr != nil {
			logger.Error("complete failed", zap.Error(completeErr))
			return
		}
		logger.Info("job completed", zap.Duration("took", time.Since(started)))
		return
	}

	retryable := model.Retryable(err)
	outcome := "retryable"
	if !retryable {
		outcome = "permanent"
	}
	r.metrics.ObserveJob(outcome, started)
	logger.Warn("job failed", zap.Error(err), zap.Bool("retryable", retryable))

	if failErr := r.queue.Fail(reportCtx, job.ID, r.cfg.WorkerID, err.Error(), retryable); failErr != nil {
		logger.Error("fail report failed", zap.Error(failErr))
	}
}

// heartbeatLoop emits liveness reports independently of job cycles.
func (r *Runner) heartbeatLoop(ctx context.Context) {
	if r.heartbeats == nil {
		return
	}

	r.emitHeartbeat()

	ticker := time.NewTicker(r.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.emitHeartbeat()
		}
	}
}

func (r *Runner) emitHeartbeat() {
	hb := Heartbeat{
		WorkerID:      r.cfg.WorkerID,
		JobsProcessed: r.jobsProcessed.Load(),
		SentAt:        time.Now().UTC(),
	}
	if err := r.heartbeats.Emit(hb); err != nil {
		r.logger.Warn("heartbeat emit failed", zap.Error(err))
	}
}
