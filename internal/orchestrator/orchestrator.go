package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/clock"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/pkg/backoff"
	"github.com/quick-xyz/indexer-sub001/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes discovery and maintenance.
type Config struct {
	// DiscoveryInterval paces frontier polls.
	DiscoveryInterval time.Duration
	// ConfirmationLag is how many blocks behind the chain tip discovery
	// stays, so reorg-prone heights are not enqueued.
	ConfirmationLag uint64
	// DefaultPriority is assigned to discovered jobs.
	DefaultPriority int32
	// EnqueueWorkers bounds concurrent enqueue calls per batch.
	EnqueueWorkers int
	// DiscoveryBatch caps how many heights one discovery pass enqueues.
	DiscoveryBatch uint64
	// SourceBackoffBase and SourceBackoffCap bound the retry delay after
	// consecutive source failures.
	SourceBackoffBase time.Duration
	SourceBackoffCap  time.Duration
	// ReclaimInterval paces the stale-job sweep; ProcessingTimeout is the
	// staleness threshold it applies.
	ReclaimInterval   time.Duration
	ProcessingTimeout time.Duration
	// CleanupInterval paces the retention sweep, which removes jobs in
	// CleanupStatuses older than Retention.
	CleanupInterval time.Duration
	Retention       time.Duration
	CleanupStatuses []model.JobStatus
}

func (c *Config) applyDefaults() {
	if c.DiscoveryInterval <= 0 {
		c.DiscoveryInterval = 15 * time.Second
	}
	if c.EnqueueWorkers < 1 {
		c.EnqueueWorkers = 4
	}
	if c.DiscoveryBatch == 0 {
		c.DiscoveryBatch = 512
	}
	if c.SourceBackoffBase <= 0 {
		c.SourceBackoffBase = 2 * time.Second
	}
	if c.SourceBackoffCap <= 0 {
		c.SourceBackoffCap = 2 * time.Minute
	}
	if c.ReclaimInterval <= 0 {
		c.ReclaimInterval = time.Minute
	}
	if c.ProcessingTimeout <= 0 {
		c.ProcessingTimeout = 10 * time.Minute
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = time.Hour
	}
	if c.Retention <= 0 {
		c.Retention = 7 * 24 * time.Hour
	}
	if len(c.CleanupStatuses) == 0 {
		c.CleanupStatuses = []model.JobStatus{model.JobCompleted}
	}
}

// Orchestrator owns the discovery and maintenance loops.
type Orchestrator struct {
	cfg     Config
	queue   JobQueue
	source  HeightSource
	workers WorkerPool
	metrics OrchestratorMetrics
	logger  *zap.Logger

	cursor              atomic.Uint64
	loopRunning         atomic.Bool
	sourceFailures      atomic.Uint64
	maintenanceFailures atomic.Uint64
}

// New creates an Orchestrator. workers may be nil when no pool runs in this
// process (range and status modes).
func New(cfg Config, queue JobQueue, source HeightSource, workers WorkerPool, metrics OrchestratorMetrics, logger *zap.Logger) *Orchestrator {
	cfg.applyDefaults()
	return &Orchestrator{
		cfg:     cfg,
		queue:   queue,
		source:  source,
		workers: workers,
		metrics: metrics,
		logger:  logger,
	}
}

// Run executes discovery and maintenance until ctx is canceled. Source
// outages slow discovery down with capped backoff instead of stopping it.
func (o *Orchestrator) Run(ctx context.Context) error {
	cursor, err := o.queue.Cursor(ctx)
	if err != nil {
		return fmt.Errorf("load cursor: %w", err)
	}
	o.cursor.Store(cursor)
	o.logger.Info("starting orchestrator", zap.Uint64("cursor", cursor))

	o.loopRunning.Store(true)
	defer o.loopRunning.Store(false)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		o.discoveryLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		o.maintenanceLoop(ctx)
	}()
	wg.Wait()
	return nil
}

func (o *Orchestrator) discoveryLoop(ctx context.Context) {
	failures := 0
	for {
		enqueued, err := o.discoverOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			o.sourceFailures.Add(1)
			delay := backoff.Delay(o.cfg.SourceBackoffBase, o.cfg.SourceBackoffCap, failures-1)
			o.logger.Warn("discovery failed",
				zap.Error(err),
				zap.Int("consecutive_failures", failures),
				zap.Duration("retry_in", delay))
			if clock.SleepWithContext(ctx, delay) != nil {
				return
			}
			continue
		}
		failures = 0
		if enqueued > 0 {
			o.logger.Info("enqueued discovered blocks",
				zap.Int("count", enqueued),
				zap.Uint64("cursor", o.cursor.Load()))
			// More may be waiting behind the batch cap; go again right away.
			continue
		}
		if clock.SleepWithContext(ctx, o.cfg.DiscoveryInterval) != nil {
			return
		}
	}
}

// discoverOnce enqueues one batch of heights between the cursor and the
// confirmed frontier, then advances the cursor past the batch.
func (o *Orchestrator) discoverOnce(ctx context.Context) (enqueued int, err error) {
	started := time.Now()
	defer func() {
		o.metrics.ObserveDiscovery(err, enqueued, started)
	}()

	latest, err := o.source.LatestHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("latest height: %w", err)
	}
	if latest < o.cfg.ConfirmationLag {
		return 0, nil
	}
	frontier := latest - o.cfg.ConfirmationLag

	cursor := o.cursor.Load()
	if frontier <= cursor {
		return 0, nil
	}
	upper := frontier
	if upper-cursor > o.cfg.DiscoveryBatch {
		upper = cursor + o.cfg.DiscoveryBatch
	}

	heights := make([]uint64, 0, upper-cursor)
	for h := cursor + 1; h <= upper; h++ {
		heights = append(heights, h)
	}
	if err := o.enqueueAll(ctx, heights, o.cfg.DefaultPriority, "discovery"); err != nil {
		return 0, err
	}

	// The batch is durably queued; re-discovering it after a crash would be
	// harmless but wasteful.
	if err := o.queue.AdvanceCursor(ctx, upper); err != nil {
		return 0, fmt.Errorf("advance cursor: %w", err)
	}
	o.cursor.Store(upper)
	return len(heights), nil
}

// EnqueueRange queues every height in [from, to] at the given priority.
func (o *Orchestrator) EnqueueRange(ctx context.Context, from, to uint64, priority int32) (int, error) {
	if from > to {
		return 0, fmt.Errorf("invalid range: %d > %d", from, to)
	}
	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}
	if err := o.enqueueAll(ctx, heights, priority, "manual"); err != nil {
		return 0, err
	}
	o.logger.Info("enqueued range",
		zap.Uint64("from", from),
		zap.Uint64("to", to),
		zap.Int32("priority", priority))
	return len(heights), nil
}

// EnqueueSingle queues one height, typically at elevated priority for
// targeted reprocessing.
func (o *Orchestrator) EnqueueSingle(ctx context.Context, workKey uint64, priority int32) (int64, error) {
	id, err := o.queue.Enqueue(ctx, workKey, priority, model.Metadata{"source": "manual"})
	if err != nil {
		return 0, fmt.Errorf("enqueue %d: %w", workKey, err)
	}
	return id, nil
}

func (o *Orchestrator) enqueueAll(ctx context.Context, heights []uint64, priority int32, source string) error {
	return workerpool.Process(ctx, o.cfg.EnqueueWorkers, heights,
		func(ctx context.Context, height uint64) error {
			_, err := o.queue.Enqueue(ctx, height, priority, model.Metadata{"source": source})
			if err != nil {
				return fmt.Errorf("enqueue %d: %w", height, err)
			}
			return nil
		}, nil)
}

// Status merges queue statistics with the supervised worker states.
func (o *Orchestrator) Status(ctx context.Context) (model.StatusSnapshot, error) {
	stats, err := o.queue.Stats(ctx)
	if err != nil {
		return model.StatusSnapshot{}, fmt.Errorf("queue stats: %w", err)
	}
	cursor, err := o.queue.Cursor(ctx)
	if err != nil {
		return model.StatusSnapshot{}, fmt.Errorf("load cursor: %w", err)
	}

	snap := model.StatusSnapshot{
		Queue:               stats,
		Cursor:              cursor,
		LoopRunning:         o.loopRunning.Load(),
		SourceFailures:      o.sourceFailures.Load(),
		MaintenanceFailures: o.maintenanceFailures.Load(),
		GeneratedAt:         time.Now().UTC(),
	}
	if o.workers != nil {
		snap.Workers = o.workers.Snapshot()
	}
	return snap, nil
}

func (o *Orchestrator) maintenanceLoop(ctx context.Context) {
	reclaim := time.NewTicker(o.cfg.ReclaimInterval)
	defer reclaim.Stop()
	cleanup := time.NewTicker(o.cfg.CleanupInterval)
	defer cleanup.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-reclaim.C:
			o.reclaimOnce(ctx)
		case <-cleanup.C:
			o.cleanupOnce(ctx)
		}
	}
}

func (o *Orchestrator) reclaimOnce(ctx context.Context) {
	started := time.Now()
	reclaimed, err := o.queue.ReclaimStale(ctx, o.cfg.ProcessingTimeout)
	o.metrics.ObserveReclaim(err, reclaimed, started)
	switch {
	case err != nil:
		o.maintenanceFailures.Add(1)
		o.logger.Error("reclaim stale jobs", zap.Error(err))
	case reclaimed > 0:
		o.logger.Warn("reclaimed stale jobs", zap.Int64("count", reclaimed))
	}
}

func (o *Orchestrator) cleanupOnce(ctx context.Context) {
	started := time.Now()
	removed, err := o.queue.Cleanup(ctx, o.cfg.Retention, o.cfg.CleanupStatuses)
	o.metrics.ObserveCleanup(err, removed, started)
	switch {
	case err != nil:
		o.maintenanceFailures.Add(1)
		o.logger.Error("cleanup terminal jobs", zap.Error(err))
	case removed > 0:
		o.logger.Info("cleaned up terminal jobs", zap.Int64("count", removed))
	}
}
