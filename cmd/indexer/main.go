// Package main runs the indexing pipeline: block discovery, the durable job
// queue and a supervised pool of worker processes. The mode flag selects one
// of continuous, range, single, status or cleanup.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quick-xyz/indexer-sub001/internal/clock"
	"github.com/quick-xyz/indexer-sub001/internal/manager"
	"github.com/quick-xyz/indexer-sub001/internal/metrics"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/internal/orchestrator"
	"github.com/quick-xyz/indexer-sub001/internal/processor/bitcoin"
	"github.com/quick-xyz/indexer-sub001/internal/queue"
	"github.com/quick-xyz/indexer-sub001/internal/transport"
)

type config struct {
	Mode string `long:"mode" env:"INDEXER_MODE" description:"operating mode" default:"continuous" choice:"continuous" choice:"range" choice:"single" choice:"status" choice:"cleanup"`

	PostgresDSN   string        `long:"postgres-dsn" env:"INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN for the job queue" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN for block data"`
	Network       model.Network `long:"network" env:"INDEXER_NETWORK" description:"network name" default:"mainnet"`

	RPCURL      string `long:"rpc-url" env:"INDEXER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"INDEXER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string `long:"rpc-password" env:"INDEXER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS      int    `long:"rpc-rps" env:"INDEXER_RPC_RPS" description:"max RPC calls per second" default:"10"`

	Workers   int    `long:"workers" env:"INDEXER_WORKERS" description:"worker pool size" default:"4"`
	WorkerBin string `long:"worker-bin" env:"INDEXER_WORKER_BIN" description:"path to the worker binary" default:"indexer-worker"`

	DiscoveryInterval time.Duration `long:"discovery-interval" env:"INDEXER_DISCOVERY_INTERVAL" description:"frontier poll interval" default:"15s"`
	ConfirmationLag   uint64        `long:"confirmation-lag" env:"INDEXER_CONFIRMATION_LAG" description:"blocks to stay behind the chain tip" default:"6"`
	ProcessingTimeout time.Duration `long:"processing-timeout" env:"INDEXER_PROCESSING_TIMEOUT" description:"claim age before a job is reclaimed" default:"10m"`
	ReclaimInterval   time.Duration `long:"reclaim-interval" env:"INDEXER_RECLAIM_INTERVAL" description:"stale-job sweep interval" default:"1m"`
	CleanupInterval   time.Duration `long:"cleanup-interval" env:"INDEXER_CLEANUP_INTERVAL" description:"retention sweep interval" default:"1h"`
	Retention         time.Duration `long:"retention" env:"INDEXER_RETENTION" description:"how long finished jobs are kept" default:"168h"`

	MaxAttempts int32         `long:"max-attempts" env:"INDEXER_MAX_ATTEMPTS" description:"max processing attempts per job" default:"3"`
	BackoffBase time.Duration `long:"backoff-base" env:"INDEXER_BACKOFF_BASE" description:"retry backoff base" default:"30s"`
	BackoffCap  time.Duration `long:"backoff-cap" env:"INDEXER_BACKOFF_CAP" description:"retry backoff cap" default:"30m"`

	HeartbeatTimeout time.Duration `long:"heartbeat-timeout" env:"INDEXER_HEARTBEAT_TIMEOUT" description:"worker silence before it is killed" default:"30s"`
	RestartBackoff   time.Duration `long:"restart-backoff" env:"INDEXER_RESTART_BACKOFF" description:"base delay between worker restarts" default:"1s"`
	ShutdownTimeout  time.Duration `long:"shutdown-timeout" env:"INDEXER_SHUTDOWN_TIMEOUT" description:"time workers get to exit on shutdown" default:"30s"`

	HTTPAddr string `long:"http-addr" env:"INDEXER_HTTP_ADDR" description:"health, status and metrics listen address" default:":8080"`

	RangeStart uint64 `long:"range-start" env:"INDEXER_RANGE_START" description:"first height for range mode"`
	RangeEnd   uint64 `long:"range-end" env:"INDEXER_RANGE_END" description:"last height for range mode"`
	WorkKey    uint64 `long:"work-key" env:"INDEXER_WORK_KEY" description:"height for single mode"`
	Priority   int32  `long:"priority" env:"INDEXER_PRIORITY" description:"priority for single and range modes" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("indexer failed", zap.Error(err), zap.String("mode", cfg.Mode))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	queueRepo, err := queue.NewRepository(ctx, cfg.PostgresDSN, queue.Config{
		MaxAttempts: cfg.MaxAttempts,
		BackoffBase: cfg.BackoffBase,
		BackoffCap:  cfg.BackoffCap,
	}, metrics.NewQueueRepository())
	if err != nil {
		return fmt.Errorf("init job queue: %w", err)
	}
	defer queueRepo.Close()

	switch cfg.Mode {
	case "continuous":
		return runContinuous(ctx, cfg, queueRepo, logger)
	case "range":
		return runRange(ctx, cfg, queueRepo, logger)
	case "single":
		return runSingle(ctx, cfg, queueRepo, logger)
	case "status":
		return runStatus(ctx, cfg, queueRepo, logger)
	case "cleanup":
		return runCleanup(ctx, cfg, queueRepo, logger)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func runContinuous(ctx context.Context, cfg config, queueRepo *queue.Repository, logger *zap.Logger) error {
	if err := validateWorkerConfig(cfg); err != nil {
		return err
	}

	node, err := bitcoin.NewNodeClient(bitcoin.ClientConfig{
		URL:      cfg.RPCURL,
		User:     cfg.RPCUser,
		Password: cfg.RPCPassword,
		RPS:      cfg.RPCRPS,
	}, metrics.NewRPCClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer node.Close()

	mgr := newManager(cfg, logger)
	orch := orchestrator.New(orchestratorConfig(cfg), queueRepo, bitcoin.NewSource(node), mgr,
		metrics.NewOrchestrator(), logger)

	startHTTPServer(ctx, cfg.HTTPAddr, orch, mgr, logger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- mgr.Run(runCtx) }()
	go func() { errCh <- orch.Run(runCtx) }()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	return firstErr
}

// runRange enqueues [start, end], runs the worker pool until the queue
// drains, then shuts the pool down.
func runRange(ctx context.Context, cfg config, queueRepo *queue.Repository, logger *zap.Logger) error {
	if cfg.RangeEnd < cfg.RangeStart {
		return fmt.Errorf("invalid range: %d > %d", cfg.RangeStart, cfg.RangeEnd)
	}
	if err := validateWorkerConfig(cfg); err != nil {
		return err
	}

	mgr := newManager(cfg, logger)
	orch := orchestrator.New(orchestratorConfig(cfg), queueRepo, nil, mgr,
		metrics.NewOrchestrator(), logger)

	enqueued, err := orch.EnqueueRange(ctx, cfg.RangeStart, cfg.RangeEnd, cfg.Priority)
	if err != nil {
		return err
	}
	logger.Info("range enqueued, starting workers",
		zap.Int("jobs", enqueued),
		zap.Int("workers", cfg.Workers))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- mgr.Run(runCtx) }()

	for {
		if err := clock.SleepWithContext(ctx, 2*time.Second); err != nil {
			break
		}
		stats, err := queueRepo.Stats(ctx)
		if err != nil {
			logger.Warn("stats poll failed", zap.Error(err))
			continue
		}
		if stats.Pending == 0 && stats.Processing == 0 {
			logger.Info("range drained",
				zap.Uint64("completed", stats.Completed),
				zap.Uint64("dead", stats.Dead))
			break
		}
	}

	cancel()
	return <-done
}

func runSingle(ctx context.Context, cfg config, queueRepo *queue.Repository, logger *zap.Logger) error {
	orch := orchestrator.New(orchestratorConfig(cfg), queueRepo, nil, nil,
		metrics.NewOrchestrator(), logger)

	id, err := orch.EnqueueSingle(ctx, cfg.WorkKey, cfg.Priority)
	if err != nil {
		return err
	}
	logger.Info("enqueued block for reprocessing",
		zap.Uint64("height", cfg.WorkKey),
		zap.Int32("priority", cfg.Priority),
		zap.Int64("job_id", id))
	return nil
}

func runStatus(ctx context.Context, cfg config, queueRepo *queue.Repository, logger *zap.Logger) error {
	orch := orchestrator.New(orchestratorConfig(cfg), queueRepo, nil, nil,
		metrics.NewOrchestrator(), logger)

	snap, err := orch.Status(ctx)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runCleanup(ctx context.Context, cfg config, queueRepo *queue.Repository, logger *zap.Logger) error {
	removed, err := queueRepo.Cleanup(ctx, cfg.Retention, []model.JobStatus{model.JobCompleted})
	if err != nil {
		return err
	}
	logger.Info("cleanup finished",
		zap.Int64("removed", removed),
		zap.Duration("retention", cfg.Retention))
	return nil
}

// validateWorkerConfig rejects settings the spawned worker processes would
// refuse, so a bad deployment fails at startup instead of crash-looping the
// pool.
func validateWorkerConfig(cfg config) error {
	if cfg.ClickhouseDSN == "" {
		return errors.New("clickhouse dsn is required to run workers")
	}
	return nil
}

func newManager(cfg config, logger *zap.Logger) *manager.Manager {
	launcher := manager.NewExecLauncher(cfg.WorkerBin, nil, workerEnv(cfg), logger)
	return manager.New(manager.Config{
		Workers:            cfg.Workers,
		HeartbeatTimeout:   cfg.HeartbeatTimeout,
		RestartBackoffBase: cfg.RestartBackoff,
		ShutdownTimeout:    cfg.ShutdownTimeout,
	}, launcher, metrics.NewManager(), logger)
}

// workerEnv hands the shared configuration down to spawned workers.
func workerEnv(cfg config) []string {
	return []string{
		"INDEXER_POSTGRES_DSN=" + cfg.PostgresDSN,
		"INDEXER_CLICKHOUSE_DSN=" + cfg.ClickhouseDSN,
		"INDEXER_NETWORK=" + string(cfg.Network),
		"INDEXER_RPC_URL=" + cfg.RPCURL,
		"INDEXER_RPC_USER=" + cfg.RPCUser,
		"INDEXER_RPC_PASSWORD=" + cfg.RPCPassword,
		fmt.Sprintf("INDEXER_RPC_RPS=%d", cfg.RPCRPS),
		fmt.Sprintf("INDEXER_MAX_ATTEMPTS=%d", cfg.MaxAttempts),
		"INDEXER_BACKOFF_BASE=" + cfg.BackoffBase.String(),
		"INDEXER_BACKOFF_CAP=" + cfg.BackoffCap.String(),
		"INDEXER_PROCESS_TIMEOUT=" + cfg.ProcessingTimeout.String(),
	}
}

func orchestratorConfig(cfg config) orchestrator.Config {
	return orchestrator.Config{
		DiscoveryInterval: cfg.DiscoveryInterval,
		ConfirmationLag:   cfg.ConfirmationLag,
		ProcessingTimeout: cfg.ProcessingTimeout,
		ReclaimInterval:   cfg.ReclaimInterval,
		CleanupInterval:   cfg.CleanupInterval,
		Retention:         cfg.Retention,
	}
}

func startHTTPServer(ctx context.Context, addr string, status transport.StatusProvider, scaler transport.Scaler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	handler := transport.NewHandler(status, logger)
	handler.Register(mux)
	handler.RegisterScaler(mux, scaler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
}
