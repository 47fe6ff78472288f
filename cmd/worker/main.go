// Package main runs one queue worker process. Heartbeats go to stdout as
// newline-delimited JSON for the supervising manager; logs go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quick-xyz/indexer-sub001/internal/analytics"
	"github.com/quick-xyz/indexer-sub001/internal/metrics"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/internal/processor/bitcoin"
	"github.com/quick-xyz/indexer-sub001/internal/queue"
	"github.com/quick-xyz/indexer-sub001/internal/worker"
)

type config struct {
	WorkerID      string        `long:"worker-id" env:"INDEXER_WORKER_ID" description:"worker id; generated when empty"`
	PostgresDSN   string        `long:"postgres-dsn" env:"INDEXER_POSTGRES_DSN" description:"PostgreSQL DSN for the job queue" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN for block data" required:"true"`
	Network       model.Network `long:"network" env:"INDEXER_NETWORK" description:"network name" default:"mainnet"`

	RPCURL      string `long:"rpc-url" env:"INDEXER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"INDEXER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string `long:"rpc-password" env:"INDEXER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS      int    `long:"rpc-rps" env:"INDEXER_RPC_RPS" description:"max RPC calls per second" default:"10"`

	PollInterval      time.Duration `long:"poll-interval" env:"INDEXER_POLL_INTERVAL" description:"claim poll interval when idle" default:"2s"`
	HeartbeatInterval time.Duration `long:"heartbeat-interval" env:"INDEXER_HEARTBEAT_INTERVAL" description:"heartbeat emit interval" default:"5s"`
	ProcessTimeout    time.Duration `long:"process-timeout" env:"INDEXER_PROCESS_TIMEOUT" description:"per-job processing timeout" default:"5m"`
	ShutdownGrace     time.Duration `long:"shutdown-grace" env:"INDEXER_SHUTDOWN_GRACE" description:"time for the in-flight job to finish on stop" default:"30s"`

	MaxAttempts int32         `long:"max-attempts" env:"INDEXER_MAX_ATTEMPTS" description:"max processing attempts per job" default:"3"`
	BackoffBase time.Duration `long:"backoff-base" env:"INDEXER_BACKOFF_BASE" description:"retry backoff base" default:"30s"`
	BackoffCap  time.Duration `long:"backoff-cap" env:"INDEXER_BACKOFF_CAP" description:"retry backoff cap" default:"30m"`

	MetricsAddr string `long:"metrics-addr" env:"INDEXER_WORKER_METRICS_ADDR" description:"metrics listen address; disabled when empty"`
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
	if cfg.WorkerID == "" {
		cfg.WorkerID = "worker-" + uuid.NewString()[:8]
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	queueRepo, err := queue.NewRepository(ctx, cfg.PostgresDSN, queue.Config{
		MaxAttempts: cfg.MaxAttempts,
		BackoffBase: cfg.BackoffBase,
		BackoffCap:  cfg.BackoffCap,
	}, metrics.NewQueueRepository())
	if err != nil {
		return fmt.Errorf("init job queue: %w", err)
	}
	defer queueRepo.Close()

	blockRepo, err := analytics.NewRepository(cfg.ClickhouseDSN, metrics.NewAnalyticsRepository())
	if err != nil {
		return fmt.Errorf("init analytics repository: %w", err)
	}
	defer func() {
		_ = blockRepo.Close()
	}()

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

	processor := bitcoin.NewProcessor(cfg.Network, node, blockRepo, logger)
	runner, err := worker.NewRunner(
		queueRepo,
		processor,
		metrics.NewWorker(),
		worker.NewHeartbeatWriter(os.Stdout),
		worker.Config{
			WorkerID:          cfg.WorkerID,
			PollInterval:      cfg.PollInterval,
			HeartbeatInterval: cfg.HeartbeatInterval,
			ProcessTimeout:    cfg.ProcessTimeout,
			ShutdownGrace:     cfg.ShutdownGrace,
		},
		logger,
	)
	if err != nil {
		return fmt.Errorf("init runner: %w", err)
	}
	return runner.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
