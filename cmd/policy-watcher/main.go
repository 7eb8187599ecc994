package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/healthinsurechain/policywatch-backend/internal/chain/ethereum"
	"github.com/healthinsurechain/policywatch-backend/internal/metrics"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
	"github.com/healthinsurechain/policywatch-backend/internal/notifier"
	"github.com/healthinsurechain/policywatch-backend/internal/storage/clickhouse"
	"github.com/healthinsurechain/policywatch-backend/internal/watcher"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	RPCURL                string        `short:"r" long:"rpc-url" env:"POLICY_WATCHER_RPC_URL" description:"Ethereum JSON-RPC URL" default:"http://localhost:8545"`
	WSURL                 string        `long:"ws-url" env:"POLICY_WATCHER_WS_URL" description:"optional websocket URL for new-head signals"`
	ConfirmationThreshold uint64        `short:"c" long:"confirmation-threshold" env:"POLICY_WATCHER_CONFIRMATION_THRESHOLD" description:"number of confirmations before a block is considered final" default:"12"`
	PollInterval          time.Duration `short:"p" long:"poll-interval" env:"POLICY_WATCHER_POLL_INTERVAL" description:"pause between poll cycles" default:"5s"`
	RPCTimeout            time.Duration `long:"rpc-timeout" env:"POLICY_WATCHER_RPC_TIMEOUT" description:"timeout per RPC request" default:"30s"`
	RPCRateLimit          int           `long:"rpc-rate-limit" env:"POLICY_WATCHER_RPC_RATE_LIMIT" description:"max RPC requests per second" default:"50"`
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"POLICY_WATCHER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN for the confirmation store"`
	MetricsAddr           string        `long:"metrics-addr" env:"POLICY_WATCHER_METRICS_ADDR" description:"address for metrics and stats server" default:":2112"`
	GRPCAddr              string        `long:"grpc-addr" env:"POLICY_WATCHER_GRPC_ADDR" description:"address for the gRPC health server" default:":8000"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("policy watcher failed", zap.Error(err))
	}
	logger.Info("policy watcher stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc node: %w", err)
	}
	defer client.Close()

	rpc := ethereum.NewObservedClient(client, metrics.NewRPCClient(), cfg.RPCRateLimit)
	source, err := ethereum.NewSource(rpc, cfg.RPCTimeout)
	if err != nil {
		return fmt.Errorf("init chain source: %w", err)
	}

	var (
		repo  *clickhouse.Repository
		store notifier.OffchainStore
	)
	if cfg.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init confirmation store: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		store = repo
	}

	notify, err := notifier.New(store, metrics.NewNotifier(), cfg.ConfirmationThreshold, logger.Named("notifier"))
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	blockSignal, err := startBlockSignal(ctx, cfg.WSURL, logger)
	if err != nil {
		logger.Warn("new-head signal unavailable, falling back to polling only", zap.Error(err))
	}

	svc, err := watcher.New(
		source,
		notify,
		metrics.NewWatcher(),
		cfg.ConfirmationThreshold,
		cfg.PollInterval,
		logger.Named("watcher"),
		blockSignal,
	)
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}

	startAdminServer(ctx, cfg.MetricsAddr, svc, repo, logger)
	if err := startGRPCServer(ctx, cfg.GRPCAddr, logger); err != nil {
		return fmt.Errorf("start grpc server: %w", err)
	}

	if stats, err := svc.Stats(ctx); err != nil {
		logger.Warn("could not fetch initial chain stats", zap.Error(err))
	} else {
		logStartupSnapshot(logger, stats, cfg.PollInterval)
	}

	return svc.Run(ctx)
}

func logStartupSnapshot(logger *zap.Logger, stats model.WatcherStats, pollInterval time.Duration) {
	logger.Info("starting block confirmation watch",
		zap.Uint64("current_height", stats.CurrentHeight),
		zap.Uint64("last_processed_block", stats.LastProcessedBlock),
		zap.Uint64("blocks_behind", stats.BlocksBehind),
		zap.Uint64("confirmation_threshold", stats.ConfirmationThreshold),
		zap.Duration("poll_interval", pollInterval),
	)
}
