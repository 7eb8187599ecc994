package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"POLICY_WATCHER_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/policywatch" description:"ClickHouse DSN for the confirmation store"`
	MigrationsDir string `long:"migrations-dir" env:"POLICY_WATCHER_MIGRATIONS_DIR" default:"migrations/clickhouse" description:"directory with confirmation store migrations"`
	Down          bool   `long:"down" description:"roll the schema all the way back instead of migrating up"`
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
		logger.Fatal("confirmation store migration failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := newMigrate(cfg.MigrationsDir, cfg.ClickhouseDSN)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("failed to close migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("failed to close migration database", zap.Error(dbErr))
		}
	}()

	apply := m.Up
	direction := "up"
	if cfg.Down {
		apply = m.Down
		direction = "down"
	}

	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("confirmation store schema already current",
				zap.String("direction", direction))
			return nil
		}
		return fmt.Errorf("apply %s migrations: %w", direction, err)
	}

	logger.Info("confirmation store schema migrated",
		zap.String("direction", direction),
		zap.String("dir", cfg.MigrationsDir))
	return nil
}

func newMigrate(migrationsDir, dsn string) (*migrate.Migrate, error) {
	dir, err := filepath.Abs(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(dir)), dsn)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}
