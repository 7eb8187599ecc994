// Package watcher implements the block confirmation poll loop.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/healthinsurechain/policywatch-backend/internal/chain"
	"github.com/healthinsurechain/policywatch-backend/internal/clock"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

// Service polls the chain for new blocks, classifies them and dispatches
// confirmations for policy blocks. Blocks within a tick are processed
// sequentially in ascending order; a confirmation completes before the next
// block is fetched.
type Service struct {
	logger       *zap.Logger
	metrics      Metrics
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	threshold    uint64
	source       Source
	notifier     Notifier
	blockSignal  <-chan struct{}
	cursor       cursor
}

// New builds a watcher Service with the given dependencies. blockSignal may
// be nil; when set, a signal cuts the idle sleep short.
func New(
	source Source,
	notifier Notifier,
	metrics Metrics,
	threshold uint64,
	pollInterval time.Duration,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	if pollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", pollInterval)
	}

	return &Service{
		logger:       logger,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		pollInterval: pollInterval,
		threshold:    threshold,
		source:       source,
		notifier:     notifier,
		blockSignal:  blockSignal,
	}, nil
}

// Run seeds the cursor from the current chain tip and polls until the context
// is canceled. A failed height fetch skips the tick and leaves the cursor
// untouched; the next tick retries.
func (s *Service) Run(ctx context.Context) error {
	height, err := s.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("get starting height: %w", err)
	}
	s.cursor.Init(height)
	s.metrics.SetLastProcessedBlock(height)
	s.logger.Info("starting from block", zap.Uint64("height", height))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.tick(ctx); err != nil {
			s.logger.Error("processing blocks failed", zap.Error(err))
		}
		if err := s.wait(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

func (s *Service) tick(ctx context.Context) error {
	started := time.Now()
	height, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveHeightFetch(err, started)
	if err != nil {
		return fmt.Errorf("get current height: %w", err)
	}
	s.metrics.SetChainHeight(height)

	start, end, ok := s.cursor.PendingRange(height)
	if !ok {
		return nil
	}

	s.logger.Info("processing blocks",
		zap.Uint64("from", start),
		zap.Uint64("to", end))

	scanStarted := time.Now()
	policyBlocks := 0
	for number := start; number <= end; number++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.processBlock(ctx, number) {
			policyBlocks++
		}
	}

	// The cursor moves past failed blocks too: a bad block must not stall
	// the watcher.
	s.cursor.AdvanceTo(end)
	s.metrics.SetLastProcessedBlock(end)
	s.metrics.ObserveScan(int(end-start+1), policyBlocks, scanStarted)

	if policyBlocks > 0 {
		s.logger.Info("processed new policy blocks", zap.Int("count", policyBlocks))
	}
	return nil
}

func (s *Service) processBlock(ctx context.Context, number uint64) bool {
	block, err := s.source.FetchBlock(ctx, number)
	switch {
	case errors.Is(err, chain.ErrNotFound):
		s.logger.Warn("block not found", zap.Uint64("number", number))
		return false
	case err != nil:
		s.logger.Warn("processing block failed",
			zap.Uint64("number", number),
			zap.Error(err))
		return false
	}

	policyBlock, ok := Classify(block)
	if !ok {
		return false
	}

	s.logger.Info("found policy block",
		zap.Uint64("number", policyBlock.Number),
		zap.Stringer("hash", policyBlock.Hash),
		zap.Uint32("policy_count", policyBlock.PolicyCount))
	s.notifier.Notify(ctx, policyBlock)
	return true
}

// Stats returns a point-in-time snapshot of watcher progress.
func (s *Service) Stats(ctx context.Context) (model.WatcherStats, error) {
	height, err := s.source.LatestHeight(ctx)
	if err != nil {
		return model.WatcherStats{}, fmt.Errorf("get current height: %w", err)
	}

	last := s.cursor.LastProcessed()
	var behind uint64
	if height > last {
		behind = height - last
	}

	return model.WatcherStats{
		CurrentHeight:         height,
		LastProcessedBlock:    last,
		BlocksBehind:          behind,
		ConfirmationThreshold: s.threshold,
	}, nil
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}
