// Package notifier runs the downstream confirmation fan-out for policy blocks.
package notifier

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/healthinsurechain/policywatch-backend/internal/clock"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

// ConfirmationNotifier logs a structured confirmation record and performs the
// four downstream notification steps, strictly in sequence. Steps never
// surface an error to the caller; failures are logged and the sequence
// continues. There is no acknowledgment or idempotency key: a crash
// mid-sequence leaves already-performed steps done and unrecorded.
type ConfirmationNotifier struct {
	logger    *zap.Logger
	metrics   Metrics
	sleep     func(context.Context, time.Duration) error
	threshold uint64
	store     OffchainStore
}

// New builds a ConfirmationNotifier. store may be nil, in which case the
// off-chain update step runs as a simulated delay like the other steps.
func New(store OffchainStore, metrics Metrics, threshold uint64, logger *zap.Logger) (*ConfirmationNotifier, error) {
	if metrics == nil {
		return nil, errors.New("notifier metrics is required")
	}
	return &ConfirmationNotifier{
		logger:    logger,
		metrics:   metrics,
		sleep:     clock.SleepWithContext,
		threshold: threshold,
		store:     store,
	}, nil
}

// Notify confirms one policy block: one structured log line, then the four
// downstream steps.
func (n *ConfirmationNotifier) Notify(ctx context.Context, block model.PolicyBlock) {
	confirmedAt := time.Now()

	n.logger.Info("policy block confirmed",
		zap.Uint64("number", block.Number),
		zap.Stringer("hash", block.Hash),
		zap.Uint64("timestamp", block.Timestamp),
		zap.Uint32("policy_count", block.PolicyCount),
		zap.Int64("confirmation_time", confirmedAt.Unix()),
		zap.Uint64("confirmation_threshold", n.threshold))

	n.runStep(ctx, "update_policy_statuses", func(ctx context.Context) error {
		return n.sleep(ctx, statusUpdateDelay)
	})
	n.runStep(ctx, "trigger_claim_verification", func(ctx context.Context) error {
		return n.sleep(ctx, claimVerificationDelay)
	})
	n.runStep(ctx, "update_offchain_store", func(ctx context.Context) error {
		return n.updateOffchainStore(ctx, block, confirmedAt)
	})
	n.runStep(ctx, "notify_parties", func(ctx context.Context) error {
		return n.sleep(ctx, partyNotifyDelay)
	})

	n.metrics.ObserveConfirmation(confirmedAt)
	n.logger.Debug("post-confirmation processing completed",
		zap.Uint64("number", block.Number))
}

func (n *ConfirmationNotifier) runStep(ctx context.Context, name string, fn func(context.Context) error) {
	n.logger.Debug("running confirmation step", zap.String("step", name))
	started := time.Now()
	err := fn(ctx)
	n.metrics.ObserveStep(name, err, started)
	if err != nil {
		n.logger.Warn("confirmation step failed",
			zap.String("step", name),
			zap.Error(err))
	}
}

func (n *ConfirmationNotifier) updateOffchainStore(ctx context.Context, block model.PolicyBlock, confirmedAt time.Time) error {
	if n.store == nil {
		return n.sleep(ctx, offchainUpdateDelay)
	}

	return n.store.InsertConfirmations(ctx, []model.Confirmation{{
		BlockNumber:    block.Number,
		BlockHash:      block.Hash.Hex(),
		BlockTimestamp: time.Unix(int64(block.Timestamp), 0).UTC(),
		PolicyCount:    block.PolicyCount,
		Threshold:      n.threshold,
		ConfirmedAt:    confirmedAt.UTC(),
	}})
}
