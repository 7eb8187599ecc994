package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

// InsertConfirmations stores confirmation rows in ClickHouse.
func (r *Repository) InsertConfirmations(ctx context.Context, confirmations []model.Confirmation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_confirmations", err, start)
	}()

	if len(confirmations) == 0 {
		return nil
	}

	const query = `
INSERT INTO policy_confirmations (
	block_number,
	block_hash,
	block_timestamp,
	policy_count,
	threshold,
	confirmed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare confirmations batch: %w", err)
	}

	for _, c := range confirmations {
		if err = batch.Append(
			c.BlockNumber,
			c.BlockHash,
			c.BlockTimestamp,
			c.PolicyCount,
			c.Threshold,
			c.ConfirmedAt,
		); err != nil {
			return fmt.Errorf("append confirmation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert confirmations: %w", err)
	}
	return nil
}
