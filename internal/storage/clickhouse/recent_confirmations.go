package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

// RecentConfirmations returns up to limit confirmations, newest first.
func (r *Repository) RecentConfirmations(ctx context.Context, limit uint64) (confirmations []model.Confirmation, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_confirmations", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	const query = `
SELECT
	block_number,
	block_hash,
	block_timestamp,
	policy_count,
	threshold,
	confirmed_at
FROM policy_confirmations
ORDER BY confirmed_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent confirmations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for rows.Next() {
		var c model.Confirmation
		if err = rows.Scan(
			&c.BlockNumber,
			&c.BlockHash,
			&c.BlockTimestamp,
			&c.PolicyCount,
			&c.Threshold,
			&c.ConfirmedAt,
		); err != nil {
			return nil, fmt.Errorf("scan confirmation: %w", err)
		}
		confirmations = append(confirmations, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate confirmations: %w", err)
	}

	return confirmations, nil
}
