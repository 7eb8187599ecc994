package watcher

import (
	"context"
	"time"

	"github.com/healthinsurechain/policywatch-backend/internal/chain"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source provides block data from the chain node.
	Source interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, number uint64) (*chain.Block, error)
	}

	// Notifier runs the downstream confirmation fan-out for a policy block.
	// Notification is fire-and-forget; steps log failures instead of
	// surfacing them.
	Notifier interface {
		Notify(ctx context.Context, block model.PolicyBlock)
	}

	// Metrics records watcher progress and tick outcomes.
	Metrics interface {
		ObserveHeightFetch(err error, started time.Time)
		ObserveScan(blocks, policyBlocks int, started time.Time)
		SetChainHeight(height uint64)
		SetLastProcessedBlock(height uint64)
	}
)
