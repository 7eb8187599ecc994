package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/ratelimit"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps ethclient with metrics instrumentation and a
// client-side rate limit so catch-up scans cannot hammer the node.
type ObservedClient struct {
	client     *ethclient.Client
	rpcMetrics RPCMetrics
	rl         ratelimit.Limiter
}

// NewObservedClient constructs an instrumented RPC client capped at rps calls
// per second.
func NewObservedClient(client *ethclient.Client, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	if rps <= 0 {
		rps = 1
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		rl:         ratelimit.New(rps),
	}
}

// BlockNumber returns the latest block number known to the node.
func (r *ObservedClient) BlockNumber(ctx context.Context) (number uint64, err error) {
	r.rl.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_number", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

// BlockByNumber returns the block at the given number.
func (r *ObservedClient) BlockByNumber(ctx context.Context, number *big.Int) (block *types.Block, err error) {
	r.rl.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_by_number", err, started)
	}()
	return r.client.BlockByNumber(ctx, number)
}
