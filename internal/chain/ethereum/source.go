// Package ethereum implements chain.Source against an Ethereum JSON-RPC node.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/healthinsurechain/policywatch-backend/internal/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// RPCClient is the subset of the node client the source relies on.
type RPCClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
}

// Source implements chain.Source for Ethereum-style nodes.
type Source struct {
	rpc     RPCClient
	timeout time.Duration
}

// NewSource creates a Source. A non-positive timeout disables the per-call
// deadline and leaves calls bounded only by the caller's context.
func NewSource(rpc RPCClient, timeout time.Duration) (*Source, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	return &Source{rpc: rpc, timeout: timeout}, nil
}

// LatestHeight returns the node's latest block number.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	height, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves header fields and transaction hashes for the block at
// the given number. Returns chain.ErrNotFound when the node has no such block.
func (s *Source) FetchBlock(ctx context.Context, number uint64) (*chain.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	block, err := s.rpc.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, chain.ErrNotFound
		}
		return nil, fmt.Errorf("get block %d: %w", number, err)
	}

	txs := block.Transactions()
	hashes := make([]common.Hash, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash())
	}

	return &chain.Block{
		Number:    block.NumberU64(),
		Hash:      block.Hash(),
		Timestamp: block.Time(),
		TxHashes:  hashes,
	}, nil
}

func (s *Source) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
