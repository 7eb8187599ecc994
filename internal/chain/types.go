// Package chain defines the node-facing block source contract.
package chain

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrNotFound reports that the node has no block at the requested number,
// e.g. when a number past the current tip is requested.
var ErrNotFound = errors.New("block not found")

// Block carries the header fields and transaction identifiers the watcher
// needs; every fetch is a fresh round trip, nothing is cached.
type Block struct {
	Number    uint64
	Hash      common.Hash
	Timestamp uint64
	TxHashes  []common.Hash
}

// Source provides block data from a chain node.
type Source interface {
	LatestHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, number uint64) (*Block, error)
}
