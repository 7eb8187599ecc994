package watcher

import (
	"github.com/healthinsurechain/policywatch-backend/internal/chain"
	"github.com/healthinsurechain/policywatch-backend/internal/model"
	"github.com/healthinsurechain/policywatch-backend/pkg/safe"
)

// Classify decides whether a block carries policy activity. The heuristic is
// coarse: any block with at least one transaction counts, and the policy
// count is the block's total transaction count. Payload inspection is out of
// scope. Pure function, no I/O.
func Classify(block *chain.Block) (model.PolicyBlock, bool) {
	if block == nil || len(block.TxHashes) == 0 {
		return model.PolicyBlock{}, false
	}

	count, err := safe.Uint32(len(block.TxHashes))
	if err != nil {
		return model.PolicyBlock{}, false
	}

	return model.PolicyBlock{
		Number:      block.Number,
		Hash:        block.Hash,
		Timestamp:   block.Timestamp,
		PolicyCount: count,
	}, true
}
