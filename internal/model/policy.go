// Package model defines domain models for policy block confirmation.
package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// PolicyBlock describes a block classified as carrying policy activity.
// Instances are built once per classified block and handed to the notifier.
type PolicyBlock struct {
	Number      uint64
	Hash        common.Hash
	Timestamp   uint64
	PolicyCount uint32
}

// Confirmation is the off-chain record written for a confirmed policy block.
type Confirmation struct {
	BlockNumber    uint64    `json:"block_number"`
	BlockHash      string    `json:"block_hash"`
	BlockTimestamp time.Time `json:"block_timestamp"`
	PolicyCount    uint32    `json:"policy_count"`
	Threshold      uint64    `json:"threshold"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

// WatcherStats is an on-demand snapshot of watcher progress.
type WatcherStats struct {
	CurrentHeight         uint64 `json:"current_height"`
	LastProcessedBlock    uint64 `json:"last_processed_block"`
	BlocksBehind          uint64 `json:"blocks_behind"`
	ConfirmationThreshold uint64 `json:"confirmation_threshold"`
}
