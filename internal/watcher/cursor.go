package watcher

import "sync/atomic"

// cursor tracks the last fully processed block number. The poll loop is the
// only writer; the stats endpoint reads it concurrently, hence the atomic.
type cursor struct {
	lastProcessed atomic.Uint64
}

// Init seeds the cursor from the chain tip at startup so blocks produced
// before the watcher started are never scanned.
func (c *cursor) Init(height uint64) {
	c.lastProcessed.Store(height)
}

// PendingRange returns the inclusive range of block numbers to scan given the
// current chain height, or ok=false when there is nothing new.
func (c *cursor) PendingRange(current uint64) (start, end uint64, ok bool) {
	last := c.lastProcessed.Load()
	if current <= last {
		return 0, 0, false
	}
	return last + 1, current, true
}

// AdvanceTo moves the cursor to end unconditionally. Blocks that failed
// within the range are skipped for good; the watcher trades completeness for
// forward progress.
func (c *cursor) AdvanceTo(end uint64) {
	c.lastProcessed.Store(end)
}

// LastProcessed returns the last fully processed block number.
func (c *cursor) LastProcessed() uint64 {
	return c.lastProcessed.Load()
}
