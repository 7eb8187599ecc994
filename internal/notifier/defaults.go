package notifier

import "time"

// Step delays stand in for the latency of the real downstream calls.
const (
	statusUpdateDelay      = 100 * time.Millisecond
	claimVerificationDelay = 150 * time.Millisecond
	offchainUpdateDelay    = 200 * time.Millisecond
	partyNotifyDelay       = 100 * time.Millisecond
)
