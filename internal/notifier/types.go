package notifier

import (
	"context"
	"time"

	"github.com/healthinsurechain/policywatch-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// OffchainStore persists confirmation records for downstream consumers.
	OffchainStore interface {
		InsertConfirmations(ctx context.Context, confirmations []model.Confirmation) error
	}

	// Metrics records confirmation fan-out outcomes.
	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObserveConfirmation(started time.Time)
	}
)
