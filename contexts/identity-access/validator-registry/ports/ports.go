package ports

import (
	"context"

	"chainfreight/contexts/identity-access/validator-registry/domain/entities"
)

// LedgerClock exposes the current block height of the host ledger.
type LedgerClock interface {
	Height() uint64
}

// Registry persists validator authorization entries.
type Registry interface {
	SetAuthorization(ctx context.Context, entry entities.Authorization) error
	GetAuthorization(ctx context.Context, validator string) (entities.Authorization, bool, error)
}
