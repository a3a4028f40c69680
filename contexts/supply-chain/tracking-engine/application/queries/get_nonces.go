package queries

import (
	"context"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// GetNoncesUseCase exposes the shipment and shard allocation counters.
type GetNoncesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetNoncesUseCase) Execute(ctx context.Context) (entities.Nonces, error) {
	return u.Repository.Nonces(ctx)
}
