package queries

import (
	"context"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// GetCheckpointUseCase resolves one transit record by its composite identity.
type GetCheckpointUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetCheckpointUseCase) Execute(ctx context.Context, shardID uint64, checkpointID uint64) (entities.Checkpoint, error) {
	return u.Repository.GetCheckpoint(ctx, shardID, checkpointID)
}
