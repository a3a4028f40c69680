package queries

import (
	"context"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

type GetShardUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetShardUseCase) Execute(ctx context.Context, shardID uint64) (entities.Shard, error) {
	return u.Repository.GetShard(ctx, shardID)
}
