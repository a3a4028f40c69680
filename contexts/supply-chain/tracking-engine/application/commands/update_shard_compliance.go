package commands

import (
	"context"
	"log/slog"
	"strings"

	application "chainfreight/contexts/supply-chain/tracking-engine/application"
	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	domainerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// UpdateShardComplianceCommand stamps a compliance verdict on a shard.
// Only authorized validators may call this; there is no owner bypass.
type UpdateShardComplianceCommand struct {
	Caller      string
	ShardID     uint64
	IsCompliant bool
}

type UpdateShardComplianceUseCase struct {
	Repository  ports.Repository
	Authority   ports.ValidatorAuthority
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u UpdateShardComplianceUseCase) Execute(ctx context.Context, cmd UpdateShardComplianceCommand) (entities.Shard, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Caller) == "" {
		return entities.Shard{}, domainerrors.ErrInvalidInput
	}

	if _, err := u.Repository.GetShard(ctx, cmd.ShardID); err != nil {
		return entities.Shard{}, err
	}

	authorized, err := u.Authority.IsAuthorized(ctx, cmd.Caller)
	if err != nil {
		return entities.Shard{}, err
	}
	if !authorized {
		return entities.Shard{}, domainerrors.ErrUnauthorized
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shard{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shard{}, err
	}

	shard, err := u.Repository.UpdateShardCompliance(ctx, ports.UpdateShardComplianceInput{
		Validator:   cmd.Caller,
		ShardID:     cmd.ShardID,
		IsCompliant: cmd.IsCompliant,
		Height:      u.Clock.Height(),
		EventID:     eventID,
		OutboxID:    outboxID,
	})
	if err != nil {
		logger.Error("update shard compliance failed",
			"event", "tracking_update_compliance_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "application",
			"shard_id", cmd.ShardID,
			"validator", cmd.Caller,
			"error", err.Error(),
		)
		return entities.Shard{}, err
	}

	logger.Info("shard compliance updated",
		"event", "tracking_compliance_updated",
		"module", "supply-chain/tracking-engine",
		"layer", "application",
		"shard_id", shard.ShardID,
		"is_compliant", shard.IsCompliant,
	)
	return shard, nil
}
