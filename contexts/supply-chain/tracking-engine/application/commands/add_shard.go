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

// AddShardCommand registers one sub-unit under an existing shipment.
type AddShardCommand struct {
	Caller          string
	ShipmentID      uint64
	ItemDescription string
	InitialLocation string
}

// AddShardUseCase enforces shipment existence and ownership, then allocates
// the next globally monotonic shard ID.
type AddShardUseCase struct {
	Repository  ports.Repository
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u AddShardUseCase) Execute(ctx context.Context, cmd AddShardCommand) (entities.Shard, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Caller) == "" {
		return entities.Shard{}, domainerrors.ErrInvalidInput
	}
	description := strings.TrimSpace(cmd.ItemDescription)
	if description == "" || len(description) > entities.MaxDescriptionLen {
		return entities.Shard{}, domainerrors.ErrInvalidInput
	}
	location := strings.TrimSpace(cmd.InitialLocation)
	if len(location) > entities.MaxLocationLen {
		return entities.Shard{}, domainerrors.ErrInvalidInput
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shard{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shard{}, err
	}

	shard, err := u.Repository.AddShard(ctx, ports.AddShardInput{
		Caller:          cmd.Caller,
		ShipmentID:      cmd.ShipmentID,
		ItemDescription: description,
		InitialLocation: location,
		Height:          u.Clock.Height(),
		EventID:         eventID,
		OutboxID:        outboxID,
	})
	if err != nil {
		logger.Error("add shard failed",
			"event", "tracking_add_shard_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "application",
			"shipment_id", cmd.ShipmentID,
			"caller", cmd.Caller,
			"error", err.Error(),
		)
		return entities.Shard{}, err
	}

	logger.Info("shard added",
		"event", "tracking_shard_added",
		"module", "supply-chain/tracking-engine",
		"layer", "application",
		"shard_id", shard.ShardID,
		"shipment_id", shard.ShipmentID,
	)
	return shard, nil
}
