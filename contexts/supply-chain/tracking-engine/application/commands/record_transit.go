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

// RecordTransitCommand appends one checkpoint observation for a shard.
type RecordTransitCommand struct {
	Caller      string
	ShardID     uint64
	Location    string
	SensorData  string
	Temperature int32
	Humidity    uint32
}

// RecordTransitUseCase gates on validator authorization, then appends the
// next checkpoint in the shard's gapless sequence and mirrors the observation
// onto the shard record.
type RecordTransitUseCase struct {
	Repository  ports.Repository
	Authority   ports.ValidatorAuthority
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RecordTransitUseCase) Execute(ctx context.Context, cmd RecordTransitCommand) (entities.Checkpoint, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Caller) == "" {
		return entities.Checkpoint{}, domainerrors.ErrInvalidInput
	}
	location := strings.TrimSpace(cmd.Location)
	if location == "" || len(location) > entities.MaxLocationLen {
		return entities.Checkpoint{}, domainerrors.ErrInvalidInput
	}
	if len(cmd.SensorData) > entities.MaxSensorDataLen {
		return entities.Checkpoint{}, domainerrors.ErrInvalidInput
	}

	// Existence first: an unauthorized caller probing a missing shard still
	// sees NotFound, matching the precondition order of the engine.
	if _, err := u.Repository.GetShard(ctx, cmd.ShardID); err != nil {
		return entities.Checkpoint{}, err
	}

	authorized, err := u.Authority.IsAuthorized(ctx, cmd.Caller)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	if !authorized {
		return entities.Checkpoint{}, domainerrors.ErrUnauthorized
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Checkpoint{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Checkpoint{}, err
	}

	checkpoint, err := u.Repository.RecordTransit(ctx, ports.RecordTransitInput{
		Validator:   cmd.Caller,
		ShardID:     cmd.ShardID,
		Location:    location,
		SensorData:  cmd.SensorData,
		Temperature: cmd.Temperature,
		Humidity:    cmd.Humidity,
		Height:      u.Clock.Height(),
		EventID:     eventID,
		OutboxID:    outboxID,
	})
	if err != nil {
		logger.Error("record transit failed",
			"event", "tracking_record_transit_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "application",
			"shard_id", cmd.ShardID,
			"validator", cmd.Caller,
			"error", err.Error(),
		)
		return entities.Checkpoint{}, err
	}

	logger.Info("transit recorded",
		"event", "tracking_transit_recorded",
		"module", "supply-chain/tracking-engine",
		"layer", "application",
		"shard_id", checkpoint.ShardID,
		"checkpoint_id", checkpoint.CheckpointID,
		"location", checkpoint.Location,
	)
	return checkpoint, nil
}
