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

// UpdateShipmentStatusCommand moves a shipment to any status in the closed
// enum range. No adjacency constraint is enforced: repeat and backward
// transitions are legal.
type UpdateShipmentStatusCommand struct {
	Caller     string
	ShipmentID uint64
	NewStatus  entities.Status
}

// UpdateShipmentStatusUseCase authorizes the caller (owner or validator),
// applies the status write, and folds terminal outcomes into the owner's
// trust record in the same mutation.
type UpdateShipmentStatusUseCase struct {
	Repository  ports.Repository
	Authority   ports.ValidatorAuthority
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u UpdateShipmentStatusUseCase) Execute(ctx context.Context, cmd UpdateShipmentStatusCommand) (entities.Shipment, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Caller) == "" {
		return entities.Shipment{}, domainerrors.ErrInvalidInput
	}

	shipment, err := u.Repository.GetShipment(ctx, cmd.ShipmentID)
	if err != nil {
		return entities.Shipment{}, err
	}

	if cmd.Caller != shipment.Owner {
		authorized, err := u.Authority.IsAuthorized(ctx, cmd.Caller)
		if err != nil {
			return entities.Shipment{}, err
		}
		if !authorized {
			return entities.Shipment{}, domainerrors.ErrUnauthorized
		}
	}

	if !cmd.NewStatus.Valid() {
		return entities.Shipment{}, domainerrors.ErrInvalidStatus
	}

	var outcome *ports.TrustOutcome
	switch cmd.NewStatus {
	case entities.StatusDelivered:
		outcome = &ports.TrustOutcome{Participant: shipment.Owner, Successful: true}
	case entities.StatusDelayed:
		outcome = &ports.TrustOutcome{Participant: shipment.Owner, Successful: false}
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shipment{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shipment{}, err
	}

	updated, err := u.Repository.UpdateShipmentStatus(ctx, ports.UpdateShipmentStatusInput{
		Caller:     cmd.Caller,
		ShipmentID: cmd.ShipmentID,
		NewStatus:  cmd.NewStatus,
		Height:     u.Clock.Height(),
		Outcome:    outcome,
		EventID:    eventID,
		OutboxID:   outboxID,
	})
	if err != nil {
		logger.Error("update shipment status failed",
			"event", "tracking_update_status_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "application",
			"shipment_id", cmd.ShipmentID,
			"caller", cmd.Caller,
			"error", err.Error(),
		)
		return entities.Shipment{}, err
	}

	logger.Info("shipment status updated",
		"event", "tracking_status_updated",
		"module", "supply-chain/tracking-engine",
		"layer", "application",
		"shipment_id", updated.ShipmentID,
		"status", updated.Status.String(),
		"terminal_outcome", outcome != nil,
	)
	return updated, nil
}
