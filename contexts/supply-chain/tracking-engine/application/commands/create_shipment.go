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

// CreateShipmentCommand contains transport-agnostic input for shipment creation.
// Caller is the externally authenticated identity that becomes the owner.
type CreateShipmentCommand struct {
	Caller            string
	Origin            string
	Destination       string
	EstimatedDelivery uint64
}

// CreateShipmentUseCase validates input and allocates a new shipment from the
// strictly increasing shipment nonce.
type CreateShipmentUseCase struct {
	Repository  ports.Repository
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateShipmentUseCase) Execute(ctx context.Context, cmd CreateShipmentCommand) (entities.Shipment, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(cmd.Caller) == "" {
		return entities.Shipment{}, domainerrors.ErrInvalidInput
	}
	origin := strings.TrimSpace(cmd.Origin)
	destination := strings.TrimSpace(cmd.Destination)
	if origin == "" || len(origin) > entities.MaxRouteLen {
		return entities.Shipment{}, domainerrors.ErrInvalidInput
	}
	if destination == "" || len(destination) > entities.MaxRouteLen {
		return entities.Shipment{}, domainerrors.ErrInvalidInput
	}

	height := u.Clock.Height()
	if cmd.EstimatedDelivery <= height {
		return entities.Shipment{}, domainerrors.ErrInvalidInput
	}

	eventID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shipment{}, err
	}
	outboxID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Shipment{}, err
	}

	shipment, err := u.Repository.CreateShipment(ctx, ports.CreateShipmentInput{
		Owner:             cmd.Caller,
		Origin:            origin,
		Destination:       destination,
		EstimatedDelivery: cmd.EstimatedDelivery,
		Height:            height,
		EventID:           eventID,
		OutboxID:          outboxID,
	})
	if err != nil {
		logger.Error("create shipment write failed",
			"event", "tracking_create_shipment_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "application",
			"owner", cmd.Caller,
			"error", err.Error(),
		)
		return entities.Shipment{}, err
	}

	logger.Info("shipment created",
		"event", "tracking_shipment_created",
		"module", "supply-chain/tracking-engine",
		"layer", "application",
		"shipment_id", shipment.ShipmentID,
		"owner", shipment.Owner,
		"height", height,
	)
	return shipment, nil
}
