package queries

import (
	"context"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// GetShipmentUseCase is a pure read; it never mutates state.
type GetShipmentUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetShipmentUseCase) Execute(ctx context.Context, shipmentID uint64) (entities.Shipment, error) {
	return u.Repository.GetShipment(ctx, shipmentID)
}
