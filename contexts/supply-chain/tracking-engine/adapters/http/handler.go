package httpadapter

import (
	"context"
	"log/slog"

	application "chainfreight/contexts/supply-chain/tracking-engine/application"
	"chainfreight/contexts/supply-chain/tracking-engine/application/commands"
	"chainfreight/contexts/supply-chain/tracking-engine/application/queries"
	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	httptransport "chainfreight/contexts/supply-chain/tracking-engine/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateShipment   commands.CreateShipmentUseCase
	AddShard         commands.AddShardUseCase
	RecordTransit    commands.RecordTransitUseCase
	UpdateStatus     commands.UpdateShipmentStatusUseCase
	UpdateCompliance commands.UpdateShardComplianceUseCase
	GetShipment      queries.GetShipmentUseCase
	GetShard         queries.GetShardUseCase
	GetCheckpoint    queries.GetCheckpointUseCase
	GetTrustScore    queries.GetTrustScoreUseCase
	GetNonces        queries.GetNoncesUseCase
	Logger           *slog.Logger
}

func (h Handler) CreateShipmentHandler(
	ctx context.Context,
	caller string,
	request httptransport.CreateShipmentRequest,
) (httptransport.ShipmentResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http create shipment received",
		"event", "tracking_http_create_shipment_received",
		"module", "supply-chain/tracking-engine",
		"layer", "transport",
		"caller", caller,
	)

	shipment, err := h.CreateShipment.Execute(ctx, commands.CreateShipmentCommand{
		Caller:            caller,
		Origin:            request.Origin,
		Destination:       request.Destination,
		EstimatedDelivery: request.EstimatedDelivery,
	})
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentResponse(shipment), nil
}

func (h Handler) AddShardHandler(
	ctx context.Context,
	caller string,
	shipmentID uint64,
	request httptransport.AddShardRequest,
) (httptransport.ShardResponse, error) {
	shard, err := h.AddShard.Execute(ctx, commands.AddShardCommand{
		Caller:          caller,
		ShipmentID:      shipmentID,
		ItemDescription: request.ItemDescription,
		InitialLocation: request.InitialLocation,
	})
	if err != nil {
		return httptransport.ShardResponse{}, err
	}
	return shardResponse(shard), nil
}

func (h Handler) RecordTransitHandler(
	ctx context.Context,
	caller string,
	shardID uint64,
	request httptransport.RecordTransitRequest,
) (httptransport.CheckpointResponse, error) {
	checkpoint, err := h.RecordTransit.Execute(ctx, commands.RecordTransitCommand{
		Caller:      caller,
		ShardID:     shardID,
		Location:    request.Location,
		SensorData:  request.SensorData,
		Temperature: request.Temperature,
		Humidity:    request.Humidity,
	})
	if err != nil {
		return httptransport.CheckpointResponse{}, err
	}
	return checkpointResponse(checkpoint), nil
}

func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	caller string,
	shipmentID uint64,
	request httptransport.UpdateShipmentStatusRequest,
) (httptransport.ShipmentResponse, error) {
	shipment, err := h.UpdateStatus.Execute(ctx, commands.UpdateShipmentStatusCommand{
		Caller:     caller,
		ShipmentID: shipmentID,
		NewStatus:  entities.Status(request.NewStatus),
	})
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentResponse(shipment), nil
}

func (h Handler) UpdateComplianceHandler(
	ctx context.Context,
	caller string,
	shardID uint64,
	request httptransport.UpdateShardComplianceRequest,
) (httptransport.ShardResponse, error) {
	shard, err := h.UpdateCompliance.Execute(ctx, commands.UpdateShardComplianceCommand{
		Caller:      caller,
		ShardID:     shardID,
		IsCompliant: request.IsCompliant,
	})
	if err != nil {
		return httptransport.ShardResponse{}, err
	}
	return shardResponse(shard), nil
}

func (h Handler) GetShipmentHandler(ctx context.Context, shipmentID uint64) (httptransport.ShipmentResponse, error) {
	shipment, err := h.GetShipment.Execute(ctx, shipmentID)
	if err != nil {
		return httptransport.ShipmentResponse{}, err
	}
	return shipmentResponse(shipment), nil
}

func (h Handler) GetShardHandler(ctx context.Context, shardID uint64) (httptransport.ShardResponse, error) {
	shard, err := h.GetShard.Execute(ctx, shardID)
	if err != nil {
		return httptransport.ShardResponse{}, err
	}
	return shardResponse(shard), nil
}

func (h Handler) GetCheckpointHandler(
	ctx context.Context,
	shardID uint64,
	checkpointID uint64,
) (httptransport.CheckpointResponse, error) {
	checkpoint, err := h.GetCheckpoint.Execute(ctx, shardID, checkpointID)
	if err != nil {
		return httptransport.CheckpointResponse{}, err
	}
	return checkpointResponse(checkpoint), nil
}

func (h Handler) GetTrustScoreHandler(ctx context.Context, participant string) (httptransport.TrustScoreResponse, error) {
	record, err := h.GetTrustScore.Execute(ctx, participant)
	if err != nil {
		return httptransport.TrustScoreResponse{}, err
	}
	return httptransport.TrustScoreResponse{
		Participant:        record.Participant,
		Score:              record.Score,
		CompletedShipments: record.CompletedShipments,
		DelayedShipments:   record.DelayedShipments,
		LastUpdatedHeight:  record.LastUpdatedHeight,
	}, nil
}

func (h Handler) GetNoncesHandler(ctx context.Context) (httptransport.NoncesResponse, error) {
	nonces, err := h.GetNonces.Execute(ctx)
	if err != nil {
		return httptransport.NoncesResponse{}, err
	}
	return httptransport.NoncesResponse{
		ShipmentNonce: nonces.ShipmentNonce,
		ShardNonce:    nonces.ShardNonce,
	}, nil
}

func shipmentResponse(shipment entities.Shipment) httptransport.ShipmentResponse {
	return httptransport.ShipmentResponse{
		ShipmentID:        shipment.ShipmentID,
		Owner:             shipment.Owner,
		Origin:            shipment.Origin,
		Destination:       shipment.Destination,
		StatusCode:        uint8(shipment.Status),
		Status:            shipment.Status.String(),
		CreatedAtHeight:   shipment.CreatedAtHeight,
		UpdatedAtHeight:   shipment.UpdatedAtHeight,
		EstimatedDelivery: shipment.EstimatedDelivery,
		TotalShards:       shipment.TotalShards,
		TrustScore:        shipment.TrustScore,
	}
}

func shardResponse(shard entities.Shard) httptransport.ShardResponse {
	return httptransport.ShardResponse{
		ShardID:            shard.ShardID,
		ShipmentID:         shard.ShipmentID,
		ItemDescription:    shard.ItemDescription,
		CurrentLocation:    shard.CurrentLocation,
		Temperature:        shard.Temperature,
		Humidity:           shard.Humidity,
		LastVerifiedHeight: shard.LastVerifiedHeight,
		VerifiedBy:         shard.VerifiedBy,
		IsCompliant:        shard.IsCompliant,
	}
}

func checkpointResponse(checkpoint entities.Checkpoint) httptransport.CheckpointResponse {
	return httptransport.CheckpointResponse{
		ShardID:          checkpoint.ShardID,
		CheckpointID:     checkpoint.CheckpointID,
		Location:         checkpoint.Location,
		RecordedAtHeight: checkpoint.RecordedAtHeight,
		Validator:        checkpoint.Validator,
		SensorData:       checkpoint.SensorData,
		Verified:         checkpoint.Verified,
	}
}
