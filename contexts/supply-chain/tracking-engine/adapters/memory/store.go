package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	domainerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	"chainfreight/contexts/supply-chain/tracking-engine/domain/services"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
	sharedoutbox "chainfreight/internal/shared/outbox"

	"github.com/google/uuid"
)

// Store is the in-memory state boundary for the engine. One mutex serializes
// every mutation, which reproduces the host ledger's single-writer semantics:
// each entry point commits fully or not at all, and readers never observe a
// partial write.
type Store struct {
	mu sync.RWMutex

	shipments    map[uint64]entities.Shipment
	shards       map[uint64]entities.Shard
	checkpoints  map[uint64]map[uint64]entities.Checkpoint
	trustScores  map[string]entities.TrustScore
	shardCounter map[uint64]uint64

	shipmentNonce uint64
	shardNonce    uint64

	outbox map[string]outboxRow
}

type outboxRow struct {
	ports.OutboxMessage
	Status            string
	RetryCount        int
	PublishedAtHeight *uint64
}

func NewStore() *Store {
	return &Store{
		shipments:    make(map[uint64]entities.Shipment),
		shards:       make(map[uint64]entities.Shard),
		checkpoints:  make(map[uint64]map[uint64]entities.Checkpoint),
		trustScores:  make(map[string]entities.TrustScore),
		shardCounter: make(map[uint64]uint64),
		outbox:       make(map[string]outboxRow),
	}
}

func (s *Store) CreateShipment(_ context.Context, input ports.CreateShipmentInput) (entities.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shipmentNonce++
	shipment := entities.Shipment{
		ShipmentID:        s.shipmentNonce,
		Owner:             input.Owner,
		Origin:            input.Origin,
		Destination:       input.Destination,
		Status:            entities.StatusCreated,
		CreatedAtHeight:   input.Height,
		UpdatedAtHeight:   input.Height,
		EstimatedDelivery: input.EstimatedDelivery,
		TotalShards:       0,
		TrustScore:        services.MaxTrustScore,
	}
	s.shipments[shipment.ShipmentID] = shipment

	if err := s.appendOutboxLocked(
		ports.EventShipmentCreated,
		input.EventID,
		input.OutboxID,
		input.Height,
		input.Owner,
		ports.ShipmentCreatedData{
			ShipmentID:        shipment.ShipmentID,
			Owner:             shipment.Owner,
			Origin:            shipment.Origin,
			Destination:       shipment.Destination,
			EstimatedDelivery: shipment.EstimatedDelivery,
		},
	); err != nil {
		// Roll the allocation back so a failed call never burns the nonce.
		delete(s.shipments, shipment.ShipmentID)
		s.shipmentNonce--
		return entities.Shipment{}, err
	}
	return shipment, nil
}

func (s *Store) GetShipment(_ context.Context, shipmentID uint64) (entities.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shipment, ok := s.shipments[shipmentID]
	if !ok {
		return entities.Shipment{}, domainerrors.ErrNotFound
	}
	return shipment, nil
}

func (s *Store) AddShard(_ context.Context, input ports.AddShardInput) (entities.Shard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments[input.ShipmentID]
	if !ok {
		return entities.Shard{}, domainerrors.ErrNotFound
	}
	if shipment.Owner != input.Caller {
		return entities.Shard{}, domainerrors.ErrUnauthorized
	}

	s.shardNonce++
	shard := entities.Shard{
		ShardID:            s.shardNonce,
		ShipmentID:         input.ShipmentID,
		ItemDescription:    input.ItemDescription,
		CurrentLocation:    input.InitialLocation,
		Temperature:        entities.InitialTemperature,
		Humidity:           entities.InitialHumidity,
		LastVerifiedHeight: input.Height,
		VerifiedBy:         input.Caller,
		IsCompliant:        true,
	}

	if err := s.appendOutboxLocked(
		ports.EventShardAdded,
		input.EventID,
		input.OutboxID,
		input.Height,
		shipment.Owner,
		ports.ShardAddedData{
			ShardID:    shard.ShardID,
			ShipmentID: shard.ShipmentID,
			Owner:      shipment.Owner,
		},
	); err != nil {
		s.shardNonce--
		return entities.Shard{}, err
	}

	s.shards[shard.ShardID] = shard
	shipment.TotalShards++
	shipment.UpdatedAtHeight = input.Height
	s.shipments[shipment.ShipmentID] = shipment
	return shard, nil
}

func (s *Store) GetShard(_ context.Context, shardID uint64) (entities.Shard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shard, ok := s.shards[shardID]
	if !ok {
		return entities.Shard{}, domainerrors.ErrNotFound
	}
	return shard, nil
}

func (s *Store) RecordTransit(_ context.Context, input ports.RecordTransitInput) (entities.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shard, ok := s.shards[input.ShardID]
	if !ok {
		return entities.Checkpoint{}, domainerrors.ErrNotFound
	}

	nextID := s.shardCounter[input.ShardID] + 1
	checkpoint := entities.Checkpoint{
		ShardID:          input.ShardID,
		CheckpointID:     nextID,
		Location:         input.Location,
		RecordedAtHeight: input.Height,
		Validator:        input.Validator,
		SensorData:       input.SensorData,
		Verified:         true,
	}

	if err := s.appendOutboxLocked(
		ports.EventTransitRecorded,
		input.EventID,
		input.OutboxID,
		input.Height,
		shard.VerifiedBy,
		ports.TransitRecordedData{
			ShardID:      checkpoint.ShardID,
			CheckpointID: checkpoint.CheckpointID,
			Location:     checkpoint.Location,
			Validator:    checkpoint.Validator,
		},
	); err != nil {
		return entities.Checkpoint{}, err
	}

	s.shardCounter[input.ShardID] = nextID
	if s.checkpoints[input.ShardID] == nil {
		s.checkpoints[input.ShardID] = make(map[uint64]entities.Checkpoint)
	}
	s.checkpoints[input.ShardID][nextID] = checkpoint

	shard.CurrentLocation = input.Location
	shard.Temperature = input.Temperature
	shard.Humidity = input.Humidity
	shard.LastVerifiedHeight = input.Height
	shard.VerifiedBy = input.Validator
	s.shards[shard.ShardID] = shard
	return checkpoint, nil
}

func (s *Store) GetCheckpoint(_ context.Context, shardID uint64, checkpointID uint64) (entities.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checkpoint, ok := s.checkpoints[shardID][checkpointID]
	if !ok {
		return entities.Checkpoint{}, domainerrors.ErrNotFound
	}
	return checkpoint, nil
}

func (s *Store) UpdateShipmentStatus(_ context.Context, input ports.UpdateShipmentStatusInput) (entities.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shipment, ok := s.shipments[input.ShipmentID]
	if !ok {
		return entities.Shipment{}, domainerrors.ErrNotFound
	}

	shipment.Status = input.NewStatus
	shipment.UpdatedAtHeight = input.Height

	if err := s.appendOutboxLocked(
		ports.EventShipmentStatusChanged,
		input.EventID,
		input.OutboxID,
		input.Height,
		shipment.Owner,
		ports.ShipmentStatusChangedData{
			ShipmentID: shipment.ShipmentID,
			Status:     shipment.Status.String(),
			ChangedBy:  input.Caller,
		},
	); err != nil {
		return entities.Shipment{}, err
	}

	s.shipments[shipment.ShipmentID] = shipment
	if input.Outcome != nil {
		record, found := s.trustScores[input.Outcome.Participant]
		if !found {
			record = services.DefaultRecord(input.Outcome.Participant)
		}
		s.trustScores[input.Outcome.Participant] = services.ApplyOutcome(record, input.Outcome.Successful, input.Height)
	}
	return shipment, nil
}

func (s *Store) UpdateShardCompliance(_ context.Context, input ports.UpdateShardComplianceInput) (entities.Shard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shard, ok := s.shards[input.ShardID]
	if !ok {
		return entities.Shard{}, domainerrors.ErrNotFound
	}

	shard.IsCompliant = input.IsCompliant
	shard.LastVerifiedHeight = input.Height
	shard.VerifiedBy = input.Validator

	if err := s.appendOutboxLocked(
		ports.EventShardComplianceUpdated,
		input.EventID,
		input.OutboxID,
		input.Height,
		input.Validator,
		ports.ShardComplianceUpdatedData{
			ShardID:     shard.ShardID,
			IsCompliant: shard.IsCompliant,
			Validator:   input.Validator,
		},
	); err != nil {
		return entities.Shard{}, err
	}

	s.shards[shard.ShardID] = shard
	return shard, nil
}

func (s *Store) GetTrustScore(_ context.Context, participant string) (entities.TrustScore, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.trustScores[participant]
	if !ok {
		return entities.TrustScore{}, false, nil
	}
	return record, true, nil
}

func (s *Store) Nonces(_ context.Context) (entities.Nonces, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entities.Nonces{
		ShipmentNonce: s.shipmentNonce,
		ShardNonce:    s.shardNonce,
	}, nil
}

func (s *Store) appendOutboxLocked(
	eventType string,
	eventID string,
	outboxID string,
	height uint64,
	partitionKey string,
	data any,
) error {
	envelope, err := ports.NewTrackingEnvelope(eventType, eventID, height, partitionKey, data)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	s.outbox[outboxID] = outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:        outboxID,
			EventType:       eventType,
			Payload:         payload,
			CreatedAtHeight: height,
		},
		Status: sharedoutbox.StatusPending,
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]ports.OutboxMessage, 0, len(s.outbox))
	for _, row := range s.outbox {
		if row.Status != sharedoutbox.StatusPending {
			continue
		}
		pending = append(pending, row.OutboxMessage)
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].CreatedAtHeight == pending[j].CreatedAtHeight {
			return pending[i].OutboxID < pending[j].OutboxID
		}
		return pending[i].CreatedAtHeight < pending[j].CreatedAtHeight
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAtHeight uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.outbox[outboxID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	row.Status = sharedoutbox.StatusPublished
	row.PublishedAtHeight = &publishedAtHeight
	s.outbox[outboxID] = row
	return nil
}

// NewID implements ports.IDGenerator for in-memory wiring.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var (
	_ ports.Repository       = (*Store)(nil)
	_ ports.OutboxRepository = (*Store)(nil)
	_ ports.IDGenerator      = (*Store)(nil)
)
