package ports

import (
	"context"
	"encoding/json"

	contractsv1 "chainfreight/contracts/gen/events/v1"
)

const (
	EventShipmentCreated        = "shipment.created"
	EventShardAdded             = "shard.added"
	EventTransitRecorded        = "transit.recorded"
	EventShipmentStatusChanged  = "shipment.status_changed"
	EventShardComplianceUpdated = "shard.compliance_updated"
)

// TrackingEvent reuses the canonical cross-runtime envelope contract.
type TrackingEvent = contractsv1.Envelope

// TrackingEventPublisher emits tracking events to the event bus adapter.
type TrackingEventPublisher interface {
	PublishTrackingEvent(ctx context.Context, event TrackingEvent) error
}

// ShipmentCreatedData is the payload for EventShipmentCreated.
type ShipmentCreatedData struct {
	ShipmentID        uint64 `json:"shipment_id"`
	Owner             string `json:"owner"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	EstimatedDelivery uint64 `json:"estimated_delivery"`
}

// ShardAddedData is the payload for EventShardAdded.
type ShardAddedData struct {
	ShardID    uint64 `json:"shard_id"`
	ShipmentID uint64 `json:"shipment_id"`
	Owner      string `json:"owner"`
}

// TransitRecordedData is the payload for EventTransitRecorded.
type TransitRecordedData struct {
	ShardID      uint64 `json:"shard_id"`
	CheckpointID uint64 `json:"checkpoint_id"`
	Location     string `json:"location"`
	Validator    string `json:"validator"`
}

// ShipmentStatusChangedData is the payload for EventShipmentStatusChanged.
type ShipmentStatusChangedData struct {
	ShipmentID uint64 `json:"shipment_id"`
	Status     string `json:"status"`
	ChangedBy  string `json:"changed_by"`
}

// ShardComplianceUpdatedData is the payload for EventShardComplianceUpdated.
type ShardComplianceUpdatedData struct {
	ShardID     uint64 `json:"shard_id"`
	IsCompliant bool   `json:"is_compliant"`
	Validator   string `json:"validator"`
}

// NewTrackingEnvelope assembles the canonical envelope for one engine event.
// Store adapters call it while appending outbox rows so the event is written
// in the same mutation as the state change.
func NewTrackingEnvelope(
	eventType string,
	eventID string,
	height uint64,
	partitionKey string,
	data any,
) (TrackingEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return TrackingEvent{}, err
	}
	return TrackingEvent{
		EventID:          eventID,
		EventType:        eventType,
		OccurredAtHeight: height,
		SourceService:    "supply-chain/tracking-engine",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "partition_key",
		PartitionKey:     partitionKey,
		Data:             raw,
	}, nil
}
