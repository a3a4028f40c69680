package ports

import (
	"context"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
)

// LedgerClock reports the current block height. The engine only reads it;
// advancing the height is a host concern.
type LedgerClock interface {
	Height() uint64
}

// IDGenerator abstracts UUID generation for event/outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ValidatorAuthority answers whether an identity is an authorized validator.
// Implemented by the validator-registry module; wired in bootstrap.
type ValidatorAuthority interface {
	IsAuthorized(ctx context.Context, validator string) (bool, error)
}

// CreateShipmentInput is persisted atomically with its outbox record.
// The shipment ID is allocated by the repository from the shipment nonce;
// the nonce only advances on success.
type CreateShipmentInput struct {
	Owner             string
	Origin            string
	Destination       string
	EstimatedDelivery uint64
	Height            uint64
	EventID           string
	OutboxID          string
}

// AddShardInput allocates the next global shard ID and bumps the parent
// shipment's shard count in the same mutation.
type AddShardInput struct {
	Caller          string
	ShipmentID      uint64
	ItemDescription string
	InitialLocation string
	Height          uint64
	EventID         string
	OutboxID        string
}

// RecordTransitInput appends one checkpoint and mirrors the observation onto
// the parent shard.
type RecordTransitInput struct {
	Validator   string
	ShardID     uint64
	Location    string
	SensorData  string
	Temperature int32
	Humidity    uint32
	Height      uint64
	EventID     string
	OutboxID    string
}

// TrustOutcome is the participant-level side effect of a terminal transition.
type TrustOutcome struct {
	Participant string
	Successful  bool
}

// UpdateShipmentStatusInput applies the status write and, for terminal
// outcomes, the trust-score fold in one mutation. Outcome is nil for
// non-terminal statuses.
type UpdateShipmentStatusInput struct {
	Caller     string
	ShipmentID uint64
	NewStatus  entities.Status
	Height     uint64
	Outcome    *TrustOutcome
	EventID    string
	OutboxID   string
}

// UpdateShardComplianceInput stamps the compliance verdict onto a shard.
type UpdateShardComplianceInput struct {
	Validator   string
	ShardID     uint64
	IsCompliant bool
	Height      uint64
	EventID     string
	OutboxID    string
}

// Repository is the transactional state boundary for the engine. Every
// mutating method is all-or-nothing: preconditions are re-checked inside the
// mutation and no partial write is ever visible to readers.
type Repository interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (entities.Shipment, error)
	GetShipment(ctx context.Context, shipmentID uint64) (entities.Shipment, error)
	AddShard(ctx context.Context, input AddShardInput) (entities.Shard, error)
	GetShard(ctx context.Context, shardID uint64) (entities.Shard, error)
	RecordTransit(ctx context.Context, input RecordTransitInput) (entities.Checkpoint, error)
	GetCheckpoint(ctx context.Context, shardID uint64, checkpointID uint64) (entities.Checkpoint, error)
	UpdateShipmentStatus(ctx context.Context, input UpdateShipmentStatusInput) (entities.Shipment, error)
	UpdateShardCompliance(ctx context.Context, input UpdateShardComplianceInput) (entities.Shard, error)
	GetTrustScore(ctx context.Context, participant string) (entities.TrustScore, bool, error)
	Nonces(ctx context.Context) (entities.Nonces, error)
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID        string
	EventType       string
	Payload         []byte
	CreatedAtHeight uint64
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAtHeight uint64) error
}
