package memory

import (
	"context"
	"errors"
	"testing"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	domainerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

func createShipment(t *testing.T, store *Store, owner string, height uint64) entities.Shipment {
	t.Helper()
	shipment, err := store.CreateShipment(context.Background(), ports.CreateShipmentInput{
		Owner:             owner,
		Origin:            "Rotterdam",
		Destination:       "Hamburg",
		EstimatedDelivery: height + 100,
		Height:            height,
		EventID:           "evt-" + owner,
		OutboxID:          "out-" + owner,
	})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	return shipment
}

func TestShipmentNonceIsMonotonic(t *testing.T) {
	store := NewStore()

	first := createShipment(t, store, "owner-a", 1)
	second := createShipment(t, store, "owner-b", 2)

	if first.ShipmentID != 1 || second.ShipmentID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ShipmentID, second.ShipmentID)
	}

	nonces, err := store.Nonces(context.Background())
	if err != nil {
		t.Fatalf("nonces failed: %v", err)
	}
	if nonces.ShipmentNonce != 2 {
		t.Fatalf("expected shipment nonce 2, got %d", nonces.ShipmentNonce)
	}
}

func TestCreateShipmentSetsInitialState(t *testing.T) {
	store := NewStore()
	shipment := createShipment(t, store, "owner-a", 5)

	if shipment.Status != entities.StatusCreated {
		t.Fatalf("expected created status, got %v", shipment.Status)
	}
	if shipment.TotalShards != 0 {
		t.Fatalf("expected zero shards, got %d", shipment.TotalShards)
	}
	if shipment.TrustScore != 1000 {
		t.Fatalf("expected shipment trust score 1000, got %d", shipment.TrustScore)
	}
	if shipment.CreatedAtHeight != 5 || shipment.UpdatedAtHeight != 5 {
		t.Fatalf("unexpected heights: %+v", shipment)
	}
}

func TestAddShardRejectsNonOwner(t *testing.T) {
	store := NewStore()
	shipment := createShipment(t, store, "owner-a", 1)

	_, err := store.AddShard(context.Background(), ports.AddShardInput{
		Caller:          "intruder",
		ShipmentID:      shipment.ShipmentID,
		ItemDescription: "pallet of parts",
		InitialLocation: "Rotterdam",
		Height:          2,
		EventID:         "evt-1",
		OutboxID:        "out-1",
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAddShardIDsAreGlobalAcrossShipments(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	first := createShipment(t, store, "owner-a", 1)
	second := createShipment(t, store, "owner-b", 1)

	shardA, err := store.AddShard(ctx, ports.AddShardInput{
		Caller: "owner-a", ShipmentID: first.ShipmentID,
		ItemDescription: "crate 1", InitialLocation: "Rotterdam",
		Height: 2, EventID: "evt-a", OutboxID: "out-a",
	})
	if err != nil {
		t.Fatalf("add shard failed: %v", err)
	}
	shardB, err := store.AddShard(ctx, ports.AddShardInput{
		Caller: "owner-b", ShipmentID: second.ShipmentID,
		ItemDescription: "crate 2", InitialLocation: "Antwerp",
		Height: 3, EventID: "evt-b", OutboxID: "out-b",
	})
	if err != nil {
		t.Fatalf("add shard failed: %v", err)
	}

	if shardA.ShardID != 1 || shardB.ShardID != 2 {
		t.Fatalf("expected global shard ids 1 and 2, got %d and %d", shardA.ShardID, shardB.ShardID)
	}

	parent, err := store.GetShipment(ctx, first.ShipmentID)
	if err != nil {
		t.Fatalf("get shipment failed: %v", err)
	}
	if parent.TotalShards != 1 || parent.UpdatedAtHeight != 2 {
		t.Fatalf("parent not updated: %+v", parent)
	}
}

func TestAddShardDefaults(t *testing.T) {
	store := NewStore()
	shipment := createShipment(t, store, "owner-a", 1)

	shard, err := store.AddShard(context.Background(), ports.AddShardInput{
		Caller: "owner-a", ShipmentID: shipment.ShipmentID,
		ItemDescription: "fragile goods", InitialLocation: "Rotterdam",
		Height: 4, EventID: "evt-1", OutboxID: "out-1",
	})
	if err != nil {
		t.Fatalf("add shard failed: %v", err)
	}
	if shard.Temperature != 0 || shard.Humidity != 50 {
		t.Fatalf("unexpected sensor defaults: %+v", shard)
	}
	if !shard.IsCompliant {
		t.Fatalf("expected new shard to start compliant")
	}
	if shard.VerifiedBy != "owner-a" || shard.LastVerifiedHeight != 4 {
		t.Fatalf("unexpected verification fields: %+v", shard)
	}
}

func TestCheckpointIDsAreGaplessPerShard(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	shipment := createShipment(t, store, "owner-a", 1)
	shard, err := store.AddShard(ctx, ports.AddShardInput{
		Caller: "owner-a", ShipmentID: shipment.ShipmentID,
		ItemDescription: "crate", InitialLocation: "Rotterdam",
		Height: 2, EventID: "evt-1", OutboxID: "out-1",
	})
	if err != nil {
		t.Fatalf("add shard failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		checkpoint, err := store.RecordTransit(ctx, ports.RecordTransitInput{
			ShardID:   shard.ShardID,
			Validator: "validator-1",
			Location:  "Bremen",
			Height:    uint64(2 + i),
			EventID:   "evt-cp",
			OutboxID:  "out-cp-" + string(rune('0'+i)),
		})
		if err != nil {
			t.Fatalf("record transit %d failed: %v", i, err)
		}
		if checkpoint.CheckpointID != uint64(i) {
			t.Fatalf("expected checkpoint id %d, got %d", i, checkpoint.CheckpointID)
		}
	}
}

func TestRecordTransitMirrorsOntoShard(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	shipment := createShipment(t, store, "owner-a", 1)
	shard, err := store.AddShard(ctx, ports.AddShardInput{
		Caller: "owner-a", ShipmentID: shipment.ShipmentID,
		ItemDescription: "crate", InitialLocation: "Rotterdam",
		Height: 2, EventID: "evt-1", OutboxID: "out-1",
	})
	if err != nil {
		t.Fatalf("add shard failed: %v", err)
	}

	_, err = store.RecordTransit(ctx, ports.RecordTransitInput{
		ShardID:     shard.ShardID,
		Validator:   "validator-1",
		Location:    "Bremen",
		SensorData:  "temp spike",
		Temperature: -4,
		Humidity:    70,
		Height:      9,
		EventID:     "evt-2",
		OutboxID:    "out-2",
	})
	if err != nil {
		t.Fatalf("record transit failed: %v", err)
	}

	updated, err := store.GetShard(ctx, shard.ShardID)
	if err != nil {
		t.Fatalf("get shard failed: %v", err)
	}
	if updated.CurrentLocation != "Bremen" || updated.Temperature != -4 || updated.Humidity != 70 {
		t.Fatalf("shard mirror missing: %+v", updated)
	}
	if updated.VerifiedBy != "validator-1" || updated.LastVerifiedHeight != 9 {
		t.Fatalf("verification fields missing: %+v", updated)
	}
}

func TestUpdateShipmentStatusAppliesTrustOutcome(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	shipment := createShipment(t, store, "owner-a", 1)

	_, err := store.UpdateShipmentStatus(ctx, ports.UpdateShipmentStatusInput{
		Caller:     "owner-a",
		ShipmentID: shipment.ShipmentID,
		NewStatus:  entities.StatusDelivered,
		Outcome:    &ports.TrustOutcome{Participant: "owner-a", Successful: true},
		Height:     20,
		EventID:    "evt-1",
		OutboxID:   "out-1",
	})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	record, ok, err := store.GetTrustScore(ctx, "owner-a")
	if err != nil || !ok {
		t.Fatalf("expected trust record, ok=%v err=%v", ok, err)
	}
	if record.Score != 1000 || record.CompletedShipments != 1 || record.DelayedShipments != 0 {
		t.Fatalf("unexpected trust record: %+v", record)
	}
	if record.LastUpdatedHeight != 20 {
		t.Fatalf("expected height 20, got %d", record.LastUpdatedHeight)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	createShipment(t, store, "owner-a", 1)

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one pending message, got %d", len(pending))
	}
	if pending[0].EventType != ports.EventShipmentCreated {
		t.Fatalf("unexpected event type %q", pending[0].EventType)
	}

	if err := store.MarkOutboxPublished(ctx, pending[0].OutboxID, 5); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	pending, err = store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected outbox drained, got %d messages", len(pending))
	}
}

func TestGetUnknownEntitiesReturnNotFound(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.GetShipment(ctx, 99); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found for shipment, got %v", err)
	}
	if _, err := store.GetShard(ctx, 99); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found for shard, got %v", err)
	}
	if _, err := store.GetCheckpoint(ctx, 1, 1); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found for checkpoint, got %v", err)
	}
}
