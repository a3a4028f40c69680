package unit

import (
	"context"
	"sync"
	"testing"
	"time"

	trackingengine "chainfreight/contexts/supply-chain/tracking-engine"
	eventsadapter "chainfreight/contexts/supply-chain/tracking-engine/adapters/events"
	workerapp "chainfreight/contexts/supply-chain/tracking-engine/application/workers"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
	trackinghttp "chainfreight/contexts/supply-chain/tracking-engine/transport/http"
	validatorregistry "chainfreight/contexts/identity-access/validator-registry"
	contractsv1 "chainfreight/contracts/gen/events/v1"
	"chainfreight/internal/platform/ledger"
	"chainfreight/internal/platform/messaging"
)

func TestOutboxRelayPublishesAndDrains(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := ledger.NewClock(1)
	registry := validatorregistry.NewInMemoryModule(testOwner, clock, nil)
	tracking := trackingengine.NewInMemoryModule(registry.Service, clock, nil)

	bus, err := messaging.NewKafka(nil, nil)
	if err != nil {
		t.Fatalf("bus init failed: %v", err)
	}

	var mu sync.Mutex
	var received []contractsv1.Envelope
	if err := bus.Subscribe(ctx, "tracking.events", "relay-test-cg", func(_ context.Context, event contractsv1.Envelope) error {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		return nil
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if _, err := tracking.Handler.CreateShipmentHandler(ctx, "shipper-1", trackinghttp.CreateShipmentRequest{
		Origin:            "Shanghai Port",
		Destination:       "Los Angeles Port",
		EstimatedDelivery: 1000,
	}); err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	relay := workerapp.OutboxRelay{
		Outbox:    tracking.Store,
		Publisher: eventsadapter.NewPublisher(bus, "tracking.events", nil),
		Clock:     clock,
		BatchSize: 10,
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}

	pending, err := tracking.Store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected outbox drained, got %d pending", len(pending))
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		count := len(received)
		mu.Unlock()
		if count == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected one delivered event, got %d", count)
		case <-time.After(10 * time.Millisecond):
		}
	}

	mu.Lock()
	event := received[0]
	mu.Unlock()
	if event.EventType != ports.EventShipmentCreated {
		t.Fatalf("unexpected event type %q", event.EventType)
	}
	if event.OccurredAtHeight != 1 {
		t.Fatalf("expected event at height 1, got %d", event.OccurredAtHeight)
	}
}
