package events

import (
	"context"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// Bus is the slice of the platform event bus the publisher needs.
type Bus interface {
	Publish(ctx context.Context, topic string, event ports.TrackingEvent) error
}

// Publisher routes tracking envelopes onto one bus topic.
type Publisher struct {
	bus    Bus
	topic  string
	logger *slog.Logger
}

func NewPublisher(bus Bus, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if topic == "" {
		topic = "tracking.events"
	}
	return &Publisher{
		bus:    bus,
		topic:  topic,
		logger: logger,
	}
}

func (p *Publisher) PublishTrackingEvent(ctx context.Context, event ports.TrackingEvent) error {
	if err := p.bus.Publish(ctx, p.topic, event); err != nil {
		return err
	}
	p.logger.Debug("tracking event published",
		"event", "tracking_event_published",
		"module", "supply-chain/tracking-engine",
		"layer", "adapter",
		"topic", p.topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
	)
	return nil
}

var _ ports.TrackingEventPublisher = (*Publisher)(nil)
