package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	application "chainfreight/contexts/supply-chain/tracking-engine/application"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// OutboxRelay drains pending outbox rows and publishes their envelopes.
// Rows are written atomically with engine mutations, so relaying them is
// at-least-once and safe to retry.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.TrackingEventPublisher
	Clock     ports.LedgerClock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("tracking outbox list failed",
			"event", "tracking_outbox_list_failed",
			"module", "supply-chain/tracking-engine",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	height := uint64(0)
	if r.Clock != nil {
		height = r.Clock.Height()
	}

	for _, row := range pending {
		var event ports.TrackingEvent
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			return err
		}
		if err := r.Publisher.PublishTrackingEvent(ctx, event); err != nil {
			logger.Error("tracking outbox publish failed",
				"event", "tracking_outbox_publish_failed",
				"module", "supply-chain/tracking-engine",
				"layer", "worker",
				"outbox_id", row.OutboxID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.OutboxID, height); err != nil {
			return err
		}
	}
	return nil
}
