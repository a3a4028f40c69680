package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	domainerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	"chainfreight/contexts/supply-chain/tracking-engine/domain/services"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
	sharedoutbox "chainfreight/internal/shared/outbox"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	nonceShipment = "shipment"
	nonceShard    = "shard"
)

// Repository is the gorm-backed state boundary. Every mutating method runs in
// one transaction so a failed call leaves no partial state behind.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (entities.Shipment, error) {
	var shipment entities.Shipment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nonce, err := nextNonce(tx, nonceShipment)
		if err != nil {
			return err
		}

		row := shipmentModel{
			ID:                nonce,
			Owner:             input.Owner,
			Origin:            input.Origin,
			Destination:       input.Destination,
			Status:            int16(entities.StatusCreated),
			CreatedAtHeight:   input.Height,
			UpdatedAtHeight:   input.Height,
			EstimatedDelivery: input.EstimatedDelivery,
			TotalShards:       0,
			TrustScore:        services.MaxTrustScore,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyExists
			}
			return err
		}

		if err := appendOutbox(tx, ports.EventShipmentCreated, input.EventID, input.OutboxID, input.Height, input.Owner, ports.ShipmentCreatedData{
			ShipmentID:        row.ID,
			Owner:             row.Owner,
			Origin:            row.Origin,
			Destination:       row.Destination,
			EstimatedDelivery: row.EstimatedDelivery,
		}); err != nil {
			return err
		}

		shipment = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Shipment{}, r.translate("tracking_repo_create_shipment_failed", err, "owner", input.Owner)
	}
	return shipment, nil
}

func (r *Repository) GetShipment(ctx context.Context, shipmentID uint64) (entities.Shipment, error) {
	var row shipmentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", shipmentID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Shipment{}, domainerrors.ErrNotFound
		}
		return entities.Shipment{}, r.translate("tracking_repo_get_shipment_failed", err, "shipment_id", shipmentID)
	}
	return row.toEntity(), nil
}

func (r *Repository) AddShard(ctx context.Context, input ports.AddShardInput) (entities.Shard, error) {
	var shard entities.Shard
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent shipmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ShipmentID).
			First(&parent).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}
		if parent.Owner != input.Caller {
			return domainerrors.ErrUnauthorized
		}

		nonce, err := nextNonce(tx, nonceShard)
		if err != nil {
			return err
		}

		row := shardModel{
			ID:                 nonce,
			ShipmentID:         input.ShipmentID,
			ItemDescription:    input.ItemDescription,
			CurrentLocation:    input.InitialLocation,
			Temperature:        entities.InitialTemperature,
			Humidity:           entities.InitialHumidity,
			LastVerifiedHeight: input.Height,
			VerifiedBy:         input.Caller,
			IsCompliant:        true,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyExists
			}
			return err
		}

		update := tx.Model(&shipmentModel{}).
			Where("id = ?", parent.ID).
			Updates(map[string]any{
				"total_shards":      gorm.Expr("total_shards + 1"),
				"updated_at_height": input.Height,
			})
		if update.Error != nil {
			return update.Error
		}

		if err := appendOutbox(tx, ports.EventShardAdded, input.EventID, input.OutboxID, input.Height, parent.Owner, ports.ShardAddedData{
			ShardID:    row.ID,
			ShipmentID: row.ShipmentID,
			Owner:      parent.Owner,
		}); err != nil {
			return err
		}

		shard = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Shard{}, r.translate("tracking_repo_add_shard_failed", err, "shipment_id", input.ShipmentID)
	}
	return shard, nil
}

func (r *Repository) GetShard(ctx context.Context, shardID uint64) (entities.Shard, error) {
	var row shardModel
	err := r.db.WithContext(ctx).
		Where("id = ?", shardID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Shard{}, domainerrors.ErrNotFound
		}
		return entities.Shard{}, r.translate("tracking_repo_get_shard_failed", err, "shard_id", shardID)
	}
	return row.toEntity(), nil
}

func (r *Repository) RecordTransit(ctx context.Context, input ports.RecordTransitInput) (entities.Checkpoint, error) {
	var checkpoint entities.Checkpoint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shard shardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ShardID).
			First(&shard).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}

		nextID, err := nextCheckpointID(tx, input.ShardID)
		if err != nil {
			// Counter rows are engine-managed; a failure here is an internal
			// inconsistency surfaced as invalid input, not a server fault.
			return errors.Join(domainerrors.ErrInvalidInput, err)
		}

		row := checkpointModel{
			ShardID:          input.ShardID,
			CheckpointID:     nextID,
			Location:         input.Location,
			RecordedAtHeight: input.Height,
			Validator:        input.Validator,
			SensorData:       input.SensorData,
			Verified:         true,
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyExists
			}
			return err
		}

		update := tx.Model(&shardModel{}).
			Where("id = ?", input.ShardID).
			Updates(map[string]any{
				"current_location":     input.Location,
				"temperature":          input.Temperature,
				"humidity":             input.Humidity,
				"last_verified_height": input.Height,
				"verified_by":          input.Validator,
			})
		if update.Error != nil {
			return update.Error
		}

		if err := appendOutbox(tx, ports.EventTransitRecorded, input.EventID, input.OutboxID, input.Height, input.Validator, ports.TransitRecordedData{
			ShardID:      row.ShardID,
			CheckpointID: row.CheckpointID,
			Location:     row.Location,
			Validator:    row.Validator,
		}); err != nil {
			return err
		}

		checkpoint = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Checkpoint{}, r.translate("tracking_repo_record_transit_failed", err, "shard_id", input.ShardID)
	}
	return checkpoint, nil
}

func (r *Repository) GetCheckpoint(ctx context.Context, shardID uint64, checkpointID uint64) (entities.Checkpoint, error) {
	var row checkpointModel
	err := r.db.WithContext(ctx).
		Where("shard_id = ? AND checkpoint_id = ?", shardID, checkpointID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Checkpoint{}, domainerrors.ErrNotFound
		}
		return entities.Checkpoint{}, r.translate("tracking_repo_get_checkpoint_failed", err,
			"shard_id", shardID,
			"checkpoint_id", checkpointID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateShipmentStatus(ctx context.Context, input ports.UpdateShipmentStatusInput) (entities.Shipment, error) {
	var shipment entities.Shipment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row shipmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ShipmentID).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}

		row.Status = int16(input.NewStatus)
		row.UpdatedAtHeight = input.Height
		if err := tx.Model(&shipmentModel{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"status":            row.Status,
				"updated_at_height": row.UpdatedAtHeight,
			}).Error; err != nil {
			return err
		}

		if input.Outcome != nil {
			if err := applyTrustOutcome(tx, *input.Outcome, input.Height); err != nil {
				return err
			}
		}

		if err := appendOutbox(tx, ports.EventShipmentStatusChanged, input.EventID, input.OutboxID, input.Height, row.Owner, ports.ShipmentStatusChangedData{
			ShipmentID: row.ID,
			Status:     entities.Status(row.Status).String(),
			ChangedBy:  input.Caller,
		}); err != nil {
			return err
		}

		shipment = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Shipment{}, r.translate("tracking_repo_update_status_failed", err, "shipment_id", input.ShipmentID)
	}
	return shipment, nil
}

func (r *Repository) UpdateShardCompliance(ctx context.Context, input ports.UpdateShardComplianceInput) (entities.Shard, error) {
	var shard entities.Shard
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row shardModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ShardID).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}

		row.IsCompliant = input.IsCompliant
		row.LastVerifiedHeight = input.Height
		row.VerifiedBy = input.Validator
		if err := tx.Model(&shardModel{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{
				"is_compliant":         row.IsCompliant,
				"last_verified_height": row.LastVerifiedHeight,
				"verified_by":          row.VerifiedBy,
			}).Error; err != nil {
			return err
		}

		if err := appendOutbox(tx, ports.EventShardComplianceUpdated, input.EventID, input.OutboxID, input.Height, input.Validator, ports.ShardComplianceUpdatedData{
			ShardID:     row.ID,
			IsCompliant: row.IsCompliant,
			Validator:   input.Validator,
		}); err != nil {
			return err
		}

		shard = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Shard{}, r.translate("tracking_repo_update_compliance_failed", err, "shard_id", input.ShardID)
	}
	return shard, nil
}

func (r *Repository) GetTrustScore(ctx context.Context, participant string) (entities.TrustScore, bool, error) {
	var row trustScoreModel
	err := r.db.WithContext(ctx).
		Where("participant = ?", participant).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TrustScore{}, false, nil
		}
		return entities.TrustScore{}, false, r.translate("tracking_repo_get_trust_score_failed", err, "participant", participant)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) Nonces(ctx context.Context) (entities.Nonces, error) {
	nonces := entities.Nonces{}
	var rows []nonceModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return entities.Nonces{}, r.translate("tracking_repo_get_nonces_failed", err)
	}
	for _, row := range rows {
		switch row.Name {
		case nonceShipment:
			nonces.ShipmentNonce = row.Value
		case nonceShard:
			nonces.ShardNonce = row.Value
		}
	}
	return nonces, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", sharedoutbox.StatusPending).
		Order("created_at_height ASC, id ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.translate("tracking_repo_list_outbox_failed", err)
	}

	pending := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		pending = append(pending, ports.OutboxMessage{
			OutboxID:        row.ID,
			EventType:       row.EventType,
			Payload:         row.Payload,
			CreatedAtHeight: row.CreatedAtHeight,
		})
	}
	return pending, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAtHeight uint64) error {
	update := r.db.WithContext(ctx).Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":              sharedoutbox.StatusPublished,
			"published_at_height": publishedAtHeight,
		})
	if update.Error != nil {
		return r.translate("tracking_repo_mark_outbox_failed", update.Error, "outbox_id", outboxID)
	}
	if update.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func nextNonce(tx *gorm.DB, name string) (uint64, error) {
	var row nonceModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = nonceModel{Name: name, Value: 0}
		if err := tx.Create(&row).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	row.Value++
	if err := tx.Model(&nonceModel{}).
		Where("name = ?", name).
		Update("value", row.Value).
		Error; err != nil {
		return 0, err
	}
	return row.Value, nil
}

func nextCheckpointID(tx *gorm.DB, shardID uint64) (uint64, error) {
	var row checkpointCounterModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("shard_id = ?", shardID).
		First(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = checkpointCounterModel{ShardID: shardID, Count: 0}
		if err := tx.Create(&row).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	row.Count++
	if err := tx.Model(&checkpointCounterModel{}).
		Where("shard_id = ?", shardID).
		Update("count", row.Count).
		Error; err != nil {
		return 0, err
	}
	return row.Count, nil
}

func applyTrustOutcome(tx *gorm.DB, outcome ports.TrustOutcome, height uint64) error {
	var row trustScoreModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("participant = ?", outcome.Participant).
		First(&row).
		Error

	record := services.DefaultRecord(outcome.Participant)
	exists := true
	if errors.Is(err, gorm.ErrRecordNotFound) {
		exists = false
	} else if err != nil {
		return err
	} else {
		record = row.toEntity()
	}

	record = services.ApplyOutcome(record, outcome.Successful, height)
	next := trustScoreModelFromEntity(record)
	if exists {
		return tx.Model(&trustScoreModel{}).
			Where("participant = ?", outcome.Participant).
			Updates(map[string]any{
				"score":               next.Score,
				"completed_shipments": next.CompletedShipments,
				"delayed_shipments":   next.DelayedShipments,
				"last_updated_height": next.LastUpdatedHeight,
			}).Error
	}
	return tx.Create(&next).Error
}

func appendOutbox(
	tx *gorm.DB,
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
	return tx.Create(&outboxModel{
		ID:              outboxID,
		EventType:       eventType,
		Payload:         payload,
		Status:          sharedoutbox.StatusPending,
		CreatedAtHeight: height,
	}).Error
}

func (r *Repository) translate(event string, err error, args ...any) error {
	if errors.Is(err, domainerrors.ErrNotFound) ||
		errors.Is(err, domainerrors.ErrUnauthorized) ||
		errors.Is(err, domainerrors.ErrInvalidStatus) ||
		errors.Is(err, domainerrors.ErrAlreadyExists) ||
		errors.Is(err, domainerrors.ErrInvalidInput) {
		return err
	}
	fields := append([]any{
		"event", event,
		"module", "supply-chain/tracking-engine",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("tracking repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var (
	_ ports.Repository       = (*Repository)(nil)
	_ ports.OutboxRepository = (*Repository)(nil)
)
