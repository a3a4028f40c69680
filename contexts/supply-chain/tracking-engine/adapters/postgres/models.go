package postgresadapter

import "chainfreight/contexts/supply-chain/tracking-engine/domain/entities"

type shipmentModel struct {
	ID                uint64 `gorm:"column:id;primaryKey"`
	Owner             string `gorm:"column:owner"`
	Origin            string `gorm:"column:origin"`
	Destination       string `gorm:"column:destination"`
	Status            int16  `gorm:"column:status"`
	CreatedAtHeight   uint64 `gorm:"column:created_at_height"`
	UpdatedAtHeight   uint64 `gorm:"column:updated_at_height"`
	EstimatedDelivery uint64 `gorm:"column:estimated_delivery"`
	TotalShards       uint32 `gorm:"column:total_shards"`
	TrustScore        uint32 `gorm:"column:trust_score"`
}

func (shipmentModel) TableName() string {
	return "shipments"
}

func (m shipmentModel) toEntity() entities.Shipment {
	return entities.Shipment{
		ShipmentID:        m.ID,
		Owner:             m.Owner,
		Origin:            m.Origin,
		Destination:       m.Destination,
		Status:            entities.Status(m.Status),
		CreatedAtHeight:   m.CreatedAtHeight,
		UpdatedAtHeight:   m.UpdatedAtHeight,
		EstimatedDelivery: m.EstimatedDelivery,
		TotalShards:       m.TotalShards,
		TrustScore:        m.TrustScore,
	}
}

type shardModel struct {
	ID                 uint64 `gorm:"column:id;primaryKey"`
	ShipmentID         uint64 `gorm:"column:shipment_id"`
	ItemDescription    string `gorm:"column:item_description"`
	CurrentLocation    string `gorm:"column:current_location"`
	Temperature        int32  `gorm:"column:temperature"`
	Humidity           uint32 `gorm:"column:humidity"`
	LastVerifiedHeight uint64 `gorm:"column:last_verified_height"`
	VerifiedBy         string `gorm:"column:verified_by"`
	IsCompliant        bool   `gorm:"column:is_compliant"`
}

func (shardModel) TableName() string {
	return "shards"
}

func (m shardModel) toEntity() entities.Shard {
	return entities.Shard{
		ShardID:            m.ID,
		ShipmentID:         m.ShipmentID,
		ItemDescription:    m.ItemDescription,
		CurrentLocation:    m.CurrentLocation,
		Temperature:        m.Temperature,
		Humidity:           m.Humidity,
		LastVerifiedHeight: m.LastVerifiedHeight,
		VerifiedBy:         m.VerifiedBy,
		IsCompliant:        m.IsCompliant,
	}
}

type checkpointModel struct {
	ShardID          uint64 `gorm:"column:shard_id;primaryKey"`
	CheckpointID     uint64 `gorm:"column:checkpoint_id;primaryKey"`
	Location         string `gorm:"column:location"`
	RecordedAtHeight uint64 `gorm:"column:recorded_at_height"`
	Validator        string `gorm:"column:validator"`
	SensorData       string `gorm:"column:sensor_data"`
	Verified         bool   `gorm:"column:verified"`
}

func (checkpointModel) TableName() string {
	return "transit_records"
}

func (m checkpointModel) toEntity() entities.Checkpoint {
	return entities.Checkpoint{
		ShardID:          m.ShardID,
		CheckpointID:     m.CheckpointID,
		Location:         m.Location,
		RecordedAtHeight: m.RecordedAtHeight,
		Validator:        m.Validator,
		SensorData:       m.SensorData,
		Verified:         m.Verified,
	}
}

type trustScoreModel struct {
	Participant        string `gorm:"column:participant;primaryKey"`
	Score              uint32 `gorm:"column:score"`
	CompletedShipments uint64 `gorm:"column:completed_shipments"`
	DelayedShipments   uint64 `gorm:"column:delayed_shipments"`
	LastUpdatedHeight  uint64 `gorm:"column:last_updated_height"`
}

func (trustScoreModel) TableName() string {
	return "trust_scores"
}

func (m trustScoreModel) toEntity() entities.TrustScore {
	return entities.TrustScore{
		Participant:        m.Participant,
		Score:              m.Score,
		CompletedShipments: m.CompletedShipments,
		DelayedShipments:   m.DelayedShipments,
		LastUpdatedHeight:  m.LastUpdatedHeight,
	}
}

func trustScoreModelFromEntity(record entities.TrustScore) trustScoreModel {
	return trustScoreModel{
		Participant:        record.Participant,
		Score:              record.Score,
		CompletedShipments: record.CompletedShipments,
		DelayedShipments:   record.DelayedShipments,
		LastUpdatedHeight:  record.LastUpdatedHeight,
	}
}

type checkpointCounterModel struct {
	ShardID uint64 `gorm:"column:shard_id;primaryKey"`
	Count   uint64 `gorm:"column:count"`
}

func (checkpointCounterModel) TableName() string {
	return "shard_checkpoint_counters"
}

type nonceModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value uint64 `gorm:"column:value"`
}

func (nonceModel) TableName() string {
	return "ledger_nonces"
}

type outboxModel struct {
	ID                string  `gorm:"column:id;primaryKey"`
	EventType         string  `gorm:"column:event_type"`
	Payload           []byte  `gorm:"column:payload"`
	Status            string  `gorm:"column:status"`
	RetryCount        int     `gorm:"column:retry_count"`
	CreatedAtHeight   uint64  `gorm:"column:created_at_height"`
	PublishedAtHeight *uint64 `gorm:"column:published_at_height"`
}

func (outboxModel) TableName() string {
	return "tracking_outbox"
}
