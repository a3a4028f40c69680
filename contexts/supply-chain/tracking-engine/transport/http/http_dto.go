package httptransport

// CreateShipmentRequest is the request body for shipment creation.
type CreateShipmentRequest struct {
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	EstimatedDelivery uint64 `json:"estimated_delivery"`
}

// ShipmentResponse mirrors one shipment record.
type ShipmentResponse struct {
	ShipmentID        uint64 `json:"shipment_id"`
	Owner             string `json:"owner"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	StatusCode        uint8  `json:"status_code"`
	Status            string `json:"status"`
	CreatedAtHeight   uint64 `json:"created_at_height"`
	UpdatedAtHeight   uint64 `json:"updated_at_height"`
	EstimatedDelivery uint64 `json:"estimated_delivery"`
	TotalShards       uint32 `json:"total_shards"`
	TrustScore        uint32 `json:"trust_score"`
}

// AddShardRequest is the request body for registering a sub-unit.
type AddShardRequest struct {
	ItemDescription string `json:"item_description"`
	InitialLocation string `json:"initial_location"`
}

type ShardResponse struct {
	ShardID            uint64 `json:"shard_id"`
	ShipmentID         uint64 `json:"shipment_id"`
	ItemDescription    string `json:"item_description"`
	CurrentLocation    string `json:"current_location"`
	Temperature        int32  `json:"temperature"`
	Humidity           uint32 `json:"humidity"`
	LastVerifiedHeight uint64 `json:"last_verified_height"`
	VerifiedBy         string `json:"verified_by"`
	IsCompliant        bool   `json:"is_compliant"`
}

// RecordTransitRequest is the request body for one checkpoint observation.
type RecordTransitRequest struct {
	Location    string `json:"location"`
	SensorData  string `json:"sensor_data,omitempty"`
	Temperature int32  `json:"temperature"`
	Humidity    uint32 `json:"humidity"`
}

type CheckpointResponse struct {
	ShardID          uint64 `json:"shard_id"`
	CheckpointID     uint64 `json:"checkpoint_id"`
	Location         string `json:"location"`
	RecordedAtHeight uint64 `json:"recorded_at_height"`
	Validator        string `json:"validator"`
	SensorData       string `json:"sensor_data,omitempty"`
	Verified         bool   `json:"verified"`
}

// UpdateShipmentStatusRequest carries the numeric status code (1..5).
type UpdateShipmentStatusRequest struct {
	NewStatus uint8 `json:"new_status"`
}

type UpdateShardComplianceRequest struct {
	IsCompliant bool `json:"is_compliant"`
}

type TrustScoreResponse struct {
	Participant        string `json:"participant"`
	Score              uint32 `json:"score"`
	CompletedShipments uint64 `json:"completed_shipments"`
	DelayedShipments   uint64 `json:"delayed_shipments"`
	LastUpdatedHeight  uint64 `json:"last_updated_height"`
}

type NoncesResponse struct {
	ShipmentNonce uint64 `json:"shipment_nonce"`
	ShardNonce    uint64 `json:"shard_nonce"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
