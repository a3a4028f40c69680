package entities

// Shard is an individually tracked sub-unit of a shipment. ShipmentID is an
// immutable back-reference, not ownership. Location/environment fields always
// reflect the shard's most recent checkpoint.
type Shard struct {
	ShardID            uint64
	ShipmentID         uint64
	ItemDescription    string
	CurrentLocation    string
	Temperature        int32
	Humidity           uint32
	LastVerifiedHeight uint64
	VerifiedBy         string
	IsCompliant        bool
}

// Initial sensor values assigned at shard creation.
const (
	InitialTemperature int32  = 0
	InitialHumidity    uint32 = 50
)
