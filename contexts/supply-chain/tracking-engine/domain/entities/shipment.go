package entities

// Status is the shipment lifecycle code. The range is closed; any transition
// inside the range is legal, including repeats and backward moves.
type Status uint8

const (
	StatusCreated Status = iota + 1
	StatusInTransit
	StatusDelivered
	StatusDelayed
	StatusCancelled
)

func (s Status) Valid() bool {
	return s >= StatusCreated && s <= StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusInTransit:
		return "in_transit"
	case StatusDelivered:
		return "delivered"
	case StatusDelayed:
		return "delayed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Field bounds enforced on every write path.
const (
	MaxRouteLen       = 100
	MaxLocationLen    = 100
	MaxDescriptionLen = 200
	MaxSensorDataLen  = 500
)

// Shipment is a tracked consignment. Heights are ledger block heights.
// TrustScore is a shipment-local display value fixed at creation; the
// participant-level record lives in TrustScore (trust_score.go) and evolves
// independently.
type Shipment struct {
	ShipmentID        uint64
	Owner             string
	Origin            string
	Destination       string
	Status            Status
	CreatedAtHeight   uint64
	UpdatedAtHeight   uint64
	EstimatedDelivery uint64
	TotalShards       uint32
	TrustScore        uint32
}
