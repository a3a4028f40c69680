package entities

// TrustScore is the participant-level reputation record. Counts only grow;
// Score is derived from them (see domain/services).
type TrustScore struct {
	Participant        string
	Score              uint32
	CompletedShipments uint64
	DelayedShipments   uint64
	LastUpdatedHeight  uint64
}

// Nonces exposes the engine's allocation counters for inspection.
type Nonces struct {
	ShipmentNonce uint64
	ShardNonce    uint64
}
