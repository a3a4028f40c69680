package entities

// Checkpoint is one immutable transit observation. Identity is the composite
// (ShardID, CheckpointID); CheckpointID is a per-shard gapless sequence
// starting at 1. Once written a checkpoint is never mutated.
type Checkpoint struct {
	ShardID          uint64
	CheckpointID     uint64
	Location         string
	RecordedAtHeight uint64
	Validator        string
	SensorData       string
	Verified         bool
}
