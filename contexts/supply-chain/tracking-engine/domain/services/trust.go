package services

import "chainfreight/contexts/supply-chain/tracking-engine/domain/entities"

const (
	// DefaultTrustScore applies while a participant has no recorded outcomes.
	DefaultTrustScore uint32 = 500
	// MaxTrustScore is the score ceiling on the 0-1000 scale.
	MaxTrustScore uint32 = 1000
)

// DefaultRecord is the implied record for a participant with no history.
func DefaultRecord(participant string) entities.TrustScore {
	return entities.TrustScore{
		Participant: participant,
		Score:       DefaultTrustScore,
	}
}

// ApplyOutcome folds one terminal shipment outcome into a participant record.
// Invariant: score = floor(completed * 1000 / (completed + delayed)) while the
// denominator is positive, else the default. Counts never decrease.
func ApplyOutcome(record entities.TrustScore, successful bool, height uint64) entities.TrustScore {
	if successful {
		record.CompletedShipments++
	} else {
		record.DelayedShipments++
	}

	total := record.CompletedShipments + record.DelayedShipments
	if total > 0 {
		record.Score = uint32(record.CompletedShipments * uint64(MaxTrustScore) / total)
	} else {
		record.Score = DefaultTrustScore
	}
	record.LastUpdatedHeight = height
	return record
}
