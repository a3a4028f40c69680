package services

import "testing"

func TestDefaultRecordStartsNeutral(t *testing.T) {
	record := DefaultRecord("shipper-1")
	if record.Score != DefaultTrustScore {
		t.Fatalf("expected default score %d, got %d", DefaultTrustScore, record.Score)
	}
	if record.CompletedShipments != 0 || record.DelayedShipments != 0 {
		t.Fatalf("expected zero counters, got %+v", record)
	}
}

func TestApplyOutcomeSingleSuccess(t *testing.T) {
	record := ApplyOutcome(DefaultRecord("shipper-1"), true, 10)
	if record.CompletedShipments != 1 || record.DelayedShipments != 0 {
		t.Fatalf("unexpected counters: %+v", record)
	}
	if record.Score != MaxTrustScore {
		t.Fatalf("expected score %d after one success, got %d", MaxTrustScore, record.Score)
	}
	if record.LastUpdatedHeight != 10 {
		t.Fatalf("expected height 10, got %d", record.LastUpdatedHeight)
	}
}

func TestApplyOutcomeSingleFailure(t *testing.T) {
	record := ApplyOutcome(DefaultRecord("shipper-1"), false, 7)
	if record.CompletedShipments != 0 || record.DelayedShipments != 1 {
		t.Fatalf("unexpected counters: %+v", record)
	}
	if record.Score != 0 {
		t.Fatalf("expected score 0 after one delay, got %d", record.Score)
	}
}

func TestApplyOutcomeRatioFloors(t *testing.T) {
	record := DefaultRecord("shipper-1")
	record = ApplyOutcome(record, true, 1)
	record = ApplyOutcome(record, true, 2)
	record = ApplyOutcome(record, false, 3)

	// 2 completed out of 3 total: floor(2000/3) = 666.
	if record.Score != 666 {
		t.Fatalf("expected floored score 666, got %d", record.Score)
	}
}
