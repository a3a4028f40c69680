package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateShipmentRequiresCallerHeader(t *testing.T) {
	server := newTestServer()
	body := strings.NewReader(`{"origin":"Shanghai Port","destination":"Los Angeles Port","estimated_delivery":1000}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", body)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateShipmentRejectsInvalidJSON(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", strings.NewReader("{not json"))
	req.Header.Set("X-Caller-Id", "shipper-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateShipmentReturnsCreated(t *testing.T) {
	server := newTestServer()
	body := strings.NewReader(`{"origin":"Shanghai Port","destination":"Los Angeles Port","estimated_delivery":1000}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", body)
	req.Header.Set("X-Caller-Id", "shipper-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["owner"] != "shipper-1" {
		t.Fatalf("expected caller as owner, got %v", payload["owner"])
	}
	if payload["shipment_id"] != float64(1) {
		t.Fatalf("expected shipment_id 1, got %v", payload["shipment_id"])
	}
}

func TestGetShipmentUnknownReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments/42", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetShipmentRejectsNonNumericID(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments/not-a-number", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRecordTransitRejectsUnauthorizedValidator(t *testing.T) {
	server := newTestServer()

	create := httptest.NewRequest(http.MethodPost, "/v1/shipments",
		strings.NewReader(`{"origin":"Shanghai Port","destination":"Los Angeles Port","estimated_delivery":1000}`))
	create.Header.Set("X-Caller-Id", "shipper-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create shipment failed: %d body=%s", rr.Code, rr.Body.String())
	}

	addShard := httptest.NewRequest(http.MethodPost, "/v1/shipments/1/shards",
		strings.NewReader(`{"item_description":"iPhone 15 Pro x50","initial_location":"Shanghai Port"}`))
	addShard.Header.Set("X-Caller-Id", "shipper-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, addShard)
	if rr.Code != http.StatusCreated {
		t.Fatalf("add shard failed: %d body=%s", rr.Code, rr.Body.String())
	}

	transit := httptest.NewRequest(http.MethodPost, "/v1/shards/1/transit",
		strings.NewReader(`{"location":"Pacific Ocean","temperature":22,"humidity":65}`))
	transit.Header.Set("X-Caller-Id", "rogue-validator")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, transit)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestInvalidStatusCodeReturnsUnprocessable(t *testing.T) {
	server := newTestServer()

	create := httptest.NewRequest(http.MethodPost, "/v1/shipments",
		strings.NewReader(`{"origin":"Shanghai Port","destination":"Los Angeles Port","estimated_delivery":1000}`))
	create.Header.Set("X-Caller-Id", "shipper-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create shipment failed: %d body=%s", rr.Code, rr.Body.String())
	}

	status := httptest.NewRequest(http.MethodPost, "/v1/shipments/1/status", strings.NewReader(`{"new_status":9}`))
	status.Header.Set("X-Caller-Id", "shipper-1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, status)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestTrustScoreForUnknownParticipantReturnsDefault(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/trust-scores/never-seen", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["score"] != float64(500) {
		t.Fatalf("expected default score 500, got %v", payload["score"])
	}
}

func TestLedgerAdvanceMovesHeight(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/ledger/advance", strings.NewReader(`{"blocks":5}`))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["height"] != float64(6) {
		t.Fatalf("expected height 6, got %v", payload["height"])
	}
}

func TestLedgerAdvanceRejectsZeroBlocks(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/ledger/advance", strings.NewReader(`{"blocks":0}`))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
