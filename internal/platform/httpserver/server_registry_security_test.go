package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthorizeValidatorRequiresCallerHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/validators/validator-1/authorize", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuthorizeValidatorRejectsNonOwner(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/validators/validator-1/authorize", nil)
	req.Header.Set("X-Caller-Id", "shipper-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestOwnerAuthorizesThenRevokesValidator(t *testing.T) {
	server := newTestServer()

	authorize := httptest.NewRequest(http.MethodPost, "/v1/validators/validator-1/authorize", nil)
	authorize.Header.Set("X-Caller-Id", testOwner)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, authorize)
	if rr.Code != http.StatusOK {
		t.Fatalf("authorize failed: %d body=%s", rr.Code, rr.Body.String())
	}

	check := httptest.NewRequest(http.MethodGet, "/v1/validators/validator-1", nil)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, check)
	if rr.Code != http.StatusOK {
		t.Fatalf("check failed: %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["authorized"] != true {
		t.Fatalf("expected authorized true, got %v", payload["authorized"])
	}

	revoke := httptest.NewRequest(http.MethodPost, "/v1/validators/validator-1/revoke", nil)
	revoke.Header.Set("X-Caller-Id", testOwner)
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, revoke)
	if rr.Code != http.StatusOK {
		t.Fatalf("revoke failed: %d body=%s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/validators/validator-1", nil))
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["authorized"] != false {
		t.Fatalf("expected authorized false after revoke, got %v", payload["authorized"])
	}
}

func TestUnknownValidatorCheckReturnsUnauthorized(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/validators/never-registered", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["authorized"] != false {
		t.Fatalf("expected authorized false, got %v", payload["authorized"])
	}
}
