package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	validatorregistry "chainfreight/contexts/identity-access/validator-registry"
	trackingengine "chainfreight/contexts/supply-chain/tracking-engine"
	"chainfreight/internal/platform/ledger"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "chainfreight/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	tracking trackingengine.Module
	registry validatorregistry.Module
	clock    *ledger.Clock
}

func New(
	tracking trackingengine.Module,
	registry validatorregistry.Module,
	clock *ledger.Clock,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		tracking: tracking,
		registry: registry,
		clock:    clock,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/shipments", s.handleCreateShipment)
	s.mux.HandleFunc("GET /v1/shipments/{shipment_id}", s.handleGetShipment)
	s.mux.HandleFunc("POST /v1/shipments/{shipment_id}/shards", s.handleAddShard)
	s.mux.HandleFunc("POST /v1/shipments/{shipment_id}/status", s.handleUpdateShipmentStatus)
	s.mux.HandleFunc("GET /v1/shards/{shard_id}", s.handleGetShard)
	s.mux.HandleFunc("POST /v1/shards/{shard_id}/transit", s.handleRecordTransit)
	s.mux.HandleFunc("GET /v1/shards/{shard_id}/transit/{checkpoint_id}", s.handleGetCheckpoint)
	s.mux.HandleFunc("POST /v1/shards/{shard_id}/compliance", s.handleUpdateShardCompliance)
	s.mux.HandleFunc("GET /v1/trust-scores/{participant_id}", s.handleGetTrustScore)
	s.mux.HandleFunc("GET /v1/nonces", s.handleGetNonces)

	s.mux.HandleFunc("POST /v1/validators/{validator_id}/authorize", s.handleAuthorizeValidator)
	s.mux.HandleFunc("POST /v1/validators/{validator_id}/revoke", s.handleRevokeValidator)
	s.mux.HandleFunc("GET /v1/validators/{validator_id}", s.handleIsValidatorAuthorized)

	s.mux.HandleFunc("POST /v1/ledger/advance", s.handleAdvanceLedger)
	s.mux.HandleFunc("GET /v1/ledger/height", s.handleLedgerHeight)
}

type advanceLedgerRequest struct {
	Blocks uint64 `json:"blocks"`
}

type ledgerHeightResponse struct {
	Height uint64 `json:"height"`
}

func (s *Server) handleAdvanceLedger(w http.ResponseWriter, r *http.Request) {
	req := advanceLedgerRequest{Blocks: 1}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}
	if req.Blocks == 0 {
		writeTrackingError(w, http.StatusBadRequest, "invalid_blocks", "blocks must be at least 1")
		return
	}
	writeJSON(w, http.StatusOK, ledgerHeightResponse{Height: s.clock.Advance(req.Blocks)})
}

func (s *Server) handleLedgerHeight(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ledgerHeightResponse{Height: s.clock.Height()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
