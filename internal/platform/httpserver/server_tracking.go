package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	trackingerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	trackinghttp "chainfreight/contexts/supply-chain/tracking-engine/transport/http"
)

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeTrackingError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}

	var req trackinghttp.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.CreateShipmentHandler(r.Context(), caller, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID, ok := parseID(w, r.PathValue("shipment_id"), "shipment_id")
	if !ok {
		return
	}
	resp, err := s.tracking.Handler.GetShipmentHandler(r.Context(), shipmentID)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddShard(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeTrackingError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	shipmentID, ok := parseID(w, r.PathValue("shipment_id"), "shipment_id")
	if !ok {
		return
	}

	var req trackinghttp.AddShardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.AddShardHandler(r.Context(), caller, shipmentID, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeTrackingError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	shipmentID, ok := parseID(w, r.PathValue("shipment_id"), "shipment_id")
	if !ok {
		return
	}

	var req trackinghttp.UpdateShipmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.UpdateStatusHandler(r.Context(), caller, shipmentID, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetShard(w http.ResponseWriter, r *http.Request) {
	shardID, ok := parseID(w, r.PathValue("shard_id"), "shard_id")
	if !ok {
		return
	}
	resp, err := s.tracking.Handler.GetShardHandler(r.Context(), shardID)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordTransit(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeTrackingError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	shardID, ok := parseID(w, r.PathValue("shard_id"), "shard_id")
	if !ok {
		return
	}

	var req trackinghttp.RecordTransitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.RecordTransitHandler(r.Context(), caller, shardID, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetCheckpoint(w http.ResponseWriter, r *http.Request) {
	shardID, ok := parseID(w, r.PathValue("shard_id"), "shard_id")
	if !ok {
		return
	}
	checkpointID, ok := parseID(w, r.PathValue("checkpoint_id"), "checkpoint_id")
	if !ok {
		return
	}
	resp, err := s.tracking.Handler.GetCheckpointHandler(r.Context(), shardID, checkpointID)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateShardCompliance(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeTrackingError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	shardID, ok := parseID(w, r.PathValue("shard_id"), "shard_id")
	if !ok {
		return
	}

	var req trackinghttp.UpdateShardComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.UpdateComplianceHandler(r.Context(), caller, shardID, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTrustScore(w http.ResponseWriter, r *http.Request) {
	participant := r.PathValue("participant_id")
	resp, err := s.tracking.Handler.GetTrustScoreHandler(r.Context(), participant)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetNonces(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tracking.Handler.GetNoncesHandler(r.Context())
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseID(w http.ResponseWriter, raw string, field string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_"+field, field+" must be an unsigned integer")
		return 0, false
	}
	return id, true
}

func writeTrackingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trackingerrors.ErrNotFound):
		writeTrackingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, trackingerrors.ErrUnauthorized):
		writeTrackingError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, trackingerrors.ErrInvalidStatus):
		writeTrackingError(w, http.StatusUnprocessableEntity, "invalid_status", err.Error())
	case errors.Is(err, trackingerrors.ErrAlreadyExists):
		writeTrackingError(w, http.StatusConflict, "already_exists", err.Error())
	case errors.Is(err, trackingerrors.ErrInvalidInput):
		writeTrackingError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeTrackingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTrackingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, trackinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
