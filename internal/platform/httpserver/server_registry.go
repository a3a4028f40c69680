package httpserver

import (
	"errors"
	"net/http"

	registryerrors "chainfreight/contexts/identity-access/validator-registry/domain/errors"
	registryhttp "chainfreight/contexts/identity-access/validator-registry/transport/http"
)

func (s *Server) handleAuthorizeValidator(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	validator := r.PathValue("validator_id")

	resp, err := s.registry.Handler.AuthorizeHandler(r.Context(), caller, validator)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeValidator(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get("X-Caller-Id")
	if caller == "" {
		writeRegistryError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return
	}
	validator := r.PathValue("validator_id")

	resp, err := s.registry.Handler.RevokeHandler(r.Context(), caller, validator)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIsValidatorAuthorized(w http.ResponseWriter, r *http.Request) {
	validator := r.PathValue("validator_id")
	resp, err := s.registry.Handler.IsAuthorizedHandler(r.Context(), validator)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrOwnerOnly):
		writeRegistryError(w, http.StatusForbidden, "owner_only", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidValidator):
		writeRegistryError(w, http.StatusBadRequest, "invalid_validator", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
