package httpadapter

import (
	"context"
	"log/slog"

	"chainfreight/contexts/identity-access/validator-registry/application"
	httptransport "chainfreight/contexts/identity-access/validator-registry/transport/http"
)

// Handler maps HTTP DTOs onto the registry service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AuthorizeHandler(ctx context.Context, caller, validator string) (httptransport.AuthorizationResponse, error) {
	entry, err := h.Service.Authorize(ctx, caller, validator)
	if err != nil {
		return httptransport.AuthorizationResponse{}, err
	}
	return httptransport.AuthorizationResponse{
		Validator:       entry.Validator,
		Authorized:      entry.Authorized,
		UpdatedAtHeight: entry.UpdatedAtHeight,
		UpdatedBy:       entry.UpdatedBy,
	}, nil
}

func (h Handler) RevokeHandler(ctx context.Context, caller, validator string) (httptransport.AuthorizationResponse, error) {
	entry, err := h.Service.Revoke(ctx, caller, validator)
	if err != nil {
		return httptransport.AuthorizationResponse{}, err
	}
	return httptransport.AuthorizationResponse{
		Validator:       entry.Validator,
		Authorized:      entry.Authorized,
		UpdatedAtHeight: entry.UpdatedAtHeight,
		UpdatedBy:       entry.UpdatedBy,
	}, nil
}

func (h Handler) IsAuthorizedHandler(ctx context.Context, validator string) (httptransport.IsAuthorizedResponse, error) {
	authorized, err := h.Service.IsAuthorized(ctx, validator)
	if err != nil {
		return httptransport.IsAuthorizedResponse{}, err
	}
	return httptransport.IsAuthorizedResponse{
		Validator:  validator,
		Authorized: authorized,
	}, nil
}
