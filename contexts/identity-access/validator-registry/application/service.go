package application

import (
	"context"
	"log/slog"
	"strings"

	"chainfreight/contexts/identity-access/validator-registry/domain/entities"
	domainerrors "chainfreight/contexts/identity-access/validator-registry/domain/errors"
	"chainfreight/contexts/identity-access/validator-registry/ports"
)

const maxValidatorIDLen = 100

// Service owns validator authorization decisions. Owner is captured at
// construction and is the only identity allowed to mutate the registry.
type Service struct {
	Registry ports.Registry
	Clock    ports.LedgerClock
	Owner    string
	Logger   *slog.Logger
}

func (s Service) Authorize(ctx context.Context, caller, validator string) (entities.Authorization, error) {
	return s.setAuthorization(ctx, caller, validator, true)
}

func (s Service) Revoke(ctx context.Context, caller, validator string) (entities.Authorization, error) {
	return s.setAuthorization(ctx, caller, validator, false)
}

func (s Service) setAuthorization(ctx context.Context, caller, validator string, authorized bool) (entities.Authorization, error) {
	logger := ResolveLogger(s.Logger)

	validator = strings.TrimSpace(validator)
	if validator == "" || len(validator) > maxValidatorIDLen {
		return entities.Authorization{}, domainerrors.ErrInvalidValidator
	}
	if caller != s.Owner {
		logger.Warn("validator mutation rejected",
			"event", "registry_mutation_rejected",
			"module", "identity-access/validator-registry",
			"layer", "application",
			"caller", caller,
			"validator", validator,
		)
		return entities.Authorization{}, domainerrors.ErrOwnerOnly
	}

	entry := entities.Authorization{
		Validator:       validator,
		Authorized:      authorized,
		UpdatedAtHeight: s.Clock.Height(),
		UpdatedBy:       caller,
	}
	if err := s.Registry.SetAuthorization(ctx, entry); err != nil {
		return entities.Authorization{}, err
	}

	logger.Info("validator authorization updated",
		"event", "registry_authorization_updated",
		"module", "identity-access/validator-registry",
		"layer", "application",
		"validator", validator,
		"authorized", authorized,
		"height", entry.UpdatedAtHeight,
	)
	return entry, nil
}

// IsAuthorized reports whether the validator currently holds authorization.
// Unknown validators are simply unauthorized, not an error.
func (s Service) IsAuthorized(ctx context.Context, validator string) (bool, error) {
	validator = strings.TrimSpace(validator)
	if validator == "" {
		return false, nil
	}
	entry, ok, err := s.Registry.GetAuthorization(ctx, validator)
	if err != nil {
		return false, err
	}
	return ok && entry.Authorized, nil
}

// GetAuthorization returns the raw registry entry for a validator.
func (s Service) GetAuthorization(ctx context.Context, validator string) (entities.Authorization, bool, error) {
	validator = strings.TrimSpace(validator)
	if validator == "" {
		return entities.Authorization{}, false, domainerrors.ErrInvalidValidator
	}
	return s.Registry.GetAuthorization(ctx, validator)
}
