package errors

import "errors"

var (
	// ErrOwnerOnly is returned when a caller other than the ledger owner
	// attempts to change validator authorization.
	ErrOwnerOnly = errors.New("only the ledger owner may manage validators")

	// ErrInvalidValidator is returned for empty or oversized validator ids.
	ErrInvalidValidator = errors.New("invalid validator id")
)
