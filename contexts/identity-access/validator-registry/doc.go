// Package validatorregistry implements the validator authorization registry
// inside the identity-access context.
//
// The module keeps the set of participants allowed to act as checkpoint
// validators. Only the configured ledger owner may grant or revoke
// authorization; other modules consume the registry through a read-only
// authority port.
package validatorregistry
