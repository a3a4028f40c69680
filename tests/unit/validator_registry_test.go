package unit

import (
	"context"
	"errors"
	"testing"

	validatorregistry "chainfreight/contexts/identity-access/validator-registry"
	registryerrors "chainfreight/contexts/identity-access/validator-registry/domain/errors"
	"chainfreight/internal/platform/ledger"
)

func newRegistryFixture() validatorregistry.Module {
	clock := ledger.NewClock(1)
	return validatorregistry.NewInMemoryModule(testOwner, clock, nil)
}

func TestOwnerCanAuthorizeAndRevoke(t *testing.T) {
	registry := newRegistryFixture()
	ctx := context.Background()

	entry, err := registry.Service.Authorize(ctx, testOwner, "validator-1")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if !entry.Authorized || entry.UpdatedBy != testOwner {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	authorized, err := registry.Service.IsAuthorized(ctx, "validator-1")
	if err != nil || !authorized {
		t.Fatalf("expected validator-1 authorized, got %v err=%v", authorized, err)
	}

	if _, err := registry.Service.Revoke(ctx, testOwner, "validator-1"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	authorized, err = registry.Service.IsAuthorized(ctx, "validator-1")
	if err != nil || authorized {
		t.Fatalf("expected validator-1 revoked, got %v err=%v", authorized, err)
	}
}

func TestNonOwnerCannotMutateRegistry(t *testing.T) {
	registry := newRegistryFixture()
	ctx := context.Background()

	_, err := registry.Service.Authorize(ctx, "validator-1", "validator-2")
	if !errors.Is(err, registryerrors.ErrOwnerOnly) {
		t.Fatalf("expected owner-only error on authorize, got %v", err)
	}
	_, err = registry.Service.Revoke(ctx, "validator-1", "validator-2")
	if !errors.Is(err, registryerrors.ErrOwnerOnly) {
		t.Fatalf("expected owner-only error on revoke, got %v", err)
	}
}

func TestUnknownValidatorIsUnauthorized(t *testing.T) {
	registry := newRegistryFixture()

	authorized, err := registry.Service.IsAuthorized(context.Background(), "never-registered")
	if err != nil {
		t.Fatalf("is authorized failed: %v", err)
	}
	if authorized {
		t.Fatalf("expected unknown validator to be unauthorized")
	}
}

func TestAuthorizeRejectsEmptyValidator(t *testing.T) {
	registry := newRegistryFixture()

	_, err := registry.Service.Authorize(context.Background(), testOwner, "   ")
	if !errors.Is(err, registryerrors.ErrInvalidValidator) {
		t.Fatalf("expected invalid validator, got %v", err)
	}
}

func TestRevokeUnknownValidatorIsIdempotent(t *testing.T) {
	registry := newRegistryFixture()

	entry, err := registry.Service.Revoke(context.Background(), testOwner, "validator-9")
	if err != nil {
		t.Fatalf("revoke of unknown validator failed: %v", err)
	}
	if entry.Authorized {
		t.Fatalf("expected revoked entry, got %+v", entry)
	}
}
