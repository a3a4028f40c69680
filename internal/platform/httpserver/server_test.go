package httpserver

import (
	"context"

	validatorregistry "chainfreight/contexts/identity-access/validator-registry"
	trackingengine "chainfreight/contexts/supply-chain/tracking-engine"
	"chainfreight/internal/platform/ledger"
)

const testOwner = "ledger-owner"

func newTestServer() *Server {
	clock := ledger.NewClock(1)
	registry := validatorregistry.NewInMemoryModule(testOwner, clock, nil)
	if _, err := registry.Service.Authorize(context.Background(), testOwner, testOwner); err != nil {
		panic(err)
	}
	tracking := trackingengine.NewInMemoryModule(registry.Service, clock, nil)
	return New(tracking, registry, clock, nil, ":0")
}
