package validatorregistry

import (
	"log/slog"

	httpadapter "chainfreight/contexts/identity-access/validator-registry/adapters/http"
	"chainfreight/contexts/identity-access/validator-registry/adapters/memory"
	"chainfreight/contexts/identity-access/validator-registry/application"
	"chainfreight/contexts/identity-access/validator-registry/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Registry ports.Registry
	Clock    ports.LedgerClock
	Owner    string
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Registry: deps.Registry,
		Clock:    deps.Clock,
		Owner:    deps.Owner,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(owner string, clock ports.LedgerClock, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Registry: store,
		Clock:    clock,
		Owner:    owner,
		Logger:   logger,
	})
	module.Store = store
	return module
}
