package trackingengine

import (
	"log/slog"

	httpadapter "chainfreight/contexts/supply-chain/tracking-engine/adapters/http"
	"chainfreight/contexts/supply-chain/tracking-engine/adapters/memory"
	"chainfreight/contexts/supply-chain/tracking-engine/application/commands"
	"chainfreight/contexts/supply-chain/tracking-engine/application/queries"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Authority   ports.ValidatorAuthority
	Clock       ports.LedgerClock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateShipment: commands.CreateShipmentUseCase{
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			AddShard: commands.AddShardUseCase{
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			RecordTransit: commands.RecordTransitUseCase{
				Repository:  deps.Repository,
				Authority:   deps.Authority,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateStatus: commands.UpdateShipmentStatusUseCase{
				Repository:  deps.Repository,
				Authority:   deps.Authority,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateCompliance: commands.UpdateShardComplianceUseCase{
				Repository:  deps.Repository,
				Authority:   deps.Authority,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			GetShipment:   queries.GetShipmentUseCase{Repository: deps.Repository, Logger: deps.Logger},
			GetShard:      queries.GetShardUseCase{Repository: deps.Repository, Logger: deps.Logger},
			GetCheckpoint: queries.GetCheckpointUseCase{Repository: deps.Repository, Logger: deps.Logger},
			GetTrustScore: queries.GetTrustScoreUseCase{Repository: deps.Repository, Logger: deps.Logger},
			GetNonces:     queries.GetNoncesUseCase{Repository: deps.Repository, Logger: deps.Logger},
			Logger:        deps.Logger,
		},
	}
}

func NewInMemoryModule(authority ports.ValidatorAuthority, clock ports.LedgerClock, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Authority:   authority,
		Clock:       clock,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
