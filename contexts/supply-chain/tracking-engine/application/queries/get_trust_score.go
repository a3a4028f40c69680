package queries

import (
	"context"
	"log/slog"
	"strings"

	"chainfreight/contexts/supply-chain/tracking-engine/domain/entities"
	domainerrors "chainfreight/contexts/supply-chain/tracking-engine/domain/errors"
	"chainfreight/contexts/supply-chain/tracking-engine/domain/services"
	"chainfreight/contexts/supply-chain/tracking-engine/ports"
)

// GetTrustScoreUseCase reads a participant's trust record. A participant with
// no terminal transitions yet gets the implied default record (score 500,
// zero counts) rather than a not-found error.
type GetTrustScoreUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetTrustScoreUseCase) Execute(ctx context.Context, participant string) (entities.TrustScore, error) {
	participant = strings.TrimSpace(participant)
	if participant == "" {
		return entities.TrustScore{}, domainerrors.ErrInvalidInput
	}

	record, found, err := u.Repository.GetTrustScore(ctx, participant)
	if err != nil {
		return entities.TrustScore{}, err
	}
	if !found {
		return services.DefaultRecord(participant), nil
	}
	return record, nil
}
