package postgresadapter

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chainfreight/contexts/identity-access/validator-registry/domain/entities"
	"chainfreight/contexts/identity-access/validator-registry/ports"
)

type authorizationModel struct {
	Validator       string `gorm:"column:validator;primaryKey"`
	Authorized      bool   `gorm:"column:authorized"`
	UpdatedAtHeight uint64 `gorm:"column:updated_at_height"`
	UpdatedBy       string `gorm:"column:updated_by"`
}

func (authorizationModel) TableName() string {
	return "authorized_validators"
}

// Repository is the gorm-backed registry adapter.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) SetAuthorization(ctx context.Context, entry entities.Authorization) error {
	model := authorizationModel{
		Validator:       entry.Validator,
		Authorized:      entry.Authorized,
		UpdatedAtHeight: entry.UpdatedAtHeight,
		UpdatedBy:       entry.UpdatedBy,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "validator"}},
			DoUpdates: clause.AssignmentColumns([]string{"authorized", "updated_at_height", "updated_by"}),
		}).
		Create(&model).Error
	if err != nil {
		r.logger.Error("registry upsert failed",
			"event", "registry_pg_upsert_failed",
			"module", "identity-access/validator-registry",
			"layer", "adapter",
			"validator", entry.Validator,
			"error", err.Error(),
		)
	}
	return err
}

func (r *Repository) GetAuthorization(ctx context.Context, validator string) (entities.Authorization, bool, error) {
	var model authorizationModel
	err := r.db.WithContext(ctx).
		Where("validator = ?", validator).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return entities.Authorization{}, false, nil
		}
		return entities.Authorization{}, false, err
	}
	return entities.Authorization{
		Validator:       model.Validator,
		Authorized:      model.Authorized,
		UpdatedAtHeight: model.UpdatedAtHeight,
		UpdatedBy:       model.UpdatedBy,
	}, true, nil
}

var _ ports.Registry = (*Repository)(nil)
