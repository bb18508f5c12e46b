package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// SettingsRepository defines the data access contract for per-manager (or
// global) configuration records.
type SettingsRepository interface {
	// Find resolves the settings record for a scope: by manager_code when
	// present, else the global sentinel row.
	Find(ctx context.Context, managerCode *string) (*model.Settings, error)
	Create(ctx context.Context, s *model.Settings) error

	// UpdateCurrency updates the currency for a scope and reports rows
	// matched; zero rows means the caller should insert a fresh record.
	UpdateCurrency(ctx context.Context, managerCode *string, currency string) (int64, error)
	DeleteByManagerTx(tx *gorm.DB, managerCode string) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func scopeSettings(q *gorm.DB, managerCode *string) *gorm.DB {
	if managerCode == nil {
		return q.Where("id = ?", model.GlobalSettingsID)
	}
	return q.Where("manager_code = ?", *managerCode)
}

func (r *settingsRepo) Find(ctx context.Context, managerCode *string) (*model.Settings, error) {
	var s model.Settings
	if err := scopeSettings(r.db.WithContext(ctx), managerCode).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Create(ctx context.Context, s *model.Settings) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *settingsRepo) UpdateCurrency(ctx context.Context, managerCode *string, currency string) (int64, error) {
	res := scopeSettings(r.db.WithContext(ctx).Model(&model.Settings{}), managerCode).
		UpdateColumn("currency", currency)
	return res.RowsAffected, res.Error
}

func (r *settingsRepo) DeleteByManagerTx(tx *gorm.DB, managerCode string) error {
	return tx.Where("manager_code = ?", managerCode).Delete(&model.Settings{}).Error
}
