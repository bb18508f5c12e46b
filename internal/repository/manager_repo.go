package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// ManagerRepository defines the data access contract for manager accounts.
// Managers are looked up by their code, never by row id.
type ManagerRepository interface {
	Create(ctx context.Context, m *model.Manager) error
	FindByCode(ctx context.Context, code string) (*model.Manager, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateCodeTx(tx *gorm.DB, oldCode, newCode string) error

	// ActivateTx flips the pro flag and records which code unlocked it.
	ActivateTx(tx *gorm.DB, managerCode, activationCode string) error

	DB() *gorm.DB
}

type managerRepo struct{ db *gorm.DB }

func NewManagerRepository(db *gorm.DB) ManagerRepository { return &managerRepo{db: db} }

func (r *managerRepo) Create(ctx context.Context, m *model.Manager) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *managerRepo) FindByCode(ctx context.Context, code string) (*model.Manager, error) {
	var m model.Manager
	if err := r.db.WithContext(ctx).Where("manager_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *managerRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Manager{}).
		Where("manager_code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *managerRepo) UpdateCodeTx(tx *gorm.DB, oldCode, newCode string) error {
	return tx.Model(&model.Manager{}).
		Where("manager_code = ?", oldCode).
		UpdateColumn("manager_code", newCode).Error
}

func (r *managerRepo) ActivateTx(tx *gorm.DB, managerCode, activationCode string) error {
	return tx.Model(&model.Manager{}).
		Where("manager_code = ?", managerCode).
		UpdateColumns(map[string]interface{}{
			"is_pro":               true,
			"activation_code_used": activationCode,
		}).Error
}

func (r *managerRepo) DB() *gorm.DB { return r.db }
