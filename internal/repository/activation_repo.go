package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// ActivationRepository records redemptions of pre-shared activation codes.
// The ledger is append-only; a code present here is spent system-wide.
type ActivationRepository interface {
	Used(ctx context.Context, code string) (bool, error)
	RecordUseTx(tx *gorm.DB, use *model.ActivationCodeUse) error
}

type activationRepo struct{ db *gorm.DB }

func NewActivationRepository(db *gorm.DB) ActivationRepository { return &activationRepo{db: db} }

func (r *activationRepo) Used(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ActivationCodeUse{}).
		Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *activationRepo) RecordUseTx(tx *gorm.DB, use *model.ActivationCodeUse) error {
	return tx.Create(use).Error
}
