package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// SaleRepository defines the data access contract for the sales ledger.
type SaleRepository interface {
	// CreateTx persists the sale inside tx so the insert commits atomically
	// with the stock decrements of the same transaction.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	DeleteByManager(ctx context.Context, managerCode string) error
	ResetProfits(ctx context.Context, managerCode *string) error

	ReassignManagerTx(tx *gorm.DB, oldCode, newCode string) error
	DeleteByManagerTx(tx *gorm.DB, managerCode string) error

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var s model.Sale
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// List filters by manager and an inclusive created_at range. Timestamps are
// fixed-width ISO-8601 strings, so the range clauses are string comparisons.
func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	var sales []model.Sale
	q := scopeManager(r.db.WithContext(ctx).Model(&model.Sale{}), filter.ManagerCode)
	if filter.StartDate != "" {
		q = q.Where("created_at >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("created_at <= ?", filter.EndDate)
	}
	err := q.Order("created_at ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DeleteByManager(ctx context.Context, managerCode string) error {
	return r.db.WithContext(ctx).Where("manager_code = ?", managerCode).Delete(&model.Sale{}).Error
}

func (r *saleRepo) ResetProfits(ctx context.Context, managerCode *string) error {
	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if managerCode == nil {
		// Resetting every sale is a legitimate admin operation here.
		q = q.Session(&gorm.Session{AllowGlobalUpdate: true})
	} else {
		q = q.Where("manager_code = ?", *managerCode)
	}
	return q.UpdateColumn("profit", 0).Error
}

func (r *saleRepo) ReassignManagerTx(tx *gorm.DB, oldCode, newCode string) error {
	return tx.Model(&model.Sale{}).
		Where("manager_code = ?", oldCode).
		UpdateColumn("manager_code", newCode).Error
}

func (r *saleRepo) DeleteByManagerTx(tx *gorm.DB, managerCode string) error {
	return tx.Where("manager_code = ?", managerCode).Delete(&model.Sale{}).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
