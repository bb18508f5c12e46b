package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// ProductRepository defines the data access contract for the products
// collection. Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string, managerCode *string) (*model.Product, error)
	List(ctx context.Context, managerCode *string) ([]model.Product, error)
	CountByManager(ctx context.Context, managerCode string) (int64, error)
	BarcodeExists(ctx context.Context, barcode string, managerCode *string) (bool, error)

	// UpdateFields applies a partial update and reports rows matched.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)

	// DecrementQuantityTx subtracts qty inside tx, guarded so quantity never
	// goes negative: zero rows affected means insufficient stock.
	DecrementQuantityTx(tx *gorm.DB, id string, qty int) (int64, error)

	// Cascade operations used by manager code rotation and tenant reset.
	ReassignManagerTx(tx *gorm.DB, oldCode, newCode string) error
	DeleteByManagerTx(tx *gorm.DB, managerCode string) error

	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// scopeManager applies the manager filter: nil means no filter at all, a
// value matches that code only. NULL manager_code rows are reachable only via
// the unfiltered view, same as the document-store equality filter.
func scopeManager(q *gorm.DB, managerCode *string) *gorm.DB {
	if managerCode == nil {
		return q
	}
	return q.Where("manager_code = ?", *managerCode)
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string, managerCode *string) (*model.Product, error) {
	var p model.Product
	q := r.db.WithContext(ctx).Where("barcode = ?", barcode)
	q = scopeManager(q, managerCode)
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, managerCode *string) ([]model.Product, error) {
	var products []model.Product
	q := scopeManager(r.db.WithContext(ctx), managerCode)
	err := q.Order("created_at ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) CountByManager(ctx context.Context, managerCode string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("manager_code = ?", managerCode).Count(&n).Error
	return n, err
}

// BarcodeExists checks the per-(barcode, manager_code) uniqueness scope —
// the same barcode under a different manager is allowed.
func (r *productRepo) BarcodeExists(ctx context.Context, barcode string, managerCode *string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("barcode = ?", barcode)
	if managerCode == nil {
		q = q.Where("manager_code IS NULL")
	} else {
		q = q.Where("manager_code = ?", *managerCode)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepo) DecrementQuantityTx(tx *gorm.DB, id string, qty int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *productRepo) ReassignManagerTx(tx *gorm.DB, oldCode, newCode string) error {
	return tx.Model(&model.Product{}).
		Where("manager_code = ?", oldCode).
		UpdateColumn("manager_code", newCode).Error
}

func (r *productRepo) DeleteByManagerTx(tx *gorm.DB, managerCode string) error {
	return tx.Where("manager_code = ?", managerCode).Delete(&model.Product{}).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
