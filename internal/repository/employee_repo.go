package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// EmployeeRepository defines the data access contract for employee accounts.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	List(ctx context.Context, managerCode, status string) ([]model.Employee, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	UpdatePermissions(ctx context.Context, id, permissions string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteByManagerTx(tx *gorm.DB, managerCode string) error
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) List(ctx context.Context, managerCode, status string) ([]model.Employee, error) {
	var employees []model.Employee
	q := r.db.WithContext(ctx).Where("manager_code = ?", managerCode)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).UpdateColumn("status", status)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) UpdatePermissions(ctx context.Context, id, permissions string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).UpdateColumn("permissions", permissions)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Employee{})
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) DeleteByManagerTx(tx *gorm.DB, managerCode string) error {
	return tx.Where("manager_code = ?", managerCode).Delete(&model.Employee{}).Error
}
