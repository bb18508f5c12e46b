package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

// EmployeeService defines the business logic contract for employee accounts.
type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePermissions(ctx context.Context, id, permissions string) error
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo     repository.EmployeeRepository
	managers repository.ManagerRepository
}

func NewEmployeeService(repo repository.EmployeeRepository, managers repository.ManagerRepository) EmployeeService {
	return &employeeService{repo: repo, managers: managers}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	// Unlike products, an employee must reference an existing manager.
	if _, err := s.managers.FindByCode(ctx, req.ManagerCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidManagerCode
		}
		return nil, err
	}

	e := &model.Employee{
		ID:          uuid.NewString(),
		Name:        req.Name,
		ManagerCode: req.ManagerCode,
		Status:      model.EmployeeStatusPending,
		Permissions: model.EmployeePermissionsDefault,
		CreatedAt:   model.NowISO(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *employeeService) List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error) {
	return s.repo.List(ctx, filter.ManagerCode, filter.Status)
}

// UpdateStatus accepts any status string; the value set is deliberately open.
func (s *employeeService) UpdateStatus(ctx context.Context, id, status string) error {
	matched, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *employeeService) UpdatePermissions(ctx context.Context, id, permissions string) error {
	matched, err := s.repo.UpdatePermissions(ctx, id, permissions)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
