package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

// SettingsService defines the business logic contract for configuration
// records and the tenant-wide maintenance operations grouped under /settings.
type SettingsService interface {
	// Get lazily creates the settings record for the scope on first read —
	// the only read in the system with a write side effect.
	Get(ctx context.Context, managerCode *string) (*model.Settings, error)
	UpdateCurrency(ctx context.Context, managerCode *string, currency string) error
	ResetAll(ctx context.Context, managerCode string) error
}

type settingsService struct {
	repo      repository.SettingsRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	employees repository.EmployeeRepository
}

func NewSettingsService(
	repo repository.SettingsRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	employees repository.EmployeeRepository,
) SettingsService {
	return &settingsService{repo: repo, products: products, sales: sales, employees: employees}
}

func defaultSettings(managerCode *string) *model.Settings {
	id := model.GlobalSettingsID
	if managerCode != nil {
		id = uuid.NewString()
	}
	return &model.Settings{
		ID:          id,
		Currency:    model.DefaultCurrency,
		ManagerCode: managerCode,
	}
}

func (s *settingsService) Get(ctx context.Context, managerCode *string) (*model.Settings, error) {
	settings, err := s.repo.Find(ctx, managerCode)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := defaultSettings(managerCode)
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *settingsService) UpdateCurrency(ctx context.Context, managerCode *string, currency string) error {
	matched, err := s.repo.UpdateCurrency(ctx, managerCode, currency)
	if err != nil {
		return err
	}
	if matched > 0 {
		return nil
	}
	// Upsert: no record for this scope yet.
	created := defaultSettings(managerCode)
	created.Currency = currency
	return s.repo.Create(ctx, created)
}

// ResetAll wipes every collection owned by the manager: products, sales,
// employees and settings. The manager account itself survives.
func (s *settingsService) ResetAll(ctx context.Context, managerCode string) error {
	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.products.DeleteByManagerTx(tx, managerCode); err != nil {
			return err
		}
		if err := s.sales.DeleteByManagerTx(tx, managerCode); err != nil {
			return err
		}
		if err := s.employees.DeleteByManagerTx(tx, managerCode); err != nil {
			return err
		}
		return s.repo.DeleteByManagerTx(tx, managerCode)
	})
}
