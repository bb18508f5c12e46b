package service

import (
	"context"
	"crypto/rand"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 7

	// maxCodeAttempts bounds the collision-retry loop. With 36^7 possible
	// codes the bound is practically unreachable.
	maxCodeAttempts = 100
)

// ManagerService defines the business logic contract for manager accounts.
type ManagerService interface {
	Create(ctx context.Context) (*model.Manager, error)
	GetByCode(ctx context.Context, code string) (*model.Manager, error)
	RegenerateCode(ctx context.Context, code string) (string, error)
	ActivatePro(ctx context.Context, activationCode, managerCode string) (*model.Manager, error)
}

type managerService struct {
	repo       repository.ManagerRepository
	products   repository.ProductRepository
	sales      repository.SaleRepository
	employees  repository.EmployeeRepository
	activation repository.ActivationRepository
}

func NewManagerService(
	repo repository.ManagerRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	employees repository.EmployeeRepository,
	activation repository.ActivationRepository,
) ManagerService {
	return &managerService{
		repo:       repo,
		products:   products,
		sales:      sales,
		employees:  employees,
		activation: activation,
	}
}

// randomCode returns a fresh 7-character uppercase-alphanumeric code.
func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// uniqueCode generates codes until one is unused, bounded by maxCodeAttempts.
func (s *managerService) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("manager code space exhausted")
}

func (s *managerService) Create(ctx context.Context) (*model.Manager, error) {
	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}
	m := &model.Manager{
		ID:          uuid.NewString(),
		ManagerCode: code,
		IsPro:       false,
		CreatedAt:   model.NowISO(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *managerService) GetByCode(ctx context.Context, code string) (*model.Manager, error) {
	m, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrManagerNotFound
		}
		return nil, err
	}
	return m, nil
}

// RegenerateCode rotates a manager's code. Owned products and sales follow
// the new code; owned employees are deleted so their access must be
// re-established after the rotation.
func (s *managerService) RegenerateCode(ctx context.Context, code string) (string, error) {
	if _, err := s.GetByCode(ctx, code); err != nil {
		return "", err
	}
	newCode, err := s.uniqueCode(ctx)
	if err != nil {
		return "", err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateCodeTx(tx, code, newCode); err != nil {
			return err
		}
		if err := s.products.ReassignManagerTx(tx, code, newCode); err != nil {
			return err
		}
		if err := s.sales.ReassignManagerTx(tx, code, newCode); err != nil {
			return err
		}
		return s.employees.DeleteByManagerTx(tx, code)
	})
	if txErr != nil {
		return "", txErr
	}
	return newCode, nil
}

// ActivatePro redeems a pre-shared activation code for a manager. Codes are
// single-use system-wide: the redemption ledger entry and the pro flag flip
// commit together.
func (s *managerService) ActivatePro(ctx context.Context, activationCode, managerCode string) (*model.Manager, error) {
	if !ValidActivationCode(activationCode) {
		return nil, ErrInvalidCode
	}
	used, err := s.activation.Used(ctx, activationCode)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrCodeAlreadyUsed
	}
	if _, err := s.GetByCode(ctx, managerCode); err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		use := &model.ActivationCodeUse{
			Code:   activationCode,
			UsedBy: managerCode,
			UsedAt: model.NowISO(),
		}
		if err := s.activation.RecordUseTx(tx, use); err != nil {
			return err
		}
		return s.repo.ActivateTx(tx, managerCode, activationCode)
	})
	if txErr != nil {
		// The ledger has a primary key on code, so a concurrent redemption
		// of the same code loses here instead of double-spending.
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeAlreadyUsed
		}
		return nil, txErr
	}
	return s.GetByCode(ctx, managerCode)
}
