package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

// SaleService defines the business logic contract for the sales ledger.
type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*model.Sale, error)
	GetByID(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	DeleteAll(ctx context.Context, managerCode string) error
	ResetProfits(ctx context.Context, managerCode *string) error
}

type saleService struct {
	repo     repository.SaleRepository
	products repository.ProductRepository
}

func NewSaleService(repo repository.SaleRepository, products repository.ProductRepository) SaleService {
	return &saleService{repo: repo, products: products}
}

// Create records a completed sale. Every line item is validated before any
// stock is touched, then all quantity decrements and the sale insert commit
// in a single transaction, so a failing item can never leave earlier items'
// stock decremented. The persisted totals are exactly the caller's values.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*model.Sale, error) {
	// Pre-flight: resolve every product and check stock. The first missing
	// product or insufficient line decides the error, in item order.
	for _, item := range req.Items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			return nil, err
		}
		if p.Quantity-item.Quantity < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientQuantity, item.ProductName)
		}
	}

	items := make([]model.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.SaleItem{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			SellPrice:     item.SellPrice,
			PurchasePrice: item.PurchasePrice,
			Total:         item.Total,
		})
	}

	sale := &model.Sale{
		ID:            uuid.NewString(),
		Items:         items,
		TotalItems:    req.TotalItems,
		TotalQuantity: req.TotalQuantity,
		TotalAmount:   req.TotalAmount,
		Profit:        req.Profit,
		ManagerCode:   req.ManagerCode,
		EmployeeName:  req.EmployeeName,
		CreatedAt:     model.NowISO(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range req.Items {
			// The decrement is guarded by quantity >= qty, so a concurrent
			// sale racing past the pre-flight check rolls back here instead
			// of driving stock negative.
			affected, err := s.products.DecrementQuantityTx(tx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientQuantity, item.ProductName)
			}
		}
		return s.repo.CreateTx(tx, sale)
	})
	if txErr != nil {
		return nil, txErr
	}
	return sale, nil
}

func (s *saleService) GetByID(ctx context.Context, id string) (*model.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return sale, nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	return s.repo.List(ctx, filter)
}

func (s *saleService) DeleteAll(ctx context.Context, managerCode string) error {
	return s.repo.DeleteByManager(ctx, managerCode)
}

func (s *saleService) ResetProfits(ctx context.Context, managerCode *string) error {
	return s.repo.ResetProfits(ctx, managerCode)
}
