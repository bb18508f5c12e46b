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

// freeProductLimit is the item-count cap for managers on the free tier.
// Pro managers have no cap.
const freeProductLimit = 25

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByBarcode(ctx context.Context, barcode string, managerCode *string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo     repository.ProductRepository
	managers repository.ManagerRepository
}

func NewProductService(repo repository.ProductRepository, managers repository.ManagerRepository) ProductService {
	return &productService{repo: repo, managers: managers}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	// Free-tier cap: applies only when the code resolves to a non-pro
	// manager. Unknown or absent codes skip the check, matching the loose
	// grouping-key semantics of manager_code.
	if req.ManagerCode != nil {
		manager, err := s.managers.FindByCode(ctx, *req.ManagerCode)
		if err == nil && !manager.IsPro {
			count, err := s.repo.CountByManager(ctx, *req.ManagerCode)
			if err != nil {
				return nil, err
			}
			if count >= freeProductLimit {
				return nil, ErrFreeLimitReached
			}
		}
	}

	// Barcode uniqueness is scoped per (barcode, manager_code) pair.
	exists, err := s.repo.BarcodeExists(ctx, req.Barcode, req.ManagerCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBarcodeExists
	}

	p := &model.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Barcode:       req.Barcode,
		PurchasePrice: req.PurchasePrice,
		SellPrice:     req.SellPrice,
		Quantity:      req.Quantity,
		ManagerCode:   req.ManagerCode,
		CreatedAt:     model.NowISO(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string, managerCode *string) (*model.Product, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode, managerCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	return s.repo.List(ctx, filter.ManagerCode)
}

func (s *productService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Barcode != nil {
		fields["barcode"] = *req.Barcode
	}
	if req.PurchasePrice != nil {
		fields["purchase_price"] = *req.PurchasePrice
	}
	if req.SellPrice != nil {
		fields["sell_price"] = *req.SellPrice
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if len(fields) == 0 {
		return nil, ErrNoDataProvided
	}

	matched, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrProductNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrProductNotFound
	}
	return nil
}
