package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

// In-memory repository stubs. Missing records return gorm.ErrRecordNotFound,
// matching the concrete implementations. DB() returns nil so runTx executes
// callbacks directly.

// ── products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*model.Product
	order    []string
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func sameScope(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string, managerCode *string) (*model.Product, error) {
	for _, id := range r.order {
		p := r.products[id]
		if p.Barcode != barcode {
			continue
		}
		if managerCode != nil && (p.ManagerCode == nil || *p.ManagerCode != *managerCode) {
			continue
		}
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, managerCode *string) ([]model.Product, error) {
	var out []model.Product
	for _, id := range r.order {
		p := r.products[id]
		if managerCode != nil && (p.ManagerCode == nil || *p.ManagerCode != *managerCode) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) CountByManager(_ context.Context, managerCode string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.ManagerCode != nil && *p.ManagerCode == managerCode {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) BarcodeExists(_ context.Context, barcode string, managerCode *string) (bool, error) {
	for _, p := range r.products {
		if p.Barcode == barcode && sameScope(p.ManagerCode, managerCode) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "barcode":
			p.Barcode = v.(string)
		case "purchase_price":
			p.PurchasePrice = v.(decimal.Decimal)
		case "sell_price":
			p.SellPrice = v.(decimal.Decimal)
		case "quantity":
			p.Quantity = v.(int)
		}
	}
	return 1, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (r *stubProductRepo) DecrementQuantityTx(_ *gorm.DB, id string, qty int) (int64, error) {
	p, ok := r.products[id]
	if !ok || p.Quantity < qty {
		return 0, nil
	}
	p.Quantity -= qty
	return 1, nil
}

func (r *stubProductRepo) ReassignManagerTx(_ *gorm.DB, oldCode, newCode string) error {
	for _, p := range r.products {
		if p.ManagerCode != nil && *p.ManagerCode == oldCode {
			code := newCode
			p.ManagerCode = &code
		}
	}
	return nil
}

func (r *stubProductRepo) DeleteByManagerTx(_ *gorm.DB, managerCode string) error {
	for id, p := range r.products {
		if p.ManagerCode != nil && *p.ManagerCode == managerCode {
			delete(r.products, id)
		}
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── sales ────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales []*model.Sale
}

func newStubSaleRepo() *stubSaleRepo { return &stubSaleRepo{} }

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if filter.ManagerCode != nil && (s.ManagerCode == nil || *s.ManagerCode != *filter.ManagerCode) {
			continue
		}
		if filter.StartDate != "" && strings.Compare(s.CreatedAt, filter.StartDate) < 0 {
			continue
		}
		if filter.EndDate != "" && strings.Compare(s.CreatedAt, filter.EndDate) > 0 {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) DeleteByManager(_ context.Context, managerCode string) error {
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.ManagerCode == nil || *s.ManagerCode != managerCode {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

func (r *stubSaleRepo) ResetProfits(_ context.Context, managerCode *string) error {
	for _, s := range r.sales {
		if managerCode != nil && (s.ManagerCode == nil || *s.ManagerCode != *managerCode) {
			continue
		}
		s.Profit = decimal.Zero
	}
	return nil
}

func (r *stubSaleRepo) ReassignManagerTx(_ *gorm.DB, oldCode, newCode string) error {
	for _, s := range r.sales {
		if s.ManagerCode != nil && *s.ManagerCode == oldCode {
			code := newCode
			s.ManagerCode = &code
		}
	}
	return nil
}

func (r *stubSaleRepo) DeleteByManagerTx(tx *gorm.DB, managerCode string) error {
	return r.DeleteByManager(context.Background(), managerCode)
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── managers ─────────────────────────────────────────────────────────────────

type stubManagerRepo struct {
	managers map[string]*model.Manager // keyed by manager_code
}

func newStubManagerRepo() *stubManagerRepo {
	return &stubManagerRepo{managers: make(map[string]*model.Manager)}
}

func (r *stubManagerRepo) Create(_ context.Context, m *model.Manager) error {
	r.managers[m.ManagerCode] = m
	return nil
}

func (r *stubManagerRepo) FindByCode(_ context.Context, code string) (*model.Manager, error) {
	m, ok := r.managers[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubManagerRepo) CodeExists(_ context.Context, code string) (bool, error) {
	_, ok := r.managers[code]
	return ok, nil
}

func (r *stubManagerRepo) UpdateCodeTx(_ *gorm.DB, oldCode, newCode string) error {
	m, ok := r.managers[oldCode]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.managers, oldCode)
	m.ManagerCode = newCode
	r.managers[newCode] = m
	return nil
}

func (r *stubManagerRepo) ActivateTx(_ *gorm.DB, managerCode, activationCode string) error {
	m, ok := r.managers[managerCode]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.IsPro = true
	code := activationCode
	m.ActivationCodeUsed = &code
	return nil
}

func (r *stubManagerRepo) DB() *gorm.DB { return nil }

var _ repository.ManagerRepository = (*stubManagerRepo)(nil)

// ── employees ────────────────────────────────────────────────────────────────

type stubEmployeeRepo struct {
	employees map[string]*model.Employee
	order     []string
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *stubEmployeeRepo) List(_ context.Context, managerCode, status string) ([]model.Employee, error) {
	var out []model.Employee
	for _, id := range r.order {
		e, ok := r.employees[id]
		if !ok || e.ManagerCode != managerCode {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) UpdateStatus(_ context.Context, id, status string) (int64, error) {
	e, ok := r.employees[id]
	if !ok {
		return 0, nil
	}
	e.Status = status
	return 1, nil
}

func (r *stubEmployeeRepo) UpdatePermissions(_ context.Context, id, permissions string) (int64, error) {
	e, ok := r.employees[id]
	if !ok {
		return 0, nil
	}
	e.Permissions = permissions
	return 1, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := r.employees[id]; !ok {
		return 0, nil
	}
	delete(r.employees, id)
	return 1, nil
}

func (r *stubEmployeeRepo) DeleteByManagerTx(_ *gorm.DB, managerCode string) error {
	for id, e := range r.employees {
		if e.ManagerCode == managerCode {
			delete(r.employees, id)
		}
	}
	return nil
}

var _ repository.EmployeeRepository = (*stubEmployeeRepo)(nil)

// ── settings ─────────────────────────────────────────────────────────────────

type stubSettingsRepo struct {
	settings map[string]*model.Settings // keyed by row id
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{settings: make(map[string]*model.Settings)}
}

func (r *stubSettingsRepo) find(managerCode *string) *model.Settings {
	if managerCode == nil {
		return r.settings[model.GlobalSettingsID]
	}
	for _, s := range r.settings {
		if s.ManagerCode != nil && *s.ManagerCode == *managerCode {
			return s
		}
	}
	return nil
}

func (r *stubSettingsRepo) Find(_ context.Context, managerCode *string) (*model.Settings, error) {
	if s := r.find(managerCode); s != nil {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSettingsRepo) Create(_ context.Context, s *model.Settings) error {
	r.settings[s.ID] = s
	return nil
}

func (r *stubSettingsRepo) UpdateCurrency(_ context.Context, managerCode *string, currency string) (int64, error) {
	s := r.find(managerCode)
	if s == nil {
		return 0, nil
	}
	s.Currency = currency
	return 1, nil
}

func (r *stubSettingsRepo) DeleteByManagerTx(_ *gorm.DB, managerCode string) error {
	for id, s := range r.settings {
		if s.ManagerCode != nil && *s.ManagerCode == managerCode {
			delete(r.settings, id)
		}
	}
	return nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ── activation ledger ────────────────────────────────────────────────────────

type stubActivationRepo struct {
	uses map[string]*model.ActivationCodeUse
}

func newStubActivationRepo() *stubActivationRepo {
	return &stubActivationRepo{uses: make(map[string]*model.ActivationCodeUse)}
}

func (r *stubActivationRepo) Used(_ context.Context, code string) (bool, error) {
	_, ok := r.uses[code]
	return ok, nil
}

func (r *stubActivationRepo) RecordUseTx(_ *gorm.DB, use *model.ActivationCodeUse) error {
	if _, ok := r.uses[use.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.uses[use.Code] = use
	return nil
}

var _ repository.ActivationRepository = (*stubActivationRepo)(nil)

// strPtr is a test convenience for nullable string fields.
func strPtr(s string) *string { return &s }
