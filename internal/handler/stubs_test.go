package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Service stubs with overridable function fields. Each test sets only the
// functions the handler under test will call; an unset function failing with
// a nil dereference marks an unexpected call.

type productServiceStub struct {
	createFn       func(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	getByIDFn      func(ctx context.Context, id string) (*model.Product, error)
	getByBarcodeFn func(ctx context.Context, barcode string, managerCode *string) (*model.Product, error)
	listFn         func(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	updateFn       func(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *productServiceStub) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	return s.createFn(ctx, req)
}

func (s *productServiceStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.getByIDFn(ctx, id)
}

func (s *productServiceStub) GetByBarcode(ctx context.Context, barcode string, managerCode *string) (*model.Product, error) {
	return s.getByBarcodeFn(ctx, barcode, managerCode)
}

func (s *productServiceStub) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *productServiceStub) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error) {
	return s.updateFn(ctx, id, req)
}

func (s *productServiceStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

var _ service.ProductService = (*productServiceStub)(nil)

type saleServiceStub struct {
	createFn       func(ctx context.Context, req dto.CreateSaleRequest) (*model.Sale, error)
	getByIDFn      func(ctx context.Context, id string) (*model.Sale, error)
	listFn         func(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	deleteAllFn    func(ctx context.Context, managerCode string) error
	resetProfitsFn func(ctx context.Context, managerCode *string) error
}

func (s *saleServiceStub) Create(ctx context.Context, req dto.CreateSaleRequest) (*model.Sale, error) {
	return s.createFn(ctx, req)
}

func (s *saleServiceStub) GetByID(ctx context.Context, id string) (*model.Sale, error) {
	return s.getByIDFn(ctx, id)
}

func (s *saleServiceStub) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	return s.listFn(ctx, filter)
}

func (s *saleServiceStub) DeleteAll(ctx context.Context, managerCode string) error {
	return s.deleteAllFn(ctx, managerCode)
}

func (s *saleServiceStub) ResetProfits(ctx context.Context, managerCode *string) error {
	return s.resetProfitsFn(ctx, managerCode)
}

var _ service.SaleService = (*saleServiceStub)(nil)

type managerServiceStub struct {
	createFn      func(ctx context.Context) (*model.Manager, error)
	getByCodeFn   func(ctx context.Context, code string) (*model.Manager, error)
	regenerateFn  func(ctx context.Context, code string) (string, error)
	activateProFn func(ctx context.Context, activationCode, managerCode string) (*model.Manager, error)
}

func (s *managerServiceStub) Create(ctx context.Context) (*model.Manager, error) {
	return s.createFn(ctx)
}

func (s *managerServiceStub) GetByCode(ctx context.Context, code string) (*model.Manager, error) {
	return s.getByCodeFn(ctx, code)
}

func (s *managerServiceStub) RegenerateCode(ctx context.Context, code string) (string, error) {
	return s.regenerateFn(ctx, code)
}

func (s *managerServiceStub) ActivatePro(ctx context.Context, activationCode, managerCode string) (*model.Manager, error) {
	return s.activateProFn(ctx, activationCode, managerCode)
}

var _ service.ManagerService = (*managerServiceStub)(nil)

type employeeServiceStub struct {
	createFn            func(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error)
	listFn              func(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error)
	updateStatusFn      func(ctx context.Context, id, status string) error
	updatePermissionsFn func(ctx context.Context, id, permissions string) error
	deleteFn            func(ctx context.Context, id string) error
}

func (s *employeeServiceStub) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	return s.createFn(ctx, req)
}

func (s *employeeServiceStub) List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error) {
	return s.listFn(ctx, filter)
}

func (s *employeeServiceStub) UpdateStatus(ctx context.Context, id, status string) error {
	return s.updateStatusFn(ctx, id, status)
}

func (s *employeeServiceStub) UpdatePermissions(ctx context.Context, id, permissions string) error {
	return s.updatePermissionsFn(ctx, id, permissions)
}

func (s *employeeServiceStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

var _ service.EmployeeService = (*employeeServiceStub)(nil)

type settingsServiceStub struct {
	getFn            func(ctx context.Context, managerCode *string) (*model.Settings, error)
	updateCurrencyFn func(ctx context.Context, managerCode *string, currency string) error
	resetAllFn       func(ctx context.Context, managerCode string) error
}

func (s *settingsServiceStub) Get(ctx context.Context, managerCode *string) (*model.Settings, error) {
	return s.getFn(ctx, managerCode)
}

func (s *settingsServiceStub) UpdateCurrency(ctx context.Context, managerCode *string, currency string) error {
	return s.updateCurrencyFn(ctx, managerCode, currency)
}

func (s *settingsServiceStub) ResetAll(ctx context.Context, managerCode string) error {
	return s.resetAllFn(ctx, managerCode)
}

var _ service.SettingsService = (*settingsServiceStub)(nil)

type statsServiceStub struct {
	statisticsFn func(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error)
	exportFn     func(ctx context.Context, q dto.ExportQuery) (*dto.ExportResponse, error)
}

func (s *statsServiceStub) Statistics(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error) {
	return s.statisticsFn(ctx, q)
}

func (s *statsServiceStub) Export(ctx context.Context, q dto.ExportQuery) (*dto.ExportResponse, error) {
	return s.exportFn(ctx, q)
}

var _ service.StatsService = (*statsServiceStub)(nil)

// doRequest runs a request through the engine and returns the recorder.
func doRequest(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }
