package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/a7datt963-hub/dooollarr/internal/dto"
	"github.com/a7datt963-hub/dooollarr/internal/model"
	"github.com/a7datt963-hub/dooollarr/internal/repository"
)

// StatsService computes read-only aggregates over the sales ledger and
// serves raw data export.
type StatsService interface {
	Statistics(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error)
	Export(ctx context.Context, q dto.ExportQuery) (*dto.ExportResponse, error)
}

type statsService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	now      func() time.Time
}

func NewStatsService(sales repository.SaleRepository, products repository.ProductRepository) StatsService {
	return &statsService{sales: sales, products: products, now: time.Now}
}

// windowFilter translates the filter type into a created_at range. Custom
// applies only when both bounds are present; otherwise no time filter.
func (s *statsService) windowFilter(q dto.StatisticsQuery) dto.SaleFilter {
	filter := dto.SaleFilter{ManagerCode: &q.ManagerCode}
	now := s.now().UTC()
	switch q.FilterType {
	case dto.FilterDaily:
		// Start of the current UTC day: the bare date prefix compares below
		// any timestamp of the same day.
		filter.StartDate = now.Format("2006-01-02")
	case dto.FilterWeekly:
		filter.StartDate = now.Add(-7 * 24 * time.Hour).Format(model.TimeLayout)
	case dto.FilterMonthly:
		filter.StartDate = now.Add(-30 * 24 * time.Hour).Format(model.TimeLayout)
	case dto.FilterCustom:
		if q.StartDate != "" && q.EndDate != "" {
			filter.StartDate = q.StartDate
			filter.EndDate = q.EndDate
		}
	}
	return filter
}

func (s *statsService) Statistics(ctx context.Context, q dto.StatisticsQuery) (*dto.StatisticsResponse, error) {
	sales, err := s.sales.List(ctx, s.windowFilter(q))
	if err != nil {
		return nil, err
	}

	resp := &dto.StatisticsResponse{
		TotalSales:   decimal.Zero,
		TotalProfit:  decimal.Zero,
		ProductsSold: []dto.ProductSold{},
	}

	// products_sold keeps insertion order: first appearance across all
	// matching line items wins the position.
	index := map[string]int{}
	for _, sale := range sales {
		resp.TotalSales = resp.TotalSales.Add(sale.TotalAmount)
		resp.TotalProducts += sale.TotalItems
		resp.TotalProfit = resp.TotalProfit.Add(sale.Profit)
		for _, item := range sale.Items {
			i, seen := index[item.ProductName]
			if !seen {
				index[item.ProductName] = len(resp.ProductsSold)
				resp.ProductsSold = append(resp.ProductsSold, dto.ProductSold{Name: item.ProductName})
				i = len(resp.ProductsSold) - 1
			}
			resp.ProductsSold[i].Quantity += item.Quantity
		}
	}
	return resp, nil
}

func (s *statsService) Export(ctx context.Context, q dto.ExportQuery) (*dto.ExportResponse, error) {
	resp := &dto.ExportResponse{}

	if q.DataType == dto.ExportProducts || q.DataType == dto.ExportAll {
		products, err := s.products.List(ctx, &q.ManagerCode)
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []model.Product{}
		}
		resp.Products = &products
	}
	if q.DataType == dto.ExportSales || q.DataType == dto.ExportAll {
		sales, err := s.sales.List(ctx, dto.SaleFilter{ManagerCode: &q.ManagerCode})
		if err != nil {
			return nil, err
		}
		if sales == nil {
			sales = []model.Sale{}
		}
		resp.Sales = &sales
	}
	return resp, nil
}
