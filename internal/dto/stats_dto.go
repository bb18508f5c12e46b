package dto

import (
	"github.com/shopspring/decimal"

	"github.com/a7datt963-hub/dooollarr/internal/model"
)

// Time-window filter types accepted by the statistics endpoint.
const (
	FilterDaily   = "daily"
	FilterWeekly  = "weekly"
	FilterMonthly = "monthly"
	FilterCustom  = "custom"
)

type StatisticsQuery struct {
	ManagerCode string `form:"manager_code" binding:"required"`
	FilterType  string `form:"filter_type,default=daily"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
}

// ProductSold is one row of the per-product quantity breakdown, ordered by
// first appearance across the matching sales' line items.
type ProductSold struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type StatisticsResponse struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalProducts int             `json:"total_products"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	ProductsSold  []ProductSold   `json:"products_sold"`
}

// Export data types.
const (
	ExportProducts = "products"
	ExportSales    = "sales"
	ExportAll      = "all"
)

type ExportQuery struct {
	ManagerCode string `form:"manager_code" binding:"required"`
	DataType    string `form:"data_type,default=all"`
}

// ExportResponse returns the raw owned collections, untransformed. Pointer
// fields so that a requested-but-empty collection still serializes as [] while
// an unrequested one is omitted entirely.
type ExportResponse struct {
	Products *[]model.Product `json:"products,omitempty"`
	Sales    *[]model.Sale    `json:"sales,omitempty"`
}
