package dto

import "github.com/shopspring/decimal"

// SaleItemRequest is a line item as submitted by the point of sale: a full
// price snapshot of the product at transaction time.
type SaleItemRequest struct {
	ProductID     string          `json:"product_id"     validate:"required"`
	ProductName   string          `json:"product_name"   validate:"required"`
	Quantity      int             `json:"quantity"       validate:"gt=0"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Total         decimal.Decimal `json:"total"`
}

// CreateSaleRequest carries the completed transaction. Totals are persisted
// as supplied — the server never recomputes them from the items.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	TotalItems    int               `json:"total_items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Profit        decimal.Decimal   `json:"profit"`
	ManagerCode   *string           `json:"manager_code"`
	EmployeeName  *string           `json:"employee_name"`
}

// SaleFilter narrows sale listings by manager and an inclusive created_at
// range. Dates are ISO-8601 strings compared lexicographically.
type SaleFilter struct {
	ManagerCode *string `form:"manager_code"`
	StartDate   string  `form:"start_date"`
	EndDate     string  `form:"end_date"`
}
