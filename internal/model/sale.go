package model

import (
	"github.com/shopspring/decimal"
)

// SaleItem is a denormalized snapshot of a product's pricing at transaction
// time. It never references live Product state.
type SaleItem struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Total         decimal.Decimal `json:"total"`
}

// Sale is an immutable ledger record of a completed transaction. Totals are
// persisted exactly as supplied by the caller and never re-derived from the
// items. The only mutation ever applied afterwards is the bulk profit reset.
type Sale struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Items         []SaleItem      `gorm:"type:jsonb;serializer:json" json:"items"`
	TotalItems    int             `gorm:"not null" json:"total_items"`
	TotalQuantity int             `gorm:"not null" json:"total_quantity"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	Profit        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"profit"`
	ManagerCode   *string         `gorm:"index" json:"manager_code"`
	EmployeeName  *string         `json:"employee_name"`
	CreatedAt     string          `gorm:"index;not null;<-:create" json:"created_at"`
}
