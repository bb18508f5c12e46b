package model

import (
	"github.com/shopspring/decimal"
)

// Product is an inventory item owned by a manager via ManagerCode.
// A nil ManagerCode means the product is ungrouped (global view).
// Quantity may be freely set by updates; the ≥0 invariant is enforced only
// when a sale decrements it.
type Product struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"index;not null" json:"name"`
	Barcode       string          `gorm:"index;not null" json:"barcode"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"purchase_price"`
	SellPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sell_price"`
	Quantity      int             `gorm:"not null;default:0" json:"quantity"`
	ManagerCode   *string         `gorm:"index" json:"manager_code"`
	CreatedAt     string          `gorm:"not null;<-:create" json:"created_at"`
}
