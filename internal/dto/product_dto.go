package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Barcode       string          `json:"barcode"        validate:"required,min=1,max=64"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SellPrice     decimal.Decimal `json:"sell_price"     validate:"min=0"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
	ManagerCode   *string         `json:"manager_code"`
}

// UpdateProductRequest carries a partial update: only non-nil fields are
// applied. A request with every field nil is rejected as no_data_provided.
type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=1,max=120"`
	Barcode       *string          `json:"barcode"        validate:"omitempty,min=1,max=64"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellPrice     *decimal.Decimal `json:"sell_price"`
	Quantity      *int             `json:"quantity"       validate:"omitempty,min=0"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// ProductFilter narrows list/barcode lookups to a manager. An absent
// manager_code returns all products across managers (global/admin view).
type ProductFilter struct {
	ManagerCode *string `form:"manager_code"`
}
