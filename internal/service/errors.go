package service

import "errors"

// Business errors. The message of each sentinel is the machine-readable
// reason token returned to clients in the error envelope; handlers map the
// sentinel to the HTTP status. Errors that name an entity wrap the sentinel
// with ": <name>" so errors.Is still matches.
var (
	ErrProductNotFound  = errors.New("product_not_found")
	ErrSaleNotFound     = errors.New("sale_not_found")
	ErrManagerNotFound  = errors.New("manager_not_found")
	ErrEmployeeNotFound = errors.New("employee_not_found")

	ErrNoDataProvided       = errors.New("no_data_provided")
	ErrFreeLimitReached     = errors.New("free_limit_reached")
	ErrBarcodeExists        = errors.New("barcode_exists")
	ErrInsufficientQuantity = errors.New("insufficient_quantity")
	ErrInvalidCode          = errors.New("invalid_code")
	ErrCodeAlreadyUsed      = errors.New("code_already_used")
	ErrInvalidManagerCode   = errors.New("invalid_manager_code")
)
