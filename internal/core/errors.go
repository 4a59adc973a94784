package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain sentinels. Adapters match on these with errors.Is to choose a
// message or an HTTP status; the typed wrappers below carry the offending
// values.
var (
	ErrInvalidClient         = errors.New("cliente inválido")
	ErrInvalidWorkType       = errors.New("tipo de trabajo inválido")
	ErrInvalidDate           = errors.New("fecha inválida")
	ErrInvalidProduct        = errors.New("producto inválido")
	ErrInvalidQuantity       = errors.New("cantidad inválida")
	ErrProductNotInInventory = errors.New("producto no está en el inventario")
	ErrInsufficientStock     = errors.New("materiales insuficientes")
)

// FieldError is a validation failure on a single input field. Value echoes
// the rejected input where that helps the user (it is omitted for blank
// input).
type FieldError struct {
	Err    error // one of the ErrInvalid* sentinels
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: '%s' %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

// StockError is a deduction-phase failure for one recipe line. For
// insufficient stock both amounts are reported; for a missing product
// Available and Requested carry the requested amount and zero.
type StockError struct {
	Err       error // ErrProductNotInInventory or ErrInsufficientStock
	Product   Product
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *StockError) Error() string {
	if errors.Is(e.Err, ErrProductNotInInventory) {
		return fmt.Sprintf("el producto %s no está en el inventario", e.Product)
	}
	return fmt.Sprintf("materiales insuficientes: %s disponible %s, solicitado %s",
		e.Product, e.Available.String(), e.Requested.String())
}

func (e *StockError) Unwrap() error { return e.Err }
