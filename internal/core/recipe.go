package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recipe is the fixed set of (product, quantity) lines a work type consumes
// when a job is registered.
type Recipe struct {
	WorkType WorkType
	Lines    []DecrementLine
}

// RecipeFor resolves the material recipe for a work type.
//
//   - corte eléctrico en vinil adhesivo: qty sheets of vinil.
//   - sublimado: the caller picks a primary surface (playera, taza or
//     vidrio); the recipe consumes qty of the primary and qty of papel
//     impresión. The two lines are equal by design: one sheet of print
//     paper per printable surface.
//
// qty must already be a validated positive quantity; primary is ignored for
// work types that do not take one.
func RecipeFor(workType WorkType, primary Product, qty decimal.Decimal) (Recipe, error) {
	if !qty.IsPositive() {
		return Recipe{}, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad",
			Value: qty.String(), Reason: "debe ser mayor a cero"}
	}

	switch workType {
	case WorkTypeCorteVinil:
		return Recipe{
			WorkType: workType,
			Lines:    []DecrementLine{{Product: ProductVinil, Quantity: qty}},
		}, nil

	case WorkTypeSublimado:
		if !isSublimationProduct(primary) {
			return Recipe{}, &FieldError{
				Err:    ErrInvalidProduct,
				Field:  "producto para sublimado",
				Value:  string(primary),
				Reason: fmt.Sprintf("debe ser uno de: %s", joinProducts(SublimationProducts)),
			}
		}
		return Recipe{
			WorkType: workType,
			Lines: []DecrementLine{
				{Product: primary, Quantity: qty},
				{Product: ProductPapelImpresion, Quantity: qty},
			},
		}, nil

	default:
		return Recipe{}, &FieldError{Err: ErrInvalidWorkType, Field: "trabajo pendiente",
			Value: string(workType), Reason: "no tiene receta de materiales"}
	}
}

func isSublimationProduct(p Product) bool {
	for _, valid := range SublimationProducts {
		if p == valid {
			return true
		}
	}
	return false
}
