package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validators normalize raw user input and enforce the entry rules. They are
// total: every failure path returns a typed *FieldError, never a panic, so
// callers can re-prompt, abort, or surface the message as-is.

// ValidateClient requires non-empty text after trimming.
func ValidateClient(raw string) (string, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return "", &FieldError{Err: ErrInvalidClient, Field: "cliente", Reason: "no puede estar vacío"}
	}
	return c, nil
}

// ValidateWorkType lower-cases and trims, then requires membership in the
// fixed work-type set. The error lists the allowed values.
func ValidateWorkType(raw string) (WorkType, error) {
	wt := WorkType(NormalizeName(raw))
	for _, valid := range ValidWorkTypes {
		if wt == valid {
			return wt, nil
		}
	}
	return "", &FieldError{
		Err:    ErrInvalidWorkType,
		Field:  "trabajo pendiente",
		Value:  strings.TrimSpace(raw),
		Reason: fmt.Sprintf("no es un trabajo válido. Trabajos permitidos: %s", joinWorkTypes()),
	}
}

// ValidateDueDate requires the exact dd-mm-yyyy shape (two dashes, part
// lengths 2/2/4) and a real calendar date under that layout. The length
// check alone is not enough: time.Parse is what rejects 31-02-2024.
func ValidateDueDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if strings.Count(s, "-") != 2 {
		return time.Time{}, &FieldError{Err: ErrInvalidDate, Field: "fecha de entrega", Value: s,
			Reason: "debe tener el formato dd-mm-yyyy"}
	}
	parts := strings.Split(s, "-")
	if len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return time.Time{}, &FieldError{Err: ErrInvalidDate, Field: "fecha de entrega", Value: s,
			Reason: "el formato debe ser dd-mm-yyyy (ejemplo: 25-12-2024)"}
	}
	d, err := time.Parse(DueDateLayout, s)
	if err != nil {
		return time.Time{}, &FieldError{Err: ErrInvalidDate, Field: "fecha de entrega", Value: s,
			Reason: "no es una fecha de calendario válida"}
	}
	return d, nil
}

// ValidateProduct lower-cases and trims, then requires membership in the
// fixed product catalog. The error echoes the rejected name plus the
// allowed list.
func ValidateProduct(raw string) (Product, error) {
	p := Product(NormalizeName(raw))
	for _, valid := range ValidProducts {
		if p == valid {
			return p, nil
		}
	}
	return "", &FieldError{
		Err:    ErrInvalidProduct,
		Field:  "producto",
		Value:  strings.TrimSpace(raw),
		Reason: fmt.Sprintf("no es válido. Productos permitidos: %s", joinProducts(ValidProducts)),
	}
}

// ValidateQuantity parses and checks a quantity. It fails when the
// associated product already failed validation, when the value is not
// numeric, negative, or exactly zero. Zero is rejected as an input even
// though it is a legal resting stock level.
func ValidateQuantity(productOK bool, raw string) (decimal.Decimal, error) {
	if !productOK {
		return decimal.Zero, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad",
			Reason: "no se puede asignar cantidad porque el producto no es válido"}
	}
	s := strings.TrimSpace(raw)
	qty, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad", Value: s,
			Reason: "debe ser un valor numérico"}
	}
	if qty.IsNegative() {
		return decimal.Zero, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad", Value: s,
			Reason: "no puede ser negativa"}
	}
	if qty.IsZero() {
		return decimal.Zero, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad", Value: s,
			Reason: "no puede ser cero"}
	}
	return qty, nil
}

func joinProducts(ps []Product) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func joinWorkTypes() string {
	names := make([]string, len(ValidWorkTypes))
	for i, wt := range ValidWorkTypes {
		names[i] = string(wt)
	}
	return strings.Join(names, ", ")
}
