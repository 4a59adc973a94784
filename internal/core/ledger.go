package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InventoryStore is the persistence the Ledger runs against. The store is
// the source of truth: implementations read the full inventory table and
// write it back whole, releasing the underlying file on every path.
type InventoryStore interface {
	LoadInventory() (map[Product]decimal.Decimal, error)
	SaveInventory(levels map[Product]decimal.Decimal) error
}

// Ledger maps each catalog product to its available quantity. It holds no
// state of its own: every call is a fresh read (and, for mutations, a full
// write) against the injected store, so external edits to the workbook
// between operations are picked up. Single caller, synchronous.
type Ledger struct {
	store InventoryStore
}

// NewLedger constructs a Ledger over the given store.
func NewLedger(store InventoryStore) *Ledger {
	return &Ledger{store: store}
}

// DecrementLine is one (product, quantity) pair of a checked deduction plan.
type DecrementLine struct {
	Product  Product
	Quantity decimal.Decimal
}

// Get returns the current quantity for a product, zero if absent.
func (l *Ledger) Get(p Product) (decimal.Decimal, error) {
	levels, err := l.store.LoadInventory()
	if err != nil {
		return decimal.Zero, err
	}
	return levels[p], nil
}

// Snapshot returns the full current product → quantity mapping.
func (l *Ledger) Snapshot() (map[Product]decimal.Decimal, error) {
	return l.store.LoadInventory()
}

// Increment adds a validated positive amount to a product, creating the
// entry on first use. Keys are normalized Products, so "Taza" and "taza"
// merge into a single entry.
func (l *Ledger) Increment(p Product, qty decimal.Decimal) (decimal.Decimal, error) {
	if !qty.IsPositive() {
		return decimal.Zero, &FieldError{Err: ErrInvalidQuantity, Field: "cantidad",
			Value: qty.String(), Reason: "el incremento debe ser mayor a cero"}
	}
	levels, err := l.store.LoadInventory()
	if err != nil {
		return decimal.Zero, err
	}
	updated := levels[p].Add(qty)
	levels[p] = updated
	if err := l.store.SaveInventory(levels); err != nil {
		return decimal.Zero, err
	}
	return updated, nil
}

// TryDecrement is the check phase of a deduction: it reports the would-be
// new quantity without committing anything. A product missing from the
// ledger or a request above the available stock fails with a *StockError.
func (l *Ledger) TryDecrement(p Product, qty decimal.Decimal) (decimal.Decimal, error) {
	levels, err := l.store.LoadInventory()
	if err != nil {
		return decimal.Zero, err
	}
	return checkDecrement(levels, p, qty)
}

// CommitDecrement applies a single previously-checked decrement. The caller
// is responsible for having run the check phase first; the availability
// check is repeated against the freshly-read state before writing.
func (l *Ledger) CommitDecrement(p Product, qty decimal.Decimal) (decimal.Decimal, error) {
	updated, err := l.CommitDecrements([]DecrementLine{{Product: p, Quantity: qty}})
	if err != nil {
		return decimal.Zero, err
	}
	return updated[p], nil
}

// CommitDecrements applies a checked multi-line plan in one full
// read-modify-write, so every line lands in the same workbook save. If any
// line no longer passes the availability check, nothing is written.
func (l *Ledger) CommitDecrements(lines []DecrementLine) (map[Product]decimal.Decimal, error) {
	levels, err := l.store.LoadInventory()
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		remaining, err := checkDecrement(levels, line.Product, line.Quantity)
		if err != nil {
			return nil, err
		}
		levels[line.Product] = remaining
	}
	if err := l.store.SaveInventory(levels); err != nil {
		return nil, fmt.Errorf("guardar descuento de materiales: %w", err)
	}
	return levels, nil
}

func checkDecrement(levels map[Product]decimal.Decimal, p Product, qty decimal.Decimal) (decimal.Decimal, error) {
	available, ok := levels[p]
	if !ok {
		return decimal.Zero, &StockError{Err: ErrProductNotInInventory, Product: p, Requested: qty}
	}
	if available.LessThan(qty) {
		return decimal.Zero, &StockError{Err: ErrInsufficientStock, Product: p,
			Available: available, Requested: qty}
	}
	return available.Sub(qty), nil
}
