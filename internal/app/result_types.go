package app

import (
	"github.com/shopspring/decimal"

	"taller-grafico/internal/core"
)

// RegisterJobResult reports a settled job registration: the persisted job
// and the per-line material deductions that paid for it.
type RegisterJobResult struct {
	Job        core.Job
	Deductions []core.Deduction
}

// AddInventoryResult reports a committed restock.
type AddInventoryResult struct {
	Item core.StockItem
	// NewQuantity is the stock level after the increment.
	NewQuantity decimal.Decimal
	// Created is true when this increment created the product entry.
	Created bool
}

// InventoryLine is one product row of the inventory listing.
type InventoryLine struct {
	Product  core.Product
	Quantity decimal.Decimal
}

// InventoryResult is the full stock listing in catalog order.
type InventoryResult struct {
	Lines      []InventoryLine
	TotalUnits decimal.Decimal
}

// SearchResult reports a product lookup. On a miss, Available lists the
// product names currently in stock as suggestions.
type SearchResult struct {
	Product   core.Product
	Found     bool
	Quantity  decimal.Decimal
	Available []core.Product
}

// JobLine is one persisted job as read back from the log.
type JobLine struct {
	Client   string
	WorkType string
	DueDate  string
}

// JobListResult is the persisted job log in registration order.
type JobListResult struct {
	Jobs []JobLine
}
