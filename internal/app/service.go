package app

import (
	"context"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI,
// Web) call. It decouples presentation from business logic. Implementations
// must contain no fmt.Println and no display logic of any kind.
type ApplicationService interface {
	// RegisterJob validates the job fields, runs the material deduction
	// engine, and persists the job to the log only when its materials were
	// settled. Validation failures and deduction aborts are returned as
	// typed errors; the ledger is never left partially deducted.
	RegisterJob(ctx context.Context, req RegisterJobRequest) (*RegisterJobResult, error)

	// AddInventory validates a product/quantity pair and adds it to stock,
	// creating the product entry on first use.
	AddInventory(ctx context.Context, req AddInventoryRequest) (*AddInventoryResult, error)

	// GetInventory returns every stocked product with its quantity, in
	// catalog order, plus the unit total.
	GetInventory(ctx context.Context) (*InventoryResult, error)

	// SearchProduct looks a product up by its normalized name. A miss is
	// not an error: Found is false and the available product names are
	// returned as suggestions.
	SearchProduct(ctx context.Context, name string) (*SearchResult, error)

	// ListJobs returns the persisted job log in registration order.
	ListJobs(ctx context.Context) (*JobListResult, error)
}
