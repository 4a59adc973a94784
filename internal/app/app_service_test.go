package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taller-grafico/internal/app"
	"taller-grafico/internal/core"
	"taller-grafico/internal/store"
)

// newService wires a full service over a fresh temp workbook, exercising
// the real XLSX store end to end.
func newService(t *testing.T) app.ApplicationService {
	t.Helper()
	wb, err := store.Open(filepath.Join(t.TempDir(), "base_datos.xlsx"))
	require.NoError(t, err)
	ledger := core.NewLedger(wb)
	engine := core.NewDeductionEngine(ledger)
	return app.NewAppService(ledger, engine, wb, zerolog.Nop())
}

func seed(t *testing.T, svc app.ApplicationService, product, quantity string) {
	t.Helper()
	_, err := svc.AddInventory(context.Background(), app.AddInventoryRequest{
		Product:  product,
		Quantity: quantity,
	})
	require.NoError(t, err)
}

func TestAddInventoryMergesCaseInsensitive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.AddInventory(ctx, app.AddInventoryRequest{Product: "Taza", Quantity: "20"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "20", first.NewQuantity.String())

	second, err := svc.AddInventory(ctx, app.AddInventoryRequest{Product: "taza", Quantity: "5"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, "25", second.NewQuantity.String())

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv.Lines, 1, "both spellings must merge into one entry")
	assert.Equal(t, core.ProductTaza, inv.Lines[0].Product)
	assert.Equal(t, "25", inv.Lines[0].Quantity.String())
}

func TestAddInventoryRejectsInvalidInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		req      app.AddInventoryRequest
		sentinel error
	}{
		{"unknown product", app.AddInventoryRequest{Product: "cartulina", Quantity: "5"}, core.ErrInvalidProduct},
		{"zero quantity", app.AddInventoryRequest{Product: "vinil", Quantity: "0"}, core.ErrInvalidQuantity},
		{"negative quantity", app.AddInventoryRequest{Product: "vinil", Quantity: "-2"}, core.ErrInvalidQuantity},
		{"non numeric", app.AddInventoryRequest{Product: "vinil", Quantity: "cinco"}, core.ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddInventory(ctx, tc.req)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	// None of the rejected inputs may have touched the ledger.
	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, inv.Lines)
}

func TestRegisterJobCorteVinil(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	seed(t, svc, "vinil", "5")

	result, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "María",
		WorkType: "corte eléctrico en vinil adhesivo",
		DueDate:  "15-06-2026",
		Quantity: "3",
	})
	require.NoError(t, err)
	assert.True(t, result.Job.MaterialsSettled)
	require.Len(t, result.Deductions, 1)
	assert.Equal(t, "2", result.Deductions[0].Remaining.String())

	// The settled job is in the log, with the date round-tripped.
	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs.Jobs, 1)
	assert.Equal(t, "María", jobs.Jobs[0].Client)
	assert.Equal(t, "corte eléctrico en vinil adhesivo", jobs.Jobs[0].WorkType)
	assert.Equal(t, "15-06-2026", jobs.Jobs[0].DueDate)
}

func TestRegisterJobAbortedIsNotPersisted(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	seed(t, svc, "vinil", "2")

	_, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "Pedro",
		WorkType: "corte eléctrico en vinil adhesivo",
		DueDate:  "15-06-2026",
		Quantity: "5",
	})
	require.ErrorIs(t, err, core.ErrInsufficientStock)

	// Ledger unchanged, job log empty: validated but discarded.
	search, serr := svc.SearchProduct(ctx, "vinil")
	require.NoError(t, serr)
	assert.Equal(t, "2", search.Quantity.String())

	jobs, jerr := svc.ListJobs(ctx)
	require.NoError(t, jerr)
	assert.Empty(t, jobs.Jobs)
}

func TestRegisterJobSublimado(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	seed(t, svc, "taza", "10")
	seed(t, svc, "papel impresión", "4")

	result, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "Ana",
		WorkType: "sublimado",
		Primary:  "taza",
		DueDate:  "01-12-2026",
		Quantity: "4",
	})
	require.NoError(t, err)
	require.Len(t, result.Deductions, 2)

	inv, err := svc.GetInventory(ctx)
	require.NoError(t, err)
	byProduct := map[core.Product]string{}
	for _, line := range inv.Lines {
		byProduct[line.Product] = line.Quantity.String()
	}
	assert.Equal(t, "6", byProduct[core.ProductTaza])
	assert.Equal(t, "0", byProduct[core.ProductPapelImpresion])
}

func TestRegisterJobSublimadoPartialStockAborts(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	seed(t, svc, "taza", "10")
	seed(t, svc, "papel impresión", "2")

	_, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "Ana",
		WorkType: "sublimado",
		Primary:  "taza",
		DueDate:  "01-12-2026",
		Quantity: "4",
	})
	require.ErrorIs(t, err, core.ErrInsufficientStock)

	inv, ierr := svc.GetInventory(ctx)
	require.NoError(t, ierr)
	byProduct := map[core.Product]string{}
	for _, line := range inv.Lines {
		byProduct[line.Product] = line.Quantity.String()
	}
	assert.Equal(t, "10", byProduct[core.ProductTaza], "taza alone having stock must not deduct")
	assert.Equal(t, "2", byProduct[core.ProductPapelImpresion])
}

func TestRegisterJobValidationErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "",
		WorkType: "bordado",
		DueDate:  "31-02-2024",
		Quantity: "0",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidClient)
	assert.ErrorIs(t, err, core.ErrInvalidWorkType)
	assert.ErrorIs(t, err, core.ErrInvalidDate)
	assert.ErrorIs(t, err, core.ErrInvalidQuantity)
}

func TestRegisterJobMissingProductAborts(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	// Inventory exists but has no vinil at all.
	seed(t, svc, "taza", "10")

	_, err := svc.RegisterJob(ctx, app.RegisterJobRequest{
		Client:   "Luis",
		WorkType: "corte eléctrico en vinil adhesivo",
		DueDate:  "20-11-2026",
		Quantity: "1",
	})
	require.ErrorIs(t, err, core.ErrProductNotInInventory)
}

func TestSearchProduct(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	seed(t, svc, "vidrio", "8")

	found, err := svc.SearchProduct(ctx, "  Vidrio ")
	require.NoError(t, err)
	assert.True(t, found.Found)
	assert.Equal(t, "8", found.Quantity.String())

	miss, err := svc.SearchProduct(ctx, "playera")
	require.NoError(t, err)
	assert.False(t, miss.Found)
	assert.Equal(t, []core.Product{core.ProductVidrio}, miss.Available)

	_, err = svc.SearchProduct(ctx, "   ")
	assert.ErrorIs(t, err, core.ErrInvalidProduct)
}
