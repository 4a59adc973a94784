package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"taller-grafico/internal/core"
	"taller-grafico/internal/store"
)

// JobLog is the append-only persistence for settled jobs.
type JobLog interface {
	AppendJob(job store.JobRow) error
	ListJobs() ([]store.JobRow, error)
}

type appService struct {
	ledger *core.Ledger
	engine *core.DeductionEngine
	jobs   JobLog
	log    zerolog.Logger
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(ledger *core.Ledger, engine *core.DeductionEngine, jobs JobLog, log zerolog.Logger) ApplicationService {
	return &appService{ledger: ledger, engine: engine, jobs: jobs, log: log}
}

// RegisterJob validates, settles materials, and persists the job. The job
// row is written only after the engine commits — a job whose deduction
// aborts is validated but discarded, never logged.
func (s *appService) RegisterJob(ctx context.Context, req RegisterJobRequest) (*RegisterJobResult, error) {
	job, fieldErrs := core.NewJob(req.Client, req.WorkType, req.DueDate)

	qty, err := core.ValidateQuantity(true, req.Quantity)
	if err != nil {
		fieldErrs = append(fieldErrs, err)
	}

	var primary core.Product
	if job.WorkType == core.WorkTypeSublimado {
		primary, err = core.ValidateProduct(req.Primary)
		if err != nil {
			fieldErrs = append(fieldErrs, err)
		}
	}
	if len(fieldErrs) > 0 {
		return nil, errors.Join(fieldErrs...)
	}

	deductions, err := s.engine.Settle(&job, primary, qty)
	if err != nil {
		s.log.Warn().Err(err).
			Str("cliente", job.Client).
			Str("trabajo", string(job.WorkType)).
			Msg("registro de trabajo abortado")
		return nil, err
	}

	if err := s.jobs.AppendJob(store.JobRow{
		Client:   job.Client,
		WorkType: string(job.WorkType),
		DueDate:  job.FormatDueDate(),
	}); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("cliente", job.Client).
		Str("trabajo", string(job.WorkType)).
		Str("entrega", job.FormatDueDate()).
		Int("materiales", len(deductions)).
		Msg("trabajo registrado")
	return &RegisterJobResult{Job: job, Deductions: deductions}, nil
}

// AddInventory validates and commits a manual restock.
func (s *appService) AddInventory(ctx context.Context, req AddInventoryRequest) (*AddInventoryResult, error) {
	item, fieldErrs := core.NewStockItem(req.Product, req.Quantity)
	if len(fieldErrs) > 0 {
		return nil, errors.Join(fieldErrs...)
	}

	levels, err := s.ledger.Snapshot()
	if err != nil {
		return nil, err
	}
	_, existed := levels[item.Product]

	newQty, err := s.ledger.Increment(item.Product, item.Quantity)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("producto", string(item.Product)).
		Str("agregado", item.Quantity.String()).
		Str("total", newQty.String()).
		Msg("inventario actualizado")
	return &AddInventoryResult{Item: item, NewQuantity: newQty, Created: !existed}, nil
}

// GetInventory returns the stocked products in catalog order.
func (s *appService) GetInventory(ctx context.Context) (*InventoryResult, error) {
	levels, err := s.ledger.Snapshot()
	if err != nil {
		return nil, err
	}

	result := &InventoryResult{TotalUnits: decimal.Zero}
	for _, product := range core.ValidProducts {
		qty, ok := levels[product]
		if !ok {
			continue
		}
		result.Lines = append(result.Lines, InventoryLine{Product: product, Quantity: qty})
		result.TotalUnits = result.TotalUnits.Add(qty)
	}
	return result, nil
}

// SearchProduct is a direct key lookup against the rebuilt mapping. The
// searched name is normalized but not restricted to the catalog: searching
// an unknown name is a miss, not a validation error.
func (s *appService) SearchProduct(ctx context.Context, name string) (*SearchResult, error) {
	normalized := core.NormalizeName(name)
	if normalized == "" {
		return nil, &core.FieldError{Err: core.ErrInvalidProduct, Field: "producto",
			Reason: "debe ingresar un nombre de producto"}
	}

	levels, err := s.ledger.Snapshot()
	if err != nil {
		return nil, err
	}

	product := core.Product(normalized)
	if qty, ok := levels[product]; ok {
		return &SearchResult{Product: product, Found: true, Quantity: qty}, nil
	}

	result := &SearchResult{Product: product}
	for _, p := range core.ValidProducts {
		if _, ok := levels[p]; ok {
			result.Available = append(result.Available, p)
		}
	}
	return result, nil
}

// ListJobs returns the persisted job log.
func (s *appService) ListJobs(ctx context.Context) (*JobListResult, error) {
	rows, err := s.jobs.ListJobs()
	if err != nil {
		return nil, err
	}
	result := &JobListResult{}
	for _, row := range rows {
		result.Jobs = append(result.Jobs, JobLine(row))
	}
	return result, nil
}
