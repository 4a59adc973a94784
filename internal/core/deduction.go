package core

import (
	"github.com/shopspring/decimal"
)

// DeductionEngine settles the material cost of a job registration: it
// resolves the work type's recipe, checks availability for every line, and
// only if all checks pass commits every decrement in a single store write.
// Partial deduction across lines never occurs — either the whole recipe is
// applied or the ledger is untouched.
type DeductionEngine struct {
	ledger *Ledger
}

// NewDeductionEngine constructs an engine over the given ledger.
func NewDeductionEngine(ledger *Ledger) *DeductionEngine {
	return &DeductionEngine{ledger: ledger}
}

// Deduction reports one committed recipe line and the stock it left behind.
type Deduction struct {
	Product   Product
	Deducted  decimal.Decimal
	Remaining decimal.Decimal
}

// Settle runs the check/commit state machine for one job. On success the
// job is marked materials-settled and the committed lines are returned; on
// any abort the job is left unsettled and the ledger unchanged.
//
// primary selects the sublimation surface and is ignored for other work
// types. qty must already have passed quantity validation.
func (e *DeductionEngine) Settle(job *Job, primary Product, qty decimal.Decimal) ([]Deduction, error) {
	recipe, err := RecipeFor(job.WorkType, primary, qty)
	if err != nil {
		return nil, err
	}

	// Check phase: every line must be satisfiable before anything moves.
	for _, line := range recipe.Lines {
		if _, err := e.ledger.TryDecrement(line.Product, line.Quantity); err != nil {
			return nil, err
		}
	}

	// Commit phase: all lines in one workbook save.
	levels, err := e.ledger.CommitDecrements(recipe.Lines)
	if err != nil {
		return nil, err
	}

	deductions := make([]Deduction, len(recipe.Lines))
	for i, line := range recipe.Lines {
		deductions[i] = Deduction{
			Product:   line.Product,
			Deducted:  line.Quantity,
			Remaining: levels[line.Product],
		}
	}
	job.MaterialsSettled = true
	return deductions, nil
}
