package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a normalized raw-material name. Only the values in
// ValidProducts ever enter the ledger.
type Product string

const (
	ProductPlayera        Product = "playera"
	ProductTaza           Product = "taza"
	ProductPapelSublimado Product = "papel sublimado"
	ProductVidrio         Product = "vidrio"
	ProductPapelImpresion Product = "papel impresión"
	ProductVinil          Product = "vinil"
)

// ValidProducts is the fixed catalog of stockable materials, in display order.
var ValidProducts = []Product{
	ProductPlayera,
	ProductTaza,
	ProductPapelSublimado,
	ProductVidrio,
	ProductPapelImpresion,
	ProductVinil,
}

// WorkType is a normalized pending-job type.
type WorkType string

const (
	WorkTypeCorteVinil WorkType = "corte eléctrico en vinil adhesivo"
	WorkTypeSublimado  WorkType = "sublimado"
)

// ValidWorkTypes is the fixed set of job types the shop performs.
var ValidWorkTypes = []WorkType{WorkTypeCorteVinil, WorkTypeSublimado}

// SublimationProducts are the primary surfaces a sublimation job may target.
var SublimationProducts = []Product{ProductPlayera, ProductTaza, ProductVidrio}

// DueDateLayout is the wire/display format for due dates (dd-mm-yyyy).
const DueDateLayout = "02-01-2006"

// Job is a pending print-shop job. Construction fails closed: an invalid
// field is left at its zero value and the diagnostic is reported to the
// caller, so a Job value never carries unvalidated input.
type Job struct {
	Client           string
	WorkType         WorkType
	DueDate          time.Time // zero when the input date was invalid
	MaterialsSettled bool
}

// NewJob builds a Job from raw user input. Invalid fields stay unset and
// every failed rule is returned as a diagnostic; the caller decides whether
// to re-prompt or abort.
func NewJob(client, workType, dueDate string) (Job, []error) {
	var job Job
	var errs []error

	if c, err := ValidateClient(client); err != nil {
		errs = append(errs, err)
	} else {
		job.Client = c
	}
	if wt, err := ValidateWorkType(workType); err != nil {
		errs = append(errs, err)
	} else {
		job.WorkType = wt
	}
	if d, err := ValidateDueDate(dueDate); err != nil {
		errs = append(errs, err)
	} else {
		job.DueDate = d
	}
	return job, errs
}

// Valid reports whether every field passed validation.
func (j Job) Valid() bool {
	return j.Client != "" && j.WorkType != "" && !j.DueDate.IsZero()
}

// FormatDueDate renders the due date as dd-mm-yyyy, or "" when unset.
func (j Job) FormatDueDate() string {
	if j.DueDate.IsZero() {
		return ""
	}
	return j.DueDate.Format(DueDateLayout)
}

// StockItem is one validated inventory entry: a catalog product and a
// positive quantity to add. Like Job, it fails closed on bad input.
type StockItem struct {
	Product  Product
	Quantity decimal.Decimal
}

// NewStockItem builds a StockItem from raw input. The quantity check is
// gated on the product being valid, matching the entry rules of the ledger.
func NewStockItem(product, quantity string) (StockItem, []error) {
	var item StockItem
	var errs []error

	p, err := ValidateProduct(product)
	if err != nil {
		errs = append(errs, err)
	} else {
		item.Product = p
	}

	qty, qerr := ValidateQuantity(err == nil, quantity)
	if qerr != nil {
		errs = append(errs, qerr)
	} else {
		item.Quantity = qty
	}
	return item, errs
}

// Valid reports whether both fields passed validation.
func (s StockItem) Valid() bool {
	return s.Product != "" && s.Quantity.IsPositive()
}

// NormalizeName lower-cases and trims a product or work-type name so that
// "Taza" and " taza " address the same ledger key.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
