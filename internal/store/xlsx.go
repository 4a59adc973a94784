// Package store persists the shop's inventory and job log to a two-sheet
// XLSX workbook. The workbook is the source of truth: every operation opens
// the file, performs one full read or read-modify-write, and closes it
// again, so there is no in-process cache across calls.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"taller-grafico/internal/core"
)

const (
	// SheetInventory holds one row per product: Producto | Cantidad.
	SheetInventory = "Inventario"
	// SheetJobs is the append-only job log: Cliente | Trabajo_Pendiente | Fecha_Entrega.
	SheetJobs = "Trabajos"
)

var inventoryHeaders = []string{"Producto", "Cantidad"}
var jobHeaders = []string{"Cliente", "Trabajo_Pendiente", "Fecha_Entrega"}

// ErrStoreIO marks any failure of the backing workbook (missing, locked,
// malformed). It fails the current operation only; the caller's loop keeps
// running.
var ErrStoreIO = errors.New("error de almacenamiento")

// JobRow is one persisted line of the job log, exactly as written to the
// Trabajos sheet (due date already formatted dd-mm-yyyy).
type JobRow struct {
	Client   string
	WorkType string
	DueDate  string
}

// Workbook is an XLSX-backed store. It implements core.InventoryStore.
type Workbook struct {
	path string
}

var _ core.InventoryStore = (*Workbook)(nil)

// Open returns a store over the workbook at path, creating the file with
// both sheets and their header rows when it does not exist yet. An existing
// workbook is reused as-is.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, storeErr("inspeccionar libro", err)
		}
		if err := createWorkbook(path); err != nil {
			return nil, err
		}
	}
	return &Workbook{path: path}, nil
}

// Path returns the workbook location on disk.
func (w *Workbook) Path() string { return w.path }

func createWorkbook(path string) (err error) {
	f := excelize.NewFile()
	defer closeBook(f, &err)

	if err = f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return storeErr("crear hoja de inventario", err)
	}
	if _, err = f.NewSheet(SheetJobs); err != nil {
		return storeErr("crear hoja de trabajos", err)
	}
	if err = writeRow(f, SheetInventory, 1, inventoryHeaders); err != nil {
		return err
	}
	if err = writeRow(f, SheetJobs, 1, jobHeaders); err != nil {
		return err
	}
	if err = f.SaveAs(path); err != nil {
		return storeErr("guardar libro nuevo", err)
	}
	return nil
}

// LoadInventory reads the full Inventario sheet into a product → quantity
// mapping. Product names are normalized, so lookups against the returned
// map are direct key access. Rows outside the product catalog are ignored.
func (w *Workbook) LoadInventory() (levels map[core.Product]decimal.Decimal, err error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, storeErr("abrir libro", err)
	}
	defer closeBook(f, &err)

	rows, err := f.GetRows(SheetInventory)
	if err != nil {
		return nil, storeErr("leer inventario", err)
	}

	levels = make(map[core.Product]decimal.Decimal)
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		product, perr := core.ValidateProduct(row[0])
		if perr != nil {
			continue
		}
		qty := decimal.Zero
		if len(row) > 1 && row[1] != "" {
			if qty, err = decimal.NewFromString(row[1]); err != nil {
				return nil, storeErr(fmt.Sprintf("cantidad ilegible para %s", product), err)
			}
		}
		levels[product] = qty
	}
	return levels, nil
}

// SaveInventory writes the full inventory state back. Existing rows keep
// their position in the sheet; products new to the workbook are appended in
// catalog order. Rows are never deleted.
func (w *Workbook) SaveInventory(levels map[core.Product]decimal.Decimal) (err error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return storeErr("abrir libro", err)
	}
	defer closeBook(f, &err)

	rows, err := f.GetRows(SheetInventory)
	if err != nil {
		return storeErr("leer inventario", err)
	}

	written := make(map[core.Product]bool)
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		product, perr := core.ValidateProduct(row[0])
		if perr != nil {
			continue
		}
		qty, ok := levels[product]
		if !ok {
			continue
		}
		if err = setQuantityCell(f, i+1, qty); err != nil {
			return err
		}
		written[product] = true
	}

	next := len(rows) + 1
	for _, product := range core.ValidProducts {
		qty, ok := levels[product]
		if !ok || written[product] {
			continue
		}
		if err = writeRow(f, SheetInventory, next, []string{string(product)}); err != nil {
			return err
		}
		if err = setQuantityCell(f, next, qty); err != nil {
			return err
		}
		next++
	}

	if err = f.Save(); err != nil {
		return storeErr("guardar inventario", err)
	}
	return nil
}

// AppendJob appends one settled job to the Trabajos sheet.
func (w *Workbook) AppendJob(job JobRow) (err error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return storeErr("abrir libro", err)
	}
	defer closeBook(f, &err)

	rows, err := f.GetRows(SheetJobs)
	if err != nil {
		return storeErr("leer trabajos", err)
	}
	if err = writeRow(f, SheetJobs, len(rows)+1, []string{job.Client, job.WorkType, job.DueDate}); err != nil {
		return err
	}
	if err = f.Save(); err != nil {
		return storeErr("guardar trabajo", err)
	}
	return nil
}

// ListJobs returns every logged job in registration order.
func (w *Workbook) ListJobs() (jobs []JobRow, err error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, storeErr("abrir libro", err)
	}
	defer closeBook(f, &err)

	rows, err := f.GetRows(SheetJobs)
	if err != nil {
		return nil, storeErr("leer trabajos", err)
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		job := JobRow{Client: row[0]}
		if len(row) > 1 {
			job.WorkType = row[1]
		}
		if len(row) > 2 {
			job.DueDate = row[2]
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func setQuantityCell(f *excelize.File, row int, qty decimal.Decimal) error {
	cell, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return storeErr("resolver celda", err)
	}
	value, _ := qty.Float64()
	if err := f.SetCellValue(SheetInventory, cell, value); err != nil {
		return storeErr("escribir cantidad", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return storeErr("resolver celda", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return storeErr("escribir fila", err)
		}
	}
	return nil
}

// closeBook releases the workbook handle on every exit path, preserving the
// first error seen.
func closeBook(f *excelize.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = storeErr("cerrar libro", cerr)
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreIO, op, err)
}
