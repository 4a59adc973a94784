package core_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"taller-grafico/internal/core"
)

// memStore is an in-memory InventoryStore for ledger tests. Load returns a
// copy, so callers cannot mutate the backing state without Save.
type memStore struct {
	levels map[core.Product]decimal.Decimal
	saves  int
	fail   error
}

func newMemStore(levels map[core.Product]decimal.Decimal) *memStore {
	if levels == nil {
		levels = make(map[core.Product]decimal.Decimal)
	}
	return &memStore{levels: levels}
}

func (m *memStore) LoadInventory() (map[core.Product]decimal.Decimal, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make(map[core.Product]decimal.Decimal, len(m.levels))
	for k, v := range m.levels {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SaveInventory(levels map[core.Product]decimal.Decimal) error {
	if m.fail != nil {
		return m.fail
	}
	out := make(map[core.Product]decimal.Decimal, len(levels))
	for k, v := range levels {
		out[k] = v
	}
	m.levels = out
	m.saves++
	return nil
}

func qty(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLedgerGetAbsentIsZero(t *testing.T) {
	ledger := core.NewLedger(newMemStore(nil))
	got, err := ledger.Get(core.ProductVinil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("absent product should read zero, got %s", got)
	}
}

func TestLedgerIncrementCreatesAndMerges(t *testing.T) {
	st := newMemStore(nil)
	ledger := core.NewLedger(st)

	updated, err := ledger.Increment(core.ProductTaza, qty("20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.String() != "20" {
		t.Errorf("first increment got %s, want 20", updated)
	}

	updated, err = ledger.Increment(core.ProductTaza, qty("5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.String() != "25" {
		t.Errorf("merged increment got %s, want 25", updated)
	}
	if len(st.levels) != 1 {
		t.Errorf("expected a single ledger entry, got %d", len(st.levels))
	}
}

// "Taza" and "taza" must address the same entry: normalization happens at
// the validation boundary, so both spellings resolve to one Product key.
func TestLedgerCaseInsensitiveMerge(t *testing.T) {
	st := newMemStore(nil)
	ledger := core.NewLedger(st)

	for _, raw := range []struct{ name, amount string }{{"Taza", "20"}, {"taza", "5"}} {
		item, errs := core.NewStockItem(raw.name, raw.amount)
		if len(errs) != 0 {
			t.Fatalf("unexpected diagnostics for %q: %v", raw.name, errs)
		}
		if _, err := ledger.Increment(item.Product, item.Quantity); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(st.levels) != 1 {
		t.Fatalf("expected one merged entry, got %d", len(st.levels))
	}
	if got := st.levels[core.ProductTaza]; got.String() != "25" {
		t.Errorf("merged quantity got %s, want 25", got)
	}
}

func TestLedgerIncrementRejectsNonPositive(t *testing.T) {
	st := newMemStore(nil)
	ledger := core.NewLedger(st)

	for _, amount := range []string{"0", "-1"} {
		if _, err := ledger.Increment(core.ProductVinil, qty(amount)); !errors.Is(err, core.ErrInvalidQuantity) {
			t.Errorf("amount %s: expected ErrInvalidQuantity, got %v", amount, err)
		}
	}
	if st.saves != 0 {
		t.Errorf("rejected increments must not write, saves=%d", st.saves)
	}
}

func TestLedgerTryDecrementDoesNotMutate(t *testing.T) {
	st := newMemStore(map[core.Product]decimal.Decimal{core.ProductVinil: qty("5")})
	ledger := core.NewLedger(st)

	remaining, err := ledger.TryDecrement(core.ProductVinil, qty("3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining.String() != "2" {
		t.Errorf("would-be quantity got %s, want 2", remaining)
	}
	if got := st.levels[core.ProductVinil]; got.String() != "5" {
		t.Errorf("check phase must not mutate, stock now %s", got)
	}
	if st.saves != 0 {
		t.Errorf("check phase must not write, saves=%d", st.saves)
	}
}

func TestLedgerTryDecrementFailures(t *testing.T) {
	st := newMemStore(map[core.Product]decimal.Decimal{core.ProductVinil: qty("2")})
	ledger := core.NewLedger(st)

	_, err := ledger.TryDecrement(core.ProductVinil, qty("5"))
	if !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	var stockErr *core.StockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected *StockError, got %T", err)
	}
	if stockErr.Available.String() != "2" || stockErr.Requested.String() != "5" {
		t.Errorf("amounts got available=%s requested=%s", stockErr.Available, stockErr.Requested)
	}

	_, err = ledger.TryDecrement(core.ProductTaza, qty("1"))
	if !errors.Is(err, core.ErrProductNotInInventory) {
		t.Errorf("expected ErrProductNotInInventory, got %v", err)
	}
}

func TestLedgerCommitDecrementToZeroResting(t *testing.T) {
	st := newMemStore(map[core.Product]decimal.Decimal{core.ProductVinil: qty("3")})
	ledger := core.NewLedger(st)

	remaining, err := ledger.CommitDecrement(core.ProductVinil, qty("3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !remaining.IsZero() {
		t.Errorf("got %s, want 0", remaining)
	}
	// Zero is a legal resting value: the entry stays, it is never deleted.
	if got, ok := st.levels[core.ProductVinil]; !ok || !got.IsZero() {
		t.Errorf("entry should remain at zero, got %s (present=%v)", got, ok)
	}
}

func TestLedgerCommitDecrementsAllOrNothing(t *testing.T) {
	st := newMemStore(map[core.Product]decimal.Decimal{
		core.ProductTaza:           qty("10"),
		core.ProductPapelImpresion: qty("2"),
	})
	ledger := core.NewLedger(st)

	_, err := ledger.CommitDecrements([]core.DecrementLine{
		{Product: core.ProductTaza, Quantity: qty("4")},
		{Product: core.ProductPapelImpresion, Quantity: qty("4")},
	})
	if !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := st.levels[core.ProductTaza]; got.String() != "10" {
		t.Errorf("taza must be untouched after abort, got %s", got)
	}
	if got := st.levels[core.ProductPapelImpresion]; got.String() != "2" {
		t.Errorf("papel impresión must be untouched after abort, got %s", got)
	}
	if st.saves != 0 {
		t.Errorf("aborted commit must not write, saves=%d", st.saves)
	}
}

func TestLedgerCommitDecrementsSingleWrite(t *testing.T) {
	st := newMemStore(map[core.Product]decimal.Decimal{
		core.ProductTaza:           qty("10"),
		core.ProductPapelImpresion: qty("4"),
	})
	ledger := core.NewLedger(st)

	levels, err := ledger.CommitDecrements([]core.DecrementLine{
		{Product: core.ProductTaza, Quantity: qty("4")},
		{Product: core.ProductPapelImpresion, Quantity: qty("4")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if levels[core.ProductTaza].String() != "6" || !levels[core.ProductPapelImpresion].IsZero() {
		t.Errorf("got taza=%s papel=%s", levels[core.ProductTaza], levels[core.ProductPapelImpresion])
	}
	if st.saves != 1 {
		t.Errorf("multi-line commit must land in one write, saves=%d", st.saves)
	}
}
