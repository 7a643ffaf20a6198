package ui

import (
	"testing"
	"time"

	"github.com/kitedesk/kitedesk/internal/model"
	"github.com/kitedesk/kitedesk/internal/table"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

func testModel(t *testing.T) Model {
	t.Helper()

	store := tickstore.New()
	lists := watchlist.New()
	return New(store, lists, nil, nil, "en", time.Second, nil)
}

func cmp(v float64) *float64 { return &v }

func TestModel_RowsJoinWithPlaceholders(t *testing.T) {
	m := testModel(t)

	m.lists.SetAll([]model.Watchlist{{
		ID:   "default",
		Name: "Default",
		Symbols: []model.Entry{
			{Symbol: "RELIANCE", Exchange: "NSE"},
			{Symbol: "NEWLISTING", Exchange: "NSE"},
		},
	}})
	m.store.ReplaceAll([]model.Tick{
		{Symbol: "RELIANCE", Exchange: "NSE", CMP: cmp(2950)},
	})

	rows := m.rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Symbol != "RELIANCE" || rows[0].CMP == nil {
		t.Errorf("first row = %+v", rows[0])
	}
	// No tick yet: the membership still renders, with every value absent.
	if rows[1].Symbol != "NEWLISTING" || rows[1].CMP != nil {
		t.Errorf("placeholder row = %+v", rows[1])
	}
}

func TestModel_RowsSorted(t *testing.T) {
	m := testModel(t)

	m.lists.SetAll([]model.Watchlist{{
		ID:   "default",
		Name: "Default",
		Symbols: []model.Entry{
			{Symbol: "HIGH", Exchange: "NSE"},
			{Symbol: "LOW", Exchange: "NSE"},
			{Symbol: "NODATA", Exchange: "NSE"},
		},
	}})
	m.store.ReplaceAll([]model.Tick{
		{Symbol: "HIGH", Exchange: "NSE", CMP: cmp(300)},
		{Symbol: "LOW", Exchange: "NSE", CMP: cmp(100)},
	})

	m.sortState = table.SortState{Field: table.FieldCMP, Dir: table.DirDesc}

	rows := m.rows()
	if rows[0].Symbol != "HIGH" || rows[1].Symbol != "LOW" || rows[2].Symbol != "NODATA" {
		t.Errorf("order = %s %s %s, want HIGH LOW NODATA",
			rows[0].Symbol, rows[1].Symbol, rows[2].Symbol)
	}
}

func TestModel_CycleActive(t *testing.T) {
	m := testModel(t)

	m.lists.SetAll([]model.Watchlist{
		{ID: "default", Name: "Default"},
		{ID: "tech", Name: "Tech"},
		{ID: "banks", Name: "Banks"},
	})

	m.cycleActive(true)
	if got := m.lists.ActiveID(); got != "tech" {
		t.Errorf("active = %s, want tech", got)
	}
	m.cycleActive(true)
	m.cycleActive(true)
	if got := m.lists.ActiveID(); got != "default" {
		t.Errorf("active after wrap = %s, want default", got)
	}
	m.cycleActive(false)
	if got := m.lists.ActiveID(); got != "banks" {
		t.Errorf("active backwards = %s, want banks", got)
	}
}
