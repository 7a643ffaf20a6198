package table

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kitedesk/kitedesk/internal/model"
)

// Direction is one leg of the tri-state sort cycle.
type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

func (d Direction) String() string {
	switch d {
	case DirAsc:
		return "asc"
	case DirDesc:
		return "desc"
	default:
		return "none"
	}
}

// SortState is the current sort column and direction. The zero value is
// unsorted.
type SortState struct {
	Field Field
	Dir   Direction
}

// Next returns the state after activating field f: the active column cycles
// none → asc → desc → none, and activating a different column always starts
// at ascending.
func (s SortState) Next(f Field) SortState {
	if s.Field != f || s.Dir == DirNone {
		return SortState{Field: f, Dir: DirAsc}
	}
	if s.Dir == DirAsc {
		return SortState{Field: f, Dir: DirDesc}
	}
	return SortState{}
}

// Engine sorts instrument records. It holds the collator used for
// locale-aware string ordering; a Collator is not safe for concurrent use,
// so neither is Engine.
type Engine struct {
	col *collate.Collator
}

// NewEngine creates a sort engine for the given locale.
func NewEngine(tag language.Tag) *Engine {
	return &Engine{col: collate.New(tag)}
}

// Sort returns rows ordered per st. The input slice is never modified; with
// no sort active the copy keeps the incoming order.
func (e *Engine) Sort(rows []model.Tick, st SortState) []model.Tick {
	out := make([]model.Tick, len(rows))
	copy(out, rows)

	if st.Dir == DirNone || st.Field == "" {
		return out
	}

	asc := st.Dir == DirAsc
	sort.SliceStable(out, func(i, j int) bool {
		return e.less(fieldValue(out[i], st.Field), fieldValue(out[j], st.Field), asc)
	})

	return out
}

// less orders two field values. Absent values go after present values in
// both directions; mixed kinds compare as equal so stable sort keeps their
// order.
func (e *Engine) less(a, b value, asc bool) bool {
	if a.kind == kindAbsent || b.kind == kindAbsent {
		return a.kind != kindAbsent && b.kind == kindAbsent
	}
	if a.kind != b.kind {
		return false
	}

	var c int
	switch a.kind {
	case kindNumber:
		switch {
		case a.num < b.num:
			c = -1
		case a.num > b.num:
			c = 1
		}
	case kindString:
		c = e.col.CompareString(a.str, b.str)
	}

	if asc {
		return c < 0
	}
	return c > 0
}
