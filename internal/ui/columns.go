package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kitedesk/kitedesk/internal/model"
	"github.com/kitedesk/kitedesk/internal/table"
)

type colKind int

const (
	colText colKind = iota
	colNumber   // grouped two-decimal price
	colPercent  // signed percent, delta tone
	colQuantity // abbreviated quantity
	colRatio    // buy-sell ratio, parity tone
)

type column struct {
	title string
	field table.Field
	width int
	kind  colKind
}

// columns is the display order of the quote table.
var columns = []column{
	{"Symbol", table.FieldSymbol, 12, colText},
	{"CMP", table.FieldCMP, 10, colNumber},
	{"Chg%", table.FieldChange, 8, colPercent},
	{"52WH", table.FieldW52High, 10, colNumber},
	{"52WL", table.FieldW52Low, 10, colNumber},
	{"DFL%", table.FieldDFL, 8, colPercent},
	{"DFH%", table.FieldDFH, 8, colPercent},
	{"DayLo", table.FieldDayLow, 10, colNumber},
	{"DayHi", table.FieldDayHigh, 10, colNumber},
	{"DFDL%", table.FieldDFDL, 8, colPercent},
	{"DFDH%", table.FieldDFDH, 8, colPercent},
	{"Buy", table.FieldBuyers, 9, colQuantity},
	{"Sell", table.FieldSellers, 9, colQuantity},
	{"BSR", table.FieldBSR, 7, colRatio},
	{"Vol", table.FieldVolume, 10, colQuantity},
	{"LTT", table.FieldLastTradeTime, 9, colText},
}

// cell renders one field of one tick: formatted text plus its tone style.
func (c column) cell(t model.Tick, f *table.Formatter) (string, lipgloss.Style) {
	switch c.kind {
	case colNumber:
		return f.Number(c.numPtr(t)), plainStyle
	case colPercent:
		v := c.numPtr(t)
		return f.Percent(v), toneStyle(table.DeltaTone(v))
	case colQuantity:
		return f.Quantity(c.numPtr(t)), plainStyle
	case colRatio:
		v := c.numPtr(t)
		return f.Ratio(v), toneStyle(table.RatioTone(v))
	default:
		return c.text(t), plainStyle
	}
}

func (c column) text(t model.Tick) string {
	switch c.field {
	case table.FieldSymbol:
		return t.Symbol
	case table.FieldExchange:
		return t.Exchange
	case table.FieldLastTradeTime:
		if t.LastTradeTime == "" {
			return table.Dash
		}
		return t.LastTradeTime
	default:
		return table.Dash
	}
}

func (c column) numPtr(t model.Tick) *float64 {
	switch c.field {
	case table.FieldCMP:
		return t.CMP
	case table.FieldW52High:
		return t.W52High
	case table.FieldW52Low:
		return t.W52Low
	case table.FieldDFL:
		return t.DFL
	case table.FieldDFH:
		return t.DFH
	case table.FieldDayLow:
		return t.DayLow
	case table.FieldDayHigh:
		return t.DayHigh
	case table.FieldDFDL:
		return t.DFDL
	case table.FieldDFDH:
		return t.DFDH
	case table.FieldBuyers:
		return t.Buyers
	case table.FieldSellers:
		return t.Sellers
	case table.FieldBSR:
		return t.BSR
	case table.FieldChange:
		return t.Change
	case table.FieldVolume:
		return t.Volume
	default:
		return nil
	}
}

// header renders a column title with the sort indicator for the active sort
// column.
func (c column) header(st table.SortState) string {
	title := c.title
	if st.Field == c.field {
		switch st.Dir {
		case table.DirAsc:
			title += "▲"
		case table.DirDesc:
			title += "▼"
		}
	}
	return c.pad(title)
}

// pad fits s to the column width: text columns left-aligned, numeric
// right-aligned. Width is counted in runes so the dash placeholder and sort
// arrows line up.
func (c column) pad(s string) string {
	runes := []rune(s)
	if len(runes) > c.width {
		return string(runes[:c.width])
	}
	fill := strings.Repeat(" ", c.width-len(runes))
	if c.kind == colText {
		return s + fill
	}
	return fill + s
}
