package table

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dash is the placeholder for absent values.
const Dash = "–"

// Formatter renders numeric fields for display.
type Formatter struct {
	p *message.Printer
}

// NewFormatter creates a formatter for the given locale. The locale drives
// digit grouping for plain numbers.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Number renders a plain numeric value: fixed two decimals with locale
// digit grouping.
func (f *Formatter) Number(v *float64) string {
	if v == nil {
		return Dash
	}
	return f.p.Sprintf("%.2f", *v)
}

// Percent renders a percentage distance: signed two decimals with an
// explicit leading + for non-negative values.
func (f *Formatter) Percent(v *float64) string {
	if v == nil {
		return Dash
	}
	return fmt.Sprintf("%+.2f%%", *v)
}

// Ratio renders the buy-sell ratio: two decimals, no grouping.
func (f *Formatter) Ratio(v *float64) string {
	if v == nil {
		return Dash
	}
	return fmt.Sprintf("%.2f", *v)
}

// Quantity abbreviates large quantities with Indian-market magnitude
// suffixes: crores above 1,00,00,000, lakhs above 1,00,000, thousands
// above 1,000, the raw integer below that.
func (f *Formatter) Quantity(v *float64) string {
	if v == nil {
		return Dash
	}
	n := *v
	switch {
	case n >= 1e7:
		return fmt.Sprintf("%.2fCr", n/1e7)
	case n >= 1e5:
		return fmt.Sprintf("%.2fL", n/1e5)
	case n >= 1e3:
		return fmt.Sprintf("%.2fK", n/1e3)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}

// Tone classifies a value for colorization.
type Tone int

const (
	ToneNone Tone = iota // absent: no color
	ToneNeutral
	TonePositive
	ToneNegative
)

// RatioTone colorizes the buy-sell ratio: above parity is positive, below
// is negative, exactly 1 is neutral.
func RatioTone(v *float64) Tone {
	if v == nil {
		return ToneNone
	}
	switch {
	case *v > 1:
		return TonePositive
	case *v < 1:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// DeltaTone colorizes signed distances and changes: positive above zero,
// negative below, neutral at exactly zero.
func DeltaTone(v *float64) Tone {
	if v == nil {
		return ToneNone
	}
	switch {
	case *v > 0:
		return TonePositive
	case *v < 0:
		return ToneNegative
	default:
		return ToneNeutral
	}
}
