package table

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatter_Number(t *testing.T) {
	fm := NewFormatter(language.English)

	if got := fm.Number(nil); got != Dash {
		t.Errorf("nil = %q, want %q", got, Dash)
	}
	if got := fm.Number(f(2950.456)); got != "2,950.46" {
		t.Errorf("2950.456 = %q, want 2,950.46", got)
	}
	if got := fm.Number(f(42)); got != "42.00" {
		t.Errorf("42 = %q, want 42.00", got)
	}
}

func TestFormatter_Percent(t *testing.T) {
	fm := NewFormatter(language.English)

	cases := []struct {
		in   *float64
		want string
	}{
		{nil, Dash},
		{f(3.456), "+3.46%"},
		{f(-3.456), "-3.46%"},
		{f(0), "+0.00%"},
	}
	for _, c := range cases {
		if got := fm.Percent(c.in); got != c.want {
			t.Errorf("Percent(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatter_Quantity(t *testing.T) {
	fm := NewFormatter(language.English)

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00K"},
		{54321, "54.32K"},
		{100000, "1.00L"},
		{250000, "2.50L"},
		{10000000, "1.00Cr"},
		{123456789, "12.35Cr"},
	}
	for _, c := range cases {
		if got := fm.Quantity(f(c.in)); got != c.want {
			t.Errorf("Quantity(%v) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := fm.Quantity(nil); got != Dash {
		t.Errorf("nil = %q, want %q", got, Dash)
	}
}

func TestRatioTone(t *testing.T) {
	cases := []struct {
		in   *float64
		want Tone
	}{
		{nil, ToneNone},
		{f(1.2), TonePositive},
		{f(0.8), ToneNegative},
		{f(1), ToneNeutral},
	}
	for _, c := range cases {
		if got := RatioTone(c.in); got != c.want {
			t.Errorf("RatioTone(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeltaTone(t *testing.T) {
	cases := []struct {
		in   *float64
		want Tone
	}{
		{nil, ToneNone},
		{f(0.01), TonePositive},
		{f(-0.01), ToneNegative},
		{f(0), ToneNeutral},
	}
	for _, c := range cases {
		if got := DeltaTone(c.in); got != c.want {
			t.Errorf("DeltaTone(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
