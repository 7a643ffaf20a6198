// Package table orders, formats, and colorizes instrument records for
// tabular display. Everything here is pure: sorting returns a new slice and
// formatting has no side effects, so the presentation layer can re-run both
// on every refresh.
package table
