// Package model defines the domain types shared across the client:
// ticks pushed by the backend, watchlists, and search results.
package model
