// Package api is the client for the backend's REST surface: auth status and
// login flow, watchlist CRUD, and instrument search.
//
// Failures surface as *APIError carrying the backend's detail string. The
// package never retries; retry policy belongs to the caller.
package api
