// Package ui is the terminal front end: a bubbletea program that renders the
// active watchlist as a sortable quote table, with tabs for switching lists,
// incremental instrument search, and connection status in the header.
//
// The program polls the tick store and watchlist collection on a fixed
// refresh tick rather than consuming stream events directly; the message
// router owns the event channel.
package ui
