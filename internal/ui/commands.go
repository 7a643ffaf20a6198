package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kitedesk/kitedesk/internal/api"
	"github.com/kitedesk/kitedesk/internal/model"
)

// Messages.
type tickMsg time.Time

type authStatusMsg struct {
	status api.AuthStatus
	err    error
}

type loginURLMsg struct {
	url string
	err error
}

type watchlistsLoadedMsg struct {
	lists []model.Watchlist
	err   error
}

// watchlistSavedMsg carries the canonical watchlist after a create, add, or
// remove succeeded.
type watchlistSavedMsg struct {
	wl       model.Watchlist
	activate bool
	err      error
}

type watchlistDeletedMsg struct {
	id  string
	err error
}

type searchResultsMsg struct {
	query   string
	results []model.Instrument
	err     error
}

type logoutDoneMsg struct{ err error }

type reconnectDoneMsg struct{ err error }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadAuthStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.api.GetAuthStatus(context.Background())
		return authStatusMsg{status: status, err: err}
	}
}

func (m Model) loadLoginURL() tea.Cmd {
	return func() tea.Msg {
		u, err := m.api.GetLoginURL(context.Background())
		return loginURLMsg{url: u, err: err}
	}
}

func (m Model) loadWatchlists() tea.Cmd {
	return func() tea.Msg {
		lists, err := m.api.GetWatchlists(context.Background())
		return watchlistsLoadedMsg{lists: lists, err: err}
	}
}

func (m Model) createWatchlist(name string) tea.Cmd {
	return func() tea.Msg {
		wl, err := m.api.CreateWatchlist(context.Background(), name)
		return watchlistSavedMsg{wl: wl, activate: true, err: err}
	}
}

func (m Model) renameWatchlist(id, name string) tea.Cmd {
	return func() tea.Msg {
		wl, err := m.api.RenameWatchlist(context.Background(), id, name)
		return watchlistSavedMsg{wl: wl, err: err}
	}
}

func (m Model) deleteWatchlist(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.api.DeleteWatchlist(context.Background(), id)
		return watchlistDeletedMsg{id: id, err: err}
	}
}

func (m Model) addSymbol(listID, symbol, exchange string) tea.Cmd {
	return func() tea.Msg {
		wl, err := m.api.AddSymbol(context.Background(), listID, symbol, exchange)
		return watchlistSavedMsg{wl: wl, err: err}
	}
}

func (m Model) removeSymbol(listID, symbol, exchange string) tea.Cmd {
	return func() tea.Msg {
		wl, err := m.api.RemoveSymbol(context.Background(), listID, symbol, exchange)
		return watchlistSavedMsg{wl: wl, err: err}
	}
}

func (m Model) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.api.SearchInstruments(context.Background(), query, "")
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func (m Model) logout() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: m.api.Logout(context.Background())}
	}
}

func (m Model) reconnect() tea.Cmd {
	return func() tea.Msg {
		return reconnectDoneMsg{err: m.conn.Reconnect()}
	}
}
