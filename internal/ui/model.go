package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/kitedesk/kitedesk/internal/api"
	"github.com/kitedesk/kitedesk/internal/connection"
	"github.com/kitedesk/kitedesk/internal/model"
	"github.com/kitedesk/kitedesk/internal/table"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeNewList
	modeRename
)

// Model is the bubbletea model for the watchlist terminal.
type Model struct {
	store  *tickstore.Store
	lists  *watchlist.Collection
	conn   *connection.Manager
	api    *api.Client
	engine *table.Engine
	fmtr   *table.Formatter
	logger *slog.Logger

	refresh time.Duration

	sortState table.SortState
	selCol    int
	selRow    int

	mode      inputMode
	input     textinput.Model
	results   []model.Instrument
	resultSel int
	searching bool

	auth        api.AuthStatus
	loginURL    string
	loadingURL  bool
	statusLine  string

	width, height int
	ready         bool
}

// New creates the terminal model. The locale drives collation and number
// grouping; an unparseable tag falls back to English.
func New(store *tickstore.Store, lists *watchlist.Collection, conn *connection.Manager, apiClient *api.Client, locale string, refresh time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("unknown locale, using English", "locale", locale)
		tag = language.English
	}

	ti := textinput.New()
	ti.CharLimit = 64

	return Model{
		store:   store,
		lists:   lists,
		conn:    conn,
		api:     apiClient,
		engine:  table.NewEngine(tag),
		fmtr:    table.NewFormatter(tag),
		logger:  logger,
		refresh: refresh,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.refresh), m.loadAuthStatus(), m.loadWatchlists())
}

// rows joins the active watchlist against the current snapshot. Instruments
// with no tick yet become placeholder rows so membership is always visible.
func (m Model) rows() []model.Tick {
	wl, ok := m.lists.Active()
	if !ok {
		return nil
	}
	snap := m.store.Snapshot()

	out := make([]model.Tick, 0, len(wl.Symbols))
	for _, e := range wl.Symbols {
		if t, ok := snap[e.Key()]; ok {
			out = append(out, t)
			continue
		}
		out = append(out, model.Tick{Symbol: e.Symbol, Exchange: e.Exchange})
	}
	return m.engine.Sort(out, m.sortState)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		// Fetch the login URL once the session goes terminal so the header
		// can show where to re-authenticate.
		var cmd tea.Cmd
		if m.conn.Status().State == connection.StateTerminated && m.loginURL == "" && !m.loadingURL {
			m.loadingURL = true
			cmd = m.loadLoginURL()
		}
		return m, tea.Batch(tickCmd(m.refresh), cmd)

	case authStatusMsg:
		if msg.err != nil {
			m.logger.Warn("auth status check failed", "error", msg.err)
			return m, nil
		}
		m.auth = msg.status
		return m, nil

	case loginURLMsg:
		m.loadingURL = false
		if msg.err != nil {
			m.logger.Warn("login url fetch failed", "error", msg.err)
			return m, nil
		}
		m.loginURL = msg.url
		return m, nil

	case watchlistsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading watchlists", "error", msg.err)
			m.statusLine = "watchlist load failed: " + msg.err.Error()
			return m, nil
		}
		m.lists.SetAll(msg.lists)
		return m, nil

	case watchlistSavedMsg:
		if msg.err != nil {
			m.logger.Warn("watchlist update failed", "error", msg.err)
			m.statusLine = "update failed: " + msg.err.Error()
			return m, nil
		}
		m.lists.Apply(msg.wl)
		if msg.activate {
			m.lists.SetActive(msg.wl.ID)
		}
		m.statusLine = ""
		return m, nil

	case watchlistDeletedMsg:
		if msg.err != nil {
			m.logger.Warn("watchlist delete failed", "id", msg.id, "error", msg.err)
			m.statusLine = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.lists.Remove(msg.id)
		m.statusLine = ""
		return m, nil

	case searchResultsMsg:
		m.searching = false
		if msg.err != nil {
			m.logger.Warn("search failed", "query", msg.query, "error", msg.err)
			m.statusLine = "search failed: " + msg.err.Error()
			return m, nil
		}
		m.results = msg.results
		m.resultSel = 0
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.statusLine = "logout failed: " + msg.err.Error()
			return m, nil
		}
		m.statusLine = "logged out"
		m.loginURL = ""
		return m, m.loadAuthStatus()

	case reconnectDoneMsg:
		if msg.err != nil {
			m.statusLine = "reconnect failed: " + msg.err.Error()
			return m, nil
		}
		m.statusLine = ""
		m.loginURL = ""
		return m, tea.Batch(m.loadAuthStatus(), m.loadWatchlists())
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left":
		if m.selCol > 0 {
			m.selCol--
		}
		return m, nil

	case "right":
		if m.selCol < len(columns)-1 {
			m.selCol++
		}
		return m, nil

	case "s", "enter":
		m.sortState = m.sortState.Next(columns[m.selCol].field)
		return m, nil

	case "up":
		if m.selRow > 0 {
			m.selRow--
		}
		return m, nil

	case "down":
		if n := len(m.rows()); m.selRow < n-1 {
			m.selRow++
		}
		return m, nil

	case "tab", "shift+tab":
		m.cycleActive(msg.String() == "tab")
		m.selRow = 0
		return m, nil

	case "n":
		m.mode = modeNewList
		m.input.Placeholder = "new watchlist name"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "R":
		wl, ok := m.lists.Active()
		if !ok {
			return m, nil
		}
		m.mode = modeRename
		m.input.Placeholder = "rename watchlist"
		m.input.SetValue(wl.Name)
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		id := m.lists.ActiveID()
		if id == model.DefaultWatchlistID {
			m.statusLine = "the default watchlist cannot be deleted"
			return m, nil
		}
		return m, m.deleteWatchlist(id)

	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "search instruments"
		m.input.SetValue("")
		m.input.Focus()
		m.results = nil
		m.resultSel = 0
		return m, textinput.Blink

	case "x":
		rows := m.rows()
		if m.selRow >= len(rows) {
			return m, nil
		}
		row := rows[m.selRow]
		return m, m.removeSymbol(m.lists.ActiveID(), row.Symbol, row.Exchange)

	case "r":
		m.statusLine = "reconnecting..."
		return m, m.reconnect()

	case "l":
		return m, m.logout()
	}

	return m, nil
}

// updateInput handles key events while the search or new-list prompt is
// open.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.results = nil
		return m, nil

	case "up":
		if m.mode == modeSearch && m.resultSel > 0 {
			m.resultSel--
			return m, nil
		}

	case "down":
		if m.mode == modeSearch && m.resultSel < len(m.results)-1 {
			m.resultSel++
			return m, nil
		}

	case "enter":
		if m.mode == modeNewList || m.mode == modeRename {
			rename := m.mode == modeRename
			name := strings.TrimSpace(m.input.Value())
			m.mode = modeNormal
			m.input.Blur()
			if name == "" {
				return m, nil
			}
			if rename {
				return m, m.renameWatchlist(m.lists.ActiveID(), name)
			}
			return m, m.createWatchlist(name)
		}

		// Search: first enter runs the query, the next adds the selection.
		if len(m.results) > 0 {
			inst := m.results[m.resultSel]
			id := m.lists.ActiveID()
			m.mode = modeNormal
			m.input.Blur()
			m.results = nil
			if m.lists.Contains(id, inst.Symbol, inst.Exchange) {
				m.statusLine = inst.Symbol + " is already in the watchlist"
				return m, nil
			}
			return m, m.addSymbol(id, inst.Symbol, inst.Exchange)
		}

		q := strings.TrimSpace(m.input.Value())
		if q == "" {
			return m, nil
		}
		m.searching = true
		return m, m.search(q)
	}

	// Editing the query invalidates stale results.
	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeSearch && m.input.Value() != prev {
		m.results = nil
		m.resultSel = 0
	}
	return m, cmd
}

// cycleActive moves the active watchlist forward or backward in display
// order.
func (m *Model) cycleActive(forward bool) {
	all := m.lists.All()
	if len(all) < 2 {
		return
	}
	cur := 0
	active := m.lists.ActiveID()
	for i, wl := range all {
		if wl.ID == active {
			cur = i
			break
		}
	}
	if forward {
		cur = (cur + 1) % len(all)
	} else {
		cur = (cur - 1 + len(all)) % len(all)
	}
	m.lists.SetActive(all[cur].ID)
}
