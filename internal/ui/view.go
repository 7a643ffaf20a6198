package ui

import (
	"fmt"
	"strings"

	"github.com/kitedesk/kitedesk/internal/connection"
	"github.com/kitedesk/kitedesk/internal/version"
)

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())

	if m.mode != modeNormal {
		b.WriteString("\n")
		b.WriteString(m.renderPrompt())
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("  " + m.statusLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	st := m.conn.Status()

	if st.State == connection.StateTerminated {
		text := " AUTH REQUIRED — session closed. press r to reconnect after logging in "
		if m.loginURL != "" {
			text = " AUTH REQUIRED — log in at " + m.loginURL + " then press r "
		}
		return termBarStyle.Render(padOrTrunc(text, m.width))
	}

	authTag := "auth: no session"
	if m.auth.Authenticated {
		authTag = "auth: ok"
	}

	text := fmt.Sprintf(" kitedesk %s    conn: %s    %s    instruments: %d ",
		version.Version, st.State, authTag, m.store.Len())
	return headerBarStyle.Render(padOrTrunc(text, m.width))
}

func (m Model) renderTabs() string {
	active := m.lists.ActiveID()

	var parts []string
	for _, wl := range m.lists.All() {
		label := " " + wl.Name + " "
		if wl.ID == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	if len(parts) == 0 {
		return dimStyle.Render("  (no watchlists)")
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) renderTable() string {
	var b strings.Builder

	// Column headers, selected column emphasized.
	b.WriteString("  ")
	for i, c := range columns {
		style := colHeaderStyle
		if i == m.selCol {
			style = colActiveStyle
		}
		b.WriteString(style.Render(c.header(m.sortState)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("  (empty watchlist — press / to add instruments)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range rows {
		hl := i == m.selRow
		b.WriteString(hlStyle(dimStyle, hl).Render("  "))
		for j, c := range columns {
			text, style := c.cell(row, m.fmtr)
			if j == 0 {
				style = symbolStyle
			}
			b.WriteString(hlStyle(style, hl).Render(c.pad(text)))
			b.WriteString(hlStyle(dimStyle, hl).Render(" "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderPrompt() string {
	var b strings.Builder

	label := " search: "
	switch m.mode {
	case modeNewList:
		label = " new list: "
	case modeRename:
		label = " rename: "
	}
	b.WriteString(promptStyle.Render(label))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.mode == modeSearch {
		switch {
		case m.searching:
			b.WriteString(dimStyle.Render("  searching..."))
			b.WriteString("\n")
		case m.results != nil && len(m.results) == 0:
			b.WriteString(dimStyle.Render("  (no matches)"))
			b.WriteString("\n")
		default:
			for i, inst := range m.results {
				line := fmt.Sprintf("  %-12s %-5s %s", inst.Symbol, inst.Exchange, inst.Name)
				style := plainStyle
				if i == m.resultSel {
					style = hlStyle(plainStyle, true)
				}
				b.WriteString(style.Render(padOrTrunc(line, m.width)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (m Model) renderFooter() string {
	text := " q quit  ←/→ column  s sort  ↑/↓ row  tab list  n new  R rename  d delete  / search  x remove  r reconnect  l logout"
	return footerBarStyle.Render(padOrTrunc(text, m.width))
}

// padOrTrunc pads s with spaces to width, or truncates if longer. Counted in
// runes; styled segments must be padded before styling.
func padOrTrunc(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
