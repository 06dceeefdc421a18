// Package tui is a read-only terminal browser over a loaded workspace.
// All mutation goes through the CLI or the web UI.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"travelog/logbook"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for the browser.
type Model struct {
	workspace *logbook.Workspace

	rows     []logbook.Row
	summary  logbook.Summary
	selected int

	sortColumn logbook.Column
	ascending  bool

	statusLine string
	errorLine  string
}

// NewModel seeds the browser on the workspace's active collection.
func NewModel(workspace *logbook.Workspace) Model {
	m := Model{
		workspace:  workspace,
		sortColumn: logbook.ColumnStart,
		ascending:  true,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "g":
		m.selected = 0
	case "G":
		if len(m.rows) > 0 {
			m.selected = len(m.rows) - 1
		}
	case "]":
		return m.switchCollection(1)
	case "[":
		return m.switchCollection(-1)
	case "s":
		m.sortColumn = nextColumn(m.sortColumn)
		m.refresh()
	case "o":
		m.ascending = !m.ascending
		m.refresh()
	case "r":
		m.refresh()
		m.statusLine = "Refreshed."
	}

	return m, nil
}

func (m Model) switchCollection(step int) (tea.Model, tea.Cmd) {
	count := m.workspace.Len()
	if count == 0 {
		return m, nil
	}

	index := m.workspace.ActiveIndex()
	if index < 0 {
		index = 0
	} else {
		index = ((index+step)%count + count) % count
	}
	if err := m.workspace.SwitchActive(index); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	m.selected = 0
	m.refresh()
	if collection, ok := m.workspace.Active(); ok {
		m.statusLine = fmt.Sprintf("Switched to %q.", collection.Name())
	}
	return m, nil
}

func (m *Model) refresh() {
	collection, ok := m.workspace.Active()
	if !ok {
		m.rows = nil
		m.summary = logbook.Summary{}
		m.selected = 0
		return
	}

	m.rows = logbook.SortRows(collection.Rows(), m.sortColumn, m.ascending)
	m.summary = collection.Aggregate()
	if m.selected >= len(m.rows) {
		m.selected = max(0, len(m.rows)-1)
	}
	m.errorLine = ""
}

func nextColumn(column logbook.Column) logbook.Column {
	columns := logbook.Columns()
	for i, candidate := range columns {
		if candidate == column {
			return columns[(i+1)%len(columns)]
		}
	}
	return columns[0]
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	collection, ok := m.workspace.Active()
	if !ok {
		b.WriteString("No collections yet. Create one with: travelog collection create <name>\n")
		b.WriteString("\nq quit\n")
		return b.String()
	}

	order := "asc"
	if !m.ascending {
		order = "desc"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d of %d)", collection.Name(), m.workspace.ActiveIndex()+1, m.workspace.Len())))
	b.WriteString(faintStyle.Render(fmt.Sprintf("  sorted by %s %s", m.sortColumn, order)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("(no logs)\n")
	} else {
		for i, row := range m.rows {
			line := fmt.Sprintf("%-14s %-14s %-9s %-22s %-22s %s",
				clip(row.Origin, 14), clip(row.Destination, 14), clip(row.Mode, 9),
				row.Start, row.End, row.Duration)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%d trips, total %s", m.summary.Count, m.summary.Total))
	if m.summary.Count >= 2 {
		b.WriteString(fmt.Sprintf(", average %s", m.summary.Average))
	}
	b.WriteByte('\n')

	if m.selected < len(m.rows) && m.rows[m.selected].Description != "" {
		b.WriteString(faintStyle.Render("note: " + m.rows[m.selected].Description))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n! " + m.errorLine + "\n")
	} else if m.statusLine != "" {
		b.WriteString("\n" + m.statusLine + "\n")
	}

	b.WriteByte('\n')
	b.WriteString(faintStyle.Render("j/k select  g/G first/last  [/] collection  s sort column  o sort order  r refresh  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func clip(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
