// Package tui provides an interactive terminal view over a classified export.
package tui

import (
	"errors"
	"fmt"

	"github.com/Veraticus/buybox-master/internal/engine"
	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/tui/themes"
	"github.com/Veraticus/buybox-master/internal/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows taken by everything except the table body.
const chromeHeight = 12

// Model holds the main TUI state.
type Model struct {
	theme     themes.Theme
	session   *engine.Session
	lastErr   error
	table     table.Model
	search    textinput.Model
	winRate   progress.Model
	help      help.Model
	keymap    KeyMap
	config    Config
	status    string
	width     int
	height    int
	searching bool
	quitting  bool
}

// New creates the live view model over session.
func New(session *engine.Session, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search ASIN or title"
	search.SetValue(session.State().Search)

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	m := Model{
		theme:   cfg.Theme,
		session: session,
		search:  search,
		winRate: bar,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		config:  cfg,
		width:   cfg.Width,
		height:  cfg.Height,
	}

	m.table = table.New(
		table.WithFocused(true),
		table.WithStyles(m.tableStyles()),
	)
	m.resize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case exportDoneMsg:
		m.handleExport(msg)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.status = ""
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.session.SetSearch("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keymap.CycleFilter):
		m.session.CycleStatusFilter()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CycleTarget):
		m.session.CycleTarget()
		m.status = "Target: " + targetLabel(m.session.Target())
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.Sort):
		idx := int(msg.Runes[0] - '1')
		m.session.RequestSort(view.SortKeys[idx])
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.Export):
		visible := m.session.Visible()
		if len(visible) == 0 {
			m.lastErr = export.ErrNothingToExport
			m.status = ""
			return m, nil
		}
		m.status = "Exporting..."
		return m, exportCmd(m.config.ExportDir, visible, m.config)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateSearch edits the search box; every keystroke refilters.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ConfirmInput):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.ClearSearch):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.searching {
		m.search, cmd = m.search.Update(msg)
	}
	m.session.SetSearch(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m *Model) handleExport(msg exportDoneMsg) {
	if msg.err != nil {
		m.lastErr = msg.err
		m.status = ""
		return
	}
	m.lastErr = nil
	m.status = fmt.Sprintf("Exported %d listings to %s", len(m.session.Visible()), msg.path)
}

// refresh rebuilds the table from the session's visible listings.
func (m *Model) refresh() {
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())

	n := len(m.session.Visible())
	cursor := min(m.table.Cursor(), n-1)
	m.table.SetCursor(max(cursor, 0))
}

func (m *Model) resize() {
	m.table.SetHeight(max(m.height-chromeHeight, 3))
	m.winRate.Width = min(max(m.width/3, 10), 40)
	m.search.Width = max(m.width/2, 20)
	m.help.Width = m.width
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Err returns the last error shown to the user.
func (m Model) Err() error {
	return m.lastErr
}

// NothingToExport reports whether the last export found no rows.
func (m Model) NothingToExport() bool {
	return errors.Is(m.lastErr, export.ErrNothingToExport)
}
