package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the variant stats sidebar
	sidebarWidth       = 26  // Width of the variant stats sidebar
	maxRounds          = 200 // Max rounds to load
)

// HistoryScope selects which rounds the history screen lists.
type HistoryScope int

const (
	ScopeSession HistoryScope = iota // rounds of the current session
	ScopeAll                         // rounds of every session in this process
)

// String returns the tab label of the scope.
func (s HistoryScope) String() string {
	if s == ScopeAll {
		return "All sessions"
	}
	return "This session"
}

// HistoryKeyMap defines the key bindings for the round history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "session/all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the round history screen.
type HistoryModel struct {
	ledger      *storage.Store
	session     string
	scope       HistoryScope
	rounds      []storage.RoundRecord
	summary     *storage.Summary
	stats       []*storage.VariantStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the variant stats sidebar
	loadErr     error
}

// NewHistoryModel creates a new history model for a session.
func NewHistoryModel(ledger *storage.Store, session string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		ledger:      ledger,
		session:     session,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Arena", Width: 9},
		{Title: "Result", Width: 7},
		{Title: "Δ", Width: 3},
		{Title: "Score", Width: 6},
		{Title: "Secs", Width: 6},
		{Title: "Time", Width: 9},
	}

	tableHeight := m.height - 10 // Leave room for title, summary, help and margins
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rounds, the session summary and variant stats from the ledger.
func (m *HistoryModel) load() {
	m.rounds, m.summary, m.stats, m.loadErr = nil, nil, nil, nil
	if m.ledger == nil {
		m.updateTableRows()
		return
	}

	session := m.session
	if m.scope == ScopeAll {
		session = ""
	}

	rounds, err := m.ledger.Rounds(session, maxRounds)
	if err != nil {
		m.loadErr = err
	}
	m.rounds = rounds

	if m.session != "" {
		if sum, err := m.ledger.Summary(m.session); err == nil {
			m.summary = sum
		} else {
			m.loadErr = err
		}
	}

	if stats, err := m.ledger.VariantStats(); err == nil {
		m.stats = sortedStats(stats)
	} else {
		m.loadErr = err
	}

	m.updateTableRows()
}

// sortedStats orders variant stats by variant ID.
func sortedStats(stats map[string]*storage.VariantStats) []*storage.VariantStats {
	out := make([]*storage.VariantStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Variant < out[j].Variant })
	return out
}

// updateTableRows updates the table with the loaded rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = historyRow(r)
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// historyRow formats one ledger record as a table row.
// Seconds assume the default tick rate of 60.
func historyRow(r storage.RoundRecord) table.Row {
	return table.Row{
		fmt.Sprintf("#%d", r.Round),
		r.Variant,
		r.Outcome,
		fmt.Sprintf("%+d", r.Delta),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%.1f", float64(r.Ticks)/60),
		r.CreatedAt.Format("15:04:05"),
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.scope == ScopeSession {
				m.scope = ScopeAll
			} else {
				m.scope = ScopeSession
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("ROUND HISTORY - %s", m.scope)
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if line := m.summaryLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summaryLine describes the current session's record.
func (m HistoryModel) summaryLine() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.loadErr.Error())
	}
	if m.summary == nil || m.summary.Rounds == 0 {
		return ""
	}
	s := m.summary
	return fmt.Sprintf("%d rounds  W %d  L %d  D %d  score %+d", s.Rounds, s.Wins, s.Losses, s.Draws, s.Score)
}

// renderSidebar renders per-variant totals.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Arenas\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if len(m.stats) == 0 {
		sb.WriteString("none yet\n")
	}
	for _, s := range m.stats {
		sb.WriteString(fmt.Sprintf("%-9s %d/%d/%d\n", s.Variant, s.Wins, s.Losses, s.Draws))
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds played yet.\nFinish a round to see it here.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(ledger *storage.Store, session string, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(ledger, session, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
