package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// History layout constants
const (
	maxMatches    = 100 // Max matches to load
	tableMinWidth = 50
)

// HistoryKeyMap defines the key bindings for the match history.
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Scope key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Scope, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Scope},
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
		Scope: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "mine/all"),
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

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store     *storage.Store
	player    string
	all       bool // Show every player instead of only player
	matches   []storage.Match
	tally     storage.Tally
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history screen for player's matches.
func NewHistoryModel(store *storage.Store, player string, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		player: player,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns sized to the screen.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 7},
		{Title: "CPU", Width: 6},
		{Title: "Time", Width: 8},
	}
	if extra := m.width - 4 - tableMinWidth - 2*len(columns); extra > 0 {
		columns[1].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, tally, help
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

func (m *HistoryModel) scope() string {
	if m.all {
		return ""
	}
	return m.player
}

// load reads matches and the tally for the current scope.
func (m *HistoryModel) load() {
	m.matches, m.tally, m.loadErr = nil, storage.Tally{}, nil
	if m.store != nil {
		m.matches, m.loadErr = m.store.RecentMatches(m.scope(), maxMatches)
		if m.loadErr == nil {
			m.tally, m.loadErr = m.store.Tally(m.scope())
		}
	}

	rows := make([]table.Row, len(m.matches))
	for i, match := range m.matches {
		rows[i] = MatchRow(match)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// MatchRow formats a match as Date, Player, Score, Winner, CPU and Time cells.
func MatchRow(m storage.Match) table.Row {
	return table.Row{
		m.CreatedAt.Local().Format("Jan 02 15:04"),
		m.Player,
		fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
		m.Winner,
		m.CPUSide,
		m.Duration.Round(time.Second).String(),
	}
}

// TallyLine summarises a tally on one line.
func TallyLine(t storage.Tally) string {
	line := fmt.Sprintf("%d matches  |  left %d  right %d  abandoned %d",
		t.Matches, t.LeftWins, t.RightWins, t.Abandoned)
	if !t.LastPlayed.IsZero() {
		line += "  |  last " + t.LastPlayed.Local().Format("Jan 02 15:04")
	}
	return line
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

		case key.Matches(msg, m.keys.Scope):
			m.all = !m.all
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

var historyBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var historyEmptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(2, 4)

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "MATCH HISTORY - " + m.player
	if m.all {
		title = "MATCH HISTORY - all players"
	}
	b.WriteString(historyTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(TallyLine(m.tally), m.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.loadErr != nil:
		content = historyEmptyStyle.Render("Could not load matches:\n" + m.loadErr.Error())
	case m.store == nil:
		content = historyEmptyStyle.Render("No match database configured.")
	case len(m.matches) == 0:
		content = historyEmptyStyle.Render("No matches recorded yet.\nScore a goal to get on the board!")
	default:
		content = m.table.View()
	}
	b.WriteString(historyBoxStyle.Render(content))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
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
func RunHistory(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, player, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
