package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// MenuChoice is what the player picked from the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceVsCPU
	ChoiceTwoPlayers
	ChoiceHistory
	ChoiceQuit
)

// MenuItem is one line of the start menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play vs CPU", Choice: ChoiceVsCPU},
	{Title: "Two players", Choice: ChoiceTwoPlayers},
	{Title: "Match history", Choice: ChoiceHistory},
	{Title: "Quit", Choice: ChoiceQuit},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].Choice
		return m, tea.Quit

	case MenuActionHistory:
		m.choice = ChoiceHistory
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  P O N G  ", m.width)))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			cursor, style = "> ", menuSelectedStyle
		}
		b.WriteString(style.Render(centerText(cursor+item.Title, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the selection, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// CPUSide returns the paddle the computer steers for a choice.
// Playing against the CPU keeps the default assignment.
func (c MenuChoice) CPUSide(def pong.Side) pong.Side {
	switch c {
	case ChoiceTwoPlayers:
		return pong.SideNone
	case ChoiceVsCPU:
		if def == pong.SideNone {
			return pong.SideLeft
		}
		return def
	default:
		return def
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(width, height int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, nil
	}
	return m.Choice(), nil
}
