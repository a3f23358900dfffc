package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures one terminal match.
type Options struct {
	Runtime  core.RuntimeConfig
	Settings pong.Settings
	KeyHold  time.Duration
	Player   string         // Recorded with saved matches; defaults to "local"
	Store    *storage.Store // Optional match history
	Logger   *log.Logger
	Audio    Sink

	// ReturnToMenu makes esc leave the match instead of quitting.
	ReturnToMenu bool
}

// Model is the Bubble Tea model for a pong match.
type Model struct {
	game       *pong.Game
	opts       Options
	screen     *core.Screen
	keyMapper  *KeyMapper
	controls   *Controls
	help       help.Model
	inputFrame core.InputFrame
	draw       []pong.DrawCommand
	lastFrame  time.Time
	err        error
	quitting   bool
	backToMenu bool
	saved      bool // Whether the current match has been recorded
}

// NewModel creates a new Bubble Tea model for a match.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = NewBellSink(nil, nil, opts.Logger)
	}

	m := Model{
		game:       pong.New(opts.Settings, opts.Runtime.Seed),
		opts:       opts,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		controls:   NewControls(opts.KeyHold, opts.Settings.CPU),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.layout()
	if cmds, err := m.game.Draw(); err == nil {
		m.draw = cmds
	}
	opts.Logger.Info("match started",
		"player", opts.Player,
		"seed", opts.Runtime.Seed,
		"cpu", opts.Settings.CPU,
	)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, keys.Back):
		m.recordMatch()
		if m.opts.ReturnToMenu {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordMatch()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleFrame runs the simulation for the wall-clock time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	var frame time.Duration
	if !m.lastFrame.IsZero() {
		frame = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	in := m.controls.Input(m.inputFrame, now)
	m.inputFrame.Clear()
	if in.ResetRequested {
		m.recordMatch()
		m.saved = false
	}

	out, err := m.game.Frame(frame, in)
	m.handleEvents(out, frame)
	if in.ToggleInterpolation {
		m.opts.Logger.Debug("interpolation toggled", "enabled", m.game.Interpolating())
	}
	if err != nil {
		m.err = err
		if errors.Is(err, pong.ErrInvariantViolation) {
			m.opts.Logger.Error("invariant violated", "error", err)
		} else {
			m.opts.Logger.Error("frame failed", "error", err)
		}
		m.recordMatch()
		m.quitting = true
		return m, tea.Quit
	}
	m.draw = out.Draw

	if m.game.Round().Over() {
		m.recordMatch()
	}
	return m, frameCmd(m.opts.Runtime.TickRate)
}

// handleEvents forwards sounds to the audio sink and logs the rest.
func (m *Model) handleEvents(out pong.Output, frame time.Duration) {
	logger := m.opts.Logger
	for _, s := range out.Sounds {
		m.opts.Audio.Play(s)
	}
	for _, t := range out.Transitions {
		logger.Debug("phase", "from", t.From, "to", t.To, "tick", t.Tick)
	}
	for _, side := range out.Goals {
		score := m.game.Score()
		logger.Info("goal", "side", side, "left", score.Left, "right", score.Right)
	}
	if out.Stalled {
		logger.Warn("frame dropped", "frame", frame)
	}
}

// recordMatch stores the current match once. Matches abandoned before the
// first goal are not recorded.
func (m *Model) recordMatch() {
	if m.saved || m.opts.Store == nil {
		return
	}
	score := m.game.Score()
	if score.Left == 0 && score.Right == 0 {
		return
	}
	m.saved = true

	rec := storage.Match{
		Player:     m.opts.Player,
		LeftScore:  score.Left,
		RightScore: score.Right,
		Winner:     m.game.Winner().String(),
		CPUSide:    m.game.Settings().CPU.String(),
		Seed:       m.game.Seed(),
		Duration:   m.game.VirtualTime(),
	}
	id, err := m.opts.Store.SaveMatch(rec)
	if err != nil {
		m.opts.Logger.Warn("could not save match", "error", err)
		return
	}
	m.opts.Logger.Info("match saved", "id", id, "winner", rec.Winner,
		"score", fmt.Sprintf("%d-%d", rec.LeftScore, rec.RightScore))
}

// layout sizes the field to the terminal minus the help footer.
func (m *Model) layout() {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keyMapper.Keys().FullHelp() {
			lines = max(lines, len(col))
		}
	}
	m.screen.Resize(max(m.opts.Runtime.ScreenW, 1), max(m.opts.Runtime.ScreenH-lines, 1))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func (m *Model) render() {
	m.screen.Clear()
	Rasterize(m.screen, m.draw, m.game.Settings().Field)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Game returns the match being played.
func (m Model) Game() *pong.Game {
	return m.game
}

// Err returns the error that aborted the match, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one match in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
