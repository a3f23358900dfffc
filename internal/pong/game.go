package pong

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Score is the pair of points scored by each side.
type Score struct {
	Left  int `yaml:"left"`
	Right int `yaml:"right"`
}

func (s *Score) add(side Side) {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	}
}

// Winner returns the side that reached target, or SideNone.
func (s Score) Winner(target int) Side {
	switch {
	case s.Left >= target:
		return SideLeft
	case s.Right >= target:
		return SideRight
	default:
		return SideNone
	}
}

// Input is the per-frame control snapshot.
type Input struct {
	Left  core.Direction
	Right core.Direction

	PauseToggled   bool
	ResetRequested bool
	SpeedAdjust    int // -1 slower, +1 faster

	ToggleInterpolation bool
	ToggleFPS           bool
	ToggleLimits        bool
}

// TickEvents collects what happened while advancing the game.
type TickEvents struct {
	Sounds      []Sound
	Transitions []Transition
	Goals       []Side // Scoring side of each goal
}

func (e *TickEvents) merge(o TickEvents) {
	e.Sounds = append(e.Sounds, o.Sounds...)
	e.Transitions = append(e.Transitions, o.Transitions...)
	e.Goals = append(e.Goals, o.Goals...)
}

// Output is the result of one rendered frame.
type Output struct {
	TickEvents
	Draw    []DrawCommand
	Ticks   int  // Simulation ticks run this frame
	Stalled bool // The frame was dropped by the stall guard
}

// Game is the complete state of one match.
type Game struct {
	settings Settings
	seed     int64
	rng      *rand.Rand
	clock    *Clock

	ball  *Ball
	left  *Paddle
	right *Paddle

	score  Score
	round  RoundState
	paused bool

	leftDir  core.Direction
	rightDir core.Direction

	interpolation bool
	showFPS       bool
	showLimits    bool

	message     string
	messageLeft time.Duration
	pausedDelay time.Duration // Paused frame time not yet taken off the countdown

	frames   uint64
	wallTime time.Duration

	events TickEvents
}

// New creates a game waiting for its first serve. The seed fixes every
// random choice so that equal inputs replay identically.
func New(s Settings, seed int64) *Game {
	g := &Game{
		settings:      s,
		seed:          seed,
		rng:           rand.New(rand.NewSource(seed)),
		clock:         NewClock(s.FixedDelta, s.MaxFrameSkip, s.SpeedIndex),
		ball:          NewBall(s),
		left:          NewPaddle(SideLeft, s.LeftX, s),
		right:         NewPaddle(SideRight, s.RightX, s),
		interpolation: s.Interpolation,
		showFPS:       s.ShowFPS,
		showLimits:    s.ShowLimits,
	}
	g.ball.Park()
	g.round = g.serving()
	return g
}

func (g *Game) serving() RoundState {
	return RoundState{
		Phase:     PhaseServing,
		Serve:     core.DirNone,
		Remaining: DelayTicks(g.settings.ServeDelay, g.clock.FixedDelta()),
	}
}

// Reset zeroes the score and restarts from the serve, cancelling any
// pending kickoff or winner display.
func (g *Game) Reset() {
	g.score = Score{}
	g.ball.Park()
	g.left.Recenter(g.settings.Field.Y)
	g.right.Recenter(g.settings.Field.Y)
	g.clock.ResetVirtual()
	g.pausedDelay = 0
	from := g.round.Phase
	g.round = g.serving()
	if from != PhaseServing {
		g.events.Transitions = append(g.events.Transitions, Transition{From: from, To: PhaseServing})
	}
}

// Frame advances the game by one rendered frame of wall-clock duration
// frame and returns the draw list. An invariant violation aborts the frame.
func (g *Game) Frame(frame time.Duration, in Input) (Output, error) {
	g.events = TickEvents{}
	g.apply(in)
	g.countFrame(frame)

	var out Output
	g.clock.Accumulate(frame, g.paused || g.round.Phase == PhaseGameOver)
	out.Stalled = g.clock.Stalled()
	if g.paused && !out.Stalled {
		g.drainCountdown(frame)
	}
	for g.clock.Step() {
		out.Ticks++
		if err := g.tick(); err != nil {
			out.TickEvents = g.events
			return out, err
		}
	}
	out.TickEvents = g.events

	cmds, err := g.Draw()
	if err != nil {
		return out, err
	}
	out.Draw = cmds
	return out, nil
}

// Step applies in and runs exactly one simulation tick, bypassing the
// frame-time accumulator and the pause flag.
func (g *Game) Step(in Input) (TickEvents, error) {
	g.events = TickEvents{}
	g.apply(in)
	g.clock.advanceTick()
	err := g.tick()
	return g.events, err
}

// Run steps the game n times with the same input and merges the events.
func (g *Game) Run(n int, in Input) (TickEvents, error) {
	var all TickEvents
	for range n {
		ev, err := g.Step(in)
		all.merge(ev)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func (g *Game) apply(in Input) {
	g.leftDir, g.rightDir = in.Left, in.Right
	if in.ResetRequested {
		g.Reset()
	}
	if in.PauseToggled {
		g.paused = !g.paused
		g.pausedDelay = 0
		g.messageLeft = 0
		g.message = g.idleMessage()
	}
	if in.SpeedAdjust != 0 {
		g.clock.AdjustSpeed(in.SpeedAdjust)
		g.showMessage(g.clock.Speed().Label)
	}
	if in.ToggleInterpolation {
		g.interpolation = !g.interpolation
	}
	if in.ToggleFPS {
		g.showFPS = !g.showFPS
	}
	if in.ToggleLimits {
		g.showLimits = !g.showLimits
	}
}

func (g *Game) countFrame(frame time.Duration) {
	if frame < 0 {
		return
	}
	g.frames++
	g.wallTime += frame
	if g.messageLeft <= 0 {
		return
	}
	g.messageLeft -= frame
	if g.messageLeft <= 0 {
		g.messageLeft = 0
		g.message = g.idleMessage()
	}
}

func (g *Game) showMessage(text string) {
	g.message = text
	g.messageLeft = g.settings.MessageDuration
}

func (g *Game) idleMessage() string {
	if g.paused {
		return "PAUSE"
	}
	return ""
}

// tick runs one fixed step: movement, then walls, paddles, goals, the
// winner check and the kickoff countdown, in that order.
func (g *Game) tick() error {
	if g.round.Phase == PhaseGameOver {
		return nil
	}
	dt := g.clock.FixedMs()
	g.ball.Advance(dt)
	if g.round.Phase == PhaseWinnerDisplay {
		g.bounceWinnerScreen()
		return nil
	}

	g.steer()
	bounds := g.settings.paddleBounds()
	g.left.Advance(dt, bounds)
	g.right.Advance(dt, bounds)

	g.checkWalls()
	for _, p := range []*Paddle{g.left, g.right} {
		if err := g.checkPaddle(p); err != nil {
			return err
		}
	}
	scored := g.checkGoals()
	g.checkWinner()
	if !scored {
		g.countdown()
	}
	return nil
}

func (g *Game) steer() {
	g.left.SetDirection(g.leftDir)
	g.right.SetDirection(g.rightDir)
	if p := g.paddle(g.settings.CPU); p != nil {
		p.SetDirection(TrackBall(p, g.ball, g.settings.CPUDeadband))
	}
}

func (g *Game) paddle(side Side) *Paddle {
	switch side {
	case SideLeft:
		return g.left
	case SideRight:
		return g.right
	default:
		return nil
	}
}

func (g *Game) emit(s Sound) {
	g.events.Sounds = append(g.events.Sounds, s)
}

func (g *Game) setPhase(to Phase) {
	g.events.Transitions = append(g.events.Transitions, Transition{
		From: g.round.Phase,
		To:   to,
		Tick: g.clock.Ticks(),
	})
	g.round.Phase = to
}

// Draw returns the draw list for the current state: half line, score, FPS
// readout, message, limits, ball and paddles.
func (g *Game) Draw() ([]DrawCommand, error) {
	field := g.settings.Field
	cmds := halfLine(field)

	left, err := NumberCommands(g.score.Left, scoreLeftPos, digitSize, ColorScore)
	if err != nil {
		return nil, fmt.Errorf("draw left score: %w", err)
	}
	right, err := NumberCommands(g.score.Right, scoreRightPos, digitSize, ColorScore)
	if err != nil {
		return nil, fmt.Errorf("draw right score: %w", err)
	}
	cmds = append(cmds, left...)
	cmds = append(cmds, right...)

	if g.showFPS {
		text := fmt.Sprintf("FPS: %05.2f VT: %.2f", g.FPS(), g.clock.VirtualTime().Seconds())
		cmds = append(cmds, Text(fpsPos, text, TextSmall, false, ColorFPS))
	}
	if msg := g.Message(); msg != "" {
		cmds = append(cmds, Text(field.Scale(0.5), msg, TextBig, true, ColorMessage))
	}
	if g.showLimits {
		cmds = append(cmds, limits(field)...)
	}

	dt, alpha := g.clock.FixedMs(), 0.0
	if g.interpolation {
		alpha = g.clock.Alpha()
	}
	if !g.ball.Parked() {
		cmds = append(cmds, Rect(g.ball.interpolated(dt, alpha), g.ball.Size, g.ball.Color))
	}
	for _, p := range []*Paddle{g.left, g.right} {
		if !p.Parked() {
			cmds = append(cmds, paddleCommands(p, p.interpolated(dt, alpha))...)
		}
	}
	return cmds, nil
}

// Message returns the text shown in the middle of the field, if any.
func (g *Game) Message() string {
	if g.message != "" {
		return g.message
	}
	if w := g.Winner(); w != SideNone {
		return strings.ToUpper(w.String()) + " WINS"
	}
	return ""
}

// Winner returns the side that won the match, or SideNone while it is undecided.
func (g *Game) Winner() Side {
	if !g.round.Over() {
		return SideNone
	}
	return g.score.Winner(g.settings.WinScore)
}

// FPS returns the average rendered frames per wall-clock second.
func (g *Game) FPS() float64 {
	if g.wallTime <= 0 {
		return 0
	}
	return float64(g.frames) / g.wallTime.Seconds()
}

// Accessors.

func (g *Game) Score() Score { return g.score }
func (g *Game) Round() RoundState { return g.round }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) Settings() Settings { return g.settings }
func (g *Game) Seed() int64 { return g.seed }
func (g *Game) Clock() *Clock { return g.clock }
func (g *Game) Ball() *Ball { return g.ball }
func (g *Game) Left() *Paddle { return g.left }
func (g *Game) Right() *Paddle { return g.right }
func (g *Game) VirtualTime() time.Duration { return g.clock.VirtualTime() }
func (g *Game) Interpolating() bool { return g.interpolation }
