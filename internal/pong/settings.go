package pong

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one half of the field.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the lowercase side name used in config files and storage.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ParseSide converts "left", "right" or "none" into a Side.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "left":
		return SideLeft, true
	case "right":
		return SideRight, true
	case "none", "":
		return SideNone, true
	default:
		return SideNone, false
	}
}

// WinMode selects what happens once a side reaches the winning score.
type WinMode int

const (
	// WinGameOver stops the simulation.
	WinGameOver WinMode = iota
	// WinScreen keeps the ball bouncing off all four walls with the paddles removed.
	WinScreen
)

// Default tuning values.
const (
	DefaultFieldWidth   = 180
	DefaultFieldHeight  = 100
	DefaultFixedDelta   = time.Second / 60
	DefaultMaxFrameSkip = 5
	DefaultWinScore     = 11
	DefaultEdgeMargin   = 1.1
	DefaultBallSpeed    = 4.0 / 100 // units per ms
	DefaultPaddleSpeed  = 6.0 / 100 // units per ms
	DefaultBorderMargin = 0.05
	DefaultCPUDeadband  = 2
)

// Settings holds every tunable of the simulation.
type Settings struct {
	Field core.Vec2

	FixedDelta    time.Duration
	MaxFrameSkip  int // Frames longer than MaxFrameSkip*FixedDelta are dropped; 0 disables
	Interpolation bool
	SpeedIndex    int // Index into SpeedLadder

	BallSize     core.Vec2
	BallSpeed    float64
	BorderMargin float64 // Fraction of the field kept clear when placing the ball

	PaddleSize  core.Vec2
	PaddleSpeed float64
	LeftX       float64
	RightX      float64
	Overscroll  float64 // How far a paddle may leave the top of the field

	WinScore     int
	EdgeMargin   float64
	KickoffDelay time.Duration
	ServeDelay   time.Duration
	OnWin        WinMode

	CPU         Side
	CPUDeadband float64

	ShowFPS         bool
	ShowLimits      bool
	MessageDuration time.Duration
}

// DefaultSettings returns the standard 180x100 field tuning.
func DefaultSettings() Settings {
	return Settings{
		Field:           core.V(DefaultFieldWidth, DefaultFieldHeight),
		FixedDelta:      DefaultFixedDelta,
		MaxFrameSkip:    DefaultMaxFrameSkip,
		Interpolation:   true,
		SpeedIndex:      DefaultSpeedIndex,
		BallSize:        core.V(1, 1),
		BallSpeed:       DefaultBallSpeed,
		BorderMargin:    DefaultBorderMargin,
		PaddleSize:      core.V(1, 8),
		PaddleSpeed:     DefaultPaddleSpeed,
		LeftX:           10,
		RightX:          170,
		Overscroll:      1,
		WinScore:        DefaultWinScore,
		EdgeMargin:      DefaultEdgeMargin,
		KickoffDelay:    2 * time.Second,
		ServeDelay:      time.Second,
		OnWin:           WinScreen,
		CPU:             SideLeft,
		CPUDeadband:     DefaultCPUDeadband,
		MessageDuration: 3 * time.Second,
	}
}

// paddleBounds returns the allowed range of a paddle's y-coordinate.
func (s Settings) paddleBounds() Bounds {
	return Bounds{MinY: -s.Overscroll, MaxY: s.Field.Y - 1}
}
