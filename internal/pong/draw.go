package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// DrawKind selects how a DrawCommand is interpreted.
type DrawKind int

const (
	// DrawRect fills Pos..Pos+Size.
	DrawRect DrawKind = iota
	// DrawLine strokes a line from Pos to End.
	DrawLine
	// DrawText writes Text anchored at Pos.
	DrawText
)

// TextStyle selects the font size of a text command.
type TextStyle int

const (
	TextSmall TextStyle = iota
	TextBig
)

// DrawCommand is one logical-space primitive for the renderer.
type DrawCommand struct {
	Kind     DrawKind
	Pos      core.Vec2
	Size     core.Vec2 // DrawRect only
	End      core.Vec2 // DrawLine only
	Text     string    // DrawText only
	Style    TextStyle // DrawText only
	Centered bool      // DrawText only: Pos is the text centre
	Color    core.Color
}

// Rect builds a filled rectangle command.
func Rect(pos, size core.Vec2, c core.Color) DrawCommand {
	return DrawCommand{Kind: DrawRect, Pos: pos, Size: size, Color: c}
}

// Line builds a line command.
func Line(from, to core.Vec2, c core.Color) DrawCommand {
	return DrawCommand{Kind: DrawLine, Pos: from, End: to, Color: c}
}

// Text builds a text command.
func Text(pos core.Vec2, text string, style TextStyle, centered bool, c core.Color) DrawCommand {
	return DrawCommand{Kind: DrawText, Pos: pos, Text: text, Style: style, Centered: centered, Color: c}
}

// Palette colors for the field furniture.
const (
	ColorScore    = core.ColorWhite
	ColorHalfLine = core.ColorBrightWhite
	ColorFPS      = core.ColorGreen
	ColorMessage  = core.ColorBrightBlue
	ColorLimits   = core.ColorWhite
)

// Score layout.
var (
	scoreLeftPos  = core.V(50, 10)
	scoreRightPos = core.V(130, 10)
	digitSize     = core.V(8, 10)
	fpsPos        = core.V(2, 2)
)

const halfLineSegments = 30

// halfLine returns the dashed centre line.
func halfLine(field core.Vec2) []DrawCommand {
	segLen := (field.Y - 1) / halfLineSegments
	x := field.X / 2
	cmds := make([]DrawCommand, 0, halfLineSegments)
	for i := range halfLineSegments {
		top := segLen*float64(i) + 1
		cmds = append(cmds, Line(core.V(x, top), core.V(x, segLen*float64(i)+0.75*segLen), ColorHalfLine))
	}
	return cmds
}

// limits returns the field outline one unit inside the edges.
func limits(field core.Vec2) []DrawCommand {
	corners := []core.Vec2{
		core.V(1, 1),
		core.V(field.X-1, 1),
		core.V(field.X-1, field.Y-1),
		core.V(1, field.Y-1),
	}
	cmds := make([]DrawCommand, 0, len(corners))
	for i, c := range corners {
		cmds = append(cmds, Line(c, corners[(i+1)%len(corners)], ColorLimits))
	}
	return cmds
}

// paddleCommands draws the five regions of a paddle at pos.
func paddleCommands(p *Paddle, pos core.Vec2) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(regionColors))
	for r := RegionTop; r <= RegionBottom; r++ {
		box := p.regionBoxAt(r, pos)
		cmds = append(cmds, Rect(box.Pos, box.Size, regionColors[r]))
	}
	return cmds
}
