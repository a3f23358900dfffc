package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used to rasterize draw commands.
const (
	fillRune  = '█'
	vLineRune = '│'
	hLineRune = '─'
	dotRune   = '·'
)

// Rasterize draws logical-space commands onto s, scaling field to the
// screen size. Rectangles smaller than a cell still cover one cell.
func Rasterize(s *core.Screen, cmds []pong.DrawCommand, field core.Vec2) {
	w, h := s.Width(), s.Height()
	for _, c := range cmds {
		switch c.Kind {
		case pong.DrawRect:
			r := core.ScaleToDisplay(c.Pos, c.Size, field, w, h)
			r.W = max(r.W, 1)
			r.H = max(r.H, 1)
			s.DrawRect(r, fillRune, c.Color)
		case pong.DrawLine:
			x0, y0 := core.ScalePoint(c.Pos, field, w, h)
			x1, y1 := core.ScalePoint(c.End, field, w, h)
			drawLine(s, x0, y0, x1, y1, c.Color)
		case pong.DrawText:
			text := c.Text
			if c.Style == pong.TextBig {
				text = spaced(text)
			}
			x, y := core.ScalePoint(c.Pos, field, w, h)
			if c.Centered {
				x -= len([]rune(text)) / 2
			}
			s.DrawTextColor(x, y, text, c.Color)
		}
	}
}

// drawLine plots a line between two cells with Bresenham's algorithm.
func drawLine(s *core.Screen, x0, y0, x1, y1 int, c core.Color) {
	glyph := dotRune
	switch {
	case x0 == x1:
		glyph = vLineRune
	case y0 == y1:
		glyph = hLineRune
	}

	dx, dy := core.Abs(x1-x0), -core.Abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		s.SetWithColor(x0, y0, glyph, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// spaced widens big text by putting a blank between letters.
func spaced(text string) string {
	return strings.Join(strings.Split(text, ""), " ")
}
