package pong

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Seven segments:
//
//	  a
//	  _
//	f| |b
//	  g
//	  _
//	e|_|c
//	  d
var digitSegments = [10]string{
	0: "abcdef",
	1: "bc",
	2: "abdeg",
	3: "abcdg",
	4: "bcfg",
	5: "acdfg",
	6: "acdefg",
	7: "abc",
	8: "abcdefg",
	9: "abcdfg",
}

// digitAdvance is the horizontal distance between consecutive digits.
const digitAdvance = 10

// segmentLineWidth is the stroke width of a segment.
const segmentLineWidth = 1

// DigitSegments returns the segment identifiers lit for a digit.
func DigitSegments(d int) (string, error) {
	if d < 0 || d > 9 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	return digitSegments[d], nil
}

// SegmentBox returns the box covered by one segment of a digit at pos.
func SegmentBox(segment rune, pos, size core.Vec2) (core.Box, error) {
	left := pos.X
	right := pos.X + size.X
	top := pos.Y
	middle := pos.Y + size.Y*0.4
	bottom := pos.Y + size.Y

	var start, finish core.Vec2
	switch segment {
	case 'a':
		start, finish = core.V(left, top), core.V(right, top)
	case 'b':
		start, finish = core.V(right, top), core.V(right, middle)
	case 'c':
		start, finish = core.V(right, middle), core.V(right, bottom)
	case 'd':
		start, finish = core.V(left, bottom), core.V(right, bottom)
	case 'e':
		start, finish = core.V(left, middle), core.V(left, bottom)
	case 'f':
		start, finish = core.V(left, top), core.V(left, middle)
	case 'g':
		start, finish = core.V(left, middle), core.V(right, middle)
	default:
		return core.Box{}, fmt.Errorf("%w: %q", ErrInvalidSegment, segment)
	}
	return core.NewBox(start, core.V(
		finish.X-start.X+segmentLineWidth,
		finish.Y-start.Y+segmentLineWidth,
	)), nil
}

// DigitCommands returns the filled segments of one digit.
func DigitCommands(d int, pos, size core.Vec2, c core.Color) ([]DrawCommand, error) {
	segs, err := DigitSegments(d)
	if err != nil {
		return nil, err
	}
	cmds := make([]DrawCommand, 0, len(segs))
	for _, seg := range segs {
		box, err := SegmentBox(seg, pos, size)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, Rect(box.Pos, box.Size, c))
	}
	return cmds, nil
}

// NumberCommands returns the seven-segment rendering of a non-negative number.
func NumberCommands(n int, pos, size core.Vec2, c core.Color) ([]DrawCommand, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative number %d", ErrInvalidDigit, n)
	}
	var cmds []DrawCommand
	next := pos
	for _, r := range strconv.Itoa(n) {
		d, err := DigitCommands(int(r-'0'), next, size, c)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, d...)
		next = core.V(next.X+digitAdvance, next.Y)
	}
	return cmds, nil
}
