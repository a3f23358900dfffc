// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Vec2 is a pair of logical-unit values. It is used interchangeably for
// positions, velocities and sizes.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// String formats the pair with two decimals.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Box is an axis-aligned bounding box in logical units.
type Box struct {
	Pos  Vec2 // Top-left corner
	Size Vec2
}

// NewBox creates a box from a position and a size.
func NewBox(pos, size Vec2) Box {
	return Box{Pos: pos, Size: size}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Overlaps reports whether two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Pos.X < o.Right() && b.Right() > o.Pos.X &&
		b.Pos.Y < o.Bottom() && b.Bottom() > o.Pos.Y
}

// Rect represents an axis-aligned integer rectangle in display cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ScaleToDisplay maps a logical box onto a display of the given size.
// Each coordinate is computed as logical / field * display and truncated.
func ScaleToDisplay(pos, size, field Vec2, displayW, displayH int) Rect {
	dw, dh := float64(displayW), float64(displayH)
	return Rect{
		X: int(pos.X / field.X * dw),
		Y: int(pos.Y / field.Y * dh),
		W: int(size.X / field.X * dw),
		H: int(size.Y / field.Y * dh),
	}
}

// ScalePoint maps a single logical point onto display cells.
func ScalePoint(p, field Vec2, displayW, displayH int) (int, int) {
	return int(p.X / field.X * float64(displayW)), int(p.Y / field.Y * float64(displayH))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
