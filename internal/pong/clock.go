package pong

import (
	"math"
	"time"
)

// SpeedStep is one entry of the simulation speed ladder.
type SpeedStep struct {
	Label  string
	Factor float64
}

// SpeedLadder lists the selectable frame-time multipliers, slowest first.
var SpeedLadder = []SpeedStep{
	{"1/64 X", 1.0 / 64},
	{"1/32 X", 1.0 / 32},
	{"1/16 X", 1.0 / 16},
	{"1/8 X", 1.0 / 8},
	{"1/4 X", 1.0 / 4},
	{"1/2 X", 1.0 / 2},
	{"1 X", 1},
	{"1.5 X", 1.5},
	{"2 X", 2},
	{"4 X", 4},
	{"8 X", 8},
}

// DefaultSpeedIndex selects real-time speed.
const DefaultSpeedIndex = 6

// Clock converts variable frame times into a whole number of fixed ticks.
//
// Usage per rendered frame:
//
//	clock.Accumulate(frameTime, paused)
//	for clock.Step() {
//		// run one simulation tick
//	}
type Clock struct {
	fixed       time.Duration
	maxSkip     int
	speed       int
	accumulator time.Duration
	scaledRem   float64 // Sub-nanosecond part of scaled frame time
	virtual     time.Duration
	ticks       uint64
	stalled     bool
}

// NewClock creates a clock with the given tick length. Frames longer than
// maxSkip ticks are dropped; maxSkip 0 disables the guard.
func NewClock(fixed time.Duration, maxSkip, speedIndex int) *Clock {
	if fixed <= 0 {
		fixed = DefaultFixedDelta
	}
	c := &Clock{fixed: fixed, maxSkip: maxSkip}
	c.SetSpeedIndex(speedIndex)
	return c
}

// Accumulate adds one frame's worth of time. A frame longer than the stall
// threshold marks the clock stalled and contributes nothing; the next normal
// frame clears the flag. Paused frames contribute nothing either.
func (c *Clock) Accumulate(frame time.Duration, paused bool) {
	if c.maxSkip > 0 && frame > time.Duration(c.maxSkip)*c.fixed {
		c.stalled = true
		return
	}
	c.stalled = false
	if paused || frame <= 0 {
		return
	}
	c.accumulator += c.scale(frame)
}

// Step consumes one fixed tick from the accumulator if enough time is
// banked, advancing virtual time. It reports whether a tick is due.
func (c *Clock) Step() bool {
	if c.accumulator < c.fixed {
		return false
	}
	c.accumulator -= c.fixed
	c.advanceTick()
	return true
}

// advanceTick books one tick of virtual time without touching the accumulator.
func (c *Clock) advanceTick() {
	c.virtual += c.fixed
	c.ticks++
}

// scale applies the speed factor, carrying the fractional nanosecond so that
// many short frames bank the same time as one long frame.
func (c *Clock) scale(frame time.Duration) time.Duration {
	f := SpeedLadder[c.speed].Factor
	if f == 1 {
		return frame
	}
	x := float64(frame)*f + c.scaledRem
	whole := math.Floor(x)
	c.scaledRem = x - whole
	return time.Duration(whole)
}

// FixedDelta returns the tick length.
func (c *Clock) FixedDelta() time.Duration {
	return c.fixed
}

// FixedMs returns the tick length in milliseconds.
func (c *Clock) FixedMs() float64 {
	return float64(c.fixed) / float64(time.Millisecond)
}

// Alpha returns the fraction of a tick currently banked, in [0, 1).
func (c *Clock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.fixed)
}

// VirtualTime returns the simulated time since the last reset.
func (c *Clock) VirtualTime() time.Duration {
	return c.virtual
}

// Ticks returns the number of ticks run since the last reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Stalled reports whether the last frame was dropped by the stall guard.
func (c *Clock) Stalled() bool {
	return c.stalled
}

// Speed returns the active speed step.
func (c *Clock) Speed() SpeedStep {
	return SpeedLadder[c.speed]
}

// SpeedIndex returns the position on the speed ladder.
func (c *Clock) SpeedIndex() int {
	return c.speed
}

// SetSpeedIndex selects a speed step, clamped to the ladder.
func (c *Clock) SetSpeedIndex(i int) {
	c.speed = min(max(i, 0), len(SpeedLadder)-1)
}

// AdjustSpeed moves delta steps along the ladder.
func (c *Clock) AdjustSpeed(delta int) {
	c.SetSpeedIndex(c.speed + delta)
}

// ResetVirtual restarts virtual time and the tick counter.
func (c *Clock) ResetVirtual() {
	c.virtual = 0
	c.ticks = 0
}
