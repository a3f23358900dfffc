package pong

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// checkWalls bounces the ball off the top and bottom walls.
// Only a ball moving into a wall is bounced, so one that is still inside the
// margin after a bounce does not bounce back.
func (g *Game) checkWalls() {
	if g.hitsHorizontalWall() {
		g.ball.Bounce(0)
		g.emit(SoundWallHit)
	}
}

func (g *Game) hitsHorizontalWall() bool {
	b, m, field := g.ball, g.settings.EdgeMargin, g.settings.Field
	top := b.Pos.Y <= m && b.Vel.Y < 0
	bottom := b.Pos.Y+b.Size.Y >= field.Y-m && b.Vel.Y > 0
	return top || bottom
}

func (g *Game) hitsVerticalWall() bool {
	b, m, field := g.ball, g.settings.EdgeMargin, g.settings.Field
	left := b.Pos.X <= m && b.Vel.X < 0
	right := b.Pos.X+b.Size.X >= field.X-m && b.Vel.X > 0
	return left || right
}

// checkPaddle bounces the ball off a paddle it overlaps while moving towards
// that paddle's goal.
func (g *Game) checkPaddle(p *Paddle) error {
	box := g.ball.Box()
	if !box.Overlaps(p.Box()) {
		return nil
	}
	incoming := (p.Side == SideLeft && g.ball.Vel.X < 0) ||
		(p.Side == SideRight && g.ball.Vel.X > 0)
	if !incoming {
		return nil
	}
	angle, err := p.ReflectionAngle(box)
	if err != nil {
		return fmt.Errorf("paddle collision at tick %d: %w", g.clock.Ticks(), err)
	}
	g.ball.Bounce(angle)
	g.emit(SoundPaddleHit)
	return nil
}

// checkGoals scores a ball that crossed either goal line. It reports whether
// a goal was scored this tick.
func (g *Game) checkGoals() bool {
	if g.round.DelayingKickoff() {
		return false
	}
	b, m, field := g.ball, g.settings.EdgeMargin, g.settings.Field
	switch {
	case b.Pos.X <= m:
		g.goal(SideRight, core.DirLeft)
		return true
	case b.Pos.X+b.Size.X >= field.X-m:
		g.goal(SideLeft, core.DirRight)
		return true
	}
	return false
}

// goal credits scorer and schedules a kickoff towards the side that conceded.
// The winning goal leaves the round in play so that checkWinner ends it.
func (g *Game) goal(scorer Side, serve core.Direction) {
	g.score.add(scorer)
	g.events.Goals = append(g.events.Goals, scorer)
	g.emit(SoundGoal)
	g.ball.Park()
	if g.score.Winner(g.settings.WinScore) != SideNone {
		return
	}
	g.round.Serve = serve
	g.round.Remaining = DelayTicks(g.settings.KickoffDelay, g.clock.FixedDelta())
	g.setPhase(PhaseAwaitingKickoff)
}

// checkWinner ends the match once a side reaches the winning score.
func (g *Game) checkWinner() {
	if g.round.Over() || g.score.Winner(g.settings.WinScore) == SideNone {
		return
	}
	if g.settings.OnWin == WinGameOver {
		g.setPhase(PhaseGameOver)
		return
	}
	g.left.Park()
	g.right.Park()
	g.ball.StartWinnerScreen(g.rng, g.settings.Field, g.settings.BorderMargin)
	g.setPhase(PhaseWinnerDisplay)
}

// countdown runs the kickoff delay and launches the ball when it expires.
func (g *Game) countdown() {
	if !g.round.DelayingKickoff() {
		return
	}
	g.round.Remaining--
	if g.round.Remaining > 0 {
		return
	}
	g.round.Remaining = 0
	g.ball.KickOff(g.round.Serve, g.rng, g.settings.Field, g.settings.BorderMargin)
	g.setPhase(PhasePlaying)
}

// drainCountdown takes paused wall-clock time off the kickoff delay. The
// last tick is left for the first unpaused step so the kickoff still happens
// inside tick.
func (g *Game) drainCountdown(frame time.Duration) {
	if !g.round.DelayingKickoff() || frame <= 0 {
		return
	}
	fixed := g.clock.FixedDelta()
	g.pausedDelay += frame
	n := int(g.pausedDelay / fixed)
	g.pausedDelay -= time.Duration(n) * fixed
	g.round.Remaining = max(g.round.Remaining-n, 1)
}

// bounceWinnerScreen keeps the ball inside all four walls without sound.
func (g *Game) bounceWinnerScreen() {
	if g.hitsHorizontalWall() {
		g.ball.Bounce(0)
	}
	if g.hitsVerticalWall() {
		g.ball.Bounce(90)
	}
}
