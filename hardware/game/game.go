// This file is part of Pong328.
//
// Pong328 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pong328 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pong328.  If not, see <https://www.gnu.org/licenses/>.

package game

import (
	"pong328/curated"
	"pong328/hardware/framebuffer"
	"pong328/hardware/peripherals"
	"pong328/television/specification"
)

// Sentinel error returned by NewGame().
const BadSetup = "game: bad setup: %s"

// Side identifies one side of the court.
type Side int

// List of valid Side values.
const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// vertical distance from a paddle's center row to either end.
const halfPaddle = 3

// a score wraps to zero when it reaches this value. one glyph per side and
// no game-over state, exactly like the original cabinet game it imitates.
const scoreWrap = 10

// horizontal offsets from the net to the top-left corner of each score
// glyph, and the row the glyphs sit on.
const (
	leftScoreOffset  = -12
	rightScoreOffset = 4
	scoreRow         = 3
)

// Setup collects the tunable parameters of a game. The zero value is not
// useful; start from DefaultSetup().
type Setup struct {
	// the ball advances one step every Velocity fields
	Velocity int

	// each serve aims at a point on the net offset from the middle by a
	// value that cycles through [-ServeCycle, ServeCycle]. zero pins every
	// serve to the middle, which is useful for tests
	ServeCycle int

	// the side that serves the first ball
	FirstServe Side
}

// DefaultSetup returns the parameters the game shipped with.
func DefaultSetup() Setup {
	return Setup{
		Velocity:   3,
		ServeCycle: 20,
		FirstServe: SideRight,
	}
}

// Game is the state of one running game. It draws into a frame buffer that
// the video chain replays independently.
type Game struct {
	spec specification.Spec
	fb   *framebuffer.FrameBuffer
	smp  peripherals.Sampler

	// court geometry derived from the frame buffer dimensions
	top      int
	bottom   int
	netCol   int
	leftPad  paddle
	rightPad paddle

	ball  ball
	serve serveState

	score struct {
		left  int
		right int

		// the side that just scored. consumed by the score update that
		// follows the serve being scheduled
		scored Side
	}

	// the ball only advances when skip has counted up to velocity
	velocity int
	skip     int

	// called at the end of every Update(). the console uses it to park the
	// duty selector back at idle
	onComplete func()
}

type serveState struct {
	pending Side
	cycle   int
	offset  int

	// serve direction alternates between up and down
	up bool
}

// NewGame is the preferred method of initialisation for the Game type. The
// court is drawn into the frame buffer immediately. The onComplete function
// may be nil.
func NewGame(spec specification.Spec, fb *framebuffer.FrameBuffer, smp peripherals.Sampler,
	setup Setup, onComplete func()) (*Game, error) {

	if setup.Velocity < 1 {
		return nil, curated.Errorf(BadSetup, "velocity must be at least one")
	}
	if setup.ServeCycle < 0 {
		return nil, curated.Errorf(BadSetup, "serve cycle must not be negative")
	}
	if setup.FirstServe == SideNone {
		return nil, curated.Errorf(BadSetup, "a side must serve first")
	}

	g := &Game{
		spec:       spec,
		fb:         fb,
		smp:        smp,
		velocity:   setup.Velocity,
		onComplete: onComplete,
	}

	g.top = 1
	g.bottom = spec.PixelsY - 1
	g.netCol = spec.PixelsX / 2

	g.leftPad.col = 1
	g.rightPad.col = spec.PixelsX - 2
	g.leftPad.center = spec.PixelsY/2 - 1
	g.rightPad.center = spec.PixelsY/2 - 1

	g.serve.pending = setup.FirstServe
	g.serve.cycle = setup.ServeCycle
	g.serve.offset = -setup.ServeCycle

	g.drawCourt()

	return g, nil
}

// drawCourt draws the static parts of the picture and both paddles at their
// current positions.
func (g *Game) drawCourt() {
	g.fb.Clear(0x00)

	// top and bottom walls
	g.fb.Line(0, g.top, g.spec.PixelsX-1, g.top)
	g.fb.Line(0, g.bottom, g.spec.PixelsX-1, g.bottom)

	// dashed net down the middle
	for y := g.top; y < g.bottom; y += 4 {
		g.fb.Line(g.netCol, y, g.netCol, y+1)
	}

	g.drawPaddle(&g.leftPad)
	g.drawPaddle(&g.rightPad)

	g.fb.DrawDigit(g.netCol+leftScoreOffset, scoreRow, rune('0'+g.score.left))
	g.fb.DrawDigit(g.netCol+rightScoreOffset, scoreRow, rune('0'+g.score.right))
}

// Update runs one field's worth of game logic: sample and move the paddles,
// and every velocity-th field advance the ball and settle any scoring.
func (g *Game) Update() {
	if g.onComplete != nil {
		defer g.onComplete()
	}

	// the right paddle is sampled first, matching the channel order of the
	// original hardware
	g.rightPad.target = g.scaleTarget(g.smp.Sample(peripherals.ChannelRightPaddle))
	g.leftPad.target = g.scaleTarget(g.smp.Sample(peripherals.ChannelLeftPaddle))

	g.stepPaddle(&g.rightPad)
	g.stepPaddle(&g.leftPad)

	// ball movement is gated by the velocity divider
	g.skip++
	if g.skip < g.velocity {
		return
	}
	g.skip = 0

	g.advanceBall()
	g.updateScore()
}

// updateScore settles a point that was scored by the ball advance. The
// scored flag stays raised until the serve that follows it, so the check on
// the pending serve is what guarantees the point is counted exactly once.
func (g *Game) updateScore() {
	switch g.score.scored {
	case SideLeft:
		if g.serve.pending == SideNone {
			return
		}
		g.score.left = (g.score.left + 1) % scoreWrap
		g.fb.DrawDigit(g.netCol+leftScoreOffset, scoreRow, rune('0'+g.score.left))
	case SideRight:
		if g.serve.pending == SideNone {
			return
		}
		g.score.right = (g.score.right + 1) % scoreWrap
		g.fb.DrawDigit(g.netCol+rightScoreOffset, scoreRow, rune('0'+g.score.right))
	}
}

// Score returns the current score for the left and right sides.
func (g *Game) Score() (int, int) {
	return g.score.left, g.score.right
}

// PaddleCenter returns the center row of the given side's paddle.
func (g *Game) PaddleCenter(side Side) int {
	if side == SideLeft {
		return g.leftPad.center
	}
	return g.rightPad.center
}

// BallPosition returns the ball's current coordinate. Only meaningful when
// BallInPlay() is true.
func (g *Game) BallPosition() (int, int) {
	return g.ball.x, g.ball.y
}

// BallInPlay returns false between a point being scored and the following
// serve.
func (g *Game) BallInPlay() bool {
	return g.ball.inPlay
}

// BallWalk returns the state of the ball's line walk: the deltas and the
// running error term.
func (g *Game) BallWalk() (int, int, int) {
	return g.ball.dx, g.ball.dy, g.ball.err
}

// Serving returns the side the next serve comes from, or SideNone while the
// ball is in play.
func (g *Game) Serving() Side {
	return g.serve.pending
}
