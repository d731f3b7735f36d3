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

// ball is the persistent state of a line walk. The ball is always somewhere
// along a walk toward (x1, y1); collisions replace the walk rather than
// bouncing a velocity vector.
type ball struct {
	x int
	y int

	// the target of the current walk. the walk does not stop on arrival,
	// the target only shapes the direction, so a collision always
	// intervenes before the target matters again
	x1 int
	y1 int

	// deltas, step directions and the running error term of the walk
	dx  int
	dy  int
	sx  int
	sy  int
	err int

	// false between a point being scored and the following serve
	inPlay bool
}

// retarget replaces the ball's walk with a fresh one toward the given
// point.
func (g *Game) retarget(x1 int, y1 int) {
	b := &g.ball

	b.x1 = x1
	b.y1 = y1

	b.dx = abs(x1 - b.x)
	b.dy = abs(y1 - b.y)
	b.sx = step(b.x, x1)
	b.sy = step(b.y, y1)

	if b.dx > b.dy {
		b.err = b.dx / 2
	} else {
		b.err = -b.dy / 2
	}
}

// serveRow is the wall-adjacent row the next serve aims at.
func (g *Game) serveRow() int {
	if g.serve.up {
		return g.top + 1
	}
	return g.bottom - 1
}

// advanceBall moves the ball one step. It undraws the ball, applies the
// collision policy or a pending serve, steps the walk and redraws. Called
// once every velocity-th field.
func (g *Game) advanceBall() {
	b := &g.ball

	if b.inPlay {
		g.fb.FlipPixel(b.x, b.y)
	}

	// the serve aim wanders along the net one notch per ball advance and
	// the serve direction alternates, whether or not a serve is due. a
	// serve picks up whatever values the cycle is at
	g.serve.offset++
	if g.serve.offset > g.serve.cycle {
		g.serve.offset = -g.serve.cycle
	}
	g.serve.up = !g.serve.up

	switch g.serve.pending {
	case SideNone:
		g.collide()

	case SideLeft:
		b.x = g.leftPad.col + 1
		b.y = g.leftPad.center
		g.retarget(g.netCol+g.serve.offset, g.serveRow())
		g.serve.pending = SideNone
		g.score.scored = SideNone

	case SideRight:
		b.x = g.rightPad.col - 1
		b.y = g.rightPad.center
		g.retarget(g.netCol+g.serve.offset, g.serveRow())
		g.serve.pending = SideNone
		g.score.scored = SideNone
	}

	// one step of the line walk
	e2 := b.err
	if e2 > -b.dx {
		b.err -= b.dy
		b.x += b.sx
	}
	if e2 < b.dy {
		b.err += b.dx
		b.y += b.sy
	}

	if g.serve.pending == SideNone {
		g.fb.FlipPixel(b.x, b.y)
		b.inPlay = true
	} else {
		b.inPlay = false
	}
}

// collide applies the collision policy to the ball's current position,
// before the step that follows. Scoring is checked first, then the paddle
// columns, then the walls.
func (g *Game) collide() {
	b := &g.ball

	switch {
	case b.x < g.leftPad.col:
		// the ball passed the left paddle. make sure it is undrawn and
		// park it until the serve
		g.fb.ClearPixel(b.x, b.y)
		g.score.scored = SideRight
		g.serve.pending = SideLeft

	case b.x > g.rightPad.col:
		g.fb.ClearPixel(b.x, b.y)
		g.score.scored = SideLeft
		g.serve.pending = SideRight

	case b.x == g.leftPad.col && g.leftPad.span(b.y):
		// reflect off the left paddle: step back in front of the paddle,
		// let the vertical motion carry on, and walk toward a target
		// mirrored about the paddle column
		b.x -= b.sx
		b.y += b.sy

		y1 := g.bottom - 1
		if b.sy < 0 {
			y1 = g.top + 1
		}

		// a horizontal ball, or one already on the target row, aims
		// straight back at the far paddle
		x1 := g.rightPad.col - 1
		if b.dy != 0 && b.y != y1 {
			x1 = b.x + (-b.sx * abs(b.y-y1) * b.dx / b.dy)
		}
		g.retarget(x1, y1)

	case b.x == g.rightPad.col && g.rightPad.span(b.y):
		b.x -= b.sx
		b.y += b.sy

		y1 := g.bottom - 1
		if b.sy < 0 {
			y1 = g.top + 1
		}

		x1 := g.leftPad.col + 1
		if b.dy != 0 && b.y != y1 {
			x1 = b.x + (-b.sx * abs(b.y-y1) * b.dx / b.dy)
		}
		g.retarget(x1, y1)

	case b.y == g.top+1 || b.y == g.bottom-1:
		// reflect off a wall: step back off the wall row with the
		// horizontal motion carrying on, and walk toward a target mirrored
		// about the wall
		b.x += b.sx
		b.y -= b.sy

		x1 := g.rightPad.col
		if b.sx < 0 {
			x1 = g.leftPad.col
		}

		y1 := g.bottom - 1
		if b.sy > 0 {
			y1 = g.top + 1
		}
		if b.dx != 0 && b.x != x1 {
			y1 = b.y + (-b.sy * abs(b.x-x1) * b.dy / b.dx)
		}
		g.retarget(x1, y1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func step(from int, to int) int {
	if from < to {
		return 1
	}
	return -1
}
