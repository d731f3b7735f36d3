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

// paddle is a vertical bar of pixels in a fixed column, tracked by its
// center row.
type paddle struct {
	col    int
	center int

	// the row the paddle is converging on, from the most recent sample of
	// the player's control
	target int
}

// scaleTarget maps an eight bit sample onto the range of center rows that
// keeps the whole paddle between the walls.
func (g *Game) scaleTarget(sample uint8) int {
	min := g.top + 1 + halfPaddle
	max := g.bottom - 1 - halfPaddle
	return min + int(sample)*(max-min)/255
}

// drawPaddle draws the full paddle bar. Used when the court is first laid
// out; movement after that is incremental.
func (g *Game) drawPaddle(p *paddle) {
	g.fb.Line(p.col, p.center-halfPaddle, p.col, p.center+halfPaddle)
}

// stepPaddle moves a paddle at most one row toward its target. The move is
// two pixel flips, one at each end of the bar, so the paddle never has to be
// redrawn in full.
func (g *Game) stepPaddle(p *paddle) {
	if p.center > p.target {
		g.fb.FlipPixel(p.col, p.center+halfPaddle)
		p.center--
		g.fb.FlipPixel(p.col, p.center-halfPaddle)
	} else if p.center < p.target {
		g.fb.FlipPixel(p.col, p.center-halfPaddle)
		p.center++
		g.fb.FlipPixel(p.col, p.center+halfPaddle)
	}
}

// span returns true if the given row is within the paddle's bar.
func (p *paddle) span(y int) bool {
	return y >= p.center-halfPaddle && y <= p.center+halfPaddle
}
