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

// Package game implements the two-paddle game that runs in the vertical
// blank. Update() is called exactly once per field, on the one scan line
// reserved for it, and must finish inside the blanking interval. Everything
// the game does is therefore incremental: a paddle moves at most one row per
// field, the ball moves at most one step, and only the pixels that change
// are touched.
//
// The ball does not carry a velocity vector. It carries the persistent
// state of a line walk toward a target point and reflection replaces the
// walk with a new one toward a mirrored target. Angles emerge from where
// the ball meets a wall or a paddle, which is how the game stays playable
// on integer arithmetic alone.
package game
