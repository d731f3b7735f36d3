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

// Package coords represents and compares positions in the television output.
package coords

import "fmt"

// Coords is a position in the television output: the field number since the
// television was created and the visible line within that field.
type Coords struct {
	Field int
	Line  int
}

func (c Coords) String() string {
	return fmt.Sprintf("field: %d  line: %d", c.Field, c.Line)
}

// Equal returns true if both coordinates are the same.
func Equal(a Coords, b Coords) bool {
	return a.Field == b.Field && a.Line == b.Line
}

// GreaterThan returns true if coordinate A is later in the output than
// coordinate B.
func GreaterThan(a Coords, b Coords) bool {
	return a.Field > b.Field || (a.Field == b.Field && a.Line > b.Line)
}

// Sum returns the coordinate as a single line count. Useful for measuring
// progress over time.
func Sum(c Coords, linesPerField int) int {
	return c.Field*linesPerField + c.Line
}

// Diff returns the number of lines between coordinate A and coordinate B,
// negative if B is later than A.
func Diff(a Coords, b Coords, linesPerField int) int {
	return Sum(a, linesPerField) - Sum(b, linesPerField)
}
