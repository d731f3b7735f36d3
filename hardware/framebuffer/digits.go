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

package framebuffer

// dimensions of the digit glyphs used by DrawDigit().
const (
	DigitWidth  = 3
	DigitHeight = 5
)

// glyphs for the digits 0 to 9. one byte per glyph row, three low bits used,
// the 0x04 bit leftmost.
var digits = [10][DigitHeight]uint8{
	{0x07, 0x05, 0x05, 0x05, 0x07}, // 0
	{0x02, 0x06, 0x02, 0x02, 0x07}, // 1
	{0x07, 0x01, 0x07, 0x04, 0x07}, // 2
	{0x07, 0x01, 0x07, 0x01, 0x07}, // 3
	{0x05, 0x05, 0x07, 0x01, 0x01}, // 4
	{0x07, 0x04, 0x07, 0x01, 0x07}, // 5
	{0x07, 0x04, 0x07, 0x05, 0x07}, // 6
	{0x07, 0x01, 0x01, 0x01, 0x01}, // 7
	{0x07, 0x05, 0x07, 0x05, 0x07}, // 8
	{0x07, 0x05, 0x07, 0x01, 0x07}, // 9
}

// DrawDigit draws the glyph for a decimal digit with its top-left corner at
// the given coordinate, clearing the glyph cell first so the previous digit
// does not show through. Runes outside '0' to '9' are ignored.
func (fb *FrameBuffer) DrawDigit(x int, y int, digit rune) {
	if fb == nil || fb.bits == nil || digit < '0' || digit > '9' {
		return
	}

	glyph := digits[digit-'0']
	for gy := 0; gy < DigitHeight; gy++ {
		for gx := 0; gx < DigitWidth; gx++ {
			if glyph[gy]&(0x04>>gx) != 0 {
				fb.SetPixel(x+gx, y+gy)
			} else {
				fb.ClearPixel(x+gx, y+gy)
			}
		}
	}
}
