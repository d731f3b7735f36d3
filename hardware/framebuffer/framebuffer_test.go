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

package framebuffer_test

import (
	"testing"

	"pong328/curated"
	"pong328/hardware/framebuffer"
	"pong328/test"
)

func TestNewFrameBuffer(t *testing.T) {
	fb, err := framebuffer.NewFrameBuffer(88, 60)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 88)
	test.ExpectEquality(t, fb.Height(), 60)

	// width must be a multiple of eight
	_, err = framebuffer.NewFrameBuffer(87, 60)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.BadDimensions))

	_, err = framebuffer.NewFrameBuffer(88, 0)
	test.ExpectFailure(t, err)
}

func TestPixelOperations(t *testing.T) {
	fb, err := framebuffer.NewFrameBuffer(16, 4)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, fb.Pixel(9, 2), false)
	fb.SetPixel(9, 2)
	test.ExpectEquality(t, fb.Pixel(9, 2), true)

	// msb of the packed byte is the leftmost pixel
	row := fb.Row(2)
	test.DemandEquality(t, len(row), 2)
	test.ExpectEquality(t, row[0], 0x00)
	test.ExpectEquality(t, row[1], 0x40)

	fb.ClearPixel(9, 2)
	test.ExpectEquality(t, fb.Pixel(9, 2), false)

	// a double flip restores the original value
	fb.FlipPixel(0, 0)
	test.ExpectEquality(t, fb.Pixel(0, 0), true)
	fb.FlipPixel(0, 0)
	test.ExpectEquality(t, fb.Pixel(0, 0), false)
}

func TestClipping(t *testing.T) {
	fb, err := framebuffer.NewFrameBuffer(16, 4)
	test.DemandSuccess(t, err)

	// out of range coordinates are dropped silently
	fb.SetPixel(-1, 0)
	fb.SetPixel(16, 0)
	fb.SetPixel(0, -1)
	fb.SetPixel(0, 4)
	fb.FlipPixel(100, 100)
	test.ExpectEquality(t, fb.Pixel(16, 0), false)

	for y := 0; y < 4; y++ {
		for _, b := range fb.Row(y) {
			test.ExpectEquality(t, b, 0x00)
		}
	}

	test.ExpectEquality(t, fb.Row(4) == nil, true)
	test.ExpectEquality(t, fb.Row(-1) == nil, true)
}

func TestNilFrameBuffer(t *testing.T) {
	var fb *framebuffer.FrameBuffer

	// every operation on a nil frame buffer is a no-op
	fb.SetPixel(0, 0)
	fb.ClearPixel(0, 0)
	fb.FlipPixel(0, 0)
	fb.Clear(0xff)
	fb.Line(0, 0, 10, 10)
	fb.DrawDigit(0, 0, '5')
	test.ExpectEquality(t, fb.Pixel(0, 0), false)
	test.ExpectEquality(t, fb.Width(), 0)
	test.ExpectEquality(t, fb.Row(0) == nil, true)
}

func TestLine(t *testing.T) {
	fb, err := framebuffer.NewFrameBuffer(16, 16)
	test.DemandSuccess(t, err)

	// horizontal line fills every pixel on the row, inclusive at both ends
	fb.Line(0, 3, 15, 3)
	for x := 0; x < 16; x++ {
		test.ExpectEquality(t, fb.Pixel(x, 3), true, x)
	}

	// vertical line
	fb.Clear(0x00)
	fb.Line(7, 2, 7, 9)
	for y := 2; y <= 9; y++ {
		test.ExpectEquality(t, fb.Pixel(7, y), true, y)
	}
	test.ExpectEquality(t, fb.Pixel(7, 1), false)
	test.ExpectEquality(t, fb.Pixel(7, 10), false)

	// perfect diagonal
	fb.Clear(0x00)
	fb.Line(0, 0, 5, 5)
	for i := 0; i <= 5; i++ {
		test.ExpectEquality(t, fb.Pixel(i, i), true, i)
	}

	// a line with an endpoint off the canvas draws its visible portion
	fb.Clear(0x00)
	fb.Line(12, 8, 20, 8)
	for x := 12; x < 16; x++ {
		test.ExpectEquality(t, fb.Pixel(x, 8), true, x)
	}
}

func TestDrawDigit(t *testing.T) {
	fb, err := framebuffer.NewFrameBuffer(8, 8)
	test.DemandSuccess(t, err)

	fb.DrawDigit(1, 1, '1')
	test.ExpectEquality(t, fb.Pixel(2, 1), true)
	test.ExpectEquality(t, fb.Pixel(1, 1), false)
	test.ExpectEquality(t, fb.Pixel(1, 5), true)
	test.ExpectEquality(t, fb.Pixel(3, 5), true)

	// redrawing clears the cell so the old glyph does not show through
	fb.DrawDigit(1, 1, '0')
	test.ExpectEquality(t, fb.Pixel(1, 1), true)
	test.ExpectEquality(t, fb.Pixel(2, 2), false)

	// non-digit runes are ignored
	fb.DrawDigit(1, 1, 'x')
	test.ExpectEquality(t, fb.Pixel(1, 1), true)
}
