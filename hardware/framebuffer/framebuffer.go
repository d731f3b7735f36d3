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

// Package framebuffer implements the bit-packed monochrome frame buffer that
// the video streamer replays every field. One bit per pixel, eight pixels
// per byte, most significant bit leftmost. A set bit is a white pixel.
//
// Drawing primitives clip silently at the canvas edge and every operation on
// a nil or uninitialised FrameBuffer is a no-op. The video chain must never
// be brought down by an out of range coordinate.
package framebuffer

import "pong328/curated"

// Sentinel error returned by NewFrameBuffer().
const BadDimensions = "framebuffer: bad dimensions: %dx%d"

// FrameBuffer is the pixel store for one picture. Rows are packed into
// (width/8) bytes each.
type FrameBuffer struct {
	width  int
	height int
	stride int
	bits   []uint8
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type. Width must be a positive multiple of eight.
func NewFrameBuffer(width int, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 || width%8 != 0 {
		return nil, curated.Errorf(BadDimensions, width, height)
	}

	fb := &FrameBuffer{
		width:  width,
		height: height,
		stride: width / 8,
	}
	fb.bits = make([]uint8, fb.stride*height)

	return fb, nil
}

// Width of the frame buffer in pixels.
func (fb *FrameBuffer) Width() int {
	if fb == nil {
		return 0
	}
	return fb.width
}

// Height of the frame buffer in pixels.
func (fb *FrameBuffer) Height() int {
	if fb == nil {
		return 0
	}
	return fb.height
}

func (fb *FrameBuffer) ok(x int, y int) bool {
	return fb != nil && fb.bits != nil && x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Clear fills every byte of the frame buffer with the given pattern. A
// pattern of 0x00 is an all-black picture.
func (fb *FrameBuffer) Clear(pattern uint8) {
	if fb == nil || fb.bits == nil {
		return
	}
	for i := range fb.bits {
		fb.bits[i] = pattern
	}
}

// Pixel returns true if the pixel at the given coordinate is set. Pixels
// outside the canvas read as unset.
func (fb *FrameBuffer) Pixel(x int, y int) bool {
	if !fb.ok(x, y) {
		return false
	}
	return fb.bits[y*fb.stride+x/8]&(0x80>>(x%8)) != 0
}

// SetPixel sets the pixel at the given coordinate to white.
func (fb *FrameBuffer) SetPixel(x int, y int) {
	if !fb.ok(x, y) {
		return
	}
	fb.bits[y*fb.stride+x/8] |= 0x80 >> (x % 8)
}

// ClearPixel sets the pixel at the given coordinate to black.
func (fb *FrameBuffer) ClearPixel(x int, y int) {
	if !fb.ok(x, y) {
		return
	}
	fb.bits[y*fb.stride+x/8] &^= 0x80 >> (x % 8)
}

// FlipPixel inverts the pixel at the given coordinate. The moving parts of
// the game are drawn and undrawn with flips so that crossing pixels restore
// one another.
func (fb *FrameBuffer) FlipPixel(x int, y int) {
	if !fb.ok(x, y) {
		return
	}
	fb.bits[y*fb.stride+x/8] ^= 0x80 >> (x % 8)
}

// Line draws a straight line of set pixels between the two coordinates,
// inclusive at both ends. Points outside the canvas are dropped but the
// walk itself carries on so the visible portion of the line is correct.
func (fb *FrameBuffer) Line(x0 int, y0 int, x1 int, y1 int) {
	if fb == nil || fb.bits == nil {
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := step(x0, x1)
	sy := step(y0, y1)

	err := dx
	if dy > dx {
		err = -dy
	}
	err /= 2

	for {
		fb.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break // for loop
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// Row returns the packed bytes for one row of the frame buffer, or nil if
// the row is out of range. The slice aliases the frame buffer store and is
// valid until the next drawing operation.
func (fb *FrameBuffer) Row(y int) []uint8 {
	if fb == nil || fb.bits == nil || y < 0 || y >= fb.height {
		return nil
	}
	return fb.bits[y*fb.stride : (y+1)*fb.stride]
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
