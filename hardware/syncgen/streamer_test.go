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

package syncgen_test

import (
	"testing"

	"pong328/hardware/framebuffer"
	"pong328/hardware/syncgen"
	"pong328/television/specification"
	"pong328/test"
)

// mockShifter records the byte stream and the enable state transitions.
type mockShifter struct {
	enabled bool

	// bytes sent while disabled, before the corresponding Enable()
	preloaded int

	sent  []uint8
	waits int
}

func (m *mockShifter) Enable() {
	m.enabled = true
}

func (m *mockShifter) Disable() {
	m.enabled = false
}

func (m *mockShifter) WaitReady() {
	m.waits++
}

func (m *mockShifter) Send(data uint8) {
	if !m.enabled {
		m.preloaded++
	}
	m.sent = append(m.sent, data)
}

func TestRenderLine(t *testing.T) {
	spec := specification.SpecNTSC

	fb, err := framebuffer.NewFrameBuffer(spec.PixelsX, spec.PixelsY)
	test.DemandSuccess(t, err)
	fb.Line(0, 0, spec.PixelsX-1, 0)

	shf := &mockShifter{}
	st := syncgen.NewStreamer(spec, fb, shf)
	st.RenderLine()

	// one byte per pixel group plus the flush byte
	test.DemandEquality(t, len(shf.sent), spec.BytesPerLine+1)

	// the first byte is loaded before the shifter is enabled
	test.ExpectEquality(t, shf.preloaded, 1)

	// the line is all white so every pixel byte arrives as 0x00 through the
	// inverting output stage. the flush byte decodes to black, which on the
	// wire is 0xff
	for i := 0; i < spec.BytesPerLine; i++ {
		test.ExpectEquality(t, shf.sent[i], 0x00, i)
	}
	test.ExpectEquality(t, shf.sent[spec.BytesPerLine], 0xff)

	// shifter is left disabled at the end of the line
	test.ExpectEquality(t, shf.enabled, false)
}

func TestLineRepeat(t *testing.T) {
	spec := specification.SpecNTSC

	fb, err := framebuffer.NewFrameBuffer(spec.PixelsX, spec.PixelsY)
	test.DemandSuccess(t, err)

	// rows 0 and 1 are distinguishable
	fb.Line(0, 1, spec.PixelsX-1, 1)

	shf := &mockShifter{}
	st := syncgen.NewStreamer(spec, fb, shf)

	// the first frame buffer row is replayed for a full run of scan lines
	// before the streamer advances
	for i := 0; i < spec.RenderRepeat; i++ {
		st.RenderLine()
		test.ExpectEquality(t, shf.sent[0], 0xff, i)
		shf.sent = shf.sent[:0]
	}

	st.RenderLine()
	test.ExpectEquality(t, shf.sent[0], 0x00)
}

func TestStreamerResetAndWrap(t *testing.T) {
	spec := specification.SpecNTSC

	fb, err := framebuffer.NewFrameBuffer(spec.PixelsX, spec.PixelsY)
	test.DemandSuccess(t, err)
	fb.Line(0, 0, spec.PixelsX-1, 0)

	shf := &mockShifter{}
	st := syncgen.NewStreamer(spec, fb, shf)

	// stream a full field of lines. the streamer finishes back at the top
	// row without intervention
	for i := 0; i < spec.VisibleLines; i++ {
		st.RenderLine()
	}
	shf.sent = shf.sent[:0]
	st.RenderLine()
	test.ExpectEquality(t, shf.sent[0], 0x00)

	// a reset part way down the buffer also rewinds to the top row
	st.Reset()
	shf.sent = shf.sent[:0]
	st.RenderLine()
	test.ExpectEquality(t, shf.sent[0], 0x00)
}
