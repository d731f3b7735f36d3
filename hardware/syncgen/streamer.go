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

package syncgen

import (
	"pong328/hardware/framebuffer"
	"pong328/hardware/peripherals"
	"pong328/television/specification"
)

// Streamer replays the frame buffer onto the serial shift path, one line per
// call, each frame buffer row repeated for a run of consecutive scan lines.
type Streamer struct {
	spec specification.Spec
	fb   *framebuffer.FrameBuffer
	shf  peripherals.ByteShifter

	// the output stage inverts the serial line so bytes are sent
	// pre-inverted to cancel it out
	inverted bool

	// current frame buffer row and the number of times it has already been
	// replayed
	rowIndex   int
	lineRepeat int
}

// NewStreamer is the preferred method of initialisation for the Streamer
// type.
func NewStreamer(spec specification.Spec, fb *framebuffer.FrameBuffer, shf peripherals.ByteShifter) *Streamer {
	return &Streamer{
		spec:     spec,
		fb:       fb,
		shf:      shf,
		inverted: true,
	}
}

// Reset rewinds the streamer to the top row of the frame buffer. Called
// during the vertical interval, it is safe to repeat.
func (st *Streamer) Reset() {
	st.rowIndex = 0
	st.lineRepeat = 0
}

func (st *Streamer) encode(b uint8) uint8 {
	if st.inverted {
		return ^b
	}
	return b
}

// RenderLine streams the current frame buffer row onto the shift path and
// advances the row bookkeeping. The line ends with a flush byte that decodes
// to black, guaranteeing the shift register drains before the next sync
// pulse.
func (st *Streamer) RenderLine() {
	row := st.fb.Row(st.rowIndex)
	if row == nil {
		return
	}

	// the first byte must be loaded before the shifter is enabled because
	// output starts the instant it is
	st.shf.Send(st.encode(row[0]))
	st.shf.Enable()

	for _, b := range row[1:] {
		st.shf.WaitReady()
		st.shf.Send(st.encode(b))
	}

	st.shf.WaitReady()
	st.shf.Send(st.encode(0x00))
	st.shf.WaitReady()
	st.shf.Disable()

	if st.lineRepeat < st.spec.RenderRepeat-1 {
		st.lineRepeat++
	} else {
		st.lineRepeat = 0
		st.rowIndex++
		if st.rowIndex >= st.fb.Height() {
			st.rowIndex = 0
		}
	}
}
