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

// Package termscreen is the terminal frontend. The picture is drawn with
// half-block characters, two frame buffer rows per character row, and the
// paddles are driven from the keyboard with the terminal in cbreak mode.
//
// Controls: a/z for the left paddle, k/m for the right, q to quit.
package termscreen

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"pong328/curated"
	"pong328/hardware/peripherals"
	"pong328/television"
	"pong328/television/specification"
)

// Screen is the terminal frontend. It implements the
// television.FieldRenderer interface.
type Screen struct {
	spec specification.Spec

	input  *os.File
	output *os.File

	// terminal attributes as they were before cbreak mode, restored when
	// rendering ends
	canAttr unix.Termios

	// the frame buffer rows of the field being accumulated. the repeated
	// scan lines of each row are collapsed back to one entry
	rows [][]uint8

	// terminal output is throttled to every other field
	field int

	leftPaddle  atomic.Int32
	rightPaddle atomic.Int32
	quit        atomic.Bool
}

// adjustment to a paddle control per key press.
const keyStep = 16

// NewScreen is the preferred method of initialisation for the Screen type.
// The terminal is put into cbreak mode until EndRendering(). The screen
// attaches itself to the television.
func NewScreen(tv *television.Television) (*Screen, error) {
	scr := &Screen{
		spec:   tv.GetSpec(),
		input:  os.Stdin,
		output: os.Stdout,
	}

	scr.rows = make([][]uint8, scr.spec.PixelsY)
	for i := range scr.rows {
		scr.rows[i] = make([]uint8, scr.spec.BytesPerLine)
	}

	scr.leftPaddle.Store(128)
	scr.rightPaddle.Store(128)

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr); err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}

	cbreakAttr := scr.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &cbreakAttr); err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}

	// clear the terminal and hide the cursor for the duration
	scr.output.WriteString("\033[2J\033[?25l")

	go scr.readKeys()

	tv.AddFieldRenderer(scr)

	return scr, nil
}

// readKeys consumes one key at a time until quit. Runs in its own
// goroutine.
func (scr *Screen) readKeys() {
	b := make([]byte, 1)
	for !scr.quit.Load() {
		if _, err := scr.input.Read(b); err != nil {
			return
		}
		switch b[0] {
		case 'a':
			nudge(&scr.leftPaddle, -keyStep)
		case 'z':
			nudge(&scr.leftPaddle, keyStep)
		case 'k':
			nudge(&scr.rightPaddle, -keyStep)
		case 'm':
			nudge(&scr.rightPaddle, keyStep)
		case 'q':
			scr.quit.Store(true)
		}
	}
}

func nudge(p *atomic.Int32, by int32) {
	v := p.Load() + by
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	p.Store(v)
}

// SampleFunc returns the function the console reads its paddle controls
// through.
func (scr *Screen) SampleFunc() peripherals.SampleFunc {
	return func(channel int) uint8 {
		switch channel {
		case peripherals.ChannelLeftPaddle:
			return uint8(scr.leftPaddle.Load())
		case peripherals.ChannelRightPaddle:
			return uint8(scr.rightPaddle.Load())
		}
		return 128
	}
}

// Quitted returns true once the player has asked to leave.
func (scr *Screen) Quitted() bool {
	return scr.quit.Load()
}

// NewField implements the television.FieldRenderer interface.
func (scr *Screen) NewField(field int) error {
	scr.field = field
	if field%2 == 0 {
		scr.draw()
	}
	return nil
}

// SetScanline implements the television.FieldRenderer interface. Only the
// first scan line of each repeated run is kept.
func (scr *Screen) SetScanline(line int, pixels []uint8) error {
	if line%scr.spec.RenderRepeat != 0 {
		return nil
	}
	row := line / scr.spec.RenderRepeat
	if row >= len(scr.rows) {
		return nil
	}
	copy(scr.rows[row], pixels)
	return nil
}

// pixel pairs to half-block characters. index is (upper<<1)|lower.
var blocks = [4]rune{' ', '▄', '▀', '█'}

// draw writes the accumulated field to the terminal.
func (scr *Screen) draw() {
	s := strings.Builder{}
	s.WriteString("\033[H")

	for y := 0; y < scr.spec.PixelsY; y += 2 {
		upper := scr.rows[y]
		lower := scr.rows[y+1]
		for x := 0; x < scr.spec.PixelsX; x++ {
			mask := uint8(0x80 >> (x % 8))
			i := 0
			if upper[x/8]&mask != 0 {
				i |= 2
			}
			if lower[x/8]&mask != 0 {
				i |= 1
			}
			s.WriteRune(blocks[i])
		}
		s.WriteString("\n")
	}

	scr.output.WriteString(s.String())
}

// EndRendering implements the television.FieldRenderer interface. The
// terminal is put back the way it was found.
func (scr *Screen) EndRendering() error {
	scr.quit.Store(true)
	scr.output.WriteString("\033[?25h\n")
	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCSANOW, &scr.canAttr); err != nil {
		return curated.Errorf("termscreen: %v", err)
	}
	return nil
}
