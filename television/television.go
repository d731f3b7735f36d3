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

// Package television models the receiving end of the video signal. It knows
// nothing about the console: it sees only sync pulses and lines of pixels,
// classifies the pulses by width, recovers the field structure and forwards
// the picture to whatever renderers are attached.
//
// The television is also where the field rate is enforced. The console runs
// as fast as the host allows and the television blocks it at the top of
// every field until the next field is due.
package television

import (
	"strings"
	"sync"

	"pong328/logger"
	"pong328/television/coords"
	"pong328/television/specification"
)

// FieldRenderer implementations displays, or otherwise works with, the
// picture one field at a time.
type FieldRenderer interface {
	// NewField is called at the start of every field, before any of the
	// field's lines arrive
	NewField(field int) error

	// SetScanline supplies one visible line of packed pixels, eight pixels
	// per byte, most significant bit leftmost. the slice is only valid for
	// the duration of the call
	SetScanline(line int, pixels []uint8) error

	// EndRendering is called when the television is about to close
	EndRendering() error
}

// Television is the receiving end of the video signal. It implements the
// peripherals.VideoSink interface.
type Television struct {
	spec specification.Spec

	// critical section. the render functions are called from the console
	// goroutine while frontends query state from theirs
	crit sync.Mutex

	renderers []FieldRenderer

	// field recovery state. a field begins at the first vertical sync
	// pulse after a pulse of any other kind
	inVSync bool
	field   int

	// the visible line the next SignalPixels() call lands on
	line int

	// pulse tallies for the field in progress, checked against the
	// specification at every field boundary
	tally struct {
		equalize int
		vsync    int
		hsync    int
		unknown  int
	}

	// the television is stable once it has seen a run of consecutive
	// fields with the expected pulse counts
	stableFields int

	lmtr limiter
}

// the number of well-formed fields before the television is considered
// stable.
const stabilityThreshold = 3

// NewTelevision is the preferred method of initialisation for the
// Television type.
func NewTelevision(spec string) (*Television, error) {
	s, err := specification.SearchSpec(strings.ToUpper(spec))
	if err != nil {
		return nil, err
	}

	tv := &Television{spec: s}
	tv.lmtr.init(s.FieldsPerSecond)

	logger.Logf("television", "using the %s specification", s.ID)

	return tv, nil
}

// GetSpec returns the specification the television was created with.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// AddFieldRenderer registers a renderer with the television. There is no
// way to remove a renderer.
func (tv *Television) AddFieldRenderer(rnd FieldRenderer) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.renderers = append(tv.renderers, rnd)
}

// SetFPSCap activates or deactivates the pacing of the console at the field
// rate of the specification.
func (tv *Television) SetFPSCap(limit bool) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.lmtr.active = limit
}

// SetFPS requests a field rate other than the specification rate. Values
// less than or equal to zero restore the specification rate.
func (tv *Television) SetFPS(fps float32) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	if fps <= 0 {
		fps = tv.spec.FieldsPerSecond
	}
	tv.lmtr.setRate(fps)
}

// GetReqFPS returns the requested field rate.
func (tv *Television) GetReqFPS() float32 {
	return tv.lmtr.requested.Load().(float32)
}

// GetActualFPS returns the most recent measurement of the field rate
// actually being achieved.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.actual.Load().(float32)
}

// GetCoords returns the current position in the television output.
func (tv *Television) GetCoords() coords.Coords {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return coords.Coords{Field: tv.field, Line: tv.line}
}

// IsStable returns true once the television has seen enough well-formed
// fields in a row.
func (tv *Television) IsStable() bool {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return tv.stableFields >= stabilityThreshold
}

// SignalPulse implements the peripherals.VideoSink interface. Pulses are
// classified by width alone, the way a real set locks on.
func (tv *Television) SignalPulse(width specification.Ticks) {
	tv.crit.Lock()
	defer tv.crit.Unlock()

	switch tv.spec.ClassifyPulse(width) {
	case specification.PulseVSync:
		if !tv.inVSync {
			// the pulse that opens a new field belongs to the new field's
			// tally. newField() seeds it
			tv.inVSync = true
			tv.newField()
		} else {
			tv.tally.vsync++
		}
	case specification.PulseEqualize:
		tv.tally.equalize++
		tv.inVSync = false
	case specification.PulseHSync:
		tv.tally.hsync++
		tv.inVSync = false
	default:
		tv.tally.unknown++
		tv.inVSync = false
		logger.Logf("television", "pulse of unknown width (%d ticks)", width)
	}
}

// newField closes the field in progress and opens the next. Must be called
// with the critical section locked.
func (tv *Television) newField() {
	// check the shape of the field just ended. the very first vertical
	// sync the television ever sees ends a partial field so the check is
	// skipped for it
	if tv.field > 0 && !tv.wellFormed() {
		tv.stableFields = 0
		logger.Logf("television", "unstable field %d: %d equalize, %d vsync, %d hsync, %d unknown",
			tv.field, tv.tally.equalize, tv.tally.vsync, tv.tally.hsync, tv.tally.unknown)
	} else if tv.stableFields < stabilityThreshold {
		tv.stableFields++
	}

	tv.tally.equalize = 0
	tv.tally.vsync = 1 // the pulse that brought us here
	tv.tally.hsync = 0
	tv.tally.unknown = 0

	tv.field++
	tv.line = 0

	for _, rnd := range tv.renderers {
		if err := rnd.NewField(tv.field); err != nil {
			logger.Log("television", err.Error())
		}
	}

	tv.lmtr.checkField()
	tv.lmtr.measureActual()
}

// wellFormed compares the pulse tallies of the field just ended with what
// the specification says a field contains.
func (tv *Television) wellFormed() bool {
	// the field runs from one vertical sync onset to the next so the
	// second equalizing phase of one field and the first of the next are
	// both inside the window
	expEqualize := tv.spec.EqualizingHalfLines * 2
	expVSync := tv.spec.VSyncHalfLines
	expHSync := tv.spec.LinesTotal -
		(tv.spec.EqualizingHalfLines*2+tv.spec.VSyncHalfLines)/2

	return tv.tally.equalize == expEqualize &&
		tv.tally.vsync == expVSync &&
		tv.tally.hsync == expHSync &&
		tv.tally.unknown == 0
}

// SignalPixels implements the peripherals.VideoSink interface. Each call
// carries one visible line of pixels.
func (tv *Television) SignalPixels(pixels []uint8) {
	tv.crit.Lock()
	defer tv.crit.Unlock()

	if tv.line >= tv.spec.VisibleLines {
		logger.Logf("television", "pixel line beyond the visible field (line %d)", tv.line)
		return
	}

	// any bytes beyond the visible width are flush bytes and must have
	// drained to black
	if len(pixels) > tv.spec.BytesPerLine {
		for _, b := range pixels[tv.spec.BytesPerLine:] {
			if b != 0x00 {
				logger.Log("television", "shift register not drained to black at end of line")
				break // for loop
			}
		}
	}

	row := pixels
	if len(row) > tv.spec.BytesPerLine {
		row = row[:tv.spec.BytesPerLine]
	}

	for _, rnd := range tv.renderers {
		if err := rnd.SetScanline(tv.line, row); err != nil {
			logger.Log("television", err.Error())
		}
	}

	tv.line++
}

// End cleans up the television and all attached renderers.
func (tv *Television) End() error {
	tv.crit.Lock()
	defer tv.crit.Unlock()

	tv.lmtr.end()

	var err error
	for _, rnd := range tv.renderers {
		if e := rnd.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
