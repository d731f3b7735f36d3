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
	"sync/atomic"

	"pong328/hardware/peripherals"
	"pong328/television/specification"
)

// State records where the sync generator is in the vertical interval.
type State int

// List of valid State values. The machine cycles EQUALIZING, VSYNC,
// EQUALIZING, HSYNC over the course of a field.
const (
	StateEqualizing State = iota
	StateVSync
	StateHSync
)

func (s State) String() string {
	switch s {
	case StateEqualizing:
		return "equalizing"
	case StateVSync:
		return "vsync"
	case StateHSync:
		return "hsync"
	}
	return "unknown"
}

// Duty identifies the work the console must perform for one timer cycle.
// Every value except DutyIdle and DutyGame names a pulse to emit; DutyRender
// and DutyGame imply a horizontal sync pulse first.
type Duty int

// List of valid Duty values.
const (
	DutyIdle Duty = iota
	DutyEqualize
	DutyVSync
	DutyHSync
	DutyRender
	DutyGame
)

func (d Duty) String() string {
	switch d {
	case DutyIdle:
		return "idle"
	case DutyEqualize:
		return "equalize"
	case DutyVSync:
		return "vsync"
	case DutyHSync:
		return "hsync"
	case DutyRender:
		return "render"
	case DutyGame:
		return "game"
	}
	return "unknown"
}

// SyncGen is the scan-line state machine. It owns the scan line counter and
// decides, cycle by cycle, what the console should be doing.
type SyncGen struct {
	spec specification.Spec

	tmr peripherals.LineTimer
	pin peripherals.SyncPin

	state State

	// half-lines remaining in the current vertical phase. meaningless when
	// state is StateHSync
	halfCount int

	// the second equalizing phase of the field exits to HSYNC rather than
	// VSYNC
	postEqualize bool

	// which half of the current line the next timer event begins. only
	// touched by Tick()
	halfLine bool

	// the scan line counter is read from other contexts, the game loop in
	// particular, so access goes through an atomic. it is only ever written
	// by Tick()
	scanLine atomic.Int32
}

// NewSyncGen is the preferred method of initialisation for the SyncGen type.
func NewSyncGen(spec specification.Spec, tmr peripherals.LineTimer, pin peripherals.SyncPin) *SyncGen {
	sg := &SyncGen{
		spec: spec,
		tmr:  tmr,
		pin:  pin,
	}
	sg.Reset()
	return sg
}

// Reset returns the sync generator to the top of a field.
func (sg *SyncGen) Reset() {
	sg.state = StateEqualizing
	sg.halfCount = sg.spec.EqualizingHalfLines
	sg.postEqualize = false
	sg.halfLine = false
	sg.scanLine.Store(0)
}

// ScanLine returns the current scan line. Safe to call from any goroutine.
func (sg *SyncGen) ScanLine() int {
	return int(sg.scanLine.Load())
}

// Tick advances the state machine by one half-line timer event and returns
// the duty for the cycle just begun. The transition is a pure function of
// the counters and the preceding state: no input can change its course, so a
// field always has the same shape.
//
// Tick performs no emission itself. It is the short, deterministic portion
// of the cycle, the part the original hardware ran inside the timer
// interrupt.
func (sg *SyncGen) Tick() Duty {
	var duty Duty

	switch sg.state {
	case StateEqualizing:
		duty = DutyEqualize
		sg.halfCount--
		if sg.halfCount == 0 {
			if sg.postEqualize {
				sg.state = StateHSync
			} else {
				sg.state = StateVSync
				sg.halfCount = sg.spec.VSyncHalfLines
			}
		}

	case StateVSync:
		duty = DutyVSync
		sg.halfCount--
		if sg.halfCount == 0 {
			sg.state = StateEqualizing
			sg.halfCount = sg.spec.EqualizingHalfLines
			sg.postEqualize = true
		}

	case StateHSync:
		if sg.halfLine {
			// horizontal sync pulses only occur at the start of a full
			// line. nothing to do for the second half
			duty = DutyIdle
		} else {
			line := int(sg.scanLine.Load())
			switch {
			case line >= sg.spec.VisibleTop && line <= sg.spec.VisibleBottom:
				duty = DutyRender
			case line == sg.spec.GameLine:
				duty = DutyGame
			default:
				duty = DutyHSync
			}
		}
	}

	// advance the half-line flag and the scan line counter. the counter
	// wraps to zero at the bottom of the field, it never runs past the line
	// count and never goes negative
	if sg.halfLine {
		sg.halfLine = false
		line := sg.scanLine.Load() + 1
		if int(line) >= sg.spec.LinesTotal {
			line = 0
			sg.state = StateEqualizing
			sg.halfCount = sg.spec.EqualizingHalfLines
			sg.postEqualize = false
		}
		sg.scanLine.Store(line)
	} else {
		sg.halfLine = true
	}

	return duty
}

// pulse emits one sync pulse of the given width: assert the pin, busy-wait
// on the one-shot compare channel, release the pin.
func (sg *SyncGen) pulse(width specification.Ticks) {
	sg.tmr.StartOneShot(width)
	sg.pin.Assert()
	sg.tmr.WaitCompare()
	sg.pin.Release()
	sg.tmr.StopOneShot()
}

// PulseEqualize emits one equalizing pulse.
func (sg *SyncGen) PulseEqualize() {
	sg.pulse(sg.spec.TicksEqualize)
}

// PulseVSync emits one vertical sync pulse.
func (sg *SyncGen) PulseVSync() {
	sg.pulse(sg.spec.TicksVSync)
}

// PulseHSync emits one horizontal sync pulse.
func (sg *SyncGen) PulseHSync() {
	sg.pulse(sg.spec.TicksHSync)
}
