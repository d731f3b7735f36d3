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

// Package specification contains the definition of the video waveform
// produced by the console: line counts, pulse widths and pixel geometry.
//
// The numeric values are calibration constants. They were chosen for an NTSC
// set driven by an 8MHz timer clock and should be treated as tunable against
// a target display rather than as load-bearing in themselves. Everything
// derivable is derived in init() so that a single primary value can be
// changed consistently.
package specification

import "pong328/curated"

// UnsupportedSpec is the error pattern returned by SearchSpec().
const UnsupportedSpec = "television: unsupported spec: %s"

// Ticks is a duration expressed in cycles of the free-running hardware
// counter. At the 8MHz timer clock one tick is 125 nanoseconds.
type Ticks int

// PulseKind classifies a sync pulse by its width.
type PulseKind int

// List of valid PulseKind values. PulseUnknown indicates a pulse width that
// does not correspond to any part of the specification.
const (
	PulseUnknown PulseKind = iota
	PulseEqualize
	PulseHSync
	PulseVSync
)

func (k PulseKind) String() string {
	switch k {
	case PulseEqualize:
		return "equalize"
	case PulseHSync:
		return "hsync"
	case PulseVSync:
		return "vsync"
	}
	return "unknown"
}

// Spec is used to define the video specification of the console.
type Spec struct {
	ID string

	// the total number of scan lines in one field. the scan line counter
	// counts from zero and wraps at this value
	LinesTotal int

	// the vertical interval at the top of the field: a run of equalizing
	// pulses, a run of vertical sync pulses, and a second run of equalizing
	// pulses. all three runs are counted in half-lines
	EqualizingHalfLines int
	VSyncHalfLines      int

	// the range of scan lines that carry picture data, inclusive at both
	// ends. VisibleBottom is derived from VisibleTop and VisibleLines
	VisibleTop    int
	VisibleBottom int
	VisibleLines  int

	// the one scan line per field on which the game logic runs. derived:
	// the line immediately after the visible portion
	GameLine int

	// horizontal timing, in ticks of the free-running counter
	TicksLine     Ticks
	TicksHalfLine Ticks
	TicksHSync    Ticks
	TicksEqualize Ticks
	TicksVSync    Ticks

	// the serial shift path runs at a fixed byte period; the analog sampler
	// takes a fixed time per conversion
	TicksPerByte   Ticks
	TicksPerSample Ticks

	// pixel geometry. each visible line carries BytesPerLine bytes of pixel
	// data (8 pixels per byte) and each frame buffer row is replayed for
	// RenderRepeat consecutive scan lines
	BytesPerLine int
	RenderRepeat int

	// dimensions of the frame buffer. derived from BytesPerLine,
	// VisibleLines and RenderRepeat
	PixelsX int
	PixelsY int

	// the field rate required by the specification
	FieldsPerSecond float32
}

// ClassifyPulse decides which part of the sync waveform a pulse of the given
// width belongs to. Classification uses the midpoints between the declared
// pulse widths so that small timing errors do not change the result.
func (spec Spec) ClassifyPulse(width Ticks) PulseKind {
	if width <= 0 || width >= spec.TicksHalfLine {
		return PulseUnknown
	}
	if width < (spec.TicksEqualize+spec.TicksHSync)/2 {
		return PulseEqualize
	}
	if width < (spec.TicksHSync+spec.TicksVSync)/2 {
		return PulseHSync
	}
	return PulseVSync
}

// SpecList is the list of specifications that the console supports. The
// original hardware was built for an NTSC set; a PAL build would be different
// firmware, not a runtime option.
var SpecList = []string{"NTSC"}

// SpecNTSC is the specification for NTSC television types.
var SpecNTSC Spec

// SearchSpec looks for a specification with the given ID. The search is case
// sensitive.
func SearchSpec(id string) (Spec, error) {
	for _, l := range SpecList {
		if l == id {
			return SpecNTSC, nil
		}
	}
	return Spec{}, curated.Errorf(UnsupportedSpec, id)
}

func init() {
	SpecNTSC = Spec{
		ID:         "NTSC",
		LinesTotal: 262,

		EqualizingHalfLines: 6,
		VSyncHalfLines:      6,

		VisibleTop:   21,
		VisibleLines: 240,

		// 63.5us line period at the 8MHz timer clock
		TicksLine:     495,
		TicksHSync:    35,  // 4.7us
		TicksEqualize: 18,  // 2.3us
		TicksVSync:    211, // half-line less the 4.7us serration

		TicksPerByte:   32,  // 8 bits at 2Mbps
		TicksPerSample: 104, // 13 ADC clocks at Fclk/2

		BytesPerLine: 11,
		RenderRepeat: 4,

		FieldsPerSecond: 60.0,
	}

	SpecNTSC.TicksHalfLine = SpecNTSC.TicksLine / 2
	SpecNTSC.VisibleBottom = SpecNTSC.VisibleTop + SpecNTSC.VisibleLines - 1
	SpecNTSC.GameLine = SpecNTSC.VisibleBottom + 1
	SpecNTSC.PixelsX = SpecNTSC.BytesPerLine * 8
	SpecNTSC.PixelsY = SpecNTSC.VisibleLines / SpecNTSC.RenderRepeat
}
