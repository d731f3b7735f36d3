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

package television_test

import (
	"testing"

	"pong328/curated"
	"pong328/television"
	"pong328/television/specification"
	"pong328/test"
)

type mockRenderer struct {
	fields   int
	lines    int
	lastLine int
}

func (m *mockRenderer) NewField(field int) error {
	m.fields++
	return nil
}

func (m *mockRenderer) SetScanline(line int, pixels []uint8) error {
	m.lines++
	m.lastLine = line
	return nil
}

func (m *mockRenderer) EndRendering() error {
	return nil
}

// signalField pushes the pulse train of one complete field, starting at the
// vertical sync onset, plus the visible lines.
func signalField(tv *television.Television) {
	spec := tv.GetSpec()

	for i := 0; i < spec.VSyncHalfLines; i++ {
		tv.SignalPulse(spec.TicksVSync)
	}
	for i := 0; i < spec.EqualizingHalfLines; i++ {
		tv.SignalPulse(spec.TicksEqualize)
	}

	blank := make([]uint8, spec.BytesPerLine+1)
	hsyncLines := spec.LinesTotal - (spec.EqualizingHalfLines*2+spec.VSyncHalfLines)/2
	for i := 0; i < hsyncLines; i++ {
		tv.SignalPulse(spec.TicksHSync)
		if i >= spec.VisibleTop-9 && i < spec.VisibleTop-9+spec.VisibleLines {
			tv.SignalPixels(blank)
		}
	}

	for i := 0; i < spec.EqualizingHalfLines; i++ {
		tv.SignalPulse(spec.TicksEqualize)
	}
}

func TestNewTelevision(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	defer tv.End()

	// spec lookup is case insensitive at this level
	tv2, err := television.NewTelevision("ntsc")
	test.DemandSuccess(t, err)
	tv2.End()

	_, err = television.NewTelevision("PAL")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, specification.UnsupportedSpec))
}

func TestFieldRecovery(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	defer tv.End()
	tv.SetFPSCap(false)

	rnd := &mockRenderer{}
	tv.AddFieldRenderer(rnd)

	// a field begins at the first vertical sync pulse, however many of
	// them follow
	for i := 0; i < 3; i++ {
		signalField(tv)
	}

	test.ExpectEquality(t, rnd.fields, 3)
	test.ExpectEquality(t, tv.GetCoords().Field, 3)

	// every visible line was forwarded, in order
	spec := tv.GetSpec()
	test.ExpectEquality(t, rnd.lines, spec.VisibleLines*3)
	test.ExpectEquality(t, rnd.lastLine, spec.VisibleLines-1)
}

func TestStability(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	defer tv.End()
	tv.SetFPSCap(false)

	test.ExpectEquality(t, tv.IsStable(), false)

	for i := 0; i < 5; i++ {
		signalField(tv)
	}
	test.ExpectEquality(t, tv.IsStable(), true)

	// stability holds in steady state. the vertical sync pulse that opens
	// a field must not be counted against the field it closes
	for i := 0; i < 10; i++ {
		signalField(tv)
		test.ExpectEquality(t, tv.IsStable(), true, "field", i)
	}

	// a malformed field, here one with a pulse of nonsense width, knocks
	// stability back
	tv.SignalPulse(300)
	signalField(tv)
	signalField(tv)
	test.ExpectEquality(t, tv.IsStable(), false)

	for i := 0; i < 4; i++ {
		signalField(tv)
	}
	test.ExpectEquality(t, tv.IsStable(), true)
}

func TestFPSControl(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	defer tv.End()

	spec := tv.GetSpec()
	test.ExpectEquality(t, tv.GetReqFPS(), spec.FieldsPerSecond)

	tv.SetFPS(30)
	test.ExpectEquality(t, tv.GetReqFPS(), float32(30))

	// non-positive rates restore the specification rate
	tv.SetFPS(-1)
	test.ExpectEquality(t, tv.GetReqFPS(), spec.FieldsPerSecond)
}
