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

package peripherals_test

import (
	"testing"

	"pong328/hardware/peripherals"
	"pong328/television/specification"
	"pong328/test"
)

type mockSink struct {
	pulses []specification.Ticks
	lines  [][]uint8
}

func (m *mockSink) SignalPulse(width specification.Ticks) {
	m.pulses = append(m.pulses, width)
}

func (m *mockSink) SignalPixels(line []uint8) {
	m.lines = append(m.lines, line)
}

func TestWaitLine(t *testing.T) {
	spec := specification.SpecNTSC
	sim := peripherals.NewSimulator(spec, nil, nil)

	// the clock always lands on the next half-line boundary, even when it
	// is already on one
	sim.WaitLine()
	test.ExpectEquality(t, sim.Clock(), int64(spec.TicksHalfLine))
	sim.WaitLine()
	test.ExpectEquality(t, sim.Clock(), int64(spec.TicksHalfLine)*2)
}

func TestPulseWidth(t *testing.T) {
	spec := specification.SpecNTSC
	sink := &mockSink{}
	sim := peripherals.NewSimulator(spec, sink, nil)

	sim.StartOneShot(spec.TicksHSync)
	sim.Assert()
	sim.WaitCompare()
	sim.Release()
	sim.StopOneShot()

	test.DemandEquality(t, len(sink.pulses), 1)
	test.ExpectEquality(t, sink.pulses[0], spec.TicksHSync)

	// releasing an unasserted pin is a no-op
	sim.Release()
	test.ExpectEquality(t, len(sink.pulses), 1)
}

func TestShifterDecode(t *testing.T) {
	spec := specification.SpecNTSC
	sink := &mockSink{}
	sim := peripherals.NewSimulator(spec, sink, nil)

	// first byte loaded before the shifter is enabled
	sim.Send(^uint8(0xaa))
	sim.Enable()
	sim.WaitReady()
	sim.Send(^uint8(0x55))
	sim.WaitReady()
	sim.Disable()

	test.DemandEquality(t, len(sink.lines), 1)
	test.DemandEquality(t, len(sink.lines[0]), 2)

	// the hardware inverter is undone on decode
	test.ExpectEquality(t, sink.lines[0][0], 0xaa)
	test.ExpectEquality(t, sink.lines[0][1], 0x55)

	// disabling an empty shifter emits nothing
	sim.Enable()
	sim.Disable()
	test.ExpectEquality(t, len(sink.lines), 1)
}

func TestSampler(t *testing.T) {
	spec := specification.SpecNTSC

	sim := peripherals.NewSimulator(spec, nil, nil)
	test.ExpectEquality(t, sim.Sample(peripherals.ChannelRightPaddle), 128)
	test.ExpectEquality(t, sim.Clock(), int64(spec.TicksPerSample))

	sim = peripherals.NewSimulator(spec, nil, func(channel int) uint8 {
		if channel == peripherals.ChannelLeftPaddle {
			return 10
		}
		return 200
	})
	test.ExpectEquality(t, sim.Sample(peripherals.ChannelRightPaddle), 200)
	test.ExpectEquality(t, sim.Sample(peripherals.ChannelLeftPaddle), 10)

	// each conversion costs one conversion period
	test.ExpectEquality(t, sim.Clock(), int64(spec.TicksPerSample)*2)
}
