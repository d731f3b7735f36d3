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

package peripherals

import (
	"pong328/logger"
	"pong328/television/specification"
)

// VideoSink receives the output side of the simulated ports: sync pulses from
// the SyncPin and decoded pixel lines from the ByteShifter. The television
// package implements this interface.
type VideoSink interface {
	// SignalPulse is called on the release of the sync pin with the width
	// of the pulse just ended
	SignalPulse(width specification.Ticks)

	// SignalPixels is called when the byte shifter is disabled with every
	// byte sent since it was enabled, restored to normal polarity
	SignalPixels(line []uint8)
}

// SampleFunc supplies values for the simulated analog sampler. The channel
// argument is one of the Channel values defined in this package.
type SampleFunc func(channel int) uint8

// Simulator implements every port interface in this package against a single
// deterministic tick clock. Blocking calls advance the clock rather than
// sleeping, so a console driven by a Simulator runs as fast as the host
// allows and produces the same tick-exact sequence on every run.
//
// The Simulator is not safe for concurrent use. All ports must be driven
// from the one goroutine running the console loop, the same way the real
// hardware is driven from one core.
type Simulator struct {
	spec specification.Spec
	sink VideoSink

	// clock is the absolute time in ticks since creation
	clock int64

	oneShot struct {
		armed bool
		width specification.Ticks
	}

	pin struct {
		asserted   bool
		assertedAt int64
	}

	shifter struct {
		enabled bool

		// the output stage carries a hardware inverter so bytes arrive on
		// the wire inverted. the decode on Disable() undoes it
		inverted bool

		queue []uint8
	}

	sample SampleFunc
}

// NewSimulator is the preferred method of initialisation for the Simulator
// type. The sample function may be nil, in which case every conversion
// returns the midpoint value.
func NewSimulator(spec specification.Spec, sink VideoSink, sample SampleFunc) *Simulator {
	sim := &Simulator{
		spec:   spec,
		sink:   sink,
		sample: sample,
	}
	sim.shifter.inverted = true
	sim.shifter.queue = make([]uint8, 0, spec.BytesPerLine+1)
	return sim
}

// Clock returns the absolute simulated time in ticks.
func (sim *Simulator) Clock() int64 {
	return sim.clock
}

// WaitLine implements the LineTimer interface.
func (sim *Simulator) WaitLine() {
	half := int64(sim.spec.TicksHalfLine)
	sim.clock = ((sim.clock / half) + 1) * half
}

// StartOneShot implements the LineTimer interface.
func (sim *Simulator) StartOneShot(width specification.Ticks) {
	sim.oneShot.armed = true
	sim.oneShot.width = width
}

// WaitCompare implements the LineTimer interface.
func (sim *Simulator) WaitCompare() {
	if !sim.oneShot.armed {
		logger.Log("peripherals", "wait on compare channel that was never armed")
		return
	}
	sim.clock += int64(sim.oneShot.width)
}

// StopOneShot implements the LineTimer interface.
func (sim *Simulator) StopOneShot() {
	sim.oneShot.armed = false
}

// Assert implements the SyncPin interface.
func (sim *Simulator) Assert() {
	sim.pin.asserted = true
	sim.pin.assertedAt = sim.clock
}

// Release implements the SyncPin interface.
func (sim *Simulator) Release() {
	if !sim.pin.asserted {
		return
	}
	sim.pin.asserted = false
	if sim.sink != nil {
		sim.sink.SignalPulse(specification.Ticks(sim.clock - sim.pin.assertedAt))
	}
}

// Enable implements the ByteShifter interface.
func (sim *Simulator) Enable() {
	sim.shifter.enabled = true
}

// Disable implements the ByteShifter interface. Every byte sent since
// Enable() is decoded and forwarded to the sink as one line of pixels.
func (sim *Simulator) Disable() {
	sim.shifter.enabled = false

	if len(sim.shifter.queue) == 0 {
		return
	}

	line := make([]uint8, len(sim.shifter.queue))
	for i, b := range sim.shifter.queue {
		if sim.shifter.inverted {
			b = ^b
		}
		line[i] = b
	}
	sim.shifter.queue = sim.shifter.queue[:0]

	if sim.sink != nil {
		sim.sink.SignalPixels(line)
	}
}

// WaitReady implements the ByteShifter interface. The wait is modelled as
// one full byte period.
func (sim *Simulator) WaitReady() {
	sim.clock += int64(sim.spec.TicksPerByte)
}

// Send implements the ByteShifter interface. A byte sent before Enable() is
// queued, matching the hardware requirement that the first byte is loaded
// before the shifter starts.
func (sim *Simulator) Send(data uint8) {
	sim.shifter.queue = append(sim.shifter.queue, data)
}

// Sample implements the Sampler interface. One conversion period elapses on
// the clock for every call.
func (sim *Simulator) Sample(channel int) uint8 {
	sim.clock += int64(sim.spec.TicksPerSample)
	if sim.sample == nil {
		return 128
	}
	return sim.sample(channel)
}
