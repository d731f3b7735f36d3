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

import "pong328/television/specification"

// LineTimer is the timing port for the console. The timer free-runs at the
// line rate, raising an event every half scan line, and carries a one-shot
// compare channel used to time sync pulse widths.
type LineTimer interface {
	// WaitLine blocks until the next half-line timer event
	WaitLine()

	// StartOneShot arms the compare channel to fire after the given number
	// of ticks
	StartOneShot(width specification.Ticks)

	// WaitCompare blocks until the armed compare channel fires
	WaitCompare()

	// StopOneShot disarms the compare channel
	StopOneShot()
}

// SyncPin is the composite-sync output. The pulse is the period between
// Assert() and Release().
type SyncPin interface {
	Assert()
	Release()
}

// ByteShifter is the serial shift path that carries pixel data. Output
// begins the instant the shifter is enabled so the first byte must be loaded
// with Send() before the call to Enable().
type ByteShifter interface {
	Enable()
	Disable()

	// WaitReady blocks until the shifter can accept another byte
	WaitReady()

	// Send loads a byte into the shifter. the most significant bit is
	// shifted out first
	Send(data uint8)
}

// Sampler is the analog input port. Each call performs one conversion on the
// given channel and returns the eight bit result.
type Sampler interface {
	Sample(channel int) uint8
}

// List of sampler channels recognised by the console.
const (
	ChannelRightPaddle = 0
	ChannelLeftPaddle  = 1
)
