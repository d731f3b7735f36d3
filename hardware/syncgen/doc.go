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

// Package syncgen generates the composite sync waveform for one video field
// and streams pixel data onto the serial shift path.
//
// The package divides its work the same way the original hardware does. The
// Tick() function is the interrupt context: it runs once per half-line timer
// event, advances the scan line counters, walks the vertical state machine
// and selects the duty for the cycle. Everything else, the pulse emission
// and the pixel streaming, is main context work performed by whoever called
// Tick(), which is the console run loop.
package syncgen
