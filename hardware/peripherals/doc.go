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

// Package peripherals defines the capability ports through which the console
// touches hardware: a line-rate timer with a one-shot compare channel, a sync
// output pin, a byte-serial shift path for pixel data, and an analog sampler
// for the paddle inputs.
//
// The console core only ever sees the port interfaces. The Simulator type in
// this package implements all of them against a deterministic tick clock,
// which is what every frontend in this project uses. A port implementation
// backed by real hardware would satisfy the same interfaces.
package peripherals
