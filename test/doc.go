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

// Package test contains helper functions for the more common type of tests
// performed with the testing package.
//
// The ExpectEquality() and ExpectSuccess()/ExpectFailure() functions mark the
// test as having failed but allow the test to continue. The Demand*()
// equivalents end the test immediately. Demand functions are useful when a
// failure means later expressions in the test are meaningless or unsafe.
package test
