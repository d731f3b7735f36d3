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

package logger_test

import (
	"strings"
	"testing"

	"pong328/logger"
	"pong328/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test\n")

	// repeated entries are folded, not appended
	logger.Log("test", "this is a test")
	s.Reset()
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")

	logger.Logf("test", "fields per second: %d", 60)
	s.Reset()
	logger.Tail(s, 1)
	test.ExpectEquality(t, s.String(), "test: fields per second: 60\n")

	logger.Clear()
	s.Reset()
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}
