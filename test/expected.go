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

package test

import (
	"fmt"
	"testing"
)

// return a string representation of the optional tags. used to decorate the
// failure message
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := ""
	for _, tag := range tags {
		s = fmt.Sprintf("%s[%v]", s, tag)
	}
	return s + " "
}

// expect tests argument v for a success condition suitable for its type:
//
//	bool  -> bool == true
//	error -> error == nil
//	nil   -> success
func expect(t *testing.T, v any, tags ...any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, unexpectedValue T, tags ...any) bool {
	t.Helper()
	if v == unexpectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a value which indicates a 'successful'
// value for the type. See the expect() function for the value types that can
// be tested.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Errorf("%sa success value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}

// ExpectFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. See the expect() function for the value types that can
// be tested.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v, tags...) {
		t.Errorf("%sa failure value is expected for type %T", id(tags...), v)
		return false
	}
	return true
}
