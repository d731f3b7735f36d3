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

// Package logger is the central log for the project. There is no need for
// more than one log so all functions work on a single instance.
//
// Log entries are tagged with the sub-system that raised them. Adjacent
// entries with identical content are folded into a single entry with a repeat
// count. This is important for a project like this one: a log request made
// once per field would otherwise flood the log at sixty entries per second.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to echo log entries to io.Writer as they arrive. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
