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

//go:build !statsview

// Package statsview serves runtime statistics over HTTP while the console
// runs. It is only compiled in when the statsview build tag is given:
//
//	go build -tags statsview
package statsview

import (
	"fmt"
	"io"
)

// Address of the statsview server.
const Address = "localhost:12328"

// Available returns false because this build does not carry the statsview
// server.
func Available() bool {
	return false
}

// Launch does nothing in this build.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "statsview not available in this build (use the statsview build tag)")
}
