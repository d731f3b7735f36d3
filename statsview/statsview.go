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

//go:build statsview

// Package statsview serves runtime statistics over HTTP while the console
// runs. It is only compiled in when the statsview build tag is given:
//
//	go build -tags statsview
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statsview server.
const Address = "localhost:12328"

// Available returns true because this build carries the statsview server.
func Available() bool {
	return true
}

// Launch the statsview server. The output writer is where the launch
// message is printed.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()
	fmt.Fprintf(output, "statsview available at http://%s/debug/statsview\n", Address)
}
