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

package modalflag_test

import (
	"os"
	"testing"

	"pong328/modalflag"
	"pong328/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.AddSubModes("PLAY", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PLAY")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"performance"})
	md.AddSubModes("PLAY", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")
	test.ExpectEquality(t, md.Path(), "PERFORMANCE")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"play", "-scale", "4"})
	md.AddSubModes("PLAY", "PERFORMANCE")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	scale := md.AddInt("scale", 2, "television scale")

	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *scale, 4)
}

func TestUnrecognisedFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}
