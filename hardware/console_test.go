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

package hardware_test

import (
	"testing"

	"pong328/digest"
	"pong328/hardware"
	"pong328/hardware/game"
	"pong328/television"
	"pong328/test"
)

// newTestConsole builds an uncapped console with a fixed paddle sample.
func newTestConsole(t *testing.T) (*hardware.Console, *television.Television) {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	test.DemandSuccess(t, err)
	tv.SetFPSCap(false)

	con, err := hardware.NewConsole(tv, func(channel int) uint8 {
		return 128
	}, game.DefaultSetup())
	test.DemandSuccess(t, err)

	return con, tv
}

// runFields runs the console for the given number of fields.
func runFields(t *testing.T, con *hardware.Console, fields int) {
	t.Helper()

	ct := 0
	err := con.Run(func() (bool, error) {
		ct++
		return ct < fields, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ct, fields)
}

func TestConsoleFieldCadence(t *testing.T) {
	con, tv := newTestConsole(t)
	defer tv.End()

	// the continue check runs once per field so the television must have
	// seen the matching number of field onsets, give or take the partial
	// field at the start of time
	runFields(t, con, 10)

	field := tv.GetCoords().Field
	test.ExpectSuccess(t, field >= 9 && field <= 10, field)

	// a fully shaped signal from a cold start settles immediately
	test.ExpectSuccess(t, tv.IsStable())
}

func TestConsoleScanLine(t *testing.T) {
	con, tv := newTestConsole(t)
	defer tv.End()

	// the continue check is called on the game line, during vertical blank
	err := con.Run(func() (bool, error) {
		test.ExpectEquality(t, con.SyncGen.ScanLine(), con.Spec.GameLine)
		return false, nil
	})
	test.DemandSuccess(t, err)
}

func TestConsoleDeterminism(t *testing.T) {
	conA, tvA := newTestConsole(t)
	defer tvA.End()
	conB, tvB := newTestConsole(t)
	defer tvB.End()

	digA, err := digest.NewVideo(tvA)
	test.DemandSuccess(t, err)
	digB, err := digest.NewVideo(tvB)
	test.DemandSuccess(t, err)

	// two consoles, same inputs, same number of fields: the video output
	// must match hash for hash
	runFields(t, conA, 120)
	runFields(t, conB, 120)

	test.ExpectEquality(t, digA.Fields(), digB.Fields())
	test.ExpectInequality(t, digA.Hash(), "0000000000000000000000000000000000000000")
	test.ExpectEquality(t, digA.Hash(), digB.Hash())
}

func TestConsoleGamePlays(t *testing.T) {
	con, tv := newTestConsole(t)
	defer tv.End()

	// with centered paddles and the stock setup, the first serve is in
	// flight within a handful of fields
	runFields(t, con, game.DefaultSetup().Velocity+1)
	test.ExpectSuccess(t, con.Game.BallInPlay())

	// the duty selector is parked at idle after the game's slice of the
	// field
	test.ExpectEquality(t, con.Duty().String(), "idle")
}
