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

package hardware

import "pong328/hardware/syncgen"

// Run the console until the continueCheck function says otherwise. The
// check is called once per field, during the vertical blank, and a nil
// check runs the console forever.
//
// The loop is the whole machine: wait for the half-line timer, let the sync
// generator decide the cycle's duty, then do that duty. Pulse emission and
// pixel streaming happen here, in main context, while the tick that chose
// them is the interrupt context work.
func (con *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		con.sim.WaitLine()
		con.duty.Store(int32(con.SyncGen.Tick()))

		switch syncgen.Duty(con.duty.Load()) {
		case syncgen.DutyIdle:
			// a cycle with nothing to emit. the back half of a normal
			// scan line

		case syncgen.DutyEqualize:
			con.SyncGen.PulseEqualize()

		case syncgen.DutyVSync:
			con.SyncGen.PulseVSync()

			// the streamer rewinds during the vertical interval. doing it
			// on every vertical sync cycle is harmless, the reset is
			// idempotent
			con.Streamer.Reset()

		case syncgen.DutyHSync:
			con.SyncGen.PulseHSync()

		case syncgen.DutyRender:
			con.SyncGen.PulseHSync()
			con.Streamer.RenderLine()

		case syncgen.DutyGame:
			con.SyncGen.PulseHSync()

			// the game runs in the vertical blank, once per field. its
			// completion callback parks the duty selector back at idle
			con.Game.Update()

			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}
