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

// Package hardware assembles the console: the simulated peripheral ports,
// the sync generator, the pixel streamer and the game, wired to a
// television. The single-core discipline of the original machine is kept:
// one goroutine runs everything, pacing itself on the half-line timer.
package hardware

import (
	"sync/atomic"

	"pong328/hardware/framebuffer"
	"pong328/hardware/game"
	"pong328/hardware/peripherals"
	"pong328/hardware/syncgen"
	"pong328/television"
	"pong328/television/coords"
	"pong328/television/specification"
)

// Console is the top-level structure of the machine.
type Console struct {
	Spec specification.Spec

	// the television the console is plugged into
	TV *television.Television

	// the picture the streamer replays and the game draws into
	FB *framebuffer.FrameBuffer

	SyncGen  *syncgen.SyncGen
	Streamer *syncgen.Streamer
	Game     *game.Game

	// every peripheral port is served by the one simulator
	sim *peripherals.Simulator

	// the duty selector. written by the run loop when the tick decides the
	// cycle's work and written back to idle by the game's completion
	// callback. readable from any goroutine
	duty atomic.Int32
}

// NewConsole is the preferred method of initialisation for the Console
// type. The console is plugged into the given television and reads its
// paddle controls through the sample function, which may be nil.
func NewConsole(tv *television.Television, sample peripherals.SampleFunc, setup game.Setup) (*Console, error) {
	con := &Console{
		Spec: tv.GetSpec(),
		TV:   tv,
	}

	con.sim = peripherals.NewSimulator(con.Spec, tv, sample)

	var err error

	con.FB, err = framebuffer.NewFrameBuffer(con.Spec.PixelsX, con.Spec.PixelsY)
	if err != nil {
		return nil, err
	}

	con.SyncGen = syncgen.NewSyncGen(con.Spec, con.sim, con.sim)
	con.Streamer = syncgen.NewStreamer(con.Spec, con.FB, con.sim)

	con.Game, err = game.NewGame(con.Spec, con.FB, con.sim, setup, func() {
		con.duty.Store(int32(syncgen.DutyIdle))
	})
	if err != nil {
		return nil, err
	}

	return con, nil
}

// Duty returns the duty selected for the cycle most recently begun. Safe to
// call from any goroutine.
func (con *Console) Duty() syncgen.Duty {
	return syncgen.Duty(con.duty.Load())
}

// Coords returns the console's position in the field: the television's idea
// of the field number and the sync generator's scan line.
func (con *Console) Coords() coords.Coords {
	c := con.TV.GetCoords()
	c.Line = con.SyncGen.ScanLine()
	return c
}
