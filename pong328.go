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

package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"

	"pong328/curated"
	"pong328/gui/sdlscreen"
	"pong328/gui/termscreen"
	"pong328/hardware"
	"pong328/hardware/game"
	"pong328/logger"
	"pong328/modalflag"
	"pong328/performance"
	"pong328/statsview"
	"pong328/television"
	"pong328/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "PERFORMANCE")

	ver := md.AddBool("version", false, "print version and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *ver {
		vrs, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrs)
		if !release {
			fmt.Println(rev)
		}
		os.Exit(0)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(10)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	tvType := md.AddString("tv", "NTSC", "television specification")
	scale := md.AddFloat64("scale", 3.0, "window scale")
	velocity := md.AddInt("velocity", 3, "number of fields between ball steps")
	serveCycle := md.AddInt("servecycle", 20, "range of the serve aim cycle")
	terminal := md.AddBool("term", false, "play in the terminal instead of a window")
	uncapped := md.AddBool("uncapped", false, "do not cap the field rate")
	log := md.AddBool("log", false, "echo log entries to stderr")
	stateGraph := md.AddString("stategraph", "", "write a graph of the console structure to the named file and exit")

	md.AdditionalHelp(
		"In the window, the mouse drives the right paddle and the a and z keys the left.\n" +
			"In the terminal, a/z drive the left paddle and k/m the right. Quit with q.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	tv, err := television.NewTelevision(*tvType)
	if err != nil {
		return err
	}
	defer tv.End()
	tv.SetFPSCap(!*uncapped)

	setup := game.DefaultSetup()
	setup.Velocity = *velocity
	setup.ServeCycle = *serveCycle

	if *terminal {
		return playTerminal(tv, setup, *stateGraph)
	}
	return playWindow(tv, setup, float32(*scale), *stateGraph)
}

// writeStateGraph renders the structure of the console to a graphviz dot
// file.
func writeStateGraph(con *hardware.Console, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, con)
	return nil
}

func playTerminal(tv *television.Television, setup game.Setup, stateGraph string) error {
	scr, err := termscreen.NewScreen(tv)
	if err != nil {
		return err
	}

	con, err := hardware.NewConsole(tv, scr.SampleFunc(), setup)
	if err != nil {
		return err
	}

	if stateGraph != "" {
		return writeStateGraph(con, stateGraph)
	}

	return con.Run(func() (bool, error) {
		return !scr.Quitted(), nil
	})
}

func playWindow(tv *television.Television, setup game.Setup, scale float32, stateGraph string) error {
	scr, err := sdlscreen.NewScreen(tv, scale)
	if err != nil {
		return err
	}

	con, err := hardware.NewConsole(tv, scr.SampleFunc(), setup)
	if err != nil {
		return err
	}

	if stateGraph != "" {
		return writeStateGraph(con, stateGraph)
	}

	// the console gets its own goroutine. SDL events must be serviced from
	// the main goroutine so that is what main does until the console ends
	var quit atomic.Bool

	errChan := make(chan error)
	go func() {
		errChan <- con.Run(func() (bool, error) {
			return !quit.Load(), nil
		})
	}()

	for {
		select {
		case err := <-errChan:
			return err
		default:
			if err := scr.Service(); err != nil {
				if !curated.Is(err, curated.UserQuit) {
					return err
				}
				quit.Store(true)
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	tvType := md.AddString("tv", "NTSC", "television specification")
	duration := md.AddString("duration", "5s", "duration of the measurement window")
	profile := md.AddString("profile", "none", "profile the run: cpu, mem, all")
	uncapped := md.AddBool("uncapped", true, "do not cap the field rate")
	stats := md.AddBool("statsview", false, "run the statsview server during the measurement")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, *tvType, *uncapped, *duration)
}
