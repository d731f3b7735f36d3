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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"pong328/logger"
)

// Profile says which profiles RunProfiler() should gather.
type Profile int

// List of valid Profile values. Values combine with bitwise or.
const (
	ProfileNone Profile = 0x00
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll  Profile = ProfileCPU | ProfileMem
)

// ParseProfile converts a profile name from the command line. Recognised
// names are none, cpu, mem and all.
func ParseProfile(name string) (Profile, error) {
	switch name {
	case "none", "":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "all":
		return ProfileAll, nil
	}
	return ProfileNone, fmt.Errorf("unrecognised profile: %s", name)
}

// RunProfiler runs the given function with the requested profiles gathered
// around it. Profile files are named after the tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		fn := fmt.Sprintf("%s_cpu.profile", tag)
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()

		logger.Logf("performance", "cpu profile to %s", fn)
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		fn := fmt.Sprintf("%s_mem.profile", tag)
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}

		logger.Logf("performance", "memory profile to %s", fn)
	}

	return nil
}
