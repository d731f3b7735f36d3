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
	"io"
	"time"

	"pong328/hardware"
	"pong328/hardware/game"
	"pong328/television"
)

// how long the console is given to warm up before measurement starts.
const leadTime = 2 * time.Second

// Check runs the console for the given duration and reports the field rate
// that was achieved. The run can be profiled; see the Profile type.
func Check(output io.Writer, profile Profile, spec string, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	tv, err := television.NewTelevision(spec)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer tv.End()
	tv.SetFPSCap(!uncapped)

	// fixed paddle controls. the game still runs in full, the players just
	// are not very good
	con, err := hardware.NewConsole(tv, nil, game.DefaultSetup())
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// the timer channel turns false during the lead time and true when the
	// measurement window closes
	timerChan := make(chan bool)
	go func() {
		time.Sleep(leadTime)
		timerChan <- false
		time.Sleep(dur)
		timerChan <- true
	}()

	startField := 0
	endField := 0

	runner := func() error {
		return con.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				if !v {
					// lead time over, measurement begins here
					startField = tv.GetCoords().Field
					return true, nil
				}
				endField = tv.GetCoords().Field
				return false, nil
			default:
			}
			return true, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(tv, endField-startField, dur)
	fmt.Fprintf(output, "%.2f fps (%d fields in %.2fs) %.1f%%\n",
		fps, endField-startField, dur.Seconds(), accuracy)

	return nil
}

// CalcFPS returns the field rate achieved over the given number of fields
// and duration, and how close that is to the specification rate as a
// percentage.
func CalcFPS(tv *television.Television, numFields int, dur time.Duration) (float32, float32) {
	fps := float32(float64(numFields) / dur.Seconds())
	accuracy := 100 * fps / tv.GetSpec().FieldsPerSecond
	return fps, accuracy
}
