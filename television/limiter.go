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

package television

import (
	"sync/atomic"
	"time"
)

// limiter paces the console at the field rate of the specification. The
// console runs whole fields as fast as the host allows and then blocks here
// until the next field is due.
type limiter struct {
	// whether the rate is being limited at all
	active bool

	// the requested and the measured field rates. both read concurrently
	// by frontends, both stored as float32
	requested atomic.Value
	actual    atomic.Value

	// the pacing tick
	pulse *time.Ticker

	// measurement of the actual rate
	measureCt    int
	measureTime  time.Time
	measurePulse *time.Ticker
}

func (lmt *limiter) init(rate float32) {
	lmt.active = true
	lmt.requested.Store(float32(0))
	lmt.actual.Store(float32(0))

	// the pacing ticker is always running, even when the limiter is
	// inactive, so that setRate() only ever has to reset it
	lmt.pulse = time.NewTicker(time.Second)
	lmt.measurePulse = time.NewTicker(time.Second)
	lmt.measureTime = time.Now()

	lmt.setRate(rate)
}

func (lmt *limiter) setRate(rate float32) {
	if rate <= 0 {
		return
	}
	lmt.requested.Store(rate)
	lmt.pulse.Reset(time.Duration(float32(time.Second) / rate))
}

// checkField blocks until the next field is due. Called once per field by
// the television.
func (lmt *limiter) checkField() {
	lmt.measureCt++
	if lmt.active {
		<-lmt.pulse.C
	}
}

// measureActual updates the measured field rate. Called once per field; the
// measurement itself only happens about once a second.
func (lmt *limiter) measureActual() {
	select {
	case <-lmt.measurePulse.C:
		t := time.Now()
		elapsed := t.Sub(lmt.measureTime).Seconds()
		if elapsed > 0 {
			lmt.actual.Store(float32(float64(lmt.measureCt) / elapsed))
		}
		lmt.measureCt = 0
		lmt.measureTime = t
	default:
	}
}

func (lmt *limiter) end() {
	lmt.pulse.Stop()
	lmt.measurePulse.Stop()
}
