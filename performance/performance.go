// This file is part of Gopher8008.
//
// Gopher8008 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8008 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8008.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8008/hardware"
	"github.com/jetsetilly/gopher8008/hardware/bus"
)

// the original part ran from a 500kHz clock with every timing state taking
// two clock periods, giving 250000 states per second.
const referenceStatesPerSecond = 250000

// Check the performance of the emulation using the supplied program.
//
// The machine runs for the specified duration and a CPU or memory profile is
// created as requested by the profile argument. Speed is reported as a
// multiple of a real 500kHz part.
func Check(output io.Writer, profile Profile, sys *hardware.MCS8, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// count states through the trace callback. instruction counting comes
	// free with the continue check
	states := 0
	sys.CPU.TraceFunc = func(_ bus.Transaction) {
		states++
	}
	defer func() {
		sys.CPU.TraceFunc = nil
	}()

	instructions := 0

	runner := func() error {
		// the buffer means the expiry callback never blocks, even if the run
		// errors out before anything reads the channel
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// checking the timer channel is relatively expensive so it happens
		// only every PerformanceBrake instructions
		brake := 0
		expired := false
		startTime := time.Now()

		check := func() (bool, error) {
			instructions++

			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0
				select {
				case <-timerChan:
					expired = true
					return false, nil
				default:
				}
			}

			return true, nil
		}

		// Run() returns when the program halts. restart it the way the
		// board logic would and keep going until the timer expires
		for !expired {
			if err := sys.Run(check); err != nil {
				return err
			}
			if sys.CPU.Halted() {
				sys.Interrupt(0)
			}
		}

		elapsed := time.Since(startTime).Seconds()
		if elapsed <= 0 {
			return nil
		}

		statesPerSecond := float64(states) / elapsed
		fmt.Fprintf(output, "%d instructions, %d states in %.2fs\n", instructions, states, elapsed)
		fmt.Fprintf(output, "%.0f states/sec: %.1fx a 500kHz part\n",
			statesPerSecond, statesPerSecond/referenceStatesPerSecond)

		return nil
	}

	err = profileRun(profile, runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
