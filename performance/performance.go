// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/romloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the period of time before measurement begins. allows the framerate to
// settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile (or both) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, ld romloader.Loader, prefs hardware.Preferences, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	m, err := hardware.NewMachine(prefs)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = ld.Load()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = m.LoadROM(ld.Data, ld.Origin)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// frame number at the start of the measurement period
	var startFrame int

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// run until specified time elapses
		return m.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// the leadtime has concluded
				startFrame = m.Frame()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := m.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
