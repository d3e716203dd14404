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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/ports"
)

// Preferences for the emulated machine.
type Preferences struct {
	// whether a write to the watchdog port resets the machine. the Space
	// Invaders ROM writes to the watchdog port regularly so this should only
	// be true for programs that use the port to request a reset
	ResetOnWatchdog bool

	// settings of the DIP switches
	DIP ports.DIP
}

// NewPreferences returns the default preferences.
func NewPreferences() Preferences {
	return Preferences{
		ResetOnWatchdog: true,
		DIP:             ports.NewDIP(),
	}
}

func (p Preferences) String() string {
	return fmt.Sprintf("watchdog reset=%v %s", p.ResetOnWatchdog, p.DIP)
}

// validate returns an error if the preferences can't be used.
func (p Preferences) validate() error {
	if p.DIP.Ships < 3 || p.DIP.Ships > 6 {
		return curated.Errorf("preferences: number of ships must be between 3 and 6 (not %d)", p.DIP.Ships)
	}
	return nil
}
