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

package ports

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/logger"
)

// Button represents the cabinet controls.
type Button string

// List of buttons.
const (
	Coin    Button = "Coin"
	P1Start Button = "P1Start"
	P2Start Button = "P2Start"
	P1Fire  Button = "P1Fire"
	P1Left  Button = "P1Left"
	P1Right Button = "P1Right"
	P2Fire  Button = "P2Fire"
	P2Left  Button = "P2Left"
	P2Right Button = "P2Right"
	Tilt    Button = "Tilt"
)

// Buttons is the list of all buttons.
var Buttons = []Button{Coin, P1Start, P2Start, P1Fire, P1Left, P1Right, P2Fire, P2Left, P2Right, Tilt}

// location of a button in the input ports
type buttonBit struct {
	port uint8
	mask uint8
}

// player one controls are also visible on port 0 but the game only reads them
// from port 1
var buttonBits = map[Button][]buttonBit{
	Coin:    {{port: InInputs1, mask: 0x01}},
	P2Start: {{port: InInputs1, mask: 0x02}},
	P1Start: {{port: InInputs1, mask: 0x04}},
	P1Fire:  {{port: InInputs0, mask: 0x10}, {port: InInputs1, mask: 0x10}},
	P1Left:  {{port: InInputs0, mask: 0x20}, {port: InInputs1, mask: 0x20}},
	P1Right: {{port: InInputs0, mask: 0x40}, {port: InInputs1, mask: 0x40}},
	Tilt:    {{port: InInputs2, mask: 0x04}},
	P2Fire:  {{port: InInputs2, mask: 0x10}},
	P2Left:  {{port: InInputs2, mask: 0x20}},
	P2Right: {{port: InInputs2, mask: 0x40}},
}

// bits that are always set in the input ports
const (
	fixedInputs0 = 0x0e
	fixedInputs1 = 0x08
)

// DIP represents the DIP switches of the board. The switches are read through
// input port 2.
type DIP struct {
	// number of ships per game, from 3 to 6
	Ships int

	// extra ship awarded at 1500 points rather than 1000 points
	BonusAt1500 bool

	// hide the coin information on the demo screen
	HideCoinInfo bool
}

// NewDIP returns the factory settings of the DIP switches.
func NewDIP() DIP {
	return DIP{Ships: 3}
}

func (dip DIP) String() string {
	bonus := 1000
	if dip.BonusAt1500 {
		bonus = 1500
	}
	return fmt.Sprintf("ships=%d bonus=%d coininfo=%v", dip.Ships, bonus, !dip.HideCoinInfo)
}

// value of the DIP switches as seen in input port 2
func (dip DIP) value() uint8 {
	ships := dip.Ships
	if ships < 3 {
		ships = 3
	} else if ships > 6 {
		ships = 6
	}

	v := uint8(ships - 3)
	if dip.BonusAt1500 {
		v |= 0x08
	}
	if dip.HideCoinInfo {
		v |= 0x80
	}
	return v
}

// inputs is the state of the cabinet controls and DIP switches.
type inputs struct {
	buttons map[Button]bool
	dip     DIP
}

// Press a button. The button remains pressed until Release() is called.
func (p *Ports) Press(b Button) error {
	if _, ok := buttonBits[b]; !ok {
		return fmt.Errorf("ports: unrecognised button (%s)", b)
	}
	p.inputs.buttons[b] = true
	p.updateInputs()
	return nil
}

// Release a button.
func (p *Ports) Release(b Button) error {
	if _, ok := buttonBits[b]; !ok {
		return fmt.Errorf("ports: unrecognised button (%s)", b)
	}
	delete(p.inputs.buttons, b)
	p.updateInputs()
	return nil
}

// IsPressed returns true if the button is currently pressed.
func (p *Ports) IsPressed(b Button) bool {
	return p.inputs.buttons[b]
}

// SetDIP changes the DIP switch settings.
func (p *Ports) SetDIP(dip DIP) {
	if dip.Ships < 3 || dip.Ships > 6 {
		logger.Logf(logger.Allow, "ports", "number of ships (%d) out of range. clamping", dip.Ships)
	}
	p.inputs.dip = dip
	p.updateInputs()
}

// DIP returns the current DIP switch settings.
func (p *Ports) DIP() DIP {
	return p.inputs.dip
}

// updateInputs rebuilds input ports 0, 1 and 2 from the button and DIP
// switch state.
func (p *Ports) updateInputs() {
	p.input[InInputs0] = fixedInputs0
	p.input[InInputs1] = fixedInputs1
	p.input[InInputs2] = p.inputs.dip.value()

	for b, pressed := range p.inputs.buttons {
		if !pressed {
			continue
		}
		for _, bit := range buttonBits[b] {
			p.input[bit.port] |= bit.mask
		}
	}
}
