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
	"strings"

	"github.com/jetsetilly/gopher8080/logger"
)

// NumPorts is the number of input and output ports.
const NumPorts = 8

// Output port numbers.
const (
	OutShiftOffset = 2
	OutSound1      = 3
	OutShiftData   = 4
	OutSound2      = 5
	OutWatchdog    = 6
)

// Input port numbers.
const (
	InInputs0     = 0
	InInputs1     = 1
	InInputs2     = 2
	InShiftResult = 3
)

// SoundEffects implementations receive the values written to the sound ports.
// The data is the complete value written and not just the bits that have
// changed.
type SoundEffects interface {
	SoundEffect(port uint8, data uint8)
}

// ResetRequester implementations receive requests to reset the machine. This
// happens whenever the watchdog port is written to.
type ResetRequester interface {
	RequestReset()
}

// Ports is the I/O device of the Space Invaders board.
type Ports struct {
	input  [NumPorts]uint8
	output [NumPorts]uint8

	shift  shifter
	inputs inputs

	sound SoundEffects
	reset ResetRequester
}

// NewPorts is the preferred method of initialisation for the Ports type.
// Either argument can be nil.
func NewPorts(sound SoundEffects, reset ResetRequester) *Ports {
	p := &Ports{
		sound: sound,
		reset: reset,
	}
	p.inputs.dip = NewDIP()
	p.Reset()
	p.ReleaseAll()
	return p
}

// Plumb new sound and reset devices into the ports. Either argument can be
// nil.
func (p *Ports) Plumb(sound SoundEffects, reset ResetRequester) {
	p.sound = sound
	p.reset = reset
}

// Reset the shift register and the output ports. Inputs are physical and
// are not affected by a reset of the board.
func (p *Ports) Reset() {
	p.shift.reset()
	p.output = [NumPorts]uint8{}
}

// ReleaseAll releases every button and clears values set with SetInput().
// The DIP switches are unchanged.
func (p *Ports) ReleaseAll() {
	p.inputs.buttons = make(map[Button]bool)
	p.input = [NumPorts]uint8{}
	p.updateInputs()
}

func (p *Ports) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("in0=%#02x in1=%#02x in2=%#02x", p.input[InInputs0], p.input[InInputs1], p.input[InInputs2]))
	s.WriteString(fmt.Sprintf(" %s", p.shift))
	return s.String()
}

// ReadPort implements the cpu.PortDevice interface.
func (p *Ports) ReadPort(port uint8) uint8 {
	if port >= NumPorts {
		return 0
	}

	switch port {
	case InShiftResult:
		return p.shift.result()
	}

	return p.input[port]
}

// WritePort implements the cpu.PortDevice interface.
func (p *Ports) WritePort(port uint8, data uint8) {
	if port >= NumPorts {
		logger.Logf(logger.Allow, "ports", "write to non-existent port %d (%#02x)", port, data)
		return
	}

	p.output[port] = data

	switch port {
	case OutShiftOffset:
		p.shift.setOffset(data)
	case OutShiftData:
		p.shift.load(data)
	case OutSound1, OutSound2:
		if p.sound != nil {
			p.sound.SoundEffect(port, data)
		}
	case OutWatchdog:
		if p.reset != nil {
			p.reset.RequestReset()
		}
	}
}

// Output returns the most recent value written to an output port.
func (p *Ports) Output(port uint8) uint8 {
	if port >= NumPorts {
		return 0
	}
	return p.output[port]
}

// Input returns the current value of an input port as seen by the CPU.
func (p *Ports) Input(port uint8) uint8 {
	return p.ReadPort(port)
}

// SetInput sets the value of an input port directly. The value will be
// overwritten by the next call to Press(), Release() or SetDIP(). Setting the
// value of the shift register port has no effect.
func (p *Ports) SetInput(port uint8, value uint8) {
	if port >= NumPorts {
		logger.Logf(logger.Allow, "ports", "cannot set input of non-existent port %d", port)
		return
	}
	p.input[port] = value
}
