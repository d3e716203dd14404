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
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/logger"
)

// The RST vectors used by the video hardware.
const (
	MidFrameInterrupt = 1
	VBlankInterrupt   = 2
)

// the number of cycles that pass for each call to Step() while the CPU is
// halted
const haltCycles = 4

// FrameTrigger implementations are notified at the end of every frame.
type FrameTrigger interface {
	NewFrame(frame int) error
}

// Machine is the Space Invaders board.
type Machine struct {
	Prefs Preferences

	Mem   *memory.Memory
	Ports *ports.Ports
	CPU   *cpu.CPU
	Sound *sound.Bank

	// the number of completed frames since the last reset
	frame int

	// the number of cycles into the current frame
	frameCycles int

	// set by a write to the watchdog port. the reset happens after the
	// current instruction has completed
	resetRequested bool

	// the number of writes to the watchdog port since the last reset
	watchdog int

	triggers []FrameTrigger
}

// NewMachine creates a new machine and everything associated with the
// hardware. Memory is empty. Use LoadROM() to load a program.
func NewMachine(prefs Preferences) (*Machine, error) {
	if err := prefs.validate(); err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m := &Machine{
		Prefs: prefs,
		Mem:   memory.NewMemory(),
		Sound: sound.NewBank(nil),
	}

	m.Ports = ports.NewPorts(m.Sound, m)
	m.Ports.SetDIP(prefs.DIP)
	m.CPU = cpu.NewCPU(m.Mem, m.Ports)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("frame=%d cycles=%d %s", m.frame, m.frameCycles, m.CPU)
}

// SetSoundPlayer replaces the sound bank with one that plays effects with
// the player. Any previously loaded samples are discarded.
func (m *Machine) SetSoundPlayer(player sound.Player) {
	m.Sound = sound.NewBank(player)
	m.Ports.Plumb(m.Sound, m)
}

// LoadROM loads the program data into ROM at the origin address and resets
// the machine.
func (m *Machine) LoadROM(data []byte, origin uint16) error {
	if err := m.Mem.LoadImage(data, origin); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	m.Reset()
	return nil
}

// Reset the machine and release all inputs. Memory is not changed.
func (m *Machine) Reset() {
	m.reset()
	m.Ports.ReleaseAll()
	m.frame = 0
	m.frameCycles = 0
	m.watchdog = 0
}

// reset the CPU, the ports and the sound bank. does not touch the frame
// counters or the inputs
func (m *Machine) reset() {
	m.CPU.Reset()
	m.Ports.Reset()
	m.Sound.Reset()
	m.resetRequested = false
}

// RequestReset implements the ports.ResetRequester interface.
func (m *Machine) RequestReset() {
	m.watchdog++
	if m.Prefs.ResetOnWatchdog {
		m.resetRequested = true
	}
}

// Watchdog returns the number of writes to the watchdog port since the last
// call to Reset(). Resets caused by the watchdog do not clear the count.
func (m *Machine) Watchdog() int {
	return m.watchdog
}

// Frame returns the number of completed frames since the last reset.
func (m *Machine) Frame() int {
	return m.frame
}

// FrameCycles returns the number of cycles into the current frame.
func (m *Machine) FrameCycles() int {
	return m.frameCycles
}

// AddFrameTrigger adds a FrameTrigger to the list of triggers notified at
// the end of every frame.
func (m *Machine) AddFrameTrigger(t FrameTrigger) {
	m.triggers = append(m.triggers, t)
}

// Step the emulation one CPU instruction. Returns the number of cycles taken.
//
// If the CPU is halted no instruction is executed and a small number of
// cycles is returned so that time still passes.
func (m *Machine) Step() (int, error) {
	if m.CPU.Halted {
		m.frameCycles += haltCycles
		return haltCycles, nil
	}

	cycles, err := m.CPU.ExecuteInstruction()
	if err != nil {
		return 0, curated.Errorf("machine: %v", err)
	}
	m.frameCycles += cycles

	if m.resetRequested {
		logger.Logf(logger.Allow, "machine", "watchdog reset at frame %d", m.frame)
		m.reset()
	}

	return cycles, nil
}

// RunFrame runs the emulation until the end of the current frame. The
// mid-frame and vblank interrupts are raised at the correct moments.
func (m *Machine) RunFrame() error {
	for m.frameCycles < clocks.MidFrameCycles {
		if _, err := m.Step(); err != nil {
			return err
		}
	}

	if err := m.interrupt(MidFrameInterrupt); err != nil {
		return err
	}

	for m.frameCycles < clocks.CyclesPerFrame {
		if _, err := m.Step(); err != nil {
			return err
		}
	}

	if err := m.interrupt(VBlankInterrupt); err != nil {
		return err
	}

	m.frameCycles -= clocks.CyclesPerFrame
	m.frame++

	for _, t := range m.triggers {
		if err := t.NewFrame(m.frame); err != nil {
			return err
		}
	}

	return nil
}

func (m *Machine) interrupt(vector uint8) error {
	if _, err := m.CPU.Interrupt(vector); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}
