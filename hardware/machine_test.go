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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/test"
)

// program that enables interrupts and loops forever. the two interrupt
// handlers count the number of times they have been called
var interruptProgram = map[uint16][]uint8{
	0x0000: {
		0x31, 0x00, 0x24, // LXI SP,0x2400
		0xfb,             // EI
		0xc3, 0x04, 0x00, // JMP 0x0004
	},
	0x0008: {0xc3, 0x40, 0x00}, // JMP 0x0040
	0x0010: {0xc3, 0x50, 0x00}, // JMP 0x0050
	0x0040: {
		0xf5,             // PUSH PSW
		0x3a, 0x00, 0x20, // LDA 0x2000
		0x3c,             // INR A
		0x32, 0x00, 0x20, // STA 0x2000
		0xf1, // POP PSW
		0xfb, // EI
		0xc9, // RET
	},
	0x0050: {
		0xf5,             // PUSH PSW
		0x3a, 0x01, 0x20, // LDA 0x2001
		0x3c,             // INR A
		0x32, 0x01, 0x20, // STA 0x2001
		0xf1, // POP PSW
		0xfb, // EI
		0xc9, // RET
	},
}

func assemble(program map[uint16][]uint8) []uint8 {
	data := make([]uint8, 0x100)
	for origin, b := range program {
		copy(data[origin:], b)
	}
	return data
}

func newTestMachine(t *testing.T, prefs hardware.Preferences, data []uint8) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadROM(data, 0x0000))
	return m
}

func peek(m *hardware.Machine, address uint16) uint8 {
	return m.Mem.Peek(address)
}

func TestPreferences(t *testing.T) {
	prefs := hardware.NewPreferences()
	test.ExpectEquality(t, prefs.ResetOnWatchdog, true)
	test.ExpectEquality(t, prefs.DIP.Ships, 3)

	prefs.DIP.Ships = 7
	_, err := hardware.NewMachine(prefs)
	test.ExpectFailure(t, err)
}

func TestFrameInterrupts(t *testing.T) {
	m := newTestMachine(t, hardware.NewPreferences(), assemble(interruptProgram))

	// the mid-frame handler has run during the frame. the vblank interrupt
	// has been accepted but the handler has not yet started
	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.Frame(), 1)
	test.ExpectEquality(t, peek(m, 0x2000), 1)
	test.ExpectEquality(t, peek(m, 0x2001), 0)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0010)

	// cycles that overran the end of the frame are carried forward
	test.ExpectSuccess(t, m.FrameCycles() < 18)

	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.Frame(), 2)
	test.ExpectEquality(t, peek(m, 0x2000), 2)
	test.ExpectEquality(t, peek(m, 0x2001), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0010)

	// reset leaves memory intact
	m.Reset()
	test.ExpectEquality(t, m.Frame(), 0)
	test.ExpectEquality(t, m.FrameCycles(), 0)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0000)
	test.ExpectEquality(t, peek(m, 0x2000), 2)
}

func TestFrameInterruptsDisabled(t *testing.T) {
	// JMP 0x0000 with interrupts never enabled
	m := newTestMachine(t, hardware.NewPreferences(), []uint8{0xc3, 0x00, 0x00})

	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0000)
	test.ExpectEquality(t, m.CPU.InterruptsEnabled, false)

	// 33333 is not a multiple of 10 so the last JMP overruns the frame
	test.ExpectEquality(t, m.FrameCycles(), 7)
}

func TestHalt(t *testing.T) {
	m := newTestMachine(t, hardware.NewPreferences(), []uint8{
		0xfb, // EI
		0x76, // HLT
		0x00, // NOP
	})

	cycles, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)

	cycles, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, m.CPU.Halted, true)

	// time passes while halted but the PC does not move
	cycles, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0002)

	// the mid-frame interrupt wakes the CPU
	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.CPU.Halted, false)
}

func TestWatchdog(t *testing.T) {
	program := []uint8{
		0x3e, 0x42, // MVI A,0x42
		0xd3, 0x06, // OUT 6
		0x00, // NOP
	}

	m := newTestMachine(t, hardware.NewPreferences(), program)
	test.DemandSuccess(t, m.Ports.Press(ports.Coin))
	_, err := m.Step()
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Watchdog(), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0000)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x00)

	// the coin is still held after the watchdog reset
	test.ExpectSuccess(t, m.Ports.IsPressed(ports.Coin))

	// but is released by a reset of the machine
	m.Reset()
	test.ExpectFailure(t, m.Ports.IsPressed(ports.Coin))

	prefs := hardware.NewPreferences()
	prefs.ResetOnWatchdog = false
	m = newTestMachine(t, prefs, program)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Watchdog(), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0004)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x42)
	test.ExpectEquality(t, m.Ports.Output(ports.OutWatchdog), 0x42)
}

type frameRecorder struct {
	frames []int
	fail   int
}

var errRecorder = errors.New("recorder failure")

func (r *frameRecorder) NewFrame(frame int) error {
	r.frames = append(r.frames, frame)
	if frame == r.fail {
		return errRecorder
	}
	return nil
}

func TestFrameTriggers(t *testing.T) {
	m := newTestMachine(t, hardware.NewPreferences(), []uint8{0xc3, 0x00, 0x00})

	rec := &frameRecorder{}
	m.AddFrameTrigger(rec)
	test.DemandSuccess(t, m.RunForFrameCount(3, nil))
	test.DemandEquality(t, len(rec.frames), 3)
	for i, f := range rec.frames {
		test.ExpectEquality(t, f, i+1)
	}

	rec.fail = 5
	err := m.RunForFrameCount(10, nil)
	test.ExpectSuccess(t, errors.Is(err, errRecorder))
	test.ExpectEquality(t, m.Frame(), 5)
}

func TestRun(t *testing.T) {
	m := newTestMachine(t, hardware.NewPreferences(), []uint8{0xc3, 0x00, 0x00})

	var count int
	err := m.Run(func() (govern.State, error) {
		count++
		if count == 4 {
			return govern.Ending, nil
		}
		if count == 2 {
			return govern.Paused, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)

	// one of the four iterations was paused
	test.ExpectEquality(t, m.Frame(), 3)

	err = m.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)

	err = m.RunForFrameCount(10, func(frame int) (govern.State, error) {
		if frame == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Frame(), 5)
}

func TestLoadROM(t *testing.T) {
	m, err := hardware.NewMachine(hardware.NewPreferences())
	test.DemandSuccess(t, err)

	err = m.LoadROM(make([]uint8, 0x2001), 0x0000)
	test.ExpectSuccess(t, curated.Has(err, memory.ImageTooLarge))

	err = m.LoadROM([]uint8{0xcb}, 0x0000)
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.ExpectFailure(t, err)
}
