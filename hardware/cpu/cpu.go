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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/addresses"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// PortDevice is the device attached to the I/O ports of the CPU. It is used
// by the IN and OUT instructions.
type PortDevice interface {
	ReadPort(port uint8) uint8
	WritePort(port uint8, data uint8)
}

// nilPorts is used when NewCPU() is called without a PortDevice.
type nilPorts struct{}

func (_ nilPorts) ReadPort(_ uint8) uint8 {
	return 0
}

func (_ nilPorts) WritePort(_ uint8, _ uint8) {
}

// CPU implements the Intel 8080. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	Flags registers.Flags

	// set by EI and cleared by DI and by an accepted interrupt
	InterruptsEnabled bool

	// set by the HLT instruction. the CPU does not stop executing
	// instructions when Halted is true; it is up to the host to decide what
	// to do. the flag is cleared by an accepted interrupt or a reset
	Halted bool

	// the running total of cycles since the last reset
	Cycles uint64

	// the result of the most recently executed instruction
	LastResult execution.Result

	mem          cpubus.Memory
	ports        PortDevice
	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// ports argument can be nil, in which case IN instructions will read zero and
// OUT instructions will have no effect.
func NewCPU(mem cpubus.Memory, ports PortDevice) *CPU {
	if ports == nil {
		ports = nilPorts{}
	}

	mc := &CPU{
		mem:          mem,
		ports:        ports,
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()

	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory and ports of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus and port device into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory, ports PortDevice) {
	mc.mem = mem
	if ports == nil {
		ports = nilPorts{}
	}
	mc.ports = ports
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A.Label(), mc.A, mc.B.Label(), mc.B, mc.C.Label(), mc.C,
		mc.D.Label(), mc.D, mc.E.Label(), mc.E, mc.H.Label(), mc.H,
		mc.L.Label(), mc.L, mc.Flags.Label(), mc.Flags)
}

// Reset reinitialises all registers. The PC is set to the reset address,
// which is where the 8080 begins execution. Memory is not touched.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.PC = registers.NewProgramCounter(addresses.Reset)
	mc.SP = registers.NewStackPointer(0)
	mc.A = registers.NewRegister(0, "A")
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.Flags = registers.NewFlags()

	mc.InterruptsEnabled = false
	mc.Halted = false
	mc.Cycles = 0
}

// HasReset checks whether the CPU has been reset and not yet executed an
// instruction.
func (mc *CPU) HasReset() bool {
	return mc.Cycles == 0 && mc.LastResult.Defn == nil
}

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return registers.Pair(mc.B, mc.C)
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return registers.Pair(mc.D, mc.E)
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return registers.Pair(mc.H, mc.L)
}

// SetBC loads the BC register pair.
func (mc *CPU) SetBC(val uint16) {
	registers.LoadPair(&mc.B, &mc.C, val)
}

// SetDE loads the DE register pair.
func (mc *CPU) SetDE(val uint16) {
	registers.LoadPair(&mc.D, &mc.E, val)
}

// SetHL loads the HL register pair.
func (mc *CPU) SetHL(val uint16) {
	registers.LoadPair(&mc.H, &mc.L, val)
}

// PSW returns the processor status word. The accumulator in the high byte
// and the flags in byte form in the low byte.
func (mc *CPU) PSW() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.Flags.Value())
}

// SetPSW loads the accumulator and flags from a processor status word.
func (mc *CPU) SetPSW(val uint16) {
	mc.A.Load(uint8(val >> 8))
	mc.Flags.FromValue(uint8(val))
}

// pair returns the value of the register pair using the rp encoding. when
// psw is true the fourth pair is PSW rather than SP.
func (mc *CPU) pair(rp uint8, psw bool) uint16 {
	switch rp & 0x03 {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	}
	if psw {
		return mc.PSW()
	}
	return mc.SP.Address()
}

func (mc *CPU) setPair(rp uint8, psw bool, val uint16) {
	switch rp & 0x03 {
	case 0:
		mc.SetBC(val)
	case 1:
		mc.SetDE(val)
	case 2:
		mc.SetHL(val)
	default:
		if psw {
			mc.SetPSW(val)
		} else {
			mc.SP.Load(val)
		}
	}
}

// register returns the register using the r encoding. the encoding for M
// (6) is not a register and nil is returned.
func (mc *CPU) register(r uint8) *registers.Register {
	switch r & 0x07 {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	case 7:
		return &mc.A
	}
	return nil
}

// read8Bit returns the value of an operand using the r encoding. M is read
// from the address in HL.
func (mc *CPU) read8Bit(r uint8) (uint8, error) {
	if reg := mc.register(r); reg != nil {
		return reg.Value(), nil
	}
	return mc.read(mc.HL())
}

// write8Bit loads a value into an operand using the r encoding. M is written
// to the address in HL.
func (mc *CPU) write8Bit(r uint8, val uint8) error {
	if reg := mc.register(r); reg != nil {
		reg.Load(val)
		return nil
	}
	return mc.write(mc.HL(), val)
}

func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return v, nil
}

func (mc *CPU) write(address uint16, val uint8) error {
	err := mc.mem.Write(address, val)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	return nil
}

func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	v, err := cpubus.Read16(mc.mem, address)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return v, nil
}

func (mc *CPU) write16Bit(address uint16, val uint16) error {
	if err := mc.write(address, uint8(val)); err != nil {
		return err
	}
	return mc.write(address+1, uint8(val>>8))
}
