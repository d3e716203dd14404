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

// Package cpu emulates the Intel 8080 microprocessor. The CPU type is the
// principal type in the package. It is created with the NewCPU() function
// and requires an implementation of the cpubus.Memory interface and the
// PortDevice interface.
//
//	mem := memory.NewMemory()
//	ports := ports.NewPorts(nil, nil)
//	mc := cpu.NewCPU(mem, ports)
//
// The ExecuteInstruction() function executes a single instruction to
// completion and returns the number of clock cycles the instruction would
// have taken on real hardware. The CPU does not keep time. It is up to the
// host to count cycles and to call Interrupt() at the appropriate moments.
//
//	for {
//		cycles, err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//	}
//
// The LastResult field holds the details of the most recently executed
// instruction. It is useful for debuggers and for testing.
//
// Errors are curated errors (see the curated package). An unknown opcode
// causes an error with the UnknownOpcode pattern and the PC is left pointing
// at the opcode. Writes to ROM by the CPU, including when the stack is in
// ROM, result in an error that has the cpubus.WriteProtectionViolation
// pattern somewhere in its chain.
//
// Errors are not recoverable in the sense that the emulated program cannot
// carry on meaningfully, but the CPU state is left consistent and it is safe
// to inspect it.
package cpu
