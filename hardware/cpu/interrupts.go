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
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory/addresses"
	"github.com/jetsetilly/gopher8080/logger"
)

// InvalidInterruptVector is the curated error pattern returned by Interrupt()
// when the vector is not in the range 0 to 7.
const InvalidInterruptVector = "invalid interrupt vector: %d"

// EnableInterrupts has the same effect as the EI instruction.
func (mc *CPU) EnableInterrupts() {
	mc.InterruptsEnabled = true
}

// DisableInterrupts has the same effect as the DI instruction.
func (mc *CPU) DisableInterrupts() {
	mc.InterruptsEnabled = false
}

// Interrupt requests that the CPU service an interrupt. The interrupting
// device supplies an RST instruction and the vector is the number of the
// restart, in the range 0 to 7. Control is transferred to address 8*vector.
//
// If interrupts are disabled the request is ignored, the CPU is not changed
// and accepted will be false. An accepted interrupt disables interrupts and
// clears the Halted flag.
//
// The host should call Interrupt() between calls to ExecuteInstruction().
func (mc *CPU) Interrupt(vector uint8) (accepted bool, err error) {
	if vector > 7 {
		return false, curated.Errorf(InvalidInterruptVector, vector)
	}

	if !mc.InterruptsEnabled {
		return false, nil
	}

	if err := mc.push16(mc.PC.Address()); err != nil {
		return false, curated.Errorf("interrupt: %v", err)
	}

	mc.PC.Load(addresses.Restart(vector))
	mc.InterruptsEnabled = false

	if mc.Halted {
		logger.Logf(logger.Allow, "cpu", "leaving halt state with RST %d", vector)
		mc.Halted = false
	}

	return true, nil
}
