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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a nil Defn means the instruction has not yet been decoded or that the
	// opcode was undocumented
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// the operand data. for single byte operands the high byte is zero
	InstructionData uint16

	// the number of cycles actually taken by the instruction
	Cycles int

	// whether a conditional branch, call or return was taken
	BranchTaken bool

	// whether this data has been finalised. the other fields may be
	// undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ???", r.Address)
	}

	var data string
	switch r.Defn.Data {
	case instructions.Immediate, instructions.Port:
		data = fmt.Sprintf(" %#02x", r.InstructionData)
	case instructions.Immediate16, instructions.Address:
		data = fmt.Sprintf(" %#04x", r.InstructionData)
	}

	return fmt.Sprintf("%#04x %s%s (%d cycles)", r.Address, r.Defn.Syntax(), data, r.Cycles)
}
