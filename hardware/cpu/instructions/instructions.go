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

package instructions

import "fmt"

// Data describes the operand data that follows the opcode.
type Data int

// List of operand data types. Immediate and Port are a single byte.
// Immediate16 and Address are two bytes, stored low byte first.
const (
	NoData Data = iota
	Immediate
	Immediate16
	Address
	Port
)

// Category groups instructions by the effect they have.
type Category int

// List of effect categories.
const (
	Move Category = iota
	Arithmetic
	Logical
	Flow
	Subroutine
	Stack
	IO
	Control
)

func (c Category) String() string {
	switch c {
	case Move:
		return "move"
	case Arithmetic:
		return "arithmetic"
	case Logical:
		return "logical"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Stack:
		return "stack"
	case IO:
		return "io"
	case Control:
		return "control"
	}
	return "unknown"
}

// Condition is the flag test made by a conditional jump, call or return.
type Condition int

// List of conditions. The order of NZ to M matches the cc field of the opcode
// encoding when offset by one.
const (
	Unconditional Condition = iota
	NZ
	Z
	NC
	C
	PO
	PE
	P
	M
)

func (c Condition) String() string {
	switch c {
	case NZ:
		return "NZ"
	case Z:
		return "Z"
	case NC:
		return "NC"
	case C:
		return "C"
	case PO:
		return "PO"
	case PE:
		return "PE"
	case P:
		return "P"
	case M:
		return "M"
	}
	return ""
}

// ConditionFromOpcode returns the condition encoded in bits 3 to 5 of a
// conditional instruction.
func ConditionFromOpcode(opcode uint8) Condition {
	return Condition((opcode>>3)&0x07) + NZ
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// Operands is the fixed part of the operand, for example, the register
	// names in "MOV B,C". It does not include any operand data.
	Operands string

	// the number of bytes including the opcode
	Bytes int

	// the cost in clock cycles. for conditional instructions this is the cost
	// if the condition is not met. CyclesTaken is the cost when the condition
	// is met and is the same as Cycles for unconditional instructions
	Cycles      int
	CyclesTaken int

	Data      Data
	Effect    Category
	Condition Condition
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles) [effect=%s]",
		defn.OpCode, defn.Syntax(), defn.Bytes, defn.Cycles, defn.CyclesTaken, defn.Effect)
}

// Syntax returns the mnemonic and fixed operands, for example "MOV B,C".
func (defn Definition) Syntax() string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, defn.Operands)
}

// IsConditional returns true if the instruction tests a flag before
// transferring control.
func (defn Definition) IsConditional() bool {
	return defn.Condition != Unconditional
}
