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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory/addresses"
)

// FormatResult creates an Entry for the supplied result. The result is assumed
// to be from an executed instruction and conditional instructions will be
// annotated with whether the branch was taken.
//
// The opcode of an undocumented instruction is taken from the low byte of the
// InstructionData field.
func FormatResult(result execution.Result) Entry {
	return formatResult(result, true)
}

func formatResult(result execution.Result, executed bool) Entry {
	e := Entry{
		Result:  result,
		Address: fmt.Sprintf("%04x", result.Address),
	}

	if result.Defn == nil {
		opcode := uint8(result.InstructionData)
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		e.Operator = "DB"
		e.Operand = fmt.Sprintf("$%02x", opcode)
		return e
	}

	defn := result.Defn
	e.Operator = defn.Mnemonic

	// bytecode is assembled from the instruction data in the order in which
	// the bytes appear in memory
	bytecode := []string{fmt.Sprintf("%02x", defn.OpCode)}
	var data string

	switch defn.Data {
	case instructions.Immediate, instructions.Port:
		bytecode = append(bytecode, fmt.Sprintf("%02x", uint8(result.InstructionData)))
		data = fmt.Sprintf("$%02x", uint8(result.InstructionData))
	case instructions.Immediate16, instructions.Address:
		bytecode = append(bytecode,
			fmt.Sprintf("%02x", uint8(result.InstructionData)),
			fmt.Sprintf("%02x", uint8(result.InstructionData>>8)))
		data = fmt.Sprintf("$%04x", result.InstructionData)
	}
	e.Bytecode = strings.Join(bytecode, " ")

	switch {
	case defn.Operands != "" && data != "":
		e.Operand = fmt.Sprintf("%s,%s", defn.Operands, data)
	case defn.Operands != "":
		e.Operand = defn.Operands
	default:
		e.Operand = data
	}

	switch defn.Mnemonic {
	case "IN":
		e.Annotation = addresses.CanonicalReadPorts[uint8(result.InstructionData)]
	case "OUT":
		e.Annotation = addresses.CanonicalWritePorts[uint8(result.InstructionData)]
	case "RST":
		e.Annotation = fmt.Sprintf("$%04x", addresses.Restart(defn.OpCode>>3))
	}

	if executed && result.Final && defn.IsConditional() {
		if result.BranchTaken {
			e.Annotation = "taken"
		} else {
			e.Annotation = "not taken"
		}
	}

	return e
}
