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
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// Decode the instruction at the address. The entry is decoded as though it
// has not been executed so the Cycles field of the result is the cost of
// the instruction when the condition is not met.
func Decode(mem cpubus.Memory, address uint16) (Entry, error) {
	defns := instructions.GetDefinitions()

	opcode, err := mem.Read(address)
	if err != nil {
		return Entry{}, curated.Errorf("disassembly: %v", err)
	}

	result := execution.Result{
		Address:   address,
		Defn:      defns[opcode],
		ByteCount: 1,
		Final:     true,
	}

	if result.Defn == nil {
		result.InstructionData = uint16(opcode)
		return formatResult(result, false), nil
	}

	result.Cycles = result.Defn.Cycles

	for i := 1; i < result.Defn.Bytes; i++ {
		v, err := mem.Read(address + uint16(i))
		if err != nil {
			return Entry{}, curated.Errorf("disassembly: %v", err)
		}
		result.InstructionData |= uint16(v) << (8 * (i - 1))
		result.ByteCount++
	}

	return formatResult(result, false), nil
}

// Disassemble memory from the start address to the end address inclusive.
// The final instruction may extend beyond the end address.
func Disassemble(mem cpubus.Memory, start uint16, end uint16) ([]Entry, error) {
	if end < start {
		return nil, curated.Errorf("disassembly: end address (%#04x) is before start address (%#04x)", end, start)
	}

	var entries []Entry

	address := int(start)
	for address <= int(end) {
		e, err := Decode(mem, uint16(address))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		address += e.Size()
	}

	return entries, nil
}
