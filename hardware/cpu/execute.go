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
	"github.com/jetsetilly/gopher8080/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory/addresses"
)

// UnknownOpcode is the curated error pattern returned by ExecuteInstruction()
// when the opcode has no definition. The placeholder values are the opcode
// and the address of the opcode.
const UnknownOpcode = "unknown opcode (%#02x) at (%#04x)"

// ExecuteInstruction steps the CPU forward one full instruction and returns
// the number of cycles the instruction took.
//
// The PC is advanced past the instruction before it is executed, which means
// that the return address of a CALL or RST is simply the value of the PC.
// Instructions that transfer control load the PC directly.
//
// If an error occurs the PC is left at the address of the instruction.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()

	address := mc.PC.Address()
	mc.LastResult.Address = address

	opcode, err := mc.read(address)
	if err != nil {
		return 0, err
	}

	defn := mc.instructions[opcode]
	if defn == nil {
		// the opcode is kept for the benefit of the disassembler
		mc.LastResult.InstructionData = uint16(opcode)
		return 0, curated.Errorf(UnknownOpcode, opcode, address)
	}
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	// operand data
	switch defn.Bytes {
	case 2:
		v, err := mc.read(address + 1)
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = uint16(v)
		mc.LastResult.ByteCount++
	case 3:
		v, err := mc.read16Bit(address + 1)
		if err != nil {
			return 0, err
		}
		mc.LastResult.InstructionData = v
		mc.LastResult.ByteCount += 2
	}

	mc.PC.Add(uint16(defn.Bytes))

	taken, err := mc.execute(defn, mc.LastResult.InstructionData)
	if err != nil {
		mc.PC.Load(address)
		return 0, err
	}

	cycles := defn.Cycles
	if taken {
		cycles = defn.CyclesTaken
	}

	mc.LastResult.Cycles = cycles
	mc.LastResult.BranchTaken = taken
	mc.LastResult.Final = true
	mc.Cycles += uint64(cycles)

	return cycles, nil
}

// execute the instruction with the operand data. returns true if the
// instruction was conditional and the condition was met.
func (mc *CPU) execute(defn *instructions.Definition, data uint16) (bool, error) {
	op := defn.OpCode

	// fields of the opcode. not every field is meaningful for every
	// instruction
	dst := (op >> 3) & 0x07
	src := op & 0x07
	rp := (op >> 4) & 0x03

	if defn.IsConditional() {
		return mc.conditional(defn, data)
	}

	switch defn.Mnemonic {
	case "NOP":

	case "HLT":
		mc.Halted = true

	case "EI":
		mc.InterruptsEnabled = true

	case "DI":
		mc.InterruptsEnabled = false

	case "MOV":
		v, err := mc.read8Bit(src)
		if err != nil {
			return false, err
		}
		return false, mc.write8Bit(dst, v)

	case "MVI":
		return false, mc.write8Bit(dst, uint8(data))

	case "LXI":
		mc.setPair(rp, false, data)

	case "LDA":
		v, err := mc.read(data)
		if err != nil {
			return false, err
		}
		mc.A.Load(v)

	case "STA":
		return false, mc.write(data, mc.A.Value())

	case "LHLD":
		v, err := mc.read16Bit(data)
		if err != nil {
			return false, err
		}
		mc.SetHL(v)

	case "SHLD":
		return false, mc.write16Bit(data, mc.HL())

	case "LDAX":
		v, err := mc.read(mc.pair(rp, false))
		if err != nil {
			return false, err
		}
		mc.A.Load(v)

	case "STAX":
		return false, mc.write(mc.pair(rp, false), mc.A.Value())

	case "XCHG":
		hl := mc.HL()
		mc.SetHL(mc.DE())
		mc.SetDE(hl)

	case "ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP":
		v, err := mc.read8Bit(src)
		if err != nil {
			return false, err
		}
		mc.accumulate(dst, v)

	case "ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI":
		mc.accumulate(dst, uint8(data))

	case "INR", "DCR":
		v, err := mc.read8Bit(dst)
		if err != nil {
			return false, err
		}

		var res alu.Result
		if defn.Mnemonic == "INR" {
			res = alu.Increment(v)
		} else {
			res = alu.Decrement(v)
		}

		err = mc.write8Bit(dst, res.Value)
		if err != nil {
			return false, err
		}

		// carry flag is not affected
		mc.Flags.ApplySZP(res)
		mc.Flags.AuxCarry = res.AuxCarry

	case "INX":
		mc.setPair(rp, false, mc.pair(rp, false)+1)

	case "DCX":
		mc.setPair(rp, false, mc.pair(rp, false)-1)

	case "DAD":
		w := uint32(mc.HL()) + uint32(mc.pair(rp, false))
		mc.SetHL(uint16(w))
		mc.Flags.Carry = alu.Carry16(w)

	case "DAA":
		res := alu.DecimalAdjust(mc.A.Value(), mc.Flags.Carry, mc.Flags.AuxCarry)
		mc.Flags.Apply(res)
		mc.A.Load(res.Value)

	case "RLC":
		a := mc.A.Value()
		mc.Flags.Carry = a&0x80 == 0x80
		mc.A.Load(a<<1 | a>>7)

	case "RRC":
		a := mc.A.Value()
		mc.Flags.Carry = a&0x01 == 0x01
		mc.A.Load(a>>1 | a<<7)

	case "RAL":
		a := mc.A.Value()
		v := a << 1
		if mc.Flags.Carry {
			v |= 0x01
		}
		mc.Flags.Carry = a&0x80 == 0x80
		mc.A.Load(v)

	case "RAR":
		a := mc.A.Value()
		v := a >> 1
		if mc.Flags.Carry {
			v |= 0x80
		}
		mc.Flags.Carry = a&0x01 == 0x01
		mc.A.Load(v)

	case "CMA":
		mc.A.Load(^mc.A.Value())

	case "STC":
		mc.Flags.Carry = true

	case "CMC":
		mc.Flags.Carry = !mc.Flags.Carry

	case "JMP":
		mc.PC.Load(data)

	case "PCHL":
		mc.PC.Load(mc.HL())

	case "CALL":
		return false, mc.call(data, mc.PC.Address())

	case "RET":
		return false, mc.ret()

	case "RST":
		return false, mc.call(addresses.Restart(op>>3), mc.PC.Address())

	case "PUSH":
		return false, mc.push16(mc.pair(rp, true))

	case "POP":
		v, err := mc.pop16()
		if err != nil {
			return false, err
		}
		mc.setPair(rp, true, v)

	case "XTHL":
		v, err := mc.read16Bit(mc.SP.Address())
		if err != nil {
			return false, err
		}
		err = mc.write16Bit(mc.SP.Address(), mc.HL())
		if err != nil {
			return false, err
		}
		mc.SetHL(v)

	case "SPHL":
		mc.SP.Load(mc.HL())

	case "IN":
		mc.A.Load(mc.ports.ReadPort(uint8(data)))

	case "OUT":
		mc.ports.WritePort(uint8(data), mc.A.Value())

	default:
		return false, curated.Errorf(UnknownOpcode, op, mc.LastResult.Address)
	}

	return false, nil
}

// conditional handles the Jcc, Ccc and Rcc instructions.
func (mc *CPU) conditional(defn *instructions.Definition, data uint16) (bool, error) {
	if !mc.condition(defn.Condition) {
		return false, nil
	}

	switch defn.OpCode & 0x07 {
	case 0x00:
		return true, mc.ret()
	case 0x02:
		mc.PC.Load(data)
	case 0x04:
		return true, mc.call(data, mc.PC.Address())
	}

	return true, nil
}

// condition returns true if the flags meet the condition.
func (mc *CPU) condition(cond instructions.Condition) bool {
	switch cond {
	case instructions.NZ:
		return !mc.Flags.Zero
	case instructions.Z:
		return mc.Flags.Zero
	case instructions.NC:
		return !mc.Flags.Carry
	case instructions.C:
		return mc.Flags.Carry
	case instructions.PO:
		return !mc.Flags.Parity
	case instructions.PE:
		return mc.Flags.Parity
	case instructions.P:
		return !mc.Flags.Sign
	case instructions.M:
		return mc.Flags.Sign
	}
	return true
}

// accumulate performs one of the eight accumulator operations using the
// encoding of bits 3 to 5 of the opcode. CMP sets the flags but does not
// change the accumulator.
func (mc *CPU) accumulate(operation uint8, v uint8) {
	a := mc.A.Value()

	var res alu.Result
	switch operation {
	case 0:
		res = alu.Add(a, v, false)
	case 1:
		res = alu.Add(a, v, mc.Flags.Carry)
	case 2:
		res = alu.Sub(a, v, false)
	case 3:
		res = alu.Sub(a, v, mc.Flags.Carry)
	case 4:
		res = alu.And(a, v)
	case 5:
		res = alu.Xor(a, v)
	case 6:
		res = alu.Or(a, v)
	case 7:
		mc.Flags.Apply(alu.Sub(a, v, false))
		return
	}

	mc.Flags.Apply(res)
	mc.A.Load(res.Value)
}
