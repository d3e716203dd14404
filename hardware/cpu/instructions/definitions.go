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

// RegisterNames is the name of each register in the r field of an opcode.
var RegisterNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// PairNames is the name of each register pair in the rp field of an opcode.
var PairNames = [4]string{"B", "D", "H", "SP"}

// StackPairNames is the same as PairNames except for the last entry, which
// is PSW for PUSH and POP instructions.
var StackPairNames = [4]string{"B", "D", "H", "PSW"}

// the eight accumulator operations in the order they appear in the opcode
// encoding. the immediate forms are in the same order.
var aluMnemonics = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
var aluImmMnemonics = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

// the single definition table, created once on package initialisation
var definitions = build()

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table is shared and must not be altered.
func GetDefinitions() []*Definition {
	return definitions
}

func build() []*Definition {
	t := make([]*Definition, 256)

	add := func(defn Definition) {
		if defn.CyclesTaken == 0 {
			defn.CyclesTaken = defn.Cycles
		}
		d := defn
		t[defn.OpCode] = &d
	}

	// instructions that don't fit into any of the families below
	for _, defn := range []Definition{
		{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Effect: Control},
		{OpCode: 0x02, Mnemonic: "STAX", Operands: "B", Bytes: 1, Cycles: 7, Effect: Move},
		{OpCode: 0x12, Mnemonic: "STAX", Operands: "D", Bytes: 1, Cycles: 7, Effect: Move},
		{OpCode: 0x0a, Mnemonic: "LDAX", Operands: "B", Bytes: 1, Cycles: 7, Effect: Move},
		{OpCode: 0x1a, Mnemonic: "LDAX", Operands: "D", Bytes: 1, Cycles: 7, Effect: Move},
		{OpCode: 0x07, Mnemonic: "RLC", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x0f, Mnemonic: "RRC", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x17, Mnemonic: "RAL", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x1f, Mnemonic: "RAR", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x22, Mnemonic: "SHLD", Bytes: 3, Cycles: 16, Data: Address, Effect: Move},
		{OpCode: 0x2a, Mnemonic: "LHLD", Bytes: 3, Cycles: 16, Data: Address, Effect: Move},
		{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 4, Effect: Arithmetic},
		{OpCode: 0x2f, Mnemonic: "CMA", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x32, Mnemonic: "STA", Bytes: 3, Cycles: 13, Data: Address, Effect: Move},
		{OpCode: 0x3a, Mnemonic: "LDA", Bytes: 3, Cycles: 13, Data: Address, Effect: Move},
		{OpCode: 0x37, Mnemonic: "STC", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x3f, Mnemonic: "CMC", Bytes: 1, Cycles: 4, Effect: Logical},
		{OpCode: 0x76, Mnemonic: "HLT", Bytes: 1, Cycles: 7, Effect: Control},
		{OpCode: 0xc3, Mnemonic: "JMP", Bytes: 3, Cycles: 10, Data: Address, Effect: Flow},
		{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 10, Effect: Subroutine},
		{OpCode: 0xcd, Mnemonic: "CALL", Bytes: 3, Cycles: 17, Data: Address, Effect: Subroutine},
		{OpCode: 0xd3, Mnemonic: "OUT", Bytes: 2, Cycles: 10, Data: Port, Effect: IO},
		{OpCode: 0xdb, Mnemonic: "IN", Bytes: 2, Cycles: 10, Data: Port, Effect: IO},
		{OpCode: 0xe3, Mnemonic: "XTHL", Bytes: 1, Cycles: 18, Effect: Stack},
		{OpCode: 0xe9, Mnemonic: "PCHL", Bytes: 1, Cycles: 5, Effect: Flow},
		{OpCode: 0xeb, Mnemonic: "XCHG", Bytes: 1, Cycles: 4, Effect: Move},
		{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 4, Effect: Control},
		{OpCode: 0xf9, Mnemonic: "SPHL", Bytes: 1, Cycles: 5, Effect: Stack},
		{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 4, Effect: Control},
	} {
		add(defn)
	}

	// register pair families
	for rp := uint8(0); rp < 4; rp++ {
		add(Definition{OpCode: 0x01 | rp<<4, Mnemonic: "LXI", Operands: PairNames[rp], Bytes: 3, Cycles: 10, Data: Immediate16, Effect: Move})
		add(Definition{OpCode: 0x03 | rp<<4, Mnemonic: "INX", Operands: PairNames[rp], Bytes: 1, Cycles: 5, Effect: Arithmetic})
		add(Definition{OpCode: 0x09 | rp<<4, Mnemonic: "DAD", Operands: PairNames[rp], Bytes: 1, Cycles: 10, Effect: Arithmetic})
		add(Definition{OpCode: 0x0b | rp<<4, Mnemonic: "DCX", Operands: PairNames[rp], Bytes: 1, Cycles: 5, Effect: Arithmetic})
		add(Definition{OpCode: 0xc1 | rp<<4, Mnemonic: "POP", Operands: StackPairNames[rp], Bytes: 1, Cycles: 10, Effect: Stack})
		add(Definition{OpCode: 0xc5 | rp<<4, Mnemonic: "PUSH", Operands: StackPairNames[rp], Bytes: 1, Cycles: 11, Effect: Stack})
	}

	// single register families. operations on M cost more because of the
	// additional memory access
	for r := uint8(0); r < 8; r++ {
		n := RegisterNames[r]
		if r == 6 {
			add(Definition{OpCode: 0x04 | r<<3, Mnemonic: "INR", Operands: n, Bytes: 1, Cycles: 10, Effect: Arithmetic})
			add(Definition{OpCode: 0x05 | r<<3, Mnemonic: "DCR", Operands: n, Bytes: 1, Cycles: 10, Effect: Arithmetic})
			add(Definition{OpCode: 0x06 | r<<3, Mnemonic: "MVI", Operands: n, Bytes: 2, Cycles: 10, Data: Immediate, Effect: Move})
		} else {
			add(Definition{OpCode: 0x04 | r<<3, Mnemonic: "INR", Operands: n, Bytes: 1, Cycles: 5, Effect: Arithmetic})
			add(Definition{OpCode: 0x05 | r<<3, Mnemonic: "DCR", Operands: n, Bytes: 1, Cycles: 5, Effect: Arithmetic})
			add(Definition{OpCode: 0x06 | r<<3, Mnemonic: "MVI", Operands: n, Bytes: 2, Cycles: 7, Data: Immediate, Effect: Move})
		}
	}

	// MOV block. the opcode that would be MOV M,M is HLT and has already been
	// added
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			cycles := 5
			if dst == 6 || src == 6 {
				cycles = 7
			}
			add(Definition{
				OpCode:   0x40 | dst<<3 | src,
				Mnemonic: "MOV",
				Operands: RegisterNames[dst] + "," + RegisterNames[src],
				Bytes:    1,
				Cycles:   cycles,
				Effect:   Move,
			})
		}
	}

	// accumulator operations with a register or immediate operand
	for op := uint8(0); op < 8; op++ {
		effect := Arithmetic
		if op >= 4 && op <= 6 {
			effect = Logical
		}
		for src := uint8(0); src < 8; src++ {
			cycles := 4
			if src == 6 {
				cycles = 7
			}
			add(Definition{OpCode: 0x80 | op<<3 | src, Mnemonic: aluMnemonics[op], Operands: RegisterNames[src], Bytes: 1, Cycles: cycles, Effect: effect})
		}
		add(Definition{OpCode: 0xc6 | op<<3, Mnemonic: aluImmMnemonics[op], Bytes: 2, Cycles: 7, Data: Immediate, Effect: effect})
	}

	// conditional flow and restarts
	for cc := uint8(0); cc < 8; cc++ {
		cond := Condition(cc) + NZ
		add(Definition{OpCode: 0xc0 | cc<<3, Mnemonic: "R" + cond.String(), Bytes: 1, Cycles: 5, CyclesTaken: 11, Effect: Subroutine, Condition: cond})
		add(Definition{OpCode: 0xc2 | cc<<3, Mnemonic: "J" + cond.String(), Bytes: 3, Cycles: 10, CyclesTaken: 10, Data: Address, Effect: Flow, Condition: cond})
		add(Definition{OpCode: 0xc4 | cc<<3, Mnemonic: "C" + cond.String(), Bytes: 3, Cycles: 11, CyclesTaken: 17, Data: Address, Effect: Subroutine, Condition: cond})
		add(Definition{OpCode: 0xc7 | cc<<3, Mnemonic: "RST", Operands: string(rune('0' + cc)), Bytes: 1, Cycles: 11, Effect: Subroutine})
	}

	return t
}
