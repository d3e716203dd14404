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

// Package instructions defines the 8080 instruction set. The Definition type
// describes an instruction: its mnemonic, its length in bytes, its cost in
// clock cycles and the kind of operand data that follows the opcode.
//
// The table is indexed by opcode. Undocumented opcodes have no definition
// and the entry in the table is nil.
//
// Some families of instructions are regular enough that their definitions are
// generated in loops over the register encoding. The encodings are:
//
//	register (r): B=0 C=1 D=2 E=3 H=4 L=5 M=6 A=7
//	register pair (rp): B=0 D=1 H=2 SP=3 (PSW=3 for PUSH and POP)
//	condition (cc): NZ=0 Z=1 NC=2 C=3 PO=4 PE=5 P=6 M=7
//
// Register M is the memory location pointed to by the HL register pair.
package instructions
