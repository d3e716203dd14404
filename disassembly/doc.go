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

// Package disassembly decodes 8080 machine code into human readable form.
//
// Disassemble() performs a linear decode of a range of memory. Every byte is
// assumed to be the start of an instruction unless it has been consumed as
// operand data by the preceding instruction. Bytes that are not documented
// opcodes are rendered as data with the DB pseudo-instruction.
//
// FormatResult() creates an Entry from an execution.Result and is useful for
// tracing instructions as they are executed by the CPU.
package disassembly
