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

// Package registers implements the register types of the 8080. The seven 8bit
// general purpose registers are all of type Register. The program counter and
// the stack pointer have their own types.
//
// The Flags type is the flags register. It is not a Register type because it
// is only ever seen as a byte when pushed onto the stack with the
// accumulator (PUSH PSW). The Value() and FromValue() functions convert
// between the two forms.
package registers
