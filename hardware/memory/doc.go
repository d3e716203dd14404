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

// Package memory implements the 64KB address space of the Space Invaders
// board.
//
//	    CPU ---- cpu bus ---- MEMORY ---- Read() ---- DISPLAY
//	                             |
//	                             |
//	                         debugger bus (Peek/Poke)
//	                             |
//	                          DEBUGGER
//
// The memory is divided into areas, defined in the memorymap package. The
// ROM area cannot be written to by the CPU. An attempt to do so is an error
// and indicates either a malformed program or a bug in the emulation. The
// only way of getting data into ROM is with the LoadImage() function.
//
// The display collaborator reads video RAM directly with Read() or with the
// VideoRAM() function. Memory is the single source of truth for both the CPU
// and the display.
package memory
