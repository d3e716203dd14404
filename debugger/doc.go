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

// Package debugger implements a simple monitor for the emulated machine. The
// monitor is controlled with single key commands, which makes it suitable for
// use with a terminal in cbreak mode. See the easyterm package.
//
// The commands are:
//
//	s	step one instruction
//	f	run to the end of the current frame
//	r	print the CPU registers and the state of the I/O ports
//	d	disassemble from the current PC
//	1	raise the mid-frame interrupt (RST 1)
//	2	raise the vblank interrupt (RST 2)
//	v	write a graph of the CPU state in the DOT format
//	h	print help
//	q	quit
//
// The Command() function executes a single command. The Loop() function reads
// commands from an io.Reader until the quit command is received.
package debugger
