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

// Package macro implements an input system that processes instructions from a
// macro script.
//
// The first line of a macro script must be the header:
//
//	gopher8080macro
//
// The macro language is very simple and does not implement any flow control
// except basic loops.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be referenced as a variable with the % symbol. Currently,
// this is useful with the POKE instruction only.
//
// Loops can be nested.
//
// The WAIT instruction will pause the execution of the macro for the specified
// number of frames. If no value is given for this the number of frames defaults
// to 60.
//
// There are instructions that operate the cabinet controls. The COIN, START1
// and START2 instructions press and then release the relevant button.
//
//	COIN, START1, START2
//
// The controls for player one can be held and released with the following
// instructions.
//
//	LEFT, RIGHT, CENTRE, FIRE, NOFIRE
//
// Memory can be altered with POKE. Both the address and the value can be
// specified in decimal or in hex with a leading $ symbol.
//
//	POKE $20ea %ct
//
// The QUIT instruction ends the emulation.
//
// The macro is driven by the emulation. It implements the FrameTrigger
// interface of the hardware package and executes instructions at the end of
// every frame until it meets a WAIT instruction or the end of the script. The
// controller instructions all include a short wait of two frames so that the
// input has the chance to be seen by the program running in the emulation.
//
// Errors in a macro script are reported when the script is loaded.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
package macro
