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

// Package ports implements the I/O port devices of the Space Invaders board.
// The Ports type implements the cpu.PortDevice interface and is plumbed into
// the CPU on creation.
//
// Input ports 0, 1 and 2 are the cabinet controls and DIP switches. The host
// changes them with the Press(), Release() and SetDIP() functions, or
// directly with SetInput(). Input port 3 is the result of the shift register.
//
// Output ports 2 and 4 control the shift register. Output ports 3 and 5
// trigger sound effects and are forwarded to the SoundEffects implementation.
// Output port 6 is the watchdog, which is forwarded to the ResetRequester
// implementation.
//
// The shift register is a 16bit register used by the game to draw sprites at
// any horizontal pixel position. Writing to port 4 shifts the existing
// contents right by 8 bits and places the new value in the high byte. Reading
// port 3 returns 8 bits of the register, starting at the bit selected by the
// offset written to port 2.
//
// Ports outside of the range 0 to 7 do not exist on the board. Reading from
// them returns zero and writing to them is logged and otherwise ignored.
package ports
