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

package addresses

// Reset is the address the CPU starts execution from after a reset.
const Reset = uint16(0x0000)

// Restart returns the address jumped to by RST n. Only the lower three bits
// of n are used.
func Restart(n uint8) uint16 {
	return uint16(n&0x07) * 8
}

// CanonicalReadPorts lists the input ports along with their canonical names.
var CanonicalReadPorts = map[uint8]string{
	0x00: "INP0",
	0x01: "INP1",
	0x02: "INP2",
	0x03: "SHFT_IN",
}

// CanonicalWritePorts lists the output ports along with their canonical names.
var CanonicalWritePorts = map[uint8]string{
	0x02: "SHFTAMNT",
	0x03: "SOUND1",
	0x04: "SHFT_DATA",
	0x05: "SOUND2",
	0x06: "WATCHDOG",
}
