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

// Package cpubus defines how the CPU sees memory. Any type that implements
// the Memory interface can be plumbed into the CPU. Test code makes use of
// this to provide memory without write protection.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Read never fails in the memory implementation used by the emulation because
// the entire 16bit address space is mapped. The error return is there for
// alternative implementations.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// WriteProtectionViolation is the curated error pattern returned by Write()
// when the address is in a write protected area (ROM). The placeholder value
// is the address that was written to.
const WriteProtectionViolation = "write protection violation: %#04x"

// Read16 reads two bytes, little endian, from consecutive addresses.
func Read16(mem Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
