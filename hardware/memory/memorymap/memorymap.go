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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case WorkRAM:
		return "Work RAM"
	case VideoRAM:
		return "Video RAM"
	case Mirror:
		return "RAM Mirror"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	ROM
	WorkRAM
	VideoRAM
	Mirror
)

// The origin and memory top for each area of memory.
const (
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x1fff)
	OriginWorkRAM  = uint16(0x2000)
	MemtopWorkRAM  = uint16(0x23ff)
	OriginVideoRAM = uint16(0x2400)
	MemtopVideoRAM = uint16(0x3fff)
	OriginMirror   = uint16(0x4000)
	MemtopMirror   = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = MemtopMirror

// Size of the address space in bytes. Note that this value does not fit in a
// uint16.
const Size = int(Memtop) + 1

// Sizes of the areas in bytes.
const (
	SizeROM      = int(MemtopROM-OriginROM) + 1
	SizeWorkRAM  = int(MemtopWorkRAM-OriginWorkRAM) + 1
	SizeVideoRAM = int(MemtopVideoRAM-OriginVideoRAM) + 1
)

// The display collaborator interprets video RAM as a 1-bit per pixel image,
// most significant bit first. There are 32 bytes per raster row.
const (
	ScreenWidth  = 224
	ScreenHeight = 256
	BytesPerRow  = ScreenHeight / 8
)

// MapAddress returns the area the address is in. The address is returned
// unchanged because there are no mirrors to normalise.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopWorkRAM:
		return address, WorkRAM
	case address <= MemtopVideoRAM:
		return address, VideoRAM
	}
	return address, Mirror
}

// IsWritable returns false if the CPU is not permitted to write to the
// address.
func IsWritable(address uint16) bool {
	_, area := MapAddress(address)
	return area != ROM
}
