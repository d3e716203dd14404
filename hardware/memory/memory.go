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

package memory

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/hardware/memory/memorymap"
)

// ImageTooLarge is the curated error pattern returned by LoadImage() when the
// image will not fit in the ROM area. The placeholder values are the size of
// the image and the origin address.
const ImageTooLarge = "image too large: %d bytes at origin %#04x"

// Memory is the entire 64KB address space. It implements the cpubus.Memory
// interface.
type Memory struct {
	data []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All memory is zeroed.
func NewMemory() *Memory {
	return &Memory{
		data: make([]uint8, memorymap.Size),
	}
}

func (mem *Memory) String() string {
	return memorymap.Summary()
}

// Read implements the cpubus.Memory interface. The entire address space is
// mapped and so the function never fails.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface. Writing to the ROM area is an
// error.
func (mem *Memory) Write(address uint16, data uint8) error {
	if !memorymap.IsWritable(address) {
		return curated.Errorf(cpubus.WriteProtectionViolation, address)
	}
	mem.data[address] = data
	return nil
}

// LoadImage copies data into memory starting at the origin address. Write
// protection is ignored but the image must fit entirely within the ROM area.
func (mem *Memory) LoadImage(data []byte, origin uint16) error {
	if origin > memorymap.MemtopROM || int(origin)+len(data) > int(memorymap.MemtopROM)+1 {
		return curated.Errorf(ImageTooLarge, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}

// Peek returns the value at address without any side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke stores a value at the address. Write protection is ignored. Poke is
// intended for debugging and scripting, not for use by the CPU.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Region returns the memory area the address belongs to.
func (mem *Memory) Region(address uint16) memorymap.Area {
	_, area := memorymap.MapAddress(address)
	return area
}

// VideoRAM returns a copy of the video RAM area. Each byte contains eight
// pixels, most significant bit first, with 32 bytes per raster row.
func (mem *Memory) VideoRAM() []uint8 {
	v := make([]uint8, memorymap.SizeVideoRAM)
	copy(v, mem.data[memorymap.OriginVideoRAM:int(memorymap.MemtopVideoRAM)+1])
	return v
}

// Pixel returns the state of a single pixel in video RAM, in the coordinates
// of the raster as it is stored in memory (before any rotation the display
// might apply). Coordinates outside the raster return false.
func (mem *Memory) Pixel(row int, col int) bool {
	if row < 0 || row >= memorymap.ScreenWidth || col < 0 || col >= memorymap.ScreenHeight {
		return false
	}
	b := mem.data[int(memorymap.OriginVideoRAM)+row*memorymap.BytesPerRow+col/8]
	return b&(0x80>>(col%8)) != 0
}

// ClearRAM zeroes every area of memory except ROM.
func (mem *Memory) ClearRAM() {
	clear(mem.data[memorymap.OriginWorkRAM:])
}

// Clear zeroes all memory, including ROM.
func (mem *Memory) Clear() {
	clear(mem.data)
}
