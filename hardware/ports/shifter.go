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

package ports

import "fmt"

// shifter is the dedicated shift register hardware.
type shifter struct {
	value  uint16
	offset uint8
}

func (sh shifter) String() string {
	return fmt.Sprintf("shift=%#04x offset=%d", sh.value, sh.offset)
}

func (sh *shifter) reset() {
	sh.value = 0
	sh.offset = 0
}

// only the lower three bits of the offset are used
func (sh *shifter) setOffset(data uint8) {
	sh.offset = data & 0x07
}

func (sh *shifter) load(data uint8) {
	sh.value = uint16(data)<<8 | sh.value>>8
}

func (sh shifter) result() uint8 {
	return uint8(sh.value >> (8 - sh.offset))
}
