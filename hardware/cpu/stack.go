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

package cpu

// push16 pushes a 16bit value onto the stack. The high byte is written first
// at SP-1 and the low byte at SP-2. The stack pointer is only changed if
// both writes succeed.
func (mc *CPU) push16(val uint16) error {
	sp := mc.SP.Address()
	if err := mc.write(sp-1, uint8(val>>8)); err != nil {
		return err
	}
	if err := mc.write(sp-2, uint8(val)); err != nil {
		return err
	}
	mc.SP.Add(-2)
	return nil
}

// pop16 pulls a 16bit value from the stack.
func (mc *CPU) pop16() (uint16, error) {
	val, err := mc.read16Bit(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(2)
	return val, nil
}

// call pushes the return address and transfers control to address.
func (mc *CPU) call(address uint16, returnAddress uint16) error {
	if err := mc.push16(returnAddress); err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// ret pulls the return address from the stack and transfers control to it.
func (mc *CPU) ret() error {
	address, err := mc.pop16()
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}
