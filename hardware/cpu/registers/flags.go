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

package registers

import (
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/alu"
)

// Flags is the special purpose register that stores the condition flags of
// the CPU.
type Flags struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// The bit positions of the flags when the register is in byte form. Bit 1 is
// always set and bits 3 and 5 are always clear.
const (
	FlagCarry    = 0x01
	FlagFixed    = 0x02
	FlagParity   = 0x04
	FlagAuxCarry = 0x10
	FlagZero     = 0x40
	FlagSign     = 0x80
)

// NewFlags is the preferred method of initialisation for the flags register.
// Included for consistency with the other register types.
func NewFlags() Flags {
	return Flags{}
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "F"
}

func (fl Flags) String() string {
	s := strings.Builder{}

	if fl.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}

	s.WriteRune('-')

	if fl.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}

	s.WriteRune('-')

	if fl.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}

	s.WriteRune('-')

	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset all flags to false.
func (fl *Flags) Reset() {
	fl.FromValue(0)
}

// Value converts the flags into the byte form suitable for pushing onto the
// stack.
func (fl Flags) Value() uint8 {
	v := uint8(FlagFixed)

	if fl.Sign {
		v |= FlagSign
	}
	if fl.Zero {
		v |= FlagZero
	}
	if fl.AuxCarry {
		v |= FlagAuxCarry
	}
	if fl.Parity {
		v |= FlagParity
	}
	if fl.Carry {
		v |= FlagCarry
	}

	return v
}

// FromValue sets the flags from the byte form (taken from the stack, for
// example). The fixed bits are ignored.
func (fl *Flags) FromValue(v uint8) {
	fl.Sign = v&FlagSign == FlagSign
	fl.Zero = v&FlagZero == FlagZero
	fl.AuxCarry = v&FlagAuxCarry == FlagAuxCarry
	fl.Parity = v&FlagParity == FlagParity
	fl.Carry = v&FlagCarry == FlagCarry
}

// Apply copies every flag in the ALU result into the register.
func (fl *Flags) Apply(r alu.Result) {
	fl.ApplySZP(r)
	fl.AuxCarry = r.AuxCarry
	fl.Carry = r.Carry
}

// ApplySZP copies the Sign, Zero and Parity flags from the ALU result into the
// register.
func (fl *Flags) ApplySZP(r alu.Result) {
	fl.Sign = r.Sign
	fl.Zero = r.Zero
	fl.Parity = r.Parity
}
