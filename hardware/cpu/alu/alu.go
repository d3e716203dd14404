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

package alu

import "math/bits"

// Result of an ALU operation. Not every operation produces a meaningful
// value for every flag. For example, Increment() never sets Carry.
type Result struct {
	Value    uint8
	Zero     bool
	Sign     bool
	Parity   bool
	Carry    bool
	AuxCarry bool
}

// Zero returns true if v is zero.
func Zero(v uint8) bool {
	return v == 0
}

// Sign returns true if bit 7 of v is set.
func Sign(v uint8) bool {
	return v&0x80 == 0x80
}

// Parity returns true if the number of set bits in v is even.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

// Carry8 returns true if an 8bit operation, performed with 16bit values,
// produced a carry or a borrow.
func Carry8(result uint16) bool {
	return result > 0xff
}

// Carry16 returns true if a 16bit operation, performed with 32bit values,
// produced a carry.
func Carry16(result uint32) bool {
	return result > 0xffff
}

// AuxCarry returns true if adding the low nibbles of a and b carries into
// bit 4.
func AuxCarry(a, b uint8) bool {
	return (a&0x0f)+(b&0x0f) > 0x0f
}

// AuxCarryWithCarry is the same as AuxCarry but with an additional carry in.
func AuxCarryWithCarry(a, b uint8, c bool) bool {
	var ci uint8
	if c {
		ci = 1
	}
	return (a&0x0f)+(b&0x0f)+ci > 0x0f
}

// szp fills in the Zero, Sign and Parity fields from the Value field.
func szp(r Result) Result {
	r.Zero = Zero(r.Value)
	r.Sign = Sign(r.Value)
	r.Parity = Parity(r.Value)
	return r
}

// Add a and b with optional carry in. Used by ADD, ADC, ADI and ACI.
func Add(a, b uint8, carry bool) Result {
	w := uint16(a) + uint16(b)
	if carry {
		w++
	}
	return szp(Result{
		Value:    uint8(w),
		Carry:    Carry8(w),
		AuxCarry: AuxCarryWithCarry(a, b, carry),
	})
}

// Sub subtracts b from a with optional borrow in. Used by SUB, SBB, SUI, SBI
// and CMP.
//
// The auxiliary carry is the carry out of bit 3 when the subtraction is
// performed by adding the ones complement of b, plus one if there is no
// borrow. This is how the 8080 sets the flag.
func Sub(a, b uint8, borrow bool) Result {
	w := uint16(a) - uint16(b)
	if borrow {
		w--
	}
	return szp(Result{
		Value:    uint8(w),
		Carry:    Carry8(w),
		AuxCarry: AuxCarryWithCarry(a, ^b, !borrow),
	})
}

// And performs a logical AND. Carry and AuxCarry are always cleared.
func And(a, b uint8) Result {
	return szp(Result{Value: a & b})
}

// Xor performs a logical exclusive OR. Carry and AuxCarry are always cleared.
func Xor(a, b uint8) Result {
	return szp(Result{Value: a ^ b})
}

// Or performs a logical OR. Carry and AuxCarry are always cleared.
func Or(a, b uint8) Result {
	return szp(Result{Value: a | b})
}

// Increment v by one. The Carry field is not meaningful and must be ignored
// by the caller.
func Increment(v uint8) Result {
	return szp(Result{
		Value:    v + 1,
		AuxCarry: v&0x0f == 0x0f,
	})
}

// Decrement v by one. The Carry field is not meaningful and must be ignored
// by the caller. AuxCarry is set when there is no borrow into bit 3, as it
// would be for the equivalent Sub(v, 1, false).
func Decrement(v uint8) Result {
	return szp(Result{
		Value:    v - 1,
		AuxCarry: v&0x0f != 0x00,
	})
}

// DecimalAdjust corrects the accumulator after BCD addition. The adjustment
// is made in two steps. The second step operates on the result of the first.
//
// If the carry flag is set on entry it remains set.
func DecimalAdjust(a uint8, cy bool, ac bool) Result {
	r := Result{Value: a, Carry: cy}

	if r.Value&0x0f > 0x09 || ac {
		r.AuxCarry = AuxCarry(r.Value, 0x06)
		r.Value += 0x06
	}

	if r.Value>>4 > 0x09 || cy {
		r.Value += 0x60
		r.Carry = true
	}

	return szp(r)
}
