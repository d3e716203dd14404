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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/test"
)

func TestReset(t *testing.T) {
	mc, mem, _ := newTestCPU()
	test.ExpectSuccess(t, mc.HasReset())

	mem.putInstructions(0x0000, 0x3e, 0xff, 0x37, 0xfb)
	run(t, mc, 3)
	test.ExpectFailure(t, mc.HasReset())
	test.ExpectEquality(t, mc.Cycles, uint64(7+4+4))

	mc.Reset()
	test.ExpectSuccess(t, mc.HasReset())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.Flags.Value(), uint8(0x02))
	test.ExpectFailure(t, mc.InterruptsEnabled)

	// memory is untouched by reset
	mem.assert(t, 0x0000, 0x3e)
}

func TestAddFlags(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$3c; MVI B,$01; ADD B
	mem.putInstructions(0x0000, 0x3e, 0x3c, 0x06, 0x01, 0x80)
	run(t, mc, 2)
	test.ExpectEquality(t, step(t, mc), 4)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x3d))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)
	test.ExpectFailure(t, mc.Flags.Sign)
	test.ExpectFailure(t, mc.Flags.AuxCarry)
	test.ExpectFailure(t, mc.Flags.Parity)
}

func TestSubSelf(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$00; SUB A
	mem.putInstructions(0x0000, 0x3e, 0x00, 0x97)
	run(t, mc, 2)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Flags.Zero)
	test.ExpectFailure(t, mc.Flags.Sign)
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.Parity)
}

func TestCompare(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$05; CPI $06; CPI $05; MVI B,$04; CMP B
	mem.putInstructions(0x0000, 0x3e, 0x05, 0xfe, 0x06, 0xfe, 0x05, 0x06, 0x04, 0xb8)
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x05))
	test.ExpectSuccess(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x05))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.Zero)

	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x05))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)
}

func TestCarryArithmetic(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$ff; ADI $01; ACI $00; STC; SBI $00
	mem.putInstructions(0x0000, 0x3e, 0xff, 0xc6, 0x01, 0xce, 0x00, 0x37, 0xde, 0x00)
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.Zero)

	// carry in from previous instruction
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectFailure(t, mc.Flags.Carry)

	// borrow in
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.Zero)
}

func TestLogicalClearsCarry(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$f0; STC; ANI $0f; STC; ORA A; STC; XRA A
	mem.putInstructions(0x0000, 0x3e, 0xf0, 0x37, 0xe6, 0x0f, 0x37, 0xb7, 0x37, 0xaf)
	run(t, mc, 3)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Flags.Zero)
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.AuxCarry)

	run(t, mc, 2)
	test.ExpectFailure(t, mc.Flags.Carry)

	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectFailure(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.Parity)
}

func TestIncrementDecrement(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// STC; MVI B,$ff; INR B; DCR B
	mem.putInstructions(0x0000, 0x37, 0x06, 0xff, 0x04, 0x05)
	run(t, mc, 2)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.B.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Flags.Zero)
	test.ExpectSuccess(t, mc.Flags.AuxCarry)

	// carry is not affected
	test.ExpectSuccess(t, mc.Flags.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), uint8(0xff))
	test.ExpectSuccess(t, mc.Flags.Sign)
	test.ExpectSuccess(t, mc.Flags.Carry)

	// register pairs. INX and DCX do not affect any flag
	mc.Reset()
	mem.putInstructions(0x0000, 0x21, 0xff, 0xff, 0x23, 0x1b, 0x33)
	run(t, mc, 4)
	test.ExpectEquality(t, mc.HL(), uint16(0x0000))
	test.ExpectEquality(t, mc.DE(), uint16(0xffff))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x0001))
	test.ExpectFailure(t, mc.Flags.Zero)
}

func TestMemoryOperand(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI H,$2000; MVI M,$55; MOV A,M; INR M; MOV B,A; MOV M,B; ADD M
	mem.putInstructions(0x0000, 0x21, 0x00, 0x20, 0x36, 0x55, 0x7e, 0x34, 0x47, 0x70, 0x86)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 10)
	mem.assert(t, 0x2000, 0x55)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))

	test.ExpectEquality(t, step(t, mc), 10)
	mem.assert(t, 0x2000, 0x56)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, step(t, mc), 7)
	mem.assert(t, 0x2000, 0x55)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xaa))
}

func TestLoadStore(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000,
		0x3e, 0x99, // MVI A,$99
		0x32, 0x00, 0x30, // STA $3000
		0x21, 0x34, 0x12, // LXI H,$1234
		0x22, 0x10, 0x30, // SHLD $3010
		0x01, 0x00, 0x30, // LXI B,$3000
		0x0a, // LDAX B
		0x11, 0x11, 0x30, // LXI D,$3011
		0x3e, 0x00, // MVI A,$00
		0x12, // STAX D
		0x2a, 0x10, 0x30, // LHLD $3010
		0x3a, 0x00, 0x30, // LDA $3000
	)

	run(t, mc, 2)
	mem.assert(t, 0x3000, 0x99)
	test.ExpectEquality(t, mc.LastResult.Cycles, 13)

	run(t, mc, 2)
	mem.assert(t, 0x3010, 0x34)
	mem.assert(t, 0x3011, 0x12)
	test.ExpectEquality(t, mc.LastResult.Cycles, 16)

	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))

	run(t, mc, 3)
	mem.assert(t, 0x3011, 0x00)

	step(t, mc)
	test.ExpectEquality(t, mc.HL(), uint16(0x0034))

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
}

func TestExchange(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000,
		0x31, 0x00, 0x24, // LXI SP,$2400
		0x21, 0xcd, 0xab, // LXI H,$abcd
		0x11, 0x34, 0x12, // LXI D,$1234
		0xeb, // XCHG
		0xd5, // PUSH D
		0x21, 0x00, 0x00, // LXI H,$0000
		0xe3, // XTHL
		0x21, 0x00, 0x30, // LXI H,$3000
		0xf9, // SPHL
		0x21, 0x40, 0x00, // LXI H,$0040
		0xe9, // PCHL
	)

	run(t, mc, 4)
	test.ExpectEquality(t, mc.HL(), uint16(0x1234))
	test.ExpectEquality(t, mc.DE(), uint16(0xabcd))

	run(t, mc, 2)
	test.ExpectEquality(t, step(t, mc), 18)
	test.ExpectEquality(t, mc.HL(), uint16(0xabcd))
	mem.assert(t, 0x23fe, 0x00)
	mem.assert(t, 0x23ff, 0x00)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe))

	run(t, mc, 2)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x3000))

	run(t, mc, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0040))
}

func TestDoubleAdd(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI H,$ffff; LXI B,$0001; DAD B; DAD H
	mem.putInstructions(0x0000, 0x21, 0xff, 0xff, 0x01, 0x01, 0x00, 0x09, 0x29)
	run(t, mc, 3)
	test.ExpectEquality(t, mc.HL(), uint16(0x0000))
	test.ExpectSuccess(t, mc.Flags.Carry)

	// zero flag is not affected by DAD
	test.ExpectFailure(t, mc.Flags.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.HL(), uint16(0x0000))
	test.ExpectFailure(t, mc.Flags.Carry)
}

func TestRotate(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$81; RLC; RRC; RRC; RAL; RAL; RAR
	mem.putInstructions(0x0000, 0x3e, 0x81, 0x07, 0x0f, 0x0f, 0x17, 0x17, 0x1f)
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x03))
	test.ExpectSuccess(t, mc.Flags.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectSuccess(t, mc.Flags.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xc0))
	test.ExpectSuccess(t, mc.Flags.Carry)

	// carry rotates into bit 0
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectSuccess(t, mc.Flags.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x03))
	test.ExpectSuccess(t, mc.Flags.Carry)

	// carry rotates into bit 7
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectSuccess(t, mc.Flags.Carry)
}

func TestAccumulatorMisc(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$51; CMA; STC; CMC; CMC
	mem.putInstructions(0x0000, 0x3e, 0x51, 0x2f, 0x37, 0x3f, 0x3f)
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xae))
	test.ExpectEquality(t, mc.Flags.Value(), uint8(0x02))

	run(t, mc, 2)
	test.ExpectFailure(t, mc.Flags.Carry)
	step(t, mc)
	test.ExpectSuccess(t, mc.Flags.Carry)
}

func TestDecimalAdjust(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,$38; ADI $45; DAA
	mem.putInstructions(0x0000, 0x3e, 0x38, 0xc6, 0x45, 0x27)
	run(t, mc, 3)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x83))
	test.ExpectFailure(t, mc.Flags.Carry)

	// MVI A,$9b; DAA
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x9b, 0x27)
	run(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectSuccess(t, mc.Flags.Carry)
	test.ExpectSuccess(t, mc.Flags.AuxCarry)
}

func TestPushPop(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000, 0x31, 0x00, 0x24)
	step(t, mc)

	// push and pop every register pair
	for rp := uint8(0); rp < 3; rp++ {
		mc.PC.Load(0x0100)
		mem.putInstructions(0x0100,
			0x01|rp<<4, 0x34, 0x12, // LXI rp,$1234
			0xc5|rp<<4, // PUSH rp
			0x01|rp<<4, 0x00, 0x00, // LXI rp,$0000
			0xc1|rp<<4, // POP rp
		)

		run(t, mc, 1)
		test.ExpectEquality(t, step(t, mc), 11, rp)
		mem.assert(t, 0x23ff, 0x12)
		mem.assert(t, 0x23fe, 0x34)
		test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe), rp)

		run(t, mc, 1)
		test.ExpectEquality(t, step(t, mc), 10, rp)
		test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400), rp)

		switch rp {
		case 0:
			test.ExpectEquality(t, mc.BC(), uint16(0x1234))
		case 1:
			test.ExpectEquality(t, mc.DE(), uint16(0x1234))
		case 2:
			test.ExpectEquality(t, mc.HL(), uint16(0x1234))
		}
	}

	// PSW
	mc.PC.Load(0x0200)
	mc.A.Load(0x5a)
	mc.Flags.Sign = true
	mc.Flags.Carry = true
	mem.putInstructions(0x0200, 0xf5, 0x3e, 0x00, 0xaf, 0xf1)
	step(t, mc)
	mem.assert(t, 0x23ff, 0x5a)
	mem.assert(t, 0x23fe, 0x83)

	run(t, mc, 2)
	test.ExpectSuccess(t, mc.Flags.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x5a))
	test.ExpectSuccess(t, mc.Flags.Sign)
	test.ExpectSuccess(t, mc.Flags.Carry)
	test.ExpectFailure(t, mc.Flags.Zero)
	test.ExpectEquality(t, mc.PSW(), uint16(0x5a83))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))
}

func TestPSWReservedBits(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// all bits set in the flags byte on the stack
	mem.putInstructions(0x23fe, 0xff, 0x00)
	mc.SP.Load(0x23fe)

	// POP PSW; PUSH PSW
	mem.putInstructions(0x0000, 0xf1, 0xf5)
	step(t, mc)
	test.ExpectSuccess(t, mc.Flags.Sign)
	test.ExpectSuccess(t, mc.Flags.Zero)
	test.ExpectSuccess(t, mc.Flags.AuxCarry)
	test.ExpectSuccess(t, mc.Flags.Parity)
	test.ExpectSuccess(t, mc.Flags.Carry)

	// bits 3 and 5 are cleared and bit 1 is set
	step(t, mc)
	mem.assert(t, 0x23fe, 0xd7)

	// all bits clear
	mem.putInstructions(0x23fe, 0x00)
	mc.PC.Load(0x0000)
	run(t, mc, 2)
	mem.assert(t, 0x23fe, 0x02)
}

func TestCallReturn(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000,
		0x31, 0x00, 0x24, // LXI SP,$2400
		0xcd, 0x10, 0x00, // CALL $0010
	)
	mem.putInstructions(0x0010, 0xc9) // RET

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 17)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0010))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe))
	mem.assert(t, 0x23ff, 0x00)
	mem.assert(t, 0x23fe, 0x06)

	test.ExpectEquality(t, step(t, mc), 10)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0006))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))
}

func TestRestart(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mc.SP.Load(0x2400)
	mc.PC.Load(0x1234)
	mem.putInstructions(0x1234, 0xd7) // RST 2

	test.ExpectEquality(t, step(t, mc), 11)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0010))
	mem.assert(t, 0x23ff, 0x12)
	mem.assert(t, 0x23fe, 0x35)
}

func TestConditionalFlow(t *testing.T) {
	mc, mem, _ := newTestCPU()
	mc.SP.Load(0x2400)

	// zero flag is clear after reset
	mem.putInstructions(0x0000,
		0xcc, 0x00, 0x10, // CZ $1000
		0xc4, 0x00, 0x10, // CNZ $1000
	)
	mem.putInstructions(0x1000,
		0xc8,             // RZ
		0xca, 0x00, 0x20, // JZ $2000
		0xc2, 0x00, 0x20, // JNZ $2000
	)
	mem.putInstructions(0x2000,
		0xc0, // RNZ
	)

	// CZ not taken
	test.ExpectEquality(t, step(t, mc), 11)
	test.ExpectFailure(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0003))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))

	// CNZ taken
	test.ExpectEquality(t, step(t, mc), 17)
	test.ExpectSuccess(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1000))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe))

	// RZ not taken
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1001))

	// JZ not taken
	test.ExpectEquality(t, step(t, mc), 10)
	test.ExpectFailure(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1004))

	// JNZ taken
	test.ExpectEquality(t, step(t, mc), 10)
	test.ExpectSuccess(t, mc.LastResult.BranchTaken)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x2000))

	// RNZ taken
	test.ExpectEquality(t, step(t, mc), 11)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0006))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))
}

func TestConditions(t *testing.T) {
	mc, mem, _ := newTestCPU()

	type cond struct {
		opcode uint8
		set    func(bool)
		taken  bool
	}

	conds := []cond{
		{opcode: 0xc2, set: func(v bool) { mc.Flags.Zero = v }, taken: false},   // JNZ
		{opcode: 0xca, set: func(v bool) { mc.Flags.Zero = v }, taken: true},    // JZ
		{opcode: 0xd2, set: func(v bool) { mc.Flags.Carry = v }, taken: false},  // JNC
		{opcode: 0xda, set: func(v bool) { mc.Flags.Carry = v }, taken: true},   // JC
		{opcode: 0xe2, set: func(v bool) { mc.Flags.Parity = v }, taken: false}, // JPO
		{opcode: 0xea, set: func(v bool) { mc.Flags.Parity = v }, taken: true},  // JPE
		{opcode: 0xf2, set: func(v bool) { mc.Flags.Sign = v }, taken: false},   // JP
		{opcode: 0xfa, set: func(v bool) { mc.Flags.Sign = v }, taken: true},    // JM
	}

	for _, c := range conds {
		mem.putInstructions(0x0000, c.opcode, 0x00, 0x30)

		// each condition tests exactly one flag. with the flag set the jump
		// is taken if the condition is the positive form
		mc.Flags.Reset()
		c.set(true)
		mc.PC.Load(0x0000)
		step(t, mc)
		test.ExpectEquality(t, mc.LastResult.BranchTaken, c.taken, c.opcode)

		mc.Flags.FromValue(0xff)
		c.set(false)
		mc.PC.Load(0x0000)
		step(t, mc)
		test.ExpectEquality(t, mc.LastResult.BranchTaken, !c.taken, c.opcode)
	}
}

func TestHalt(t *testing.T) {
	mc, mem, _ := newTestCPU()
	mc.SP.Load(0x2400)

	mem.putInstructions(0x0000, 0x76)
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0001))
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))

	// an accepted interrupt leaves the halt state
	mc.EnableInterrupts()
	accepted, err := mc.Interrupt(1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, accepted)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0008))
	mem.assert(t, 0x23fe, 0x01)
}

func TestInterrupt(t *testing.T) {
	mc, mem, _ := newTestCPU()
	mc.SP.Load(0x2400)
	mc.PC.Load(0x1234)

	// interrupts are disabled after reset
	accepted, err := mc.Interrupt(1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, accepted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x2400))

	// EI
	mem.putInstructions(0x1234, 0xfb)
	step(t, mc)
	test.ExpectSuccess(t, mc.InterruptsEnabled)

	accepted, err = mc.Interrupt(2)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, accepted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0010))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe))
	mem.assert(t, 0x23ff, 0x12)
	mem.assert(t, 0x23fe, 0x35)
	test.ExpectFailure(t, mc.InterruptsEnabled)

	// a second interrupt before EI is ignored
	accepted, err = mc.Interrupt(1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, accepted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0010))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x23fe))

	// DI
	mc.EnableInterrupts()
	mem.putInstructions(0x0010, 0xf3)
	step(t, mc)
	test.ExpectFailure(t, mc.InterruptsEnabled)

	// out of range vector
	mc.EnableInterrupts()
	_, err = mc.Interrupt(8)
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidInterruptVector))
	test.ExpectSuccess(t, mc.InterruptsEnabled)
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem, _ := newTestCPU()

	for _, op := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd} {
		mc.PC.Load(0x0100)
		mem.putInstructions(0x0100, op)

		_, err := mc.ExecuteInstruction()
		test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode), op)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0100), op)
		test.ExpectFailure(t, mc.LastResult.Final, op)

		v, ok := curated.Values(err, cpu.UnknownOpcode)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, v[0].(uint8), op)
		test.ExpectEquality(t, v[1].(uint16), uint16(0x0100))
	}
}

func TestInputOutput(t *testing.T) {
	mc, mem, ports := newTestCPU()

	ports.in[0x01] = 0x08

	// MVI A,$42; OUT $04; IN $01
	mem.putInstructions(0x0000, 0x3e, 0x42, 0xd3, 0x04, 0xdb, 0x01)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 10)
	test.ExpectEquality(t, ports.out[0x04], uint8(0x42))
	test.ExpectEquality(t, ports.written, 1)

	test.ExpectEquality(t, step(t, mc), 10)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x08))
}

func TestNilPorts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	// MVI A,$42; OUT $04; IN $01
	mem.putInstructions(0x0000, 0x3e, 0x42, 0xd3, 0x04, 0xdb, 0x01)
	run(t, mc, 3)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
}

func TestWriteProtection(t *testing.T) {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem, nil)

	// LXI SP,$1000; PUSH B
	test.DemandSuccess(t, mem.LoadImage([]byte{0x31, 0x00, 0x10, 0xc5}, 0x0000))
	step(t, mc)

	_, err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, cpubus.WriteProtectionViolation))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0003))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x1000))

	// MVI A,$01; STA $0100; STA $2000
	test.DemandSuccess(t, mem.LoadImage([]byte{0x3e, 0x01, 0x32, 0x00, 0x01, 0x32, 0x00, 0x20}, 0x0000))
	mc.Reset()
	step(t, mc)

	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, cpubus.WriteProtectionViolation))
	test.ExpectEquality(t, mem.Peek(0x0100), uint8(0x00))

	// skip the failing instruction
	mc.PC.Add(3)
	step(t, mc)
	test.ExpectEquality(t, mem.Peek(0x2000), uint8(0x01))
}

func TestSnapshot(t *testing.T) {
	mc, mem, _ := newTestCPU()
	mem.putInstructions(0x0000, 0x3e, 0x10)

	s := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, s.A.Value(), uint8(0x00))
	test.ExpectEquality(t, s.String(), "PC=0x0000 SP=0x0000 A=0x00 B=0x00 C=0x00 D=0x00 E=0x00 H=0x00 L=0x00 F=sz-a-p-c")
}
