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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/test"
)

type mockSound struct {
	port []uint8
	data []uint8
}

func (s *mockSound) SoundEffect(port uint8, data uint8) {
	s.port = append(s.port, port)
	s.data = append(s.data, data)
}

type mockReset struct {
	requests int
}

func (r *mockReset) RequestReset() {
	r.requests++
}

func TestImplementsPortDevice(t *testing.T) {
	var _ cpu.PortDevice = ports.NewPorts(nil, nil)
}

func TestShiftRegister(t *testing.T) {
	p := ports.NewPorts(nil, nil)

	p.WritePort(ports.OutShiftOffset, 3)
	p.WritePort(ports.OutShiftData, 0xff)
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0xf8))

	// the previous value moves to the low byte
	p.WritePort(ports.OutShiftData, 0x00)
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0x07))

	p.WritePort(ports.OutShiftOffset, 0)
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0x00))

	p.WritePort(ports.OutShiftData, 0xa5)
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0xa5))

	// only the lower three bits of the offset are used
	p.WritePort(ports.OutShiftOffset, 0xff)
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0x80))

	p.Reset()
	test.ExpectEquality(t, p.ReadPort(ports.InShiftResult), uint8(0x00))
}

func TestShiftRegisterFromCPU(t *testing.T) {
	p := ports.NewPorts(nil, nil)
	mem := newFlatMem()
	mc := cpu.NewCPU(mem, p)

	// MVI A,$03; OUT 2; MVI A,$ff; OUT 4; IN 3
	copy(mem.data, []uint8{0x3e, 0x03, 0xd3, 0x02, 0x3e, 0xff, 0xd3, 0x04, 0xdb, 0x03})
	for i := 0; i < 5; i++ {
		_, err := mc.ExecuteInstruction()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0xf8))
}

func TestSoundAndWatchdog(t *testing.T) {
	snd := &mockSound{}
	rst := &mockReset{}
	p := ports.NewPorts(snd, rst)

	p.WritePort(ports.OutSound1, 0x02)
	p.WritePort(ports.OutSound2, 0x10)
	test.DemandEquality(t, len(snd.port), 2)
	test.ExpectEquality(t, snd.port[0], uint8(ports.OutSound1))
	test.ExpectEquality(t, snd.data[0], uint8(0x02))
	test.ExpectEquality(t, snd.port[1], uint8(ports.OutSound2))
	test.ExpectEquality(t, snd.data[1], uint8(0x10))

	p.WritePort(ports.OutWatchdog, 0x00)
	test.ExpectEquality(t, rst.requests, 1)

	// all writes are recorded
	test.ExpectEquality(t, p.Output(ports.OutSound1), uint8(0x02))
	test.ExpectEquality(t, p.Output(ports.OutSound2), uint8(0x10))

	// shift register writes don't go to the sound device
	p.WritePort(ports.OutShiftData, 0x01)
	test.ExpectEquality(t, len(snd.port), 2)

	// nil devices are fine
	p.Plumb(nil, nil)
	p.WritePort(ports.OutSound1, 0x01)
	p.WritePort(ports.OutWatchdog, 0x00)
	test.ExpectEquality(t, rst.requests, 1)
}

func TestOutOfRange(t *testing.T) {
	p := ports.NewPorts(nil, nil)
	p.WritePort(0x10, 0xff)
	test.ExpectEquality(t, p.Output(0x10), uint8(0x00))
	test.ExpectEquality(t, p.ReadPort(0x10), uint8(0x00))
	p.SetInput(0x10, 0xff)
	test.ExpectEquality(t, p.ReadPort(0x10), uint8(0x00))

	// unused ports in range read back whatever the host sets
	test.ExpectEquality(t, p.ReadPort(7), uint8(0x00))
	p.SetInput(7, 0x42)
	test.ExpectEquality(t, p.ReadPort(7), uint8(0x42))
}

func TestButtons(t *testing.T) {
	p := ports.NewPorts(nil, nil)

	// fixed bits
	test.ExpectEquality(t, p.ReadPort(ports.InInputs0), uint8(0x0e))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs1), uint8(0x08))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x00))

	test.ExpectSuccess(t, p.Press(ports.Coin))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs1), uint8(0x09))
	test.ExpectSuccess(t, p.IsPressed(ports.Coin))

	test.ExpectSuccess(t, p.Press(ports.P1Start))
	test.ExpectSuccess(t, p.Press(ports.P1Fire))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs1), uint8(0x1d))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs0), uint8(0x1e))

	test.ExpectSuccess(t, p.Release(ports.Coin))
	test.ExpectSuccess(t, p.Release(ports.P1Start))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs1), uint8(0x18))
	test.ExpectFailure(t, p.IsPressed(ports.Coin))

	test.ExpectSuccess(t, p.Press(ports.P2Left))
	test.ExpectSuccess(t, p.Press(ports.Tilt))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x24))

	test.ExpectFailure(t, p.Press(ports.Button("Jump")))
	test.ExpectFailure(t, p.Release(ports.Button("Jump")))

	// buttons are held through a reset
	p.Reset()
	test.ExpectSuccess(t, p.IsPressed(ports.P1Fire))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x24))

	p.ReleaseAll()
	test.ExpectFailure(t, p.IsPressed(ports.P1Fire))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs1), uint8(0x08))
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x00))
}

func TestDIP(t *testing.T) {
	p := ports.NewPorts(nil, nil)
	test.ExpectEquality(t, p.DIP(), ports.NewDIP())

	p.SetDIP(ports.DIP{Ships: 5, BonusAt1500: true, HideCoinInfo: true})
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x8a))

	// the DIP switches survive a reset and releasing the buttons
	test.ExpectSuccess(t, p.Press(ports.P2Fire))
	p.Reset()
	p.ReleaseAll()
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x8a))

	// out of range ship counts are clamped
	p.SetDIP(ports.DIP{Ships: 9})
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x03))
	p.SetDIP(ports.DIP{Ships: 0})
	test.ExpectEquality(t, p.ReadPort(ports.InInputs2), uint8(0x00))
}

func TestSetInput(t *testing.T) {
	p := ports.NewPorts(nil, nil)
	p.SetInput(ports.InInputs1, 0xff)
	test.ExpectEquality(t, p.Input(ports.InInputs1), uint8(0xff))

	// button changes rebuild the port
	test.ExpectSuccess(t, p.Press(ports.Coin))
	test.ExpectEquality(t, p.Input(ports.InInputs1), uint8(0x09))
}

type flatMem struct {
	data []uint8
}

func newFlatMem() *flatMem {
	return &flatMem{data: make([]uint8, 0x10000)}
}

func (mem *flatMem) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

func (mem *flatMem) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}
