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

package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/logger"
)

// the number of bytes disassembled by the disassemble command
const disasmBytes = 16

// DefaultMemvizFile is the name of the file written by the memviz command.
const DefaultMemvizFile = "gopher8080_cpu.dot"

// Debugger is the monitor for the emulated machine.
type Debugger struct {
	m      *hardware.Machine
	output io.Writer

	// the file written to by the memviz command
	MemvizFile string
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(m *hardware.Machine, output io.Writer) *Debugger {
	return &Debugger{
		m:          m,
		output:     output,
		MemvizFile: DefaultMemvizFile,
	}
}

func (dbg *Debugger) printLine(s string, a ...interface{}) {
	fmt.Fprintf(dbg.output, s, a...)
	fmt.Fprintln(dbg.output)
}

// Loop reads single key commands from the input until the quit command is
// received or the input is exhausted. Errors from the emulation are printed
// and do not end the loop.
func (dbg *Debugger) Loop(input io.Reader) error {
	dbg.printLine("gopher8080 monitor. press h for help")

	r := bufio.NewReader(input)
	for {
		key, _, err := r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		cont, err := dbg.Command(key)
		if err != nil {
			dbg.printLine("* %v", err)
			logger.Log(logger.Allow, "debugger", err.Error())
		}
		if !cont {
			return nil
		}
	}
}

// Command executes the command for the key. Returns false if the command was
// the quit command.
func (dbg *Debugger) Command(key rune) (bool, error) {
	if unicode.IsSpace(key) {
		return true, nil
	}

	switch unicode.ToLower(key) {
	case 'q':
		return false, nil

	case 'h', '?':
		dbg.help()

	case 's':
		if dbg.m.CPU.Halted {
			if _, err := dbg.m.Step(); err != nil {
				return true, err
			}
			dbg.printLine("halted")
			return true, nil
		}

		// the LastResult field will be reset if the step causes a watchdog
		// reset so the PC of the instruction is noted before stepping
		pc := dbg.m.CPU.PC.Address()
		_, err := dbg.m.Step()
		if err != nil {
			dbg.printLine(disassembly.FormatResult(dbg.m.CPU.LastResult).String())
			return true, err
		}
		if dbg.m.CPU.LastResult.Final {
			dbg.printLine(disassembly.FormatResult(dbg.m.CPU.LastResult).String())
		} else {
			dbg.printLine("%04x  reset", pc)
		}

	case 'f':
		if err := dbg.m.RunFrame(); err != nil {
			return true, err
		}
		dbg.printLine("frame %d", dbg.m.Frame())

	case 'r':
		dbg.printLine(dbg.m.CPU.String())
		dbg.printLine("interrupts enabled=%v halted=%v", dbg.m.CPU.InterruptsEnabled, dbg.m.CPU.Halted)
		dbg.printLine(dbg.m.Ports.String())
		dbg.printLine("frame=%d cycles=%d watchdog=%d", dbg.m.Frame(), dbg.m.FrameCycles(), dbg.m.Watchdog())

	case 'd':
		pc := dbg.m.CPU.PC.Address()
		end := pc + disasmBytes
		if end < pc {
			end = 0xffff
		}
		entries, err := disassembly.Disassemble(dbg.m.Mem, pc, end)
		if err != nil {
			return true, err
		}
		if err := disassembly.Write(dbg.output, entries); err != nil {
			return true, err
		}

	case '1', '2':
		vector := uint8(key - '0')
		accepted, err := dbg.m.CPU.Interrupt(vector)
		if err != nil {
			return true, err
		}
		if accepted {
			dbg.printLine("RST %d accepted", vector)
		} else {
			dbg.printLine("RST %d ignored. interrupts are disabled", vector)
		}

	case 'v':
		if err := dbg.memviz(); err != nil {
			return true, err
		}
		dbg.printLine("cpu state written to %s", dbg.MemvizFile)

	default:
		dbg.printLine("unknown command (%c). press h for help", key)
	}

	return true, nil
}

func (dbg *Debugger) help() {
	dbg.printLine("s  step instruction")
	dbg.printLine("f  run to end of frame")
	dbg.printLine("r  registers")
	dbg.printLine("d  disassemble from PC")
	dbg.printLine("1  raise RST 1")
	dbg.printLine("2  raise RST 2")
	dbg.printLine("v  write cpu state graph to %s", dbg.MemvizFile)
	dbg.printLine("q  quit")
}

// cpuState is the information passed to memviz. the memory and port devices
// attached to the CPU are not included because they make the graph
// unreadable
type cpuState struct {
	PC         registers.ProgramCounter
	SP         registers.StackPointer
	A          registers.Register
	B          registers.Register
	C          registers.Register
	D          registers.Register
	E          registers.Register
	H          registers.Register
	L          registers.Register
	Flags      registers.Flags
	Interrupts bool
	Halted     bool
	Cycles     uint64
	LastResult *execution.Result
}

func (dbg *Debugger) memviz() (rerr error) {
	mc := dbg.m.CPU.Snapshot()
	state := &cpuState{
		PC:         mc.PC,
		SP:         mc.SP,
		A:          mc.A,
		B:          mc.B,
		C:          mc.C,
		D:          mc.D,
		E:          mc.E,
		H:          mc.H,
		L:          mc.L,
		Flags:      mc.Flags,
		Interrupts: mc.InterruptsEnabled,
		Halted:     mc.Halted,
		Cycles:     mc.Cycles,
		LastResult: &mc.LastResult,
	}

	f, err := os.Create(dbg.MemvizFile)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("debugger: %w", err)
		}
	}()

	// memviz.Map() does not report write errors. they are seen when the
	// buffer is flushed
	w := bufio.NewWriter(f)
	memviz.Map(w, state)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	return nil
}
