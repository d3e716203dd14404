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

package macro

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// Emulation defines the parts of the emulation that the macro needs to
// control.
type Emulation interface {
	AddFrameTrigger(hardware.FrameTrigger)
	Quit()
}

// Input is the input system of the emulated machine.
type Input interface {
	Press(ports.Button) error
	Release(ports.Button) error
}

// Memory is the memory of the emulated machine.
type Memory interface {
	Poke(address uint16, data uint8)
}

// the number of frames a controller instruction waits before moving onto the
// next instruction
const controllerWait = 2

// the number of frames a WAIT instruction with no argument waits for
const defaultWait = 60

const headerID = "gopher8080macro"

// the number of lines in the header
const headerNumLines = 1

type instruction struct {
	// line number in the script file
	line int
	toks []string
}

type loop struct {
	// index of the DO instruction
	start int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Macro is a type that allows control of an emulation from a series of instructions
type Macro struct {
	emulation Emulation
	input     Input
	mem       Memory

	filename     string
	instructions []instruction

	// index of the next instruction to execute
	pc int

	// number of frames to wait before executing the next instruction
	wait int

	// buttons to release when the current wait has finished
	release []ports.Button

	loops     []loop
	variables map[string]int

	ended bool
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// macro is added to the emulation's list of frame triggers.
func NewMacro(filename string, emulation Emulation, input Input, mem Memory) (*Macro, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	defer f.Close()

	mcr, err := newMacro(f, filename, emulation, input, mem)
	if err != nil {
		return nil, err
	}

	emulation.AddFrameTrigger(mcr)

	return mcr, nil
}

func newMacro(r io.Reader, filename string, emulation Emulation, input Input, mem Memory) (*Macro, error) {
	mcr := &Macro{
		emulation: emulation,
		input:     input,
		mem:       mem,
		filename:  filename,
		variables: make(map[string]int),
	}

	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}

	// convert file contents to an array of lines
	lines := strings.Split(string(buffer), "\n")
	if len(lines) < headerNumLines || strings.TrimSpace(lines[0]) != headerID {
		return nil, fmt.Errorf("macro: %s: not a macro file", filename)
	}

	for i, s := range lines[headerNumLines:] {
		toks := strings.Fields(s)
		if len(toks) == 0 || strings.HasPrefix(toks[0], "--") {
			continue // for loop
		}
		mcr.instructions = append(mcr.instructions, instruction{
			line: i + headerNumLines + 1,
			toks: toks,
		})
	}

	if err := mcr.validate(); err != nil {
		return nil, fmt.Errorf("macro: %s: %w", filename, err)
	}

	return mcr, nil
}

func (mcr *Macro) String() string {
	if mcr.ended {
		return fmt.Sprintf("%s: ended", mcr.filename)
	}
	return fmt.Sprintf("%s: instruction %d of %d", mcr.filename, mcr.pc, len(mcr.instructions))
}

// validate the instructions without executing them
func (mcr *Macro) validate() error {
	names := make(map[string]bool)
	var depth []string

	for _, ins := range mcr.instructions {
		toks := ins.toks
		bad := func(msg string) error {
			return fmt.Errorf("%d: %s", ins.line, msg)
		}

		switch toks[0] {
		default:
			return bad(fmt.Sprintf("unrecognised command: %s", toks[0]))

		case "DO":
			switch len(toks) {
			case 1:
				return bad("too few arguments for DO")
			case 2, 3:
				if _, err := strconv.Atoi(toks[1]); err != nil {
					return bad(err.Error())
				}
				var n string
				if len(toks) == 3 {
					n = toks[2]
					if names[n] {
						return bad(fmt.Sprintf("loop name '%s' is already in use", n))
					}
					names[n] = true
				}
				depth = append(depth, n)
			default:
				return bad("too many arguments for DO")
			}

		case "LOOP":
			if len(toks) > 1 {
				return bad("too many arguments for LOOP")
			}
			if len(depth) == 0 {
				return bad("LOOP without a DO")
			}
			delete(names, depth[len(depth)-1])
			depth = depth[:len(depth)-1]

		case "WAIT":
			switch len(toks) {
			case 1:
			case 2:
				w, err := strconv.Atoi(toks[1])
				if err != nil {
					return bad(err.Error())
				}
				if w < 0 {
					return bad("cannot WAIT for a negative number of frames")
				}
			default:
				return bad("too many arguments for WAIT")
			}

		case "POKE":
			if len(toks) != 3 {
				return bad("not enough arguments for POKE")
			}
			if _, err := convertAddress(toks[1]); err != nil {
				return bad(fmt.Sprintf("unrecognised address for POKE: %s", toks[1]))
			}
			if toks[2][0] == '%' {
				if !names[toks[2][1:]] {
					return bad(fmt.Sprintf("cannot use variable '%s' in POKE because it does not exist", toks[2][1:]))
				}
			} else if _, err := convertValue(toks[2]); err != nil {
				return bad(fmt.Sprintf("cannot use value for POKE: %s", toks[2]))
			}

		case "COIN", "START1", "START2", "FIRE", "NOFIRE", "LEFT", "RIGHT", "CENTRE", "CENTER", "QUIT":
			if len(toks) > 1 {
				return bad(fmt.Sprintf("too many arguments for %s", toks[0]))
			}
		}
	}

	if len(depth) > 0 {
		return fmt.Errorf("DO without a LOOP")
	}

	return nil
}

func convertAddress(s string) (uint16, error) {
	// convert hex indicator to one that ParseUint can deal with
	if s[0] == '$' {
		s = fmt.Sprintf("0x%s", s[1:])
	}

	a, err := strconv.ParseUint(s, 0, 16)
	return uint16(a), err
}

func convertValue(s string) (uint8, error) {
	// convert hex indicator to one that ParseUint can deal with
	if s[0] == '$' {
		s = fmt.Sprintf("0x%s", s[1:])
	}

	a, err := strconv.ParseUint(s, 0, 8)
	return uint8(a), err
}

// Quit forces a running macro to end. Buttons held by the macro are not
// released.
func (mcr *Macro) Quit() {
	mcr.ended = true
}

// Ended returns true if the macro has finished.
func (mcr *Macro) Ended() bool {
	return mcr.ended
}

// NewFrame implements the hardware.FrameTrigger interface.
func (mcr *Macro) NewFrame(frame int) error {
	if mcr.ended {
		return nil
	}

	if mcr.wait > 0 {
		mcr.wait--
		if mcr.wait > 0 {
			return nil
		}
	}

	for _, b := range mcr.release {
		if err := mcr.input.Release(b); err != nil {
			return fmt.Errorf("macro: %w", err)
		}
	}
	mcr.release = mcr.release[:0]

	return mcr.run(frame)
}

// run instructions until a wait is required or the end of the script
func (mcr *Macro) run(frame int) error {
	log := func(ln int, msg string) {
		logger.Logf(logger.Allow, "macro", "%s: %d: %s", mcr.filename, ln, msg)
	}

	// press is used by the controller instructions. the button is released
	// when the wait has ended if release is true
	press := func(b ports.Button, release bool) error {
		if err := mcr.input.Press(b); err != nil {
			return err
		}
		if release {
			mcr.release = append(mcr.release, b)
		}
		mcr.wait = controllerWait
		return nil
	}

	hold := func(on ports.Button, off ...ports.Button) error {
		for _, b := range off {
			if err := mcr.input.Release(b); err != nil {
				return err
			}
		}
		if on == "" {
			mcr.wait = controllerWait
			return nil
		}
		return press(on, false)
	}

	for mcr.wait == 0 {
		if mcr.pc >= len(mcr.instructions) {
			mcr.ended = true
			log(len(mcr.instructions), fmt.Sprintf("ended on frame %d", frame))
			return nil
		}

		ins := mcr.instructions[mcr.pc]
		toks := ins.toks
		mcr.pc++

		var err error

		switch toks[0] {
		case "DO":
			ct, _ := strconv.Atoi(toks[1])
			lp := loop{
				start:    mcr.pc,
				countEnd: ct,
			}
			if len(toks) == 3 {
				lp.countName = toks[2]
				mcr.variables[lp.countName] = lp.count
			}
			mcr.loops = append(mcr.loops, lp)

		case "LOOP":
			idx := len(mcr.loops) - 1
			lp := &mcr.loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				mcr.pc = lp.start

				// update named variable
				if lp.countName != "" {
					mcr.variables[lp.countName] = lp.count
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				delete(mcr.variables, lp.countName)
				mcr.loops = mcr.loops[:idx]
			}

		case "WAIT":
			mcr.wait = defaultWait
			if len(toks) == 2 {
				mcr.wait, _ = strconv.Atoi(toks[1])
			}

		case "QUIT":
			mcr.ended = true
			log(ins.line, fmt.Sprintf("quit on frame %d", frame))
			mcr.emulation.Quit()
			return nil

		case "COIN":
			err = press(ports.Coin, true)
		case "START1":
			err = press(ports.P1Start, true)
		case "START2":
			err = press(ports.P2Start, true)
		case "FIRE":
			err = press(ports.P1Fire, false)
		case "NOFIRE":
			err = hold("", ports.P1Fire)
		case "LEFT":
			err = hold(ports.P1Left, ports.P1Right)
		case "RIGHT":
			err = hold(ports.P1Right, ports.P1Left)
		case "CENTER", "CENTRE":
			err = hold("", ports.P1Left, ports.P1Right)

		case "POKE":
			addr, _ := convertAddress(toks[1])

			var val uint8
			if toks[2][0] == '%' {
				val = uint8(mcr.variables[toks[2][1:]])
			} else {
				val, _ = convertValue(toks[2])
			}

			// poke address with value
			mcr.mem.Poke(addr, val)
		}

		if err != nil {
			mcr.ended = true
			return fmt.Errorf("macro: %s: %d: %w", mcr.filename, ins.line, err)
		}
	}

	return nil
}
