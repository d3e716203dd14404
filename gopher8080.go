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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger"
	"github.com/jetsetilly/gopher8080/debugger/easyterm"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/digest"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/macro"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/wavwriter"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch is the body of main(). it returns the value that should be used as
// the process exit code.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "DEBUG":
		err = debug(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to every mode that creates a machine.
type machineFlags struct {
	watchdog     *bool
	ships        *int
	bonus1500    *bool
	hideCoinInfo *bool
	log          *bool
}

func addMachineFlags(md *modalflag.Modes, watchdog bool) machineFlags {
	return machineFlags{
		watchdog:     md.AddBool("watchdog", watchdog, "reset machine on write to the watchdog port"),
		ships:        md.AddInt("ships", 3, "DIP switch: number of ships (3 to 6)"),
		bonus1500:    md.AddBool("bonus1500", false, "DIP switch: extra ship at 1500 points"),
		hideCoinInfo: md.AddBool("hidecoininfo", false, "DIP switch: hide coin information in demo"),
		log:          md.AddBool("log", false, "echo log to output"),
	}
}

func (f machineFlags) preferences() hardware.Preferences {
	prefs := hardware.NewPreferences()
	prefs.ResetOnWatchdog = *f.watchdog
	prefs.DIP.Ships = *f.ships
	prefs.DIP.BonusAt1500 = *f.bonus1500
	prefs.DIP.HideCoinInfo = *f.hideCoinInfo
	return prefs
}

// the emulation as seen by the macro package.
type emulation struct {
	*hardware.Machine
	quit bool
}

// Quit implements the macro.Emulation interface.
func (emu *emulation) Quit() {
	emu.quit = true
}

// newEmulation creates a machine from the flags and loads the ROM named by
// the first remaining argument.
func newEmulation(md *modalflag.Modes, f machineFlags, output io.Writer) (*emulation, romloader.Loader, error) {
	if *f.log {
		logger.SetEcho(output)
	}

	var ld romloader.Loader

	rom, err := md.SingleArg("ROM")
	if err != nil {
		return nil, ld, err
	}

	ld, err = romloader.Load(rom)
	if err != nil {
		return nil, ld, err
	}

	m, err := hardware.NewMachine(f.preferences())
	if err != nil {
		return nil, ld, err
	}

	err = m.LoadROM(ld.Data, ld.Origin)
	if err != nil {
		return nil, ld, err
	}

	md.Visit(func(flag string) {
		logger.Logf(logger.Allow, "gopher8080", "%s flag: %s", md, flag)
	})
	logger.Logf(logger.Allow, "gopher8080", "loaded %s", ld)

	return &emulation{Machine: m}, ld, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md, false)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	fps := md.AddInt("fps", clocks.FrameRate, "frames per second limit. zero is unlimited")
	macroFile := md.AddString("macro", "", "macro script to run")
	sounds := md.AddString("sounds", "", "directory of sound effect samples")
	wav := md.AddString("wav", "", "mix sound effects into wav file")
	dig := md.AddBool("digest", false, "print video and audio digests when emulation ends")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, ld, err := newEmulation(md, mf, output)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	var players sound.Players

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav)
		if err != nil {
			return err
		}
		players = append(players, aw)
		emu.AddFrameTrigger(aw)
	}

	var videoDigest *digest.Video
	var audioDigest *digest.Audio
	if *dig {
		videoDigest = digest.NewVideo(emu.Mem)
		audioDigest = digest.NewAudio()
		players = append(players, audioDigest)
		emu.AddFrameTrigger(videoDigest)
		emu.AddFrameTrigger(audioDigest)
	}

	if len(players) > 0 {
		emu.SetSoundPlayer(players)
	}

	if *sounds != "" {
		n, err := emu.Sound.LoadSamples(*sounds)
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gopher8080", "loaded %d sound samples", n)
	}

	if *macroFile != "" {
		_, err := macro.NewMacro(*macroFile, emu, emu.Ports, emu.Mem)
		if err != nil {
			return err
		}
	}

	var lim *limiter.FpsLimiter
	if *fps > 0 {
		lim, err = limiter.NewFPSLimiter(*fps)
		if err != nil {
			return err
		}
		defer lim.Close()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	continueCheck := func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		if emu.quit {
			return govern.Ending, nil
		}
		if lim != nil {
			lim.Wait()
		}
		return govern.Running, nil
	}

	if *frames > 0 {
		err = emu.RunForFrameCount(*frames, func(_ int) (govern.State, error) {
			return continueCheck()
		})
	} else {
		err = emu.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	if aw != nil {
		err = aw.EndMixing()
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "%s: %d frames\n", ld.ShortName(), emu.Frame())
	if *dig {
		fmt.Fprintf(output, "video: %s\naudio: %s\n", videoDigest.Hash(), audioDigest.Hash())
	}

	return nil
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md, false)
	memviz := md.AddString("memviz", debugger.DefaultMemvizFile, "file to write cpu state graph to")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	emu, _, err := newEmulation(md, mf, output)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(emu.Machine, output)
	dbg.MemvizFile = *memviz

	term := &easyterm.Terminal{}
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		// stdin is probably not a terminal. commands are still read from it
		// but will require a newline before they are seen
		logger.Logf(logger.Allow, "gopher8080", "terminal: %v", err)
		return dbg.Loop(os.Stdin)
	}
	defer term.CleanUp()

	geom := term.GetGeometry()
	logger.Logf(logger.Allow, "gopher8080", "terminal is %dx%d", geom.Cols, geom.Rows)

	term.CBreakMode()
	return dbg.Loop(term)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	start := md.AddInt("start", -1, "first address. defaults to the ROM origin")
	end := md.AddInt("end", -1, "last address. defaults to the end of the ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rom, err := md.SingleArg("ROM")
	if err != nil {
		return err
	}

	ld, err := romloader.Load(rom)
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.LoadImage(ld.Data, ld.Origin)
	if err != nil {
		return err
	}

	s := *start
	if s < 0 {
		s = int(ld.Origin)
	}
	e := *end
	if e < 0 {
		e = int(ld.Origin) + len(ld.Data) - 1
	}
	if s > 0xffff || e > 0xffff {
		return curated.Errorf("address out of range")
	}

	entries, err := disassembly.Disassemble(mem, uint16(s), uint16(e))
	if err != nil {
		return err
	}

	return disassembly.Write(output, entries)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md, false)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "none", "create profile: cpu, mem (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *mf.log {
		logger.SetEcho(output)
	}

	rom, err := md.SingleArg("ROM")
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prof, romloader.NewLoader(rom), mf.preferences(), *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(output, rev)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}
