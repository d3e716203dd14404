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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "DEBUG")
//	_, _ = md.Parse()
//
// Parse() will process flags in the normal way and then check to see if the
// first argument after the flags is one of the modes. If it is not then the
// first mode in the list is the selected mode. Mode comparisons are case
// insensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		p, err := md.Parse()
//		...
//	}
//
// The second call to Parse() will check for the flags of the selected mode.
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions. SingleArg() is a convenience for modes that take exactly one
// argument, a ROM for example.
//
// The flag "-help" is handled automatically and prints the flags and modes
// available at that point in the parsing process.
package modalflag
