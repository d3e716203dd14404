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

// Package clocks defines the constant values that define the speed of the
// Space Invaders board.
//
// The 8080 is driven at 2MHz and the monitor refreshes at 60Hz. The number of
// CPU cycles in a single frame is therefore not a whole number and is
// truncated. The mid-frame interrupt happens halfway through the frame,
// rounded up.
package clocks

const (
	// CPU clock in MHz
	CPU = 2.0

	// refresh rate of the monitor in Hz
	FrameRate = 60
)

const (
	CyclesPerSecond = int(CPU * 1000000)
	CyclesPerFrame  = CyclesPerSecond / FrameRate
	MidFrameCycles  = (CyclesPerFrame + 1) / 2
)
