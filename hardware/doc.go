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

// Package hardware is the base package for the Space Invaders emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// stepped one instruction at a time with Step() or run a frame at a time with
// RunFrame(). Run() and RunForFrameCount() are convenience functions built on
// top of RunFrame().
//
// A frame is 33333 clock cycles, being the 2MHz clock of the CPU divided by
// the 60Hz refresh rate of the monitor. Halfway through the frame the video
// hardware raises an interrupt with RST 1 and at the end of the frame with
// RST 2. The game uses these two interrupts to update the half of the screen
// that is not being drawn.
//
// Cycles that overrun the end of a frame are carried into the next frame.
package hardware
