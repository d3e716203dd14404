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

// Package romloader is used to specify the program data that is to be loaded
// into the ROM of the emulated machine.
//
// The data can be a single file containing the entire ROM or a directory
// containing the four separate ROM files of the MAME Space Invaders set:
// invaders.h, invaders.g, invaders.f and invaders.e. In the case of the MAME
// set, the four files are concatenated in that order.
//
// Data can also be loaded over HTTP if the filename is a URL.
//
// The simplest way of loading data:
//
//	ld, err := romloader.Load("roms/invaders")
//
// After loading, the Hash field will contain the SHA1 hash of the data.
package romloader
