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

// Package sound bridges the sound ports of the Space Invaders board and an
// audio collaborator. The board has no sound synthesis of its own that the
// CPU controls. Instead, bits written to output ports 3 and 5 trigger discrete
// analogue circuits, each producing one effect.
//
// The Bank type implements the ports.SoundEffects interface. It detects which
// bits have changed from zero to one since the previous write and for each
// one passes the corresponding Effect, and the sample for that effect if one
// has been loaded, to the Player. A bit that is held high does not retrigger
// the effect.
//
// Samples are loaded from a directory with LoadSamples(). WAV and MP3 files
// are supported. The sample data is reduced to a single channel.
package sound
