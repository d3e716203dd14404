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

// Package digest creates fingerprints of the emulation output. A fingerprint
// is chained from one frame to the next so that two runs of the same program
// with the same input produce the same hash only if every frame was the same.
//
// Digests are useful for regression testing. A Video digest hashes the video
// RAM at the end of every frame and an Audio digest hashes the sound effects
// triggered during each frame.
package digest

// Digest implementations return a cryptographic hash of the output so far.
type Digest interface {
	Hash() string
	ResetDigest()
}
