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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
)

// VideoSource is the part of the machine memory read by the Video digest.
type VideoSource interface {
	VideoRAM() []uint8
}

// Video digest of the video RAM. Implements the hardware.FrameTrigger
// interface.
type Video struct {
	mem      VideoSource
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem VideoSource) *Video {
	dig := &Video{mem: mem}

	// room for the previous digest at the head of the buffer
	dig.pixels = make([]byte, len(dig.digest)+len(mem.VideoRAM()))

	return dig
}

func (dig *Video) String() string {
	return fmt.Sprintf("video digest: %s (frame %d)", dig.Hash(), dig.frameNum)
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// NewFrame implements the hardware.FrameTrigger interface.
func (dig *Video) NewFrame(frame int) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: %v", "error during new frame")
	}

	vram := dig.mem.VideoRAM()
	if len(vram) != len(dig.pixels)-n {
		return curated.Errorf("digest: %v", "video RAM has changed size")
	}
	copy(dig.pixels[n:], vram)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frame

	return nil
}
