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
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/jetsetilly/gopher8080/hardware/sound"
)

// Audio digest of the sound effects triggered by the program. Implements the
// sound.Player and hardware.FrameTrigger interfaces.
//
// The content of the samples does not contribute to the hash. Only the
// effect and the frame in which it was triggered.
type Audio struct {
	digest [sha1.Size]byte
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]uint8, sha1.Size, sha1.Size+int(sound.NumEffects)),
	}
}

func (dig *Audio) String() string {
	return fmt.Sprintf("audio digest: %s", dig.Hash())
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.buffer = dig.buffer[:sha1.Size]
}

// Play implements the sound.Player interface.
func (dig *Audio) Play(effect sound.Effect, _ *audio.Float32Buffer) {
	dig.buffer = append(dig.buffer, uint8(effect))
}

// NewFrame implements the hardware.FrameTrigger interface. The digest only
// changes for frames in which an effect was triggered.
func (dig *Audio) NewFrame(frame int) error {
	if len(dig.buffer) == sha1.Size {
		return nil
	}

	copy(dig.buffer, dig.digest[:])
	dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, uint32(frame))
	dig.digest = sha1.Sum(dig.buffer)
	dig.buffer = dig.buffer[:sha1.Size]

	return nil
}
