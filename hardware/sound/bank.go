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

package sound

import (
	"github.com/go-audio/audio"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// Player implementations play the sample for an effect. The sample will be
// nil if no sample has been loaded for the effect. Sample values are in the
// range -1.0 to 1.0.
type Player interface {
	Play(effect Effect, sample *audio.Float32Buffer)
}

// Players forwards every effect to each Player in the list.
type Players []Player

// Play implements the Player interface.
func (p Players) Play(effect Effect, sample *audio.Float32Buffer) {
	for _, pl := range p {
		pl.Play(effect, sample)
	}
}

// Bank of sound effect samples. Implements the ports.SoundEffects interface.
type Bank struct {
	player  Player
	samples [NumEffects]*audio.Float32Buffer

	// the most recent values written to port 3 and port 5
	port3 uint8
	port5 uint8

	// the number of times each effect has been triggered
	triggered [NumEffects]int
}

// NewBank is the preferred method of initialisation for the Bank type. The
// player can be nil in which case triggered effects are logged.
func NewBank(player Player) *Bank {
	return &Bank{
		player: player,
	}
}

// Reset forgets the most recent port values. Samples and trigger counts are
// not affected.
func (b *Bank) Reset() {
	b.port3 = 0
	b.port5 = 0
}

// SoundEffect implements the ports.SoundEffects interface.
func (b *Bank) SoundEffect(port uint8, data uint8) {
	var rising uint8
	var first Effect
	var num int

	switch port {
	case ports.OutSound1:
		rising = data &^ b.port3
		b.port3 = data
		first = UFO
		num = numPort3Effects
	case ports.OutSound2:
		rising = data &^ b.port5
		b.port5 = data
		first = Fleet1
		num = numPort5Effects
	default:
		logger.Logf(logger.Allow, "sound", "port %d is not a sound port", port)
		return
	}

	for i := 0; i < num; i++ {
		if rising&(0x01<<i) != 0 {
			b.trigger(first + Effect(i))
		}
	}
}

func (b *Bank) trigger(e Effect) {
	b.triggered[e]++
	if b.player == nil {
		logger.Logf(logger.Allow, "sound", "%s", e)
		return
	}
	b.player.Play(e, b.samples[e])
}

// Triggered returns the number of times the effect has been triggered.
func (b *Bank) Triggered(e Effect) int {
	if e < 0 || e >= NumEffects {
		return 0
	}
	return b.triggered[e]
}

// Sample returns the sample loaded for the effect. Returns nil if no sample
// has been loaded.
func (b *Bank) Sample(e Effect) *audio.Float32Buffer {
	if e < 0 || e >= NumEffects {
		return nil
	}
	return b.samples[e]
}
