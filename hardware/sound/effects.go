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

// Effect is a single sound effect.
type Effect int

// List of sound effects. The order matches the bits in the sound ports. UFO
// to InvaderDie are bits 0 to 3 of port 3. Fleet1 to UFOHit are bits 0 to 4
// of port 5.
const (
	UFO Effect = iota
	Shot
	PlayerDie
	InvaderDie
	Fleet1
	Fleet2
	Fleet3
	Fleet4
	UFOHit

	NumEffects
)

// number of effects triggered by each sound port
const (
	numPort3Effects = 4
	numPort5Effects = 5
)

func (e Effect) String() string {
	switch e {
	case UFO:
		return "ufo"
	case Shot:
		return "shot"
	case PlayerDie:
		return "player die"
	case InvaderDie:
		return "invader die"
	case Fleet1:
		return "fleet 1"
	case Fleet2:
		return "fleet 2"
	case Fleet3:
		return "fleet 3"
	case Fleet4:
		return "fleet 4"
	case UFOHit:
		return "ufo hit"
	}
	return "unknown effect"
}

// Filename returns the name of the sample file for the effect without the
// file extension.
func (e Effect) Filename() string {
	switch e {
	case UFO:
		return "ufo"
	case Shot:
		return "shot"
	case PlayerDie:
		return "player_die"
	case InvaderDie:
		return "invader_die"
	case Fleet1:
		return "fleet1"
	case Fleet2:
		return "fleet2"
	case Fleet3:
		return "fleet3"
	case Fleet4:
		return "fleet4"
	case UFOHit:
		return "ufo_hit"
	}
	return ""
}
