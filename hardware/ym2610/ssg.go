// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package ym2610

import "github.com/jetsetilly/neogeo/hardware/serial"

// SSG is the black-box AY-3-8910-compatible three-square-wave-plus-noise
// core addressed through YM2610 register numbers 0x00-0x0d. Its own
// frequency/noise/envelope generators are out of scope; Engine only
// routes the low 14 register numbers to it and asks it for one resampled
// mono sample per output tick.
type SSG interface {
	Read(reg uint8) uint8
	Write(reg uint8, data uint8)

	// Clock advances the three tone generators, the noise generator and
	// the envelope generator by one SSG-rate step and returns the
	// resampled mono contribution for the current output sample (the
	// "output[2]" term of ym2610_generate).
	Clock() int32

	Reset()

	SaveState(w *serial.Writer)
	RestoreState(r *serial.Reader)
}
