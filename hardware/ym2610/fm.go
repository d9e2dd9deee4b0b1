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

// FM status bits, as read back through port offset 0 (and checked by
// Engine.checkInterrupts after every register touch).
const (
	StatusTimerA uint8 = 1 << 0
	StatusTimerB uint8 = 1 << 1
)

// FM is the black-box four-operator FM synthesis core (register file,
// envelope generators, operator network) shared by the OPN family. Its
// internal arithmetic is out of scope; Engine only ever writes registers
// to it, reads back its two-bit timer status, clocks it once per output
// sample, and asks it for the stereo sample pair it produced.
//
// A concrete implementation is expected to call back into the Host
// (Engine) it is constructed with via SetTimer/SetBusyEnd whenever a
// register write arms a timer or begins a busy window, mirroring
// ymfm_sync_mode_write's pass-through into the shim.
type FM interface {
	// Write handles a register write already known to fall in the FM
	// address space: 0x00-0x1b are unused register numbers owned by
	// ADPCM-B and resolved by Engine before reaching here, and Engine
	// handles the flag-control register 0x1c itself, so in practice this
	// only ever sees 0x1d-0xff (low bank) and 0x130-0x1ff
	// (high bank, with bit 8 of addr still set).
	Write(addr uint16, data uint8)

	// Status returns the live timer-A/timer-B flag bits.
	Status() uint8

	// TimerExpired is called by Engine when timer n (0 or 1) counts down
	// to zero, so the FM core can set the corresponding status bit and
	// latch an auto-reset if its mode register requests one.
	TimerExpired(n int)

	// Clock advances the FM core by one output sample and returns the
	// stereo pair it produced for that sample.
	Clock() (left, right int32)

	Reset()

	SaveState(w *serial.Writer)
	RestoreState(r *serial.Reader)
}
