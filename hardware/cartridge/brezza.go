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

package cartridge

import "github.com/jetsetilly/neogeo/hardware/serial"

const brezzaCartRAMSize = 0x2000

// VLinerInput is consulted by BrezzaSoft boards at 0x280000 for the
// V-Liner-specific system input port. Most BrezzaSoft titles (Jockey
// Grand Prix) never read this address; it exists for V-Liner cabinets.
type VLinerInput interface {
	ReadVLiner() uint8
}

// BrezzaSoft gambling boards carry 8 KiB of battery-backed RAM mapped to
// 0x200000-0x201fff; reads elsewhere in the switchable bank must return
// all 1s (and writes elsewhere must be ignored), or the title boots
// straight to the betting screen instead of showing its title/demo. The
// exceptions are 16-bit reads of 0x280000 (the V-Liner system port) and
// 0x2c0000 (which returns 0xffc0).
type BrezzaSoft struct {
	base

	cartRAM [brezzaCartRAMSize]uint8
	vliner  VLinerInput
}

// NewBrezzaSoft creates a BrezzaSoft board controller over prom. vliner
// may be nil for titles that never read the V-Liner system port.
func NewBrezzaSoft(prom []uint8, vliner VLinerInput) *BrezzaSoft {
	return &BrezzaSoft{base: newBase(prom), vliner: vliner}
}

func (c *BrezzaSoft) ReadBanksw8(addr uint32) uint8 {
	if addr <= 0x201fff {
		return c.cartRAM[addr&0x1fff]
	}
	return 0xff
}

func (c *BrezzaSoft) ReadBanksw16(addr uint32) uint16 {
	if addr <= 0x201fff {
		i := addr & 0x1fff
		return uint16(c.cartRAM[i])<<8 | uint16(c.cartRAM[i+1])
	}
	if addr == 0x280000 {
		if c.vliner != nil {
			return uint16(c.vliner.ReadVLiner())
		}
		return 0
	}
	if addr == 0x2c0000 {
		return 0xffc0
	}
	return 0xffff
}

func (c *BrezzaSoft) WriteBanksw8(addr uint32, data uint8) {
	if addr <= 0x201fff {
		c.cartRAM[addr&0x1fff] = data
	}
}

func (c *BrezzaSoft) WriteBanksw16(addr uint32, data uint16) {
	if addr <= 0x201fff {
		i := addr & 0x1fff
		c.cartRAM[i] = uint8(data >> 8)
		c.cartRAM[i+1] = uint8(data)
	}
}

func (c *BrezzaSoft) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.PushBlock(c.cartRAM[:])
}

func (c *BrezzaSoft) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	r.PopBlock(c.cartRAM[:])
}
