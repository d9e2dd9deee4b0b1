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

// Linkable boards could be daisy-chained by a stereo jack cable for
// special multiplayer modes. Reading 0x200000 toggles bit 3 of a cart
// register, faking a link acknowledgement so single-cartridge AES runs
// don't hang waiting for a partner that will never answer.
type Linkable struct {
	base

	cartReg uint8
}

// NewLinkable creates a Linkable board controller over prom.
func NewLinkable(prom []uint8) *Linkable {
	return &Linkable{base: newBase(prom)}
}

func (c *Linkable) ReadBanksw8(addr uint32) uint8 {
	switch addr {
	case 0x200000:
		c.cartReg ^= 0x08
		return c.cartReg
	case 0x200001:
		return 0
	}
	return c.base.ReadBanksw8(addr)
}

func (c *Linkable) WriteBanksw8(addr uint32, data uint8) {
	switch {
	case addr >= 0x2ffff0:
		c.bankswAddr = (uint32(data)*0x100000 + 0x100000) & 0xffffff
	case addr == 0x200001:
		// more research is required
	}
}

func (c *Linkable) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.Push8(c.cartReg)
}

func (c *Linkable) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	c.cartReg = r.Pop8()
}
