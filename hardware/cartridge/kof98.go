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

// KOF98 patches four bytes of the fixed program ROM in and out of a
// protection overlay. 0x0090 written to 0x20aaaa applies the overlay;
// 0x00f0 restores the original "NEO-" header bytes.
type KOF98 struct {
	base

	cartReg uint16
}

// NewKOF98 creates a KOF98 board controller over prom.
func NewKOF98(prom []uint8) *KOF98 {
	return &KOF98{base: newBase(prom)}
}

func (c *KOF98) WriteBanksw16(addr uint32, data uint16) {
	switch {
	case addr == 0x20aaaa:
		c.cartReg = data
		switch c.cartReg {
		case 0x0090:
			c.prom[0x100], c.prom[0x101], c.prom[0x102], c.prom[0x103] = 0x00, 0xc2, 0x00, 0xfd
		case 0x00f0:
			c.prom[0x100], c.prom[0x101], c.prom[0x102], c.prom[0x103] = 0x4e, 0x45, 0x4f, 0x2d
		}
	case addr == 0x205554:
		// unknown protection or debug-related write; always writes 0x0055
	case addr >= 0x2ffff0:
		c.bankswAddr = (uint32(data)*0x100000 + 0x100000) & 0xffffff
	}
}

func (c *KOF98) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.Push16(c.cartReg)
}

func (c *KOF98) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	c.cartReg = r.Pop16()
}
