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

// cthd2003BankOffsets is the 8-entry bank LUT selected by the bottom 3
// bits of a write to 0x2ffff0.
var cthd2003BankOffsets = [8]uint32{
	0x200000, 0x100000, 0x200000, 0x100000,
	0x200000, 0x100000, 0x400000, 0x300000,
}

// CTHD2003 (Crouching Tiger Hidden Dragon 2003, original and Super Plus)
// selects its switchable bank from a small fixed LUT.
type CTHD2003 struct {
	base
}

// NewCTHD2003 creates a CTHD2003 board controller over prom.
func NewCTHD2003(prom []uint8) *CTHD2003 {
	return &CTHD2003{base: newBase(prom)}
}

func (c *CTHD2003) WriteBanksw16(addr uint32, data uint16) {
	if addr == 0x2ffff0 {
		c.bankswAddr = cthd2003BankOffsets[data&0x07]
	}
}

func (c *CTHD2003) SaveState(w *serial.Writer) {
	c.saveState(w)
}

func (c *CTHD2003) RestoreState(r *serial.Reader) {
	c.restoreState(r)
}
