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

// MS5Plus (Metal Slug 5 Plus bootleg) picks the new switchable-bank
// offset directly from a 16-bit write shifted into the top half of the
// address: no LUT, no scrambling.
type MS5Plus struct {
	base
}

// NewMS5Plus creates a MS5Plus board controller over prom.
func NewMS5Plus(prom []uint8) *MS5Plus {
	return &MS5Plus{base: newBase(prom)}
}

func (c *MS5Plus) WriteBanksw16(addr uint32, data uint16) {
	if addr == 0x2ffff4 {
		c.bankswAddr = uint32(data) << 16
	}
}

func (c *MS5Plus) SaveState(w *serial.Writer) {
	c.saveState(w)
}

func (c *MS5Plus) RestoreState(r *serial.Reader) {
	c.restoreState(r)
}
