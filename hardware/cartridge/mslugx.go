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

// mslugxChallengeAddr is the fixed offset into P ROM the MSlugX
// challenge/response protection bit-tests against.
const mslugxChallengeAddr = 0xdedd2

// MSlugX is a challenge/response protection scheme with no public
// documentation beyond its reimplementation in every emulator that
// supports this board. cartReg[0] selects the "command"; cartReg[1] is a
// free-running bit counter.
type MSlugX struct {
	base

	cartReg [2]uint16

	// ram is the 64 KiB main RAM mirror the "select a response bit from
	// the value last written to main RAM" command reads from.
	ram []uint8
}

// NewMSlugX creates a MSlugX board controller over prom. ram is the
// system's main RAM, shared so the default-case response can read the
// host-written selector value at 0xf00a.
func NewMSlugX(prom []uint8, ram []uint8) *MSlugX {
	return &MSlugX{base: newBase(prom), ram: ram}
}

func (c *MSlugX) ReadBanksw16(addr uint32) uint16 {
	if addr >= 0x2fffe0 && addr <= 0x2fffef {
		switch c.cartReg[0] {
		case 0x0001:
			ret := (c.prom[mslugxChallengeAddr+uint32((c.cartReg[1]>>3)&0xfff)] >> (^c.cartReg[1] & 0x07)) & 0x0001
			c.cartReg[1]++
			return uint16(ret)
		case 0x0fff:
			select_ := int32(uint16(c.ram[0xf00a])<<8|uint16(c.ram[0xf00b])) - 1
			return uint16((c.prom[mslugxChallengeAddr+((select_>>3)&0x0fff)] >> (^uint8(select_) & 0x07)) & 0x0001)
		}
	}
	return c.base.ReadBanksw16(addr)
}

func (c *MSlugX) WriteBanksw16(addr uint32, data uint16) {
	switch {
	case addr >= 0x2fffe0 && addr <= 0x2fffef:
		switch addr {
		case 0x2fffe0:
			c.cartReg[0] = 0
		case 0x2fffe2, 0x2fffe4:
			c.cartReg[0] |= data
		case 0x2fffe6:
		case 0x2fffea:
			c.cartReg[0] = 0
			c.cartReg[1] = 0
		}
	case addr >= 0x2ffff0:
		c.bankswAddr = (uint32(data)*0x100000 + 0x100000) & 0xffffff
	}
}

func (c *MSlugX) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.Push16(c.cartReg[0])
	w.Push16(c.cartReg[1])
}

func (c *MSlugX) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	c.cartReg[0] = r.Pop16()
	c.cartReg[1] = r.Pop16()
}
