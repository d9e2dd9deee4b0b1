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

// PROCT0 (SNK-9201 / ALPHA-8921) is a challenge/response anti-piracy chip
// used by Fatal Fury 2 and Super Sidekicks. Responses are hardcoded
// rather than derived from a lower-level model of the chip, matching
// every known emulator of this board.
type PROCT0 struct {
	base

	protreg uint32
}

// NewPROCT0 creates a PROCT0 board controller over prom.
func NewPROCT0(prom []uint8) *PROCT0 {
	return &PROCT0{base: newBase(prom)}
}

func (c *PROCT0) ReadBanksw8(addr uint32) uint8 {
	ret := uint8(c.protreg >> 24)

	switch addr {
	case 0x200001, 0x236001, 0x236009, 0x255551, 0x2ff001, 0x2ffff1:
		return ret
	case 0x236005, 0x23600d:
		return (ret&0x0f)<<4 | (ret&0xf0)>>4
	}
	return c.base.ReadBanksw8(addr)
}

func (c *PROCT0) ReadBanksw16(addr uint32) uint16 {
	ret := uint16(uint8(c.protreg >> 24))

	switch addr {
	case 0x200000, 0x236000, 0x236008, 0x255550, 0x2ff000, 0x2ffff0:
		return ret
	case 0x236004, 0x23600c:
		return (ret&0x0f)<<4 | (ret&0xf0)>>4
	}
	return c.base.ReadBanksw16(addr)
}

func (c *PROCT0) WriteBanksw8(addr uint32, data uint8) {
	switch addr {
	case 0x236001, 0x236005, 0x236009, 0x23600d, 0x255551, 0x2ff001, 0x2ffff1:
		c.protreg <<= 8
		return
	}
	if addr >= 0x2ffff0 {
		c.bankswAddr = (uint32(data)*0x100000 + 0x100000) & 0xffffff
	}
}

func (c *PROCT0) WriteBanksw16(addr uint32, data uint16) {
	switch addr {
	case 0x211112:
		c.protreg = 0xff000000
		return
	case 0x233332:
		c.protreg = 0x0000ffff
		return
	case 0x242812:
		c.protreg = 0x81422418
		return
	case 0x244442:
		c.protreg = 0x00ff0000
		return
	case 0x255552:
		c.protreg = 0xff00ff00
		return
	case 0x256782:
		c.protreg = 0xf05a3601
		return
	}
	if addr >= 0x2ffff0 {
		c.bankswAddr = (uint32(data)*0x100000 + 0x100000) & 0xffffff
	}
}

func (c *PROCT0) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.Push32(c.protreg)
}

func (c *PROCT0) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	c.protreg = r.Pop32()
}
