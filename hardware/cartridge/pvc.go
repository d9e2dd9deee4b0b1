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

const pvcCartRAMSize = 0x2000

// pvcUnpack expands a 16-bit packed colour value (DrgbRRRR GGGGBBBB) at
// cartRAM[0x1fe0:0x1fe2] into four 8-bit components at 0x1fe2-0x1fe5.
func pvcUnpack(cartRAM []uint8) {
	d := cartRAM[0x1fe1] >> 7
	r := (cartRAM[0x1fe1]&0x40)>>6 | (cartRAM[0x1fe1]&0x0f)<<1
	g := (cartRAM[0x1fe1]&0x20)>>5 | (cartRAM[0x1fe0]&0xf0)>>3
	b := (cartRAM[0x1fe1]&0x10)>>4 | (cartRAM[0x1fe0]&0x0f)<<1

	cartRAM[0x1fe5] = d
	cartRAM[0x1fe4] = r
	cartRAM[0x1fe3] = g
	cartRAM[0x1fe2] = b
}

// pvcPack is the inverse of pvcUnpack: components at 0x1fe8-0x1feb are
// repacked into a 16-bit value at 0x1fec-0x1fed.
func pvcPack(cartRAM []uint8) {
	d := cartRAM[0x1feb] & 0x01
	r := cartRAM[0x1fea] & 0x1f
	g := cartRAM[0x1fe9] & 0x1f
	b := cartRAM[0x1fe8] & 0x1f

	cartRAM[0x1fec] = (b >> 1) | (g&0x1e)<<3
	cartRAM[0x1fed] = (r >> 1) | (b&0x01)<<4 | (g&0x01)<<5 | (r&0x01)<<6 | d<<7
}

// PVC is the NEO-PVC board: 8 KiB of battery-backed cart RAM exposing a
// palette pack/unpack protection scheme and a bank-swap sequence that
// assembles the new switchable-bank offset from three RAM bytes.
type PVC struct {
	base

	cartRAM [pvcCartRAMSize]uint8
}

// NewPVC creates a PVC board controller over prom.
func NewPVC(prom []uint8) *PVC {
	return &PVC{base: newBase(prom)}
}

func (c *PVC) bankswap() {
	bankAddr := uint32(c.cartRAM[0x1ff3])<<16 | uint32(c.cartRAM[0x1ff2])<<8 | uint32(c.cartRAM[0x1ff1])

	c.cartRAM[0x1ff0] = 0xa0
	c.cartRAM[0x1ff1] &= 0xfe
	c.cartRAM[0x1ff3] &= 0x7f

	c.bankswAddr = (bankAddr + 0x100000) & 0xffffff
}

func (c *PVC) applyProtection(addr uint32) {
	switch {
	case addr >= 0x2fffe0 && addr <= 0x2fffe3:
		pvcUnpack(c.cartRAM[:])
	case addr >= 0x2fffe8 && addr <= 0x2fffeb:
		pvcPack(c.cartRAM[:])
	case addr >= 0x2ffff0 && addr <= 0x2ffff3:
		c.bankswap()
	}
}

func (c *PVC) ReadBanksw8(addr uint32) uint8 {
	if addr >= 0x2fe000 {
		return c.cartRAM[(addr&0x1fff)^1]
	}
	return c.base.ReadBanksw8(addr)
}

func (c *PVC) ReadBanksw16(addr uint32) uint16 {
	if addr >= 0x2fe000 {
		i := addr & 0x1fff
		return uint16(c.cartRAM[i]) | uint16(c.cartRAM[i+1])<<8
	}
	return c.base.ReadBanksw16(addr)
}

func (c *PVC) WriteBanksw8(addr uint32, data uint8) {
	if addr >= 0x2fe000 {
		c.cartRAM[(addr&0x1fff)^1] = data
	}
	c.applyProtection(addr)
}

func (c *PVC) WriteBanksw16(addr uint32, data uint16) {
	if addr >= 0x2fe000 {
		i := addr & 0x1fff
		c.cartRAM[i] = uint8(data)
		c.cartRAM[i+1] = uint8(data >> 8)
	}
	c.applyProtection(addr)
}

func (c *PVC) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.PushBlock(c.cartRAM[:])
}

func (c *PVC) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	r.PopBlock(c.cartRAM[:])
}
