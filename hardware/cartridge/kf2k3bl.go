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

// KF2K3BL (King of Fighters 2003 bootleg set 1 / 2004 Ultra Plus) is an
// otherwise typical NEO-PVC board with one addition: an 8-bit read in
// the fixed program ROM area at 0x058197 is redirected into PVC cart
// RAM.
type KF2K3BL struct {
	PVC
}

// NewKF2K3BL creates a KF2K3BL board controller over prom.
func NewKF2K3BL(prom []uint8) *KF2K3BL {
	return &KF2K3BL{PVC: *NewPVC(prom)}
}

func (c *KF2K3BL) ReadFixed8(addr uint32) uint8 {
	if addr == 0x058197 {
		return c.cartRAM[0x1ff2]
	}
	return c.base.ReadFixed8(addr)
}

// KF2K3BLA (King of Fighters 2003 bootleg set 2) shares every PVC
// behaviour except how the bank-swap address is assembled: the low byte
// comes from cart RAM 0x1ff0 instead of 0x1ff1, and 0x1ff1 is never
// masked.
type KF2K3BLA struct {
	PVC
}

// NewKF2K3BLA creates a KF2K3BLA board controller over prom.
func NewKF2K3BLA(prom []uint8) *KF2K3BLA {
	return &KF2K3BLA{PVC: *NewPVC(prom)}
}

func (c *KF2K3BLA) bankswap() {
	bankAddr := uint32(c.cartRAM[0x1ff3])<<16 | uint32(c.cartRAM[0x1ff2])<<8 | uint32(c.cartRAM[0x1ff0])

	c.cartRAM[0x1ff0] &= 0xfe
	c.cartRAM[0x1ff3] &= 0x7f

	c.bankswAddr = (bankAddr + 0x100000) & 0xffffff
}

func (c *KF2K3BLA) applyProtection(addr uint32) {
	switch {
	case addr >= 0x2fffe0 && addr <= 0x2fffe3:
		pvcUnpack(c.cartRAM[:])
	case addr >= 0x2fffe8 && addr <= 0x2fffeb:
		pvcPack(c.cartRAM[:])
	case addr >= 0x2ffff0 && addr <= 0x2ffff3:
		c.bankswap()
	}
}

func (c *KF2K3BLA) WriteBanksw8(addr uint32, data uint8) {
	if addr >= 0x2fe000 {
		c.cartRAM[(addr&0x1fff)^1] = data
	}
	c.applyProtection(addr)
}

func (c *KF2K3BLA) WriteBanksw16(addr uint32, data uint16) {
	if addr >= 0x2fe000 {
		i := addr & 0x1fff
		c.cartRAM[i] = uint8(data)
		c.cartRAM[i+1] = uint8(data >> 8)
	}
	c.applyProtection(addr)
}

func (c *KF2K3BLA) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.PushBlock(c.cartRAM[:])
}

func (c *KF2K3BLA) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	r.PopBlock(c.cartRAM[:])
}
