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

const (
	kof10thCartRAMSize = 0x2000
	kof10thExtRAMSize  = 0x20000
	kof10thDynFixSize  = 0x20000
)

// KOF10th (King of Fighters 10th Anniversary bootleg) layers three
// complications on top of the default board: 128 KiB of extended RAM
// mapped at the top of the fixed bank, a toggle between two P ROM fixed
// banks (0 and 7), and a dynamic FIX layer that can be written instead
// of extended RAM depending on a cart-RAM flag.
//
// The "Altera protection chip" P ROM patch MAME documents (forcing USA
// region and SoftDIP, and redirecting S ROM data) is applied once, at
// construction, exactly as the reference hardware's boot-time fixup
// does.
type KOF10th struct {
	base

	cartRAM [kof10thCartRAMSize]uint8
	extRAM  [kof10thExtRAMSize]uint8
	dynFix  [kof10thDynFixSize]uint8

	protreg uint32
}

// NewKOF10th creates a KOF10th board controller over prom.
func NewKOF10th(prom []uint8) *KOF10th {
	c := &KOF10th{base: newBase(prom)}

	if len(prom) > 0x127 {
		prom[0x0124], prom[0x0125], prom[0x0126], prom[0x0127] = 0x00, 0x0d, 0xf7, 0xa8
	}
	if len(prom) > 0x8bf9 {
		prom[0x8bf4], prom[0x8bf5], prom[0x8bf6] = 0x4e, 0xf9, 0x00
		prom[0x8bf7], prom[0x8bf8], prom[0x8bf9] = 0x0d, 0xf9, 0x80
	}

	return c
}

// DynFix returns the dynamically-written FIX layer data, which the loader
// hands to the video controller in place of S ROM whenever this board
// type is active. Writes below 0x240000 land here while cart RAM byte
// 0x1ffc is non-zero.
func (c *KOF10th) DynFix() []uint8 {
	return c.dynFix[:]
}

func (c *KOF10th) ReadFixed8(addr uint32) uint8 {
	if addr >= 0x0e0000 {
		return c.extRAM[addr&0x1ffff]
	}
	return c.prom[addr+c.protreg]
}

func (c *KOF10th) ReadFixed16(addr uint32) uint16 {
	if addr >= 0x0e0000 {
		i := addr & 0x1fffe
		return uint16(c.extRAM[i]) | uint16(c.extRAM[i+1])<<8
	}
	i := addr + c.protreg
	return uint16(c.prom[i])<<8 | uint16(c.prom[i+1])
}

func (c *KOF10th) ReadBanksw8(addr uint32) uint8 {
	if addr >= 0x2fe000 {
		return c.cartRAM[addr&0x1fff]
	}
	return c.base.ReadBanksw8(addr)
}

func (c *KOF10th) ReadBanksw16(addr uint32) uint16 {
	if addr >= 0x2fe000 {
		i := addr & 0x1fff
		return uint16(c.cartRAM[i]) | uint16(c.cartRAM[i+1])<<8
	}
	return c.base.ReadBanksw16(addr)
}

func (c *KOF10th) WriteBanksw8(addr uint32, data uint8) {
	if addr >= 0x2fe000 {
		if addr == 0x2ffff0 {
			c.bankswAddr = (uint32(data) & c.bankswMask) * 0x100000 + 0x100000
			if c.bankswAddr >= 0x700000 {
				c.bankswAddr = 0x100000
			}
		}
		c.cartRAM[addr&0x1fff] = data
	}
}

func (c *KOF10th) WriteBanksw16(addr uint32, data uint16) {
	switch {
	case addr < 0x240000:
		if c.cartRAM[0x1ffc] != 0 {
			i := (addr >> 1) & 0x1ffff
			c.dynFix[i] = uint8(data&0xde) | uint8((data&0x01)<<5) | uint8((data&0x20)>>5)
		} else {
			i := addr & 0x1ffff
			c.extRAM[i] = uint8(data)
			c.extRAM[i+1] = uint8(data >> 8)
		}
	case addr >= 0x2fe000:
		switch addr {
		case 0x2ffff0:
			c.bankswAddr = (uint32(data) & c.bankswMask) * 0x100000 + 0x100000
			// bank 7 is the fixed-bank-only slot and bank 8 doesn't
			// exist; both wrap back to bank 1
			if c.bankswAddr >= 0x700000 {
				c.bankswAddr = 0x100000
			}
		case 0x2ffff8:
			cur := uint16(c.cartRAM[0x1ff8]) | uint16(c.cartRAM[0x1ff9])<<8
			if cur != data {
				if data&0x01 != 0 {
					c.protreg = 0x000000
				} else {
					c.protreg = 0x700000
				}
			}
		}
		i := addr & 0x1ffe
		c.cartRAM[i] = uint8(data)
		c.cartRAM[i+1] = uint8(data >> 8)
	}
}

func (c *KOF10th) SaveState(w *serial.Writer) {
	c.saveState(w)
	w.Push32(c.protreg)
	w.PushBlock(c.cartRAM[:])
	w.PushBlock(c.extRAM[:])
	w.PushBlock(c.dynFix[:])
}

func (c *KOF10th) RestoreState(r *serial.Reader) {
	c.restoreState(r)
	c.protreg = r.Pop32()
	r.PopBlock(c.cartRAM[:])
	r.PopBlock(c.extRAM[:])
	r.PopBlock(c.dynFix[:])
}
