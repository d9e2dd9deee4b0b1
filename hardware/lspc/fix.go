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

package lspc

import "github.com/jetsetilly/neogeo/hardware/clocks"

const (
	fixTilesH = 40
	fixTilesV = 32
)

// fixData returns the tile data the fix layer currently reads from: the
// cartridge's S ROM (or a board controller's dynamic fix data) when
// reg_crtfix selects the cartridge, otherwise the BIOS's own fix tiles.
func (l *LSPC) fixData() []uint8 {
	if l.fixCart {
		return l.cartFix
	}
	return l.boardFix
}

// drawFixLine renders the 40-column text layer for one scanline, using
// whichever of the three bank-switching schemes the cartridge was
// detected as using.
func (l *LSPC) drawFixLine(row int) {
	data := l.fixData()
	if data == nil || l.vbuf == nil {
		return
	}

	line := row + int(clocks.ActiveLineStart)
	tileRow := line & 7
	col0 := (line >> 3)

	for col := 0; col < fixTilesH; col++ {
		mapEntry := l.vram[vramFixMap+uint16(col*32+col0)]
		tile := uint32(mapEntry & 0x0fff)
		palette := uint16((mapEntry >> 12) & 0x0f)

		tile = l.fixBank(col, tile)

		for x := 0; x < 8; x++ {
			px := l.fixPixel(data, tile, x, tileRow)
			if px == 0 {
				continue
			}
			vx := col*8 + x
			if vx < 0 || vx >= Width {
				continue
			}
			l.vbuf[row*Width+vx] = l.paletteColour(palette<<4 | uint16(px))
		}
	}
}

// fixBank resolves the effective tile number for the active banking
// scheme: unbanked cartridges pass the tile number straight through,
// line-banked cartridges (FixBankswLine) pick one of four 4096-tile
// banks per fix-control register, and tile-banked cartridges
// (FixBankswTile) pick a bank per six-column group.
func (l *LSPC) fixBank(col int, tile uint32) uint32 {
	switch l.fixBanksw {
	case FixBankswLine:
		bankSel := l.vram[vramFixCtrl+uint16(col&0x3f)]
		return tile | uint32(bankSel&0x03)<<12
	case FixBankswTile:
		group := col / 6
		bankSel := l.vram[vramFixCtrl+uint16(group&0x3f)]
		return tile | uint32(bankSel&0x0f)<<12
	default:
		return tile
	}
}

// fixPixel decodes one pixel of an 8x8 fix tile, stored as 32 bytes with
// the four columns' byte offsets following the {0x10,0x18,0x00,0x08}+row
// pattern used throughout the fix ROM layout.
func (l *LSPC) fixPixel(data []uint8, tile uint32, x, row int) uint8 {
	base := tile * 32
	offsets := [4]int{0x10, 0x18, 0x00, 0x08}
	byteOff := base + uint32(offsets[x/2]+row)
	if int(byteOff) >= len(data) {
		return 0
	}
	b := data[byteOff]
	shift := uint(4)
	if x&1 != 0 {
		shift = 0
	}
	return (b >> shift) & 0x0f
}
