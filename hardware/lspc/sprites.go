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
	numSprites = 256 // one entry per word of the SBC3/SBC4/SBC2 tables
	chainBit   = 0x40
)

// sprite is one entry of the SBC2/SBC3/SBC4 tables, after chain
// inheritance has been resolved.
type sprite struct {
	x       int
	y       int
	height  int // in 16-pixel tile rows
	vshrink uint8
	hshrink uint8
}

// lutHshrink maps a 4-bit horizontal shrink value and a tile column
// (0-15) to the source column to sample, approximating the original's
// precomputed 16x16 horizontal shrink table.
var lutHshrink = buildHshrinkLUT()

func buildHshrinkLUT() [16][16]uint8 {
	var lut [16][16]uint8
	for shrink := 0; shrink < 16; shrink++ {
		step := float64(shrink+1) / 16.0
		for col := 0; col < 16; col++ {
			src := int(float64(col) * step)
			if src > 15 {
				src = 15
			}
			lut[shrink][col] = uint8(src)
		}
	}
	return lut
}

// drawSprites renders every sprite overlapping row into vbuf, back to
// front, so earlier-indexed sprites end up on top as on real hardware.
func (l *LSPC) drawSprites(row int) {
	if l.vbuf == nil || l.cROM == nil {
		return
	}
	line := clocks.ActiveLineStart + uint32(row)

	type visible struct {
		sp      sprite
		tileRow int
	}
	var drawList []visible

	var prev sprite
	for i := 0; i < numSprites; i++ {
		sbc3 := l.vram[vramSBC3+i]
		sbc4 := l.vram[vramSBC4+i]
		sbc2 := l.vram[vramSBC2+i]

		var s sprite
		if sbc3&chainBit != 0 && i > 0 {
			s.y = prev.y
			s.height = prev.height
			s.x = prev.x + int(prev.hshrink) + 1
			s.vshrink = prev.vshrink
		} else {
			s.y = 512 - int(sbc3>>7)
			s.height = int(sbc3 & 0x3f)
			s.x = int(sbc4 >> 7)
			s.vshrink = uint8(sbc2 >> 8)
		}
		s.hshrink = uint8(sbc2 & 0xff)
		prev = s

		if s.height == 0 {
			continue
		}
		spanY := s.y
		spanH := s.height * 16 * int(s.vshrink+1) / 16
		if spanH == 0 {
			spanH = s.height * 16
		}
		if int(line) < spanY || int(line) >= spanY+spanH {
			continue
		}
		rel := int(line) - spanY
		tileRow := rel * s.height * 16 / spanH
		drawList = append(drawList, visible{sp: s, tileRow: tileRow})
	}

	for i := len(drawList) - 1; i >= 0; i-- {
		l.drawSpriteRow(row, i, drawList[i].sp, drawList[i].tileRow)
	}
}

func (l *LSPC) drawSpriteRow(row, spriteIndex int, s sprite, tileRow int) {
	// The sprite tile lists hold 128 two-word (tile, attribute) entries
	// each for even and odd scanlines; only the low 7 bits of the sprite
	// index select an entry.
	entry := uint16(spriteIndex & 0x7f)
	listBase := uint16(0x8600)
	if tileRow&1 != 0 {
		listBase = 0x8680
	}
	tileEntry := l.vram[listBase+entry]
	attr := l.vram[listBase+entry+0x40]

	tileNum := uint32(tileEntry)
	if attr&0x0001 != 0 {
		tileNum = (tileNum &^ 0x07) | uint32(l.aaCounter&0x07)
	}
	palette := uint16((attr >> 8) & 0xff)
	hflip := attr&0x0002 != 0

	shrink := s.hshrink & 0x0f
	for col := 0; col < 16; col++ {
		src := lutHshrink[shrink][col]
		px := l.tpix(tileNum, int(src), tileRow%16, hflip)
		if px == 0 {
			continue
		}
		x := s.x + col - 16
		if x < 0 || x >= Width {
			continue
		}
		c := l.paletteColour(palette<<4 | uint16(px))
		l.vbuf[row*Width+x] = c
	}
}

// tpix decodes one pixel of an 8x16 (stored as 16 rows of 8 columns)
// sprite tile from the C ROM pair. Each tile is 128 bytes: four bit
// planes, odd-numbered C ROM bytes supplying planes 0-1 and even-numbered
// ROM bytes supplying planes 2-3.
func (l *LSPC) tpix(tile uint32, col, row int, hflip bool) uint8 {
	if hflip {
		col = 7 - col
	}
	base := tile * 128
	rowOff := base + uint32(row)*8
	if int(rowOff)+7 >= len(l.cROM) {
		return 0
	}
	lo := l.cROM[rowOff+uint32(col/2)]
	hi := l.cROM[rowOff+uint32(col/2)+0x10]
	var p0, p1, p2, p3 uint8
	if col&1 == 0 {
		p0 = (lo >> 4) & 1
		p1 = (lo >> 0) & 1
		p2 = (hi >> 4) & 1
		p3 = (hi >> 0) & 1
	} else {
		p0 = (lo >> 5) & 1
		p1 = (lo >> 1) & 1
		p2 = (hi >> 5) & 1
		p3 = (hi >> 1) & 1
	}
	return p0 | p1<<1 | p2<<2 | p3<<3
}
