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

// Package lspc implements the Neo Geo video controller: tile and sprite
// VRAM, palette RAM and conversion, the fix (text) layer in its three
// bank-switching variants, and the per-scanline timing that drives the
// VBlank and IRQ2 timer requests the scheduler forwards to the 68000.
//
// Host presentation (windowing, scaling, colour space) is out of scope;
// LSPC only ever fills a caller-supplied XRGB8888 frame buffer one scanline
// at a time.
package lspc

import (
	"github.com/jetsetilly/neogeo/hardware/cartridge"
	"github.com/jetsetilly/neogeo/hardware/clocks"
	"github.com/jetsetilly/neogeo/hardware/serial"
)

const (
	vramWords   = 0x8800 // 64K tile/sprite VRAM plus 4K of fix/extension control, in words
	palramWords = 0x2000 // two banks of 256 sixteen-colour palettes, in words

	// VRAM region boundaries, in words.
	vramFixMap   = 0x7000
	vramFixCtrl  = 0x7500
	vramSBC2     = 0x8000
	vramSBC3     = 0x8200
	vramSBC4     = 0x8400
	vramSprLoEnd = 0x8680
	vramSprHiEnd = 0x8700

	// IRQ2 timer control bit: reload the counter from irq2Reload.
	irq2AutoReload = 0x10
)

// Width and Height are the frame dimensions LSPC renders into: 320
// pixels per scanline, and one row per active scanline (the 240 lines
// between ActiveLineStart and ActiveLineEnd).
const (
	Width  = 320
	Height = clocks.ActiveLineEnd - clocks.ActiveLineStart
)

// FixBanksw re-exports the cartridge package's fix-layer banking mode so
// callers never need to import both packages just to wire Detect's
// result into SetFixBanksw.
type FixBanksw = cartridge.FixBanksw

// The three known fix-layer banking schemes.
const (
	FixBankswNone = cartridge.FixBankswNone
	FixBankswLine = cartridge.FixBankswLine
	FixBankswTile = cartridge.FixBankswTile
)

// DynFix is satisfied by board controllers (KOF 10th Anniversary) that
// generate their fix-layer tile data at runtime rather than reading it
// from the cartridge's S ROM.
type DynFix interface {
	DynFix() []uint8
}

// LSPC is the Neo Geo video controller.
type LSPC struct {
	vram   [vramWords]uint16
	palram [palramWords]uint16

	palOut       [palramWords]uint32
	palOutShadow [palramWords]uint32

	palbank  uint16
	vramaddr uint16
	vrambank uint16
	vrammod  int16

	aaCounter uint8
	aaDisable bool
	aaReload  uint8
	aaTimer   uint8

	shadow bool

	scanline uint32
	cyc      uint32

	irq2Reload  uint16
	irq2Counter uint16
	irq2Ctrl    uint8
	vblankPend  bool
	timerPend   bool

	fixCart   bool
	fixBanksw FixBanksw
	cartFix   []uint8
	boardFix  []uint8
	cROM      []uint8
	l0ROM     []uint8

	vbuf []uint32
}

// NewLSPC creates an LSPC with no ROMs installed. SetCROM, SetCartFix,
// SetBoardFix, SetL0ROM and SetFixBanksw must be called once a cartridge
// and BIOS have been loaded.
func NewLSPC() *LSPC {
	l := &LSPC{}
	l.Reset()
	return l
}

// Reset restores the power-on register state.
func (l *LSPC) Reset() {
	l.palbank = 0
	l.vramaddr = 0
	l.vrambank = 0
	l.vrammod = 0
	l.aaCounter = 0
	l.aaDisable = false
	l.aaReload = 0
	l.aaTimer = 0
	l.shadow = false
	l.scanline = 0
	l.cyc = 0
	l.irq2Reload = 0
	l.irq2Counter = 0
	l.irq2Ctrl = 0
	l.vblankPend = false
	l.timerPend = false
	l.fixCart = false
}

// SetCROM installs the sprite tile ROM.
func (l *LSPC) SetCROM(c []uint8) { l.cROM = c }

// SetL0ROM installs the sprite zoom lookup ROM. It is not part of the
// NEO cartridge container; the loader supplies it from the BIOS archive.
func (l *LSPC) SetL0ROM(rom []uint8) { l.l0ROM = rom }

// SetCartFix installs the cartridge's S ROM fix-layer tile data, or a
// board controller's dynamically generated equivalent.
func (l *LSPC) SetCartFix(s []uint8) { l.cartFix = s }

// SetBoardFix installs the BIOS's own fix-layer tile data, used when the
// cartridge defers to the BIOS splash screen.
func (l *LSPC) SetBoardFix(s []uint8) { l.boardFix = s }

// SetFixBanksw selects which of the three fix-layer rendering routines
// DrawFixLine uses, per the cartridge's NGH-derived detection result.
func (l *LSPC) SetFixBanksw(f FixBanksw) { l.fixBanksw = f }

// SetBuffer installs the XRGB8888 frame buffer scanlines are rendered into.
// Its length must be at least Width*Height.
func (l *LSPC) SetBuffer(vbuf []uint32) { l.vbuf = vbuf }

// VRAMAddrWrite handles a write to the VRAM address register (REG_VRAMADDR).
func (l *LSPC) VRAMAddrWrite(data uint16) {
	l.vramaddr = data & 0x7fff
	l.vrambank = data & 0x8000
}

// vramIndex resolves the bank bit and the current vramaddr into an
// absolute index into vram: the bank bit selects between the 64K main
// bank (address 0-0x7fff) and the 4K extension bank living just past it
// (address masked to 0-0x7ff, offset by 0x8000 words).
func (l *LSPC) vramIndex() uint16 {
	if l.vrambank != 0 {
		return 0x8000 + l.vramaddr&0x07ff
	}
	return l.vramaddr & 0x7fff
}

// VRAMRead handles a read of the VRAM data port (REG_VRAMRW), then
// applies the auto-increment.
func (l *LSPC) VRAMRead() uint16 {
	v := l.vram[l.vramIndex()]
	l.advanceVRAMAddr()
	return v
}

// VRAMWrite handles a write to the VRAM data port, then applies the
// auto-increment.
func (l *LSPC) VRAMWrite(data uint16) {
	l.vram[l.vramIndex()] = data
	l.advanceVRAMAddr()
}

func (l *LSPC) advanceVRAMAddr() {
	addr := int32(l.vramaddr) + int32(l.vrammod)
	wrap := int32(0x8000)
	if l.vrambank != 0 {
		wrap = 0x0800
	}
	if addr < 0 {
		addr += wrap
	} else if addr >= wrap {
		addr -= wrap
	}
	l.vramaddr = uint16(addr) & 0x7fff
}

// VRAMModRead handles a read of the VRAM auto-increment register.
func (l *LSPC) VRAMModRead() uint16 { return uint16(l.vrammod) }

// VRAMModWrite handles a write to the VRAM auto-increment register.
func (l *LSPC) VRAMModWrite(data int16) { l.vrammod = data }

// ModeRead handles a read of LSPCMODE: the current scanline (offset so
// VBlank reads as line 0 rising through the visible area) packed above
// the auto-animation counter.
func (l *LSPC) ModeRead() uint16 {
	return ((uint16(l.scanline)+0xf8)<<7 | uint16(l.aaCounter)) & 0xffff
}

// ModeWrite handles a write to LSPCMODE: the auto-animation reload value
// in the top byte, the IRQ2 timer control in bits 7-4 and the
// auto-animation disable bit in bit 3.
func (l *LSPC) ModeWrite(data uint16) {
	l.aaReload = uint8(data >> 8)
	l.irq2Ctrl = uint8(data) & 0xf0
	l.aaDisable = data&0x08 != 0
}

// PalBank selects which of the two palette banks register reads and
// sprite/fix rendering use.
func (l *LSPC) PalBank(bank int) {
	if bank != 0 {
		l.palbank = 0x1000
	} else {
		l.palbank = 0
	}
}

// ShadowWrite toggles whether subsequent frames render using the
// half-intensity shadow palette.
func (l *LSPC) ShadowWrite(on bool) { l.shadow = on }

// SetFixSource toggles whether the fix layer reads from the cartridge's
// S ROM (true) or the BIOS's own fix tiles (false).
func (l *LSPC) SetFixSource(cart bool) { l.fixCart = cart }

// TimerReloadHigh handles a write to the IRQ2 reload register's high
// half.
func (l *LSPC) TimerReloadHigh(data uint16) {
	l.irq2Reload = (l.irq2Reload & 0x00ff) | (data << 8 & 0xff00)
}

// TimerReloadLow handles a write to the IRQ2 reload register's low half.
func (l *LSPC) TimerReloadLow(data uint16) {
	l.irq2Reload = (l.irq2Reload & 0xff00) | (data & 0x00ff)
}

// AckIRQ handles the 68000's interrupt-acknowledge write. The reset
// level has no LSPC-local state to clear; it is forwarded purely so the
// scheduler can route all three levels through one call.
func (l *LSPC) AckIRQ(resetAck, timerAck, vblankAck bool) {
	_ = resetAck
	if vblankAck {
		l.vblankPend = false
	}
	if timerAck {
		l.timerPend = false
		if l.irq2Ctrl&irq2AutoReload != 0 {
			l.irq2Counter = l.irq2Reload
		}
	}
}

// PalRAMRead8 and PalRAMRead16 answer 68000 reads of the palette RAM
// window (0x400000-0x401fff), which is only ever accessed a word at a
// time; the 8-bit form exists because the 68000 bus still needs to
// answer byte-wide instructions.
func (l *LSPC) palIndex(addr uint32) uint16 {
	return uint16((uint32(l.palbank) + addr>>1) & (palramWords - 1))
}

func (l *LSPC) PalRAMRead8(addr uint32) uint8 {
	v := l.palram[l.palIndex(addr)]
	if addr&1 == 0 {
		return uint8(v >> 8)
	}
	return uint8(v)
}

func (l *LSPC) PalRAMRead16(addr uint32) uint16 {
	return l.palram[l.palIndex(addr)]
}

// PalRAMWrite8 and PalRAMWrite16 answer 68000 writes of the palette RAM
// window, re-deriving the display palette's converted colour as soon as
// an entry changes.
func (l *LSPC) PalRAMWrite8(addr uint32, data uint8) {
	i := l.palIndex(addr)
	v := l.palram[i]
	if addr&1 == 0 {
		v = uint16(data)<<8 | v&0x00ff
	} else {
		v = v&0xff00 | uint16(data)
	}
	l.palram[i] = v
	l.convertPalEntry(i)
}

func (l *LSPC) PalRAMWrite16(addr uint32, data uint16) {
	i := l.palIndex(addr)
	l.palram[i] = data
	l.convertPalEntry(i)
}

func (l *LSPC) convertPalEntry(i uint16) {
	n, s := palconv(l.palram[i])
	l.palOut[i] = n
	l.palOutShadow[i] = s
}

// Run advances the video controller by cycles 68000-rate cycles (the
// same clock domain LSPCCyclesPerLine is derived in), rendering any
// scanline that becomes due and reporting newly-raised VBlank and IRQ2
// timer requests for the scheduler to assert against the 68000 core.
func (l *LSPC) Run(cycles int) (vblank, timer bool) {
	for i := 0; i < cycles; i++ {
		l.cyc++
		switch l.cyc {
		case 29:
			if l.scanline == clocks.ActiveLineStart {
				l.stepAutoAnimation()
			} else if l.scanline == clocks.VBlankLine {
				l.vblankPend = true
				vblank = true
			}
		case 573:
			l.renderScanline()
			if l.scanline == clocks.ActiveLineEnd {
				if l.irq2Ctrl&irq2AutoReload != 0 {
					l.irq2Counter = l.irq2Reload
				}
			}
		case clocks.LSPCCyclesPerLine:
			l.cyc = 0
			l.scanline = (l.scanline + 1) % clocks.ScanlinesPerFrame
		}

		if l.irq2Ctrl&0x80 != 0 {
			if l.irq2Counter == 0 {
				l.timerPend = true
				timer = true
				if l.irq2Ctrl&irq2AutoReload != 0 {
					l.irq2Counter = l.irq2Reload
				}
			} else {
				l.irq2Counter--
			}
		}
	}
	return vblank, timer
}

func (l *LSPC) stepAutoAnimation() {
	if l.aaDisable {
		return
	}
	if l.aaTimer == 0 {
		l.aaTimer = l.aaReload
		l.aaCounter = (l.aaCounter + 1) & 0x07
	} else {
		l.aaTimer--
	}
}

func (l *LSPC) renderScanline() {
	if l.scanline < clocks.ActiveLineStart-2 || l.scanline >= clocks.ActiveLineEnd {
		return
	}
	if l.scanline >= clocks.ActiveLineStart && l.vbuf != nil {
		row := int(l.scanline - clocks.ActiveLineStart)
		l.drawBackdrop(row)
		l.drawSprites(row)
		l.drawFixLine(row)
	}
}

func (l *LSPC) drawBackdrop(row int) {
	if row < 0 || row >= Height || l.vbuf == nil {
		return
	}
	c := l.paletteColour(0x1ff)
	base := row * Width
	for x := 0; x < Width; x++ {
		l.vbuf[base+x] = c
	}
}

// paletteColour looks up palette entry i (0-4095 within the active
// bank), returning the shadow variant when shadow mode is on.
func (l *LSPC) paletteColour(i uint16) uint32 {
	idx := (l.palbank + i) & (palramWords - 1)
	if l.shadow {
		return l.palOutShadow[idx]
	}
	return l.palOut[idx]
}

// SaveState writes LSPC's full register and RAM state. The display
// palettes are not written; RestoreState re-derives them from palram.
func (l *LSPC) SaveState(w *serial.Writer) {
	for _, v := range l.vram {
		w.Push16(v)
	}
	for _, v := range l.palram {
		w.Push16(v)
	}
	w.Push16(l.palbank)
	w.Push16(l.vramaddr)
	w.Push16(l.vrambank)
	w.Push16(uint16(l.vrammod))
	w.Push8(l.aaCounter)
	w.Push8(boolToU8(l.aaDisable))
	w.Push8(l.aaReload)
	w.Push8(l.aaTimer)
	w.Push8(boolToU8(l.shadow))
	w.Push32(l.scanline)
	w.Push32(l.cyc)
	w.Push16(l.irq2Reload)
	w.Push16(l.irq2Counter)
	w.Push8(l.irq2Ctrl)
	w.Push8(boolToU8(l.vblankPend))
	w.Push8(boolToU8(l.timerPend))
	w.Push8(boolToU8(l.fixCart))
}

// RestoreState restores state written by SaveState, re-deriving the
// display palettes from the restored palram.
func (l *LSPC) RestoreState(r *serial.Reader) {
	for i := range l.vram {
		l.vram[i] = r.Pop16()
	}
	for i := range l.palram {
		l.palram[i] = r.Pop16()
	}
	l.palbank = r.Pop16()
	l.vramaddr = r.Pop16()
	l.vrambank = r.Pop16()
	l.vrammod = int16(r.Pop16())
	l.aaCounter = r.Pop8()
	l.aaDisable = r.Pop8() != 0
	l.aaReload = r.Pop8()
	l.aaTimer = r.Pop8()
	l.shadow = r.Pop8() != 0
	l.scanline = r.Pop32()
	l.cyc = r.Pop32()
	l.irq2Reload = r.Pop16()
	l.irq2Counter = r.Pop16()
	l.irq2Ctrl = r.Pop8()
	l.vblankPend = r.Pop8() != 0
	l.timerPend = r.Pop8() != 0
	l.fixCart = r.Pop8() != 0

	for i := range l.palram {
		n, s := palconv(l.palram[i])
		l.palOut[i] = n
		l.palOutShadow[i] = s
	}
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
