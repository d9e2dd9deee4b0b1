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

// Package m68k supplies the Neo Geo main board's 24-bit address space:
// fixed and switchable program ROM banks (delegated to a
// cartridge.Controller), work RAM, the memory-mapped register window,
// palette RAM, the memory card, BIOS ROM, and MVS backup RAM. The 68000
// instruction decoder itself is a black-box collaborator; this package
// only answers the reads and writes it issues while stepping.
package m68k

import (
	"github.com/jetsetilly/neogeo/hardware/cartridge"
	"github.com/jetsetilly/neogeo/hardware/input"
	"github.com/jetsetilly/neogeo/hardware/serial"
)

const (
	ramSize     = 0x10000
	nvramSize   = 0x10000
	memcardSize = 0x0800
)

// IRQ levels acknowledged through REG_IRQACK.
const (
	IRQReset = iota + 1
	IRQTimer
	IRQVBlank
)

// Core is the 68000 instruction decoder. Bus does not implement it; a
// decoder package wires itself to a Bus's Read/Write methods and reports
// its own register file through SaveState/RestoreState.
type Core interface {
	Step(cycles int) int

	SetIRQ(level int, asserted bool)

	SaveState(w *serial.Writer)
	RestoreState(r *serial.Reader)
}

// RTCBus is the subset of the uPD4990A's interface the MMR window
// exposes: a 2-bit status read (data bit + TP pulse) and a 3-bit control
// write (DATA/CLK/STB).
type RTCBus interface {
	Read() uint8
	Write(data uint8)
}

// LSPCBus is the subset of the video controller's register file the
// 68000 reaches through 0x3c0000-0x3c000e.
type LSPCBus interface {
	VRAMAddrWrite(data uint16)
	VRAMRead() uint16
	VRAMWrite(data uint16)
	VRAMModRead() uint16
	VRAMModWrite(data int16)
	ModeRead() uint16
	ModeWrite(data uint16)
	PalRAMRead8(addr uint32) uint8
	PalRAMRead16(addr uint32) uint16
	PalRAMWrite8(addr uint32, data uint8)
	PalRAMWrite16(addr uint32, data uint16)
	PalBank(bank int)
	ShadowWrite(on bool)
	SetFixSource(cart bool)
	TimerReloadHigh(data uint16)
	TimerReloadLow(data uint16)
	AckIRQ(resetAck, timerAck, vblankAck bool)
}

// SoundLatch is the mailbox half the 68000 drives: it writes a sound
// code for the Z80 and reads back the Z80's reply.
type SoundLatch interface {
	SetSoundCode(v uint8)
	SoundReply() uint8
}

// Watchdog is kicked by a write to 0x300001.
type Watchdog interface {
	Kick()
}

// Z80NMI pulses the sound CPU's NMI line, honored only if the Z80 has
// unmasked it through its own IO ports.
type Z80NMI interface {
	PulseNMI()
}

// Bus is the 68000's 24-bit address space.
type Bus struct {
	cart  cartridge.Controller
	rtc   RTCBus
	lspc  LSPCBus
	input *input.Bridge
	latch SoundLatch
	wd    Watchdog
	z80   Z80NMI

	ram     [ramSize]uint8
	nvram   [nvramSize]uint8
	memcard [memcardSize]uint8
	bios    []uint8

	isMVS bool

	vectableCart bool // false = BIOS vector table, true = cartridge's
	sramLocked   bool
	crdLock      [2]bool
	crtFix       bool // true = cart S ROM/M1 ROM selected as fix/sound source
}

// NewBus creates a Bus. cart, rtc, lspc, input, latch, wd and z80 must
// all be non-nil before the bus is used; bios is the BIOS ROM image.
func NewBus(cart cartridge.Controller, rtc RTCBus, lspc LSPCBus, in *input.Bridge, latch SoundLatch, wd Watchdog, z80 Z80NMI, bios []uint8, isMVS bool) *Bus {
	b := &Bus{
		cart: cart, rtc: rtc, lspc: lspc, input: in,
		latch: latch, wd: wd, z80: z80, bios: bios, isMVS: isMVS,
	}
	b.Reset()
	return b
}

// Reset restores the vector table to BIOS and clears the memory card and
// SRAM lock registers, matching a 68000 RESET pulse's side effects.
func (b *Bus) Reset() {
	b.vectableCart = false
	b.sramLocked = false
	b.crdLock[0], b.crdLock[1] = false, false
	b.crtFix = !b.isMVS
}

// Read8 answers an 8-bit 68000 read.
func (b *Bus) Read8(addr uint32) uint8 {
	switch {
	case addr < 0x000080:
		if b.vectableCart {
			return b.cart.ReadFixed8(addr)
		}
		return b.bios[addr]
	case addr < 0x100000:
		return b.cart.ReadFixed8(addr)
	case addr < 0x200000:
		return b.ram[addr&0xffff]
	case addr < 0x300000:
		return b.cart.ReadBanksw8(addr)
	case addr < 0x400000:
		return b.readMMR8(addr)
	case addr < 0x800000:
		return b.lspc.PalRAMRead8(addr)
	case addr < 0xc00000:
		if addr&0x01 != 0 {
			return b.memcard[(addr>>1)&0x7ff]
		}
		return 0xff
	case addr < 0xd00000:
		return b.bios[addr&0x1ffff]
	case addr < 0xe00000:
		if b.isMVS {
			return b.nvram[addr&0xffff]
		}
		return 0xff
	}
	return 0xff
}

// Read16 answers a 16-bit 68000 read.
func (b *Bus) Read16(addr uint32) uint16 {
	switch {
	case addr < 0x000080:
		if b.vectableCart {
			return b.cart.ReadFixed16(addr)
		}
		return read16(b.bios, addr)
	case addr < 0x100000:
		return b.cart.ReadFixed16(addr)
	case addr < 0x200000:
		return read16(b.ram[:], addr&0xffff)
	case addr < 0x300000:
		return b.cart.ReadBanksw16(addr)
	case addr < 0x400000:
		return b.readMMR16(addr)
	case addr < 0x800000:
		return b.lspc.PalRAMRead16(addr)
	case addr < 0xc00000:
		return uint16(b.memcard[(addr>>1)&0x7ff]) | 0xff00
	case addr < 0xd00000:
		return read16(b.bios, addr&0x1ffff)
	case addr < 0xe00000:
		if b.isMVS {
			return read16(b.nvram[:], addr&0xffff)
		}
		return 0xffff
	}
	return 0xffff
}

// Read32 answers a 32-bit 68000 read as two 16-bit halves.
func (b *Bus) Read32(addr uint32) uint32 {
	return uint32(b.Read16(addr))<<16 | uint32(b.Read16(addr+2))
}

func (b *Bus) readMMR8(addr uint32) uint8 {
	switch addr {
	case 0x300000:
		return b.input.ReadJoypad(0)
	case 0x300001:
		return b.input.ReadSystem(input.DIPSwitches)
	case 0x300081:
		return b.input.ReadSystem(input.SystemType) &^ 0x40
	case 0x320000:
		return b.latch.SoundReply()
	case 0x320001:
		return b.input.ReadSystem(input.SystemStatusA) | (b.rtc.Read() << 6) | 0x18
	case 0x340000:
		return b.input.ReadJoypad(1)
	case 0x380000:
		return b.statusB()
	}
	return 0xff
}

func (b *Bus) readMMR16(addr uint32) uint16 {
	switch addr {
	case 0x300000:
		v := uint16(b.input.ReadJoypad(0))
		return v<<8 | v
	case 0x340000:
		v := uint16(b.input.ReadJoypad(1))
		return v<<8 | v
	case 0x380000:
		v := uint16(b.statusB())
		return v<<8 | v
	case 0x3c0000, 0x3c0002, 0x3c0008, 0x3c000a:
		return b.lspc.VRAMRead()
	case 0x3c0004, 0x3c000c:
		return b.lspc.VRAMModRead()
	case 0x3c0006, 0x3c000e:
		return b.lspc.ModeRead()
	}
	return 0xffff
}

func (b *Bus) statusB() uint8 {
	v := b.input.ReadSystem(input.SystemStatusB)
	if b.isMVS {
		v |= 0x80
	}
	return v
}

// Write8 answers an 8-bit 68000 write.
func (b *Bus) Write8(addr uint32, data uint8) {
	addr &= 0xffffff
	switch {
	case addr < 0x100000:
		// cartridge ROM: not writable
	case addr < 0x200000:
		b.ram[addr&0xffff] = data
	case addr < 0x300000:
		b.cart.WriteBanksw8(addr, data)
	case addr < 0x400000:
		b.writeMMR8(addr, data)
	case addr < 0x800000:
		b.lspc.PalRAMWrite8(addr, data)
	case addr < 0xc00000:
		if !b.crdLock[0] && !b.crdLock[1] {
			b.memcard[(addr>>1)&0x7ff] = data
		}
	case addr < 0xd00000:
		// BIOS ROM: not writable
	case addr < 0xe00000:
		if b.isMVS && !b.sramLocked {
			b.nvram[addr&0xffff] = data
		}
	}
}

// Write16 answers a 16-bit 68000 write.
func (b *Bus) Write16(addr uint32, data uint16) {
	addr &= 0xffffff
	switch {
	case addr < 0x100000:
		// cartridge ROM: not writable
	case addr < 0x200000:
		write16(b.ram[:], addr&0xffff, data)
	case addr < 0x300000:
		b.cart.WriteBanksw16(addr, data)
	case addr < 0x400000:
		b.writeMMR16(addr, data)
	case addr < 0x800000:
		b.lspc.PalRAMWrite16(addr, data)
	case addr < 0xc00000:
		if !b.crdLock[0] && !b.crdLock[1] {
			b.memcard[(addr>>1)&0x7ff] = uint8(data)
		}
	case addr < 0xd00000:
		// BIOS ROM: not writable
	case addr < 0xe00000:
		if b.isMVS && !b.sramLocked {
			write16(b.nvram[:], addr&0xffff, data)
		}
	}
}

// Write32 answers a 32-bit 68000 write as two 16-bit halves.
func (b *Bus) Write32(addr uint32, data uint32) {
	b.Write16(addr, uint16(data>>16))
	b.Write16(addr+2, uint16(data))
}

func (b *Bus) writeMMR8(addr uint32, data uint8) {
	switch addr {
	case 0x300001:
		b.wd.Kick()
	case 0x320000:
		b.latch.SetSoundCode(data)
		b.z80.PulseNMI()
	case 0x380051:
		if b.isMVS {
			b.rtc.Write(data & 0x07)
		}
	case 0x3a0001:
		b.lspc.ShadowWrite(false)
	case 0x3a0003:
		b.vectableCart = false
	case 0x3a0005:
		b.crdLock[0] = false
	case 0x3a0007:
		b.crdLock[1] = true
	case 0x3a000b:
		b.crtFix = false
		b.lspc.SetFixSource(false)
	case 0x3a000d:
		b.sramLocked = true
	case 0x3a000f:
		b.lspc.PalBank(1)
	case 0x3a0011:
		b.lspc.ShadowWrite(true)
	case 0x3a0013:
		b.vectableCart = true
	case 0x3a0015:
		b.crdLock[0] = true
	case 0x3a0017:
		b.crdLock[1] = false
	case 0x3a001b:
		b.crtFix = true
		b.lspc.SetFixSource(true)
	case 0x3a001d:
		b.sramLocked = false
	case 0x3a001f:
		b.lspc.PalBank(0)
	case 0x3c0000, 0x3c0002, 0x3c0004, 0x3c0006, 0x3c0008, 0x3c000a, 0x3c000c, 0x3c000e:
		// byte writes to the LSPC window duplicate into both halves
		b.writeMMR16(addr, uint16(data)<<8|uint16(data))
	}
}

func (b *Bus) writeMMR16(addr uint32, data uint16) {
	switch addr {
	case 0x320000:
		b.latch.SetSoundCode(uint8(data >> 8))
		b.z80.PulseNMI()
	case 0x3c0000:
		b.lspc.VRAMAddrWrite(data)
	case 0x3c0002:
		b.lspc.VRAMWrite(data)
	case 0x3c0004:
		b.lspc.VRAMModWrite(int16(data))
	case 0x3c0006:
		b.lspc.ModeWrite(data)
	case 0x3c0008:
		b.lspc.TimerReloadHigh(data)
	case 0x3c000a:
		b.lspc.TimerReloadLow(data)
	case 0x3c000c:
		b.lspc.AckIRQ(data&0x01 != 0, data&0x02 != 0, data&0x04 != 0)
	}
}

func read16(p []uint8, addr uint32) uint16 {
	return uint16(p[addr])<<8 | uint16(p[addr+1])
}

func write16(p []uint8, addr uint32, data uint16) {
	p[addr] = uint8(data >> 8)
	p[addr+1] = uint8(data)
}

// FormatMemcard zero-fills the memory card and writes the minimal Neo
// Geo directory header (the "NEO" magic at offset 0) every card image
// in this emulation carries, matching the pattern geo_memcard_format
// produces for a freshly formatted card.
func (b *Bus) FormatMemcard() {
	for i := range b.memcard {
		b.memcard[i] = 0
	}
	b.memcard[0] = 'N'
	b.memcard[1] = 'E'
	b.memcard[2] = 'O'
}

// SaveState writes work RAM, backup RAM, the memory card, and the MMR
// side-register latches. Palette RAM is owned and saved by the LSPC
// package; the 68000's own register file is saved by the Core
// implementation.
func (b *Bus) SaveState(w *serial.Writer) {
	w.PushBlock(b.ram[:])
	w.PushBlock(b.nvram[:])
	w.PushBlock(b.memcard[:])

	var flags uint8
	if b.vectableCart {
		flags |= 0x01
	}
	if b.sramLocked {
		flags |= 0x02
	}
	if b.crdLock[0] {
		flags |= 0x04
	}
	if b.crdLock[1] {
		flags |= 0x08
	}
	if b.crtFix {
		flags |= 0x10
	}
	w.Push8(flags)
}

// RestoreState restores state written by SaveState, in the same order.
func (b *Bus) RestoreState(r *serial.Reader) {
	r.PopBlock(b.ram[:])
	r.PopBlock(b.nvram[:])
	r.PopBlock(b.memcard[:])

	flags := r.Pop8()
	b.vectableCart = flags&0x01 != 0
	b.sramLocked = flags&0x02 != 0
	b.crdLock[0] = flags&0x04 != 0
	b.crdLock[1] = flags&0x08 != 0
	b.crtFix = flags&0x10 != 0
}
