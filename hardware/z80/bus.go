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

// Package z80 supplies the Neo Geo sound board's address space and IO
// port decoding that sits between the Z80 instruction decoder and the
// rest of the system. The decoder itself is a black-box collaborator:
// this package never executes an instruction, it only answers the
// memory and port reads/writes the decoder issues while stepping.
package z80

import "github.com/jetsetilly/neogeo/hardware/serial"

const ramSize = 0x0800

// Core is the Z80 instruction decoder. Bus does not implement it; a
// decoder package wires itself to a Bus's MemBus/PortBus and reports its
// own register state through SaveState/RestoreState.
type Core interface {
	// Step executes instructions until at least cycles master-Z80 cycles
	// have elapsed, and returns the number actually consumed.
	Step(cycles int) int

	AssertNMI()
	AssertIRQ(vector uint8)
	ClearIRQ()

	SaveState(w *serial.Writer)
	RestoreState(r *serial.Reader)
}

// YM2610Bus is the subset of the sound chip's register interface the Z80
// reaches through ports 0x04-0x07. Defined here, rather than imported
// from the ym2610 package, to avoid a cycle: the sound chip's own IRQ
// line is asserted against this bus's AssertIRQ, not the other way
// round.
type YM2610Bus interface {
	Read(port uint16) uint8
	Write(port uint16, data uint8)
}

// SoundLatch is the one-byte-each-way mailbox the 68000 and Z80 share.
// The 68000 writes a sound code and pulses the Z80's NMI line; the Z80
// acknowledges by reading port 0x00 and replies by writing port 0x0c.
type SoundLatch interface {
	SoundCode() uint8
	SetSoundReply(v uint8)
}

// Bus is the Z80's address space and IO port decoder: the 32K static
// bank plus four switchable ROM windows the NEO-ZMC bank controller
// maps into the 64K space, backed by the cartridge's M/SM ROM, and 2K of
// work RAM.
//
// https://wiki.neogeodev.org/index.php?title=Z80_bankswitching
type Bus struct {
	rom   []uint8 // cartridge M ROM, or the BIOS's combined SM1 overlay on MVS
	ram   [ramSize]uint8
	zbank [4]uint32

	nmiEnabled bool

	ym    YM2610Bus
	latch SoundLatch
}

// NewBus creates a Bus with no ROM installed; call SetROM before use.
func NewBus(ym YM2610Bus, latch SoundLatch) *Bus {
	b := &Bus{ym: ym, latch: latch}
	b.Reset()
	return b
}

// SetROM installs the Z80 program ROM: the cartridge's M ROM on AES, or
// the BIOS's precomputed SM1+M overlay on MVS. Swapping this is how a
// hard reset re-selects the ROM for the active system type.
func (b *Bus) SetROM(rom []uint8) {
	b.rom = rom
}

// Reset restores the NEO-ZMC's bank registers to their start-up values.
// Real hardware resets every bank to 0, but several titles never bankswitch
// at all and rely on the BIOS's initial values instead, so those are
// used here rather than the documented zero state.
func (b *Bus) Reset() {
	b.zbank[0] = 0x8000
	b.zbank[1] = 0xc000
	b.zbank[2] = 0xe000
	b.zbank[3] = 0xf000
	b.nmiEnabled = false
}

// Read answers a Z80 memory read.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return b.rom[addr]
	case addr < 0xc000:
		return b.rom[b.zbank[0]+uint32(addr&0x3fff)]
	case addr < 0xe000:
		return b.rom[b.zbank[1]+uint32(addr&0x1fff)]
	case addr < 0xf000:
		return b.rom[b.zbank[2]+uint32(addr&0x0fff)]
	case addr < 0xf800:
		return b.rom[b.zbank[3]+uint32(addr&0x07ff)]
	default:
		return b.ram[addr&0x07ff]
	}
}

// Write answers a Z80 memory write. Addresses below work RAM are
// unmapped; the NEO-ZMC's bank registers are only reachable through IO
// ports, not memory-mapped writes.
func (b *Bus) Write(addr uint16, data uint8) {
	if addr > 0xf7ff {
		b.ram[addr&0x07ff] = data
	}
}

func (b *Bus) bankswap(bank int, port uint16) {
	switch bank {
	case 0:
		b.zbank[0] = uint32((port>>8)&0x0f) * 0x4000
	case 1:
		b.zbank[1] = uint32((port>>8)&0x1f) * 0x2000
	case 2:
		b.zbank[2] = uint32((port>>8)&0x3f) * 0x1000
	case 3:
		b.zbank[3] = uint32((port>>8)&0x7f) * 0x0800
	}
}

// PortIn answers a Z80 IN instruction.
func (b *Bus) PortIn(port uint16) uint8 {
	switch port & 0xff {
	case 0x00:
		return b.latch.SoundCode()
	case 0x04, 0x05, 0x06, 0x07:
		return b.ym.Read(port)
	case 0x08:
		b.bankswap(3, port)
	case 0x09:
		b.bankswap(2, port)
	case 0x0a:
		b.bankswap(1, port)
	case 0x0b:
		b.bankswap(0, port)
	}
	return 0
}

// PortOut answers a Z80 OUT instruction.
func (b *Bus) PortOut(port uint16, data uint8) {
	switch port & 0xff {
	case 0x00, 0xc0:
		// acknowledged by reading port 0x00; writes here are ignored and
		// leave the latched code as it is
	case 0x04, 0x05, 0x06, 0x07:
		b.ym.Write(port, data)
	case 0x08, 0x09, 0x0a, 0x0b:
		b.nmiEnabled = true
	case 0x0c:
		b.latch.SetSoundReply(data)
	case 0x18:
		b.nmiEnabled = false
	}
}

// NMIEnabled reports whether the sound program has unmasked its NMI
// line through ports 0x08-0x0b (set) without a subsequent write to
// 0x18 (clear). The scheduler consults this before pulsing NMI on a
// 68000 sound-code write.
func (b *Bus) NMIEnabled() bool {
	return b.nmiEnabled
}

// SaveState writes the bus's bank selectors, work RAM and NMI-enable
// flag. The decoder's own register file is saved separately by the
// Core implementation.
func (b *Bus) SaveState(w *serial.Writer) {
	var nmi uint8
	if b.nmiEnabled {
		nmi = 1
	}
	w.Push8(nmi)
	w.PushBlock(b.ram[:])
	for _, z := range b.zbank {
		w.Push32(z)
	}
}

// RestoreState restores state written by SaveState, in the same order.
func (b *Bus) RestoreState(r *serial.Reader) {
	b.nmiEnabled = r.Pop8() != 0
	r.PopBlock(b.ram[:])
	for i := range b.zbank {
		b.zbank[i] = r.Pop32()
	}
}
