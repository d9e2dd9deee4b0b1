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

package hardware

import (
	"github.com/jetsetilly/neogeo/curated"
	"github.com/jetsetilly/neogeo/hardware/cartridge"
	"github.com/jetsetilly/neogeo/hardware/serial"
)

// stateScratchSize is a generous upper bound on a serialised System: the
// largest owned blocks are the LSPC's VRAM and palette RAM, the 68000
// bus's 64K work RAM and 64K NVRAM, and the cartridge controller's own
// RAM. The save is
// trimmed to the writer's actual cursor position before it leaves
// SaveState, so this only needs to be large enough, not exact.
const stateScratchSize = 1 << 20

// SaveState serialises the whole System: region/system identity, the
// 68000, Z80 and YM2610 per-frame cycle accumulators, the watchdog
// counter, and every owned subsystem in turn. The YM2610 sample count and
// the 68000/Z80 cycle carries are not saved. IRQ2 timer state travels inside LSPC's own block rather than a
// separate top-level section, since LSPC already owns that timer.
func (s *System) SaveState() []uint8 {
	buf := make([]uint8, stateScratchSize)
	w := serial.NewWriter(buf)

	w.Push8(uint8(s.region))
	w.Push8(boolToU8(s.isMVS))
	w.Push32(s.mcycs)
	w.Push32(s.zcycs)
	w.Push32(s.ymcycs)
	w.Push32(uint32(s.watchdogCounter))

	s.Latch.SaveState(w)
	s.LSPC.SaveState(w)
	s.m68kBus.SaveState(w)
	s.m68kCore.SaveState(w)
	s.Cart.SaveState(w)
	s.RTC.SaveState(w)
	s.YM.SaveState(w)
	s.z80Bus.SaveState(w)
	s.z80Core.SaveState(w)

	return buf[:w.Size()]
}

// RestoreState replays a block produced by SaveState. A region or
// system mismatch is rejected (spec.md §7): a save captured against one
// BIOS family can't be replayed against another.
func (s *System) RestoreState(data []uint8) error {
	r := serial.NewReader(data)

	region := r.Pop8()
	isMVS := r.Pop8() != 0
	if cartridge.System(region) != s.region || isMVS != s.isMVS {
		return curated.Errorf(curated.StateMismatch, "save was captured against a different region/system")
	}

	s.mcycs = r.Pop32()
	s.zcycs = r.Pop32()
	s.ymcycs = r.Pop32()
	s.watchdogCounter = int(r.Pop32())

	s.Latch.RestoreState(r)
	s.LSPC.RestoreState(r)
	s.m68kBus.RestoreState(r)
	s.m68kCore.RestoreState(r)
	s.Cart.RestoreState(r)
	s.RTC.RestoreState(r)
	s.YM.RestoreState(r)
	s.z80Bus.RestoreState(r)
	s.z80Core.RestoreState(r)

	if r.Size() != len(data) {
		return curated.Errorf(curated.StateSizeMismatch, "expected %d bytes, consumed %d", len(data), r.Size())
	}

	s.carry68k, s.carryZ80, s.ymAccum = 0, 0, 0

	return nil
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
