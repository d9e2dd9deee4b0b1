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

// HardReset restores every owned subsystem to its power-on state:
// equivalent to cycling the console's power switch. Cartridge and BIOS
// images already loaded are kept; only volatile state is cleared.
//
// The 68000 and Z80 program counters are not touched here. Core is an
// externally supplied black box whose narrow interface (spec.md's
// black-box framing) exposes Step, SetIRQ/AssertIRQ and save state but
// no Reset: a real core fetches its reset vector from the bus the
// moment it next steps after Bus.Reset clears the vector-table-in-cart
// latch, the same way a 68000 does on a RESET pulse. System only needs
// to put the bus-owned peripheral state back to power-on; the core
// picks up the new vector table on its own next fetch.
func (s *System) HardReset() {
	s.m68kBus.Reset()
	s.z80Bus.Reset()
	s.LSPC.Reset()
	s.YM.Reset()

	s.Latch.SetSoundCode(0)
	s.Latch.SetSoundReply(0)

	s.mcycs, s.zcycs, s.ymcycs, s.ymsamps = 0, 0, 0, 0
	s.carry68k, s.carryZ80 = 0, 0
	s.ymAccum = 0
	s.watchdogCounter = watchdogFrameLimit
}

// SoftReset is what the watchdog (spec S5) fires: unlike HardReset it
// leaves the sound latch untouched, matching geo_reset's distinction
// between a full power cycle and a watchdog-driven restart. Neither reset
// touches the RTC, which keeps running across both.
func (s *System) SoftReset() {
	s.m68kBus.Reset()
	s.z80Bus.Reset()
	s.LSPC.Reset()

	s.carry68k, s.carryZ80 = 0, 0
	s.ymAccum = 0
}

// FormatMemcard zero-fills the memory card and writes a fresh directory
// header. LoadCartridge calls this on the first cartridge load, once the
// 68000 bus exists; a front-end may also call it directly in
// response to a user-initiated "format card" request.
func (s *System) FormatMemcard() {
	s.m68kBus.FormatMemcard()
}
