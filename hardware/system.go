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
	"github.com/jetsetilly/neogeo/hardware/clocks"
	"github.com/jetsetilly/neogeo/hardware/diagnostics"
	"github.com/jetsetilly/neogeo/hardware/input"
	"github.com/jetsetilly/neogeo/hardware/instance"
	"github.com/jetsetilly/neogeo/hardware/lspc"
	"github.com/jetsetilly/neogeo/hardware/m68k"
	"github.com/jetsetilly/neogeo/hardware/rtc"
	"github.com/jetsetilly/neogeo/hardware/soundlatch"
	"github.com/jetsetilly/neogeo/hardware/ym2610"
	"github.com/jetsetilly/neogeo/hardware/z80"
	"github.com/jetsetilly/neogeo/logger"
)

// watchdogFrameLimit is the number of consecutive System.Exec calls
// tolerated without a write to 0x300001 before a soft reset is forced
// (spec S5).
const watchdogFrameLimit = 8

// Synths bundles the YM2610's four black-box sample-synthesis
// collaborators. Nothing in this module implements them; a host wires
// in its own FM/ADPCM/SSG core (for example a cgo binding to a real
// Yamaha emulation library) the same way it supplies Core
// implementations for the 68000 and Z80.
type Synths struct {
	FM     ym2610.FM
	ADPCMA ym2610.ADPCMA
	ADPCMB ym2610.ADPCMB
	SSG    ym2610.SSG
}

// System is the Neo Geo AES/MVS aggregate: every subsystem package
// wired together, plus the cycle accumulators and scheduling state the
// C source kept as file-level globals (spec.md §9 Design Notes).
type System struct {
	Instance *instance.Instance
	Log      *logger.Logger

	region cartridge.System
	isMVS  bool
	bios   []uint8
	biosM1 []uint8 // MVS sound driver ROM, used as a fallback when a cartridge carries no M ROM of its own

	m68kCore m68k.Core
	m68kBus  *m68k.Bus
	z80Core  z80.Core
	z80Bus   *z80.Bus

	LSPC  *lspc.LSPC
	RTC   *rtc.RTC
	Cart  cartridge.Controller
	Latch *soundlatch.Latch
	Input *input.Bridge
	YM    *ym2610.Engine

	Diagnostics *diagnostics.Collector

	// per-frame cycle accumulators (spec.md §3 data model)
	mcycs   uint32
	zcycs   uint32
	ymcycs  uint32
	ymsamps uint32

	carry68k int // master-cycle overshoot from the last 68K Step
	carryZ80 int // master-cycle overshoot from the last Z80 Step
	ymAccum  uint32

	watchdogCounter int

	audio []int16 // interleaved stereo samples produced by the last Exec
}

// NewSystem constructs a System with every owned subsystem created and
// reset, wired against the given black-box CPU decoders and YM2610
// synthesis collaborators. The cartridge and BIOS are not yet loaded;
// call LoadBIOS and LoadCartridge before Exec.
func NewSystem(ins *instance.Instance, m68kCore m68k.Core, z80Core z80.Core, synths Synths) *System {
	s := &System{
		Instance: ins,
		Log:      logger.NewLogger(512),
		m68kCore: m68kCore,
		z80Core:  z80Core,
		LSPC:     lspc.NewLSPC(),
		RTC:      rtc.NewRTC(24, 1, 0, 1, 0, 0, 0),
		Latch:       soundlatch.NewLatch(),
		Input:       input.NewBridge(),
		Diagnostics: diagnostics.NewCollector(),
	}

	highFi, _ := ins.Prefs.HighFidelity.Get().(bool)
	s.YM = ym2610.NewEngine(z80Core, synths.FM, synths.ADPCMA, synths.ADPCMB, synths.SSG, highFi)

	s.z80Bus = z80.NewBus(s.YM, s.Latch)

	return s
}

// SetVideoBuffer installs the host-supplied XRGB8888 pixel buffer the
// LSPC renders into.
func (s *System) SetVideoBuffer(buf []uint32) {
	s.LSPC.SetBuffer(buf)
}

// Samples returns the interleaved stereo PCM samples produced by the
// most recently completed Exec call. The slice is reused between calls;
// callers that need to retain it must copy.
func (s *System) Samples() []int16 {
	return s.audio
}

// Kick implements m68k.Watchdog: a write to 0x300001 resets the
// countdown to watchdogFrameLimit.
func (s *System) Kick() {
	s.watchdogCounter = watchdogFrameLimit
}

// PulseNMI implements m68k.Z80NMI: the 68000 pulses the sound CPU's NMI
// line on every sound-code write, honored only if the Z80 has unmasked
// it through its own IO ports.
func (s *System) PulseNMI() {
	if s.z80Bus.NMIEnabled() {
		s.z80Core.AssertNMI()
	}
}

// Exec advances the system by exactly one video frame
// (clocks.MasterCyclesPerFrame master cycles), stepping the 68000, Z80,
// LSPC, RTC and YM2610 in lock-step scanline by scanline. After Exec
// returns, mcycs < clocks.MasterCyclesPerLine (spec invariant 1): the
// accumulator is wrapped modulo one frame, leaving only the overshoot
// from the final scanline's step.
func (s *System) Exec() {
	s.audio = s.audio[:0]

	for s.mcycs < clocks.MasterCyclesPerFrame {
		s.execLine()
		s.mcycs += clocks.MasterCyclesPerLine
	}
	s.mcycs %= clocks.MasterCyclesPerFrame
	s.Diagnostics.Report(s.mcycs, s.zcycs, s.ymcycs, s.ymsamps)

	s.watchdogCounter--
	if s.watchdogCounter <= 0 {
		s.Log.Logf(logger.Allow, "watchdog", "%v", curated.Errorf(curated.WatchdogTimeout, "no kick in the last %d frames", watchdogFrameLimit))
		s.SoftReset()
		s.watchdogCounter = watchdogFrameLimit
	}
}

// execLine steps every processor by one scanline's worth of master
// cycles and applies the edge-triggered IRQs LSPC.Run reports.
func (s *System) execLine() {
	want68k := clocks.MasterCyclesPerLine/clocks.DivM68K - s.carry68k
	used68k := s.m68kCore.Step(want68k)
	s.carry68k = used68k - want68k

	vblank, timer := s.LSPC.Run(used68k)
	if vblank {
		s.m68kCore.SetIRQ(m68k.IRQVBlank, true)
	}
	if timer {
		s.m68kCore.SetIRQ(m68k.IRQTimer, true)
	}

	s.RTC.Sync(uint32(used68k))

	wantZ80 := clocks.MasterCyclesPerLine/clocks.DivZ80 - s.carryZ80
	usedZ80 := s.z80Core.Step(wantZ80)
	s.carryZ80 = usedZ80 - wantZ80
	s.zcycs += uint32(usedZ80)

	s.ymAccum += clocks.MasterCyclesPerLine
	for s.ymAccum >= clocks.DivYM2610 {
		l, r := s.YM.Exec()
		s.audio = append(s.audio, l, r)
		s.ymAccum -= clocks.DivYM2610
		s.ymcycs++
		s.ymsamps++
	}
}
