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

// Package clocks defines the constant values that define the relative
// speeds of the three Neo Geo processors and the master frame timing.
package clocks

// Cycle divisors: the number of master cycles consumed by one cycle of
// each processor. DIV_M68K becomes 1 when the 68000 is overclocked
// (oc=1); the others are fixed.
const (
	DivM68K   = 2
	DivZ80    = 6
	DivYM2610 = 72
)

// Master frame timing: 264 scanlines of 1536 master cycles each.
const (
	MasterCyclesPerLine  = 1536
	ScanlinesPerFrame    = 264
	MasterCyclesPerFrame = MasterCyclesPerLine * ScanlinesPerFrame

	// LSPC timing is expressed in 68K-divided cycles; a line is 768 such
	// units (half of 1536, since DivM68K==2 in normal operation).
	LSPCCyclesPerLine = MasterCyclesPerLine / DivM68K
)

// Active video region (scanlines, exclusive upper bound).
const (
	ActiveLineStart = 8
	ActiveLineEnd   = 248
	VBlankLine      = 249
)

// Framerates, in Hz.
const (
	FramerateAES = 59.599484
	FramerateMVS = 59.185606
)

// YM2610 internal sample rate, derived so that resampling to a host rate
// stays clean (see original_source geo_mixer.c).
const SampleRateYM2610 = 56319
