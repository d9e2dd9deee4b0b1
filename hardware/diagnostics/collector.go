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

// Package diagnostics exposes a System's per-frame cycle-budget
// counters (mcycs/zcycs/ymcycs/ymsamps) to an optional live HTTP
// dashboard, built the same way the teacher wires an in-process web
// viewer onto its own debugger: a small atomic counter struct the hot
// loop updates unconditionally, plus a build-tag-gated server that does
// nothing when the diagnostics build tag isn't set.
package diagnostics

import "sync/atomic"

// Collector accumulates the counters a System reports once per frame.
// Every field is updated with plain atomic stores, so System.Exec never
// blocks on diagnostics regardless of whether a Server is running.
type Collector struct {
	frame   atomic.Uint64
	mcycs   atomic.Uint64
	zcycs   atomic.Uint64
	ymcycs  atomic.Uint64
	ymsamps atomic.Uint64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records one frame's counters. Called once at the end of
// System.Exec.
func (c *Collector) Report(mcycs, zcycs, ymcycs, ymsamps uint32) {
	c.frame.Add(1)
	c.mcycs.Store(uint64(mcycs))
	c.zcycs.Store(uint64(zcycs))
	c.ymcycs.Store(uint64(ymcycs))
	c.ymsamps.Add(uint64(ymsamps))
}

// Snapshot is a point-in-time copy of every counter, safe to encode or
// display.
type Snapshot struct {
	Frame   uint64
	MCycs   uint64
	ZCycs   uint64
	YMCycs  uint64
	YMSamps uint64
}

// Snapshot reads every counter without blocking the reporting side.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Frame:   c.frame.Load(),
		MCycs:   c.mcycs.Load(),
		ZCycs:   c.zcycs.Load(),
		YMCycs:  c.ymcycs.Load(),
		YMSamps: c.ymsamps.Load(),
	}
}
