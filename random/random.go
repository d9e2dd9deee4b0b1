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

// Package random supplies pseudo-randomness that stays consistent across a
// rewind. Ordinary *rand.Rand can't be used directly for this: its output
// depends on how many times it has been called, which differs depending on
// whether the emulation is running forward or has been rewound to an
// earlier point and is replaying. Rewindable instead derives its output
// from the current raster position, so the same position always yields
// the same value regardless of call history.
package random

import (
	"encoding/binary"
	"hash/fnv"
	"time"

	"github.com/jetsetilly/neogeo/hardware/lspc/coords"
)

// TV is the minimal source of raster position Random needs.
type TV interface {
	GetCoords() coords.LSPCCoords
}

// Random derives rewind-safe pseudo-random values from the current raster
// position.
type Random struct {
	tv TV

	// ZeroSeed forces the seed to zero instead of a value derived from
	// wall-clock time, for reproducible tests.
	ZeroSeed bool

	seed uint64
}

// NewRandom creates a Random that reads raster position from tv.
func NewRandom(tv TV) *Random {
	return &Random{
		tv:   tv,
		seed: uint64(time.Now().UnixNano()),
	}
}

func (r *Random) effectiveSeed() uint64 {
	if r.ZeroSeed {
		return 0
	}
	return r.seed
}

// Rewindable returns a pseudo-random byte that is a pure function of the
// current raster position, the seed, and i. Calling it repeatedly at the
// same raster position with the same i always returns the same value.
func (r *Random) Rewindable(i int) uint8 {
	c := r.tv.GetCoords()

	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], r.effectiveSeed())
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Frame))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Scanline))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Clock))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	h.Write(buf[:])

	return uint8(h.Sum64())
}
