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

package input_test

import (
	"testing"

	"github.com/jetsetilly/neogeo/hardware/input"
	"github.com/jetsetilly/neogeo/test"
)

func TestUnconnectedSlotsReadHigh(t *testing.T) {
	b := input.NewBridge()
	test.ExpectEquality(t, b.ReadJoypad(0), uint8(0xff))
	test.ExpectEquality(t, b.ReadSystem(input.SystemType), uint8(0xff))
}

func TestOpposingDirectionsMasked(t *testing.T) {
	b := input.NewBridge()

	// host reports both up and down pressed (bits clear), which is
	// electrically impossible on the real pad
	b.SetJoypad(0, func(port int) uint8 {
		return 0xff &^ (1<<0 | 1<<1)
	})

	v := b.ReadJoypad(0)
	test.ExpectEquality(t, v&(1<<0), uint8(1<<0))
	test.ExpectEquality(t, v&(1<<1), uint8(1<<1))
}

func TestValidDirectionPassesThrough(t *testing.T) {
	b := input.NewBridge()
	b.SetJoypad(1, func(port int) uint8 {
		return 0xff &^ (1 << 0) // up only
	})
	v := b.ReadJoypad(1)
	test.ExpectEquality(t, v&(1<<0), uint8(0))
	test.ExpectEquality(t, v&(1<<1), uint8(1<<1))
}

func TestSystemPortsAreIndependent(t *testing.T) {
	b := input.NewBridge()
	b.SetSystem(input.DIPSwitches, func() uint8 { return 0x42 })
	test.ExpectEquality(t, b.ReadSystem(input.DIPSwitches), uint8(0x42))
	test.ExpectEquality(t, b.ReadSystem(input.SystemStatusA), uint8(0xff))
}
