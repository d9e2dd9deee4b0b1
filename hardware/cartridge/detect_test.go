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

package cartridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/neogeo/hardware/cartridge"
)

func romset(psz int) cartridge.ROMSet {
	return cartridge.ROMSet{
		NEOData: make([]uint8, 0x200000),
		P:       make([]uint8, psz),
		S:       make([]uint8, 0x20000),
		C:       make([]uint8, 0x400000),
	}
}

func TestDetectBoardDispatch(t *testing.T) {
	cases := []struct {
		name           string
		ngh            uint32
		psz            int
		mahjong        bool
		irritatingMaze bool
		vliner         bool
	}{
		{name: "Riding Hero (Linkable)", ngh: 0x006, psz: 0x80000},
		{name: "Jockey Grand Prix (BrezzaSoft)", ngh: 0x008, psz: 0x80000},
		{name: "Mahjong Kyo Retsuden (mahjong flag)", ngh: 0x004, psz: 0x80000, mahjong: true},
		{name: "Fatal Fury 2 (PRO-CT0)", ngh: 0x047, psz: 0x80000},
		{name: "Irritating Maze flag", ngh: 0x236, psz: 0x80000, irritatingMaze: true},
		{name: "KOF 98", ngh: 0x242, psz: 0x80000},
		{name: "Metal Slug X", ngh: 0x250, psz: 0x80000},
		{name: "V-Liner flag", ngh: 0x3e7, psz: 0x80000, vliner: true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			roms := romset(c.psz)
			ctrl, res, err := cartridge.Detect(roms, c.ngh, cartridge.SystemMVS, false, make([]uint8, 0x10000), nil)
			require.NoError(t, err)
			require.NotNil(t, ctrl)
			assert.Equal(t, c.mahjong, res.Mahjong)
			assert.Equal(t, c.irritatingMaze, res.IrritatingMaze)
			assert.Equal(t, c.vliner, res.VLiner)
		})
	}
}

func TestDetectRegionRejection(t *testing.T) {
	roms := romset(0x80000)
	_, _, err := cartridge.Detect(roms, 0x080, cartridge.SystemMVS, true, make([]uint8, 0x10000), nil)
	assert.Error(t, err, "Quiz King of Fighters must reject US MVS")
}

func TestDetectKOF99SMAThreshold(t *testing.T) {
	small := romset(0x400000)
	ctrl, _, err := cartridge.Detect(small, 0x151, cartridge.SystemMVS, false, make([]uint8, 0x10000), nil)
	require.NoError(t, err)
	_, isSMA := ctrl.(*cartridge.SMA)
	assert.False(t, isSMA, "small P ROM KOF99 dumps use the default board, not NEO-SMA")

	large := romset(0x600000)
	ctrl, _, err = cartridge.Detect(large, 0x151, cartridge.SystemMVS, false, make([]uint8, 0x10000), nil)
	require.NoError(t, err)
	_, isSMA = ctrl.(*cartridge.SMA)
	assert.True(t, isSMA, "large P ROM KOF99 dumps are NEO-SMA protected")
}
