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

package cartridge

// NEO-SMA per-title scramble/bank tables. These values ultimately come
// from MAME, by way of neogeodev.

// smaTitle names the six SMA-protected titles with distinct LUTs.
type smaTitle int

const (
	SMAKOF99 smaTitle = iota
	SMAGarou
	SMAGarouH
	SMAMSlug3
	SMAMSlug3a
	SMAKOF2000
)

// smaAddr holds {prnAddr0, prnAddr1, bankswAddr} for each title.
var smaAddr = map[smaTitle][3]uint32{
	SMAKOF99:   {0x2ffff8, 0x2ffffa, 0x2ffff0},
	SMAGarou:   {0x2fffcc, 0x2ffff0, 0x2fffc0},
	SMAGarouH:  {0x2fffcc, 0x2ffff0, 0x2fffc0},
	SMAMSlug3:  {0x2ffff8, 0x2ffffa, 0x2fffe4},
	SMAMSlug3a: {0x2ffff8, 0x2ffffa, 0x2fffe4},
	SMAKOF2000: {0x2fffd8, 0x2fffda, 0x2fffec},
}

var smaScramble = map[smaTitle][6]uint8{
	SMAKOF99:   {14, 6, 8, 10, 12, 5},
	SMAGarou:   {5, 9, 7, 6, 14, 12},
	SMAGarouH:  {4, 8, 14, 2, 11, 13},
	SMAMSlug3:  {14, 12, 15, 6, 3, 9},
	SMAMSlug3a: {15, 3, 1, 6, 12, 11},
	SMAKOF2000: {15, 14, 7, 3, 10, 5},
}

var smaBankKOF99 = [64]uint32{
	0x000000, 0x100000, 0x200000, 0x300000,
	0x3cc000, 0x4cc000, 0x3f2000, 0x4f2000,
	0x407800, 0x507800, 0x40d000, 0x50d000,
	0x417800, 0x517800, 0x420800, 0x520800,
	0x424800, 0x524800, 0x429000, 0x529000,
	0x42e800, 0x52e800, 0x431800, 0x531800,
	0x54d000, 0x551000, 0x567000, 0x592800,
	0x588800, 0x581800, 0x599800, 0x594800,
	0x598000,
}

var smaBankGarou = [64]uint32{
	0x000000, 0x100000, 0x200000, 0x300000,
	0x280000, 0x380000, 0x2d0000, 0x3d0000,
	0x2f0000, 0x3f0000, 0x400000, 0x500000,
	0x420000, 0x520000, 0x440000, 0x540000,
	0x498000, 0x598000, 0x4a0000, 0x5a0000,
	0x4a8000, 0x5a8000, 0x4b0000, 0x5b0000,
	0x4b8000, 0x5b8000, 0x4c0000, 0x5c0000,
	0x4c8000, 0x5c8000, 0x4d0000, 0x5d0000,
	0x458000, 0x558000, 0x460000, 0x560000,
	0x468000, 0x568000, 0x470000, 0x570000,
	0x478000, 0x578000, 0x480000, 0x580000,
	0x488000, 0x588000, 0x490000, 0x590000,
	0x5d0000, 0x5d8000, 0x5e0000, 0x5e8000,
	0x5f0000, 0x5f8000, 0x600000,
}

var smaBankGarouH = [64]uint32{
	0x000000, 0x100000, 0x200000, 0x300000,
	0x280000, 0x380000, 0x2d0000, 0x3d0000,
	0x2c8000, 0x3c8000, 0x400000, 0x500000,
	0x420000, 0x520000, 0x440000, 0x540000,
	0x598000, 0x698000, 0x5a0000, 0x6a0000,
	0x5a8000, 0x6a8000, 0x5b0000, 0x6b0000,
	0x5b8000, 0x6b8000, 0x5c0000, 0x6c0000,
	0x5c8000, 0x6c8000, 0x5d0000, 0x6d0000,
	0x458000, 0x558000, 0x460000, 0x560000,
	0x468000, 0x568000, 0x470000, 0x570000,
	0x478000, 0x578000, 0x480000, 0x580000,
	0x488000, 0x588000, 0x490000, 0x590000,
	0x5d8000, 0x6d8000, 0x5e0000, 0x6e0000,
	0x5e8000, 0x6e8000, 0x6e8000, 0x000000,
	0x000000, 0x000000, 0x000000, 0x000000,
	0x000000, 0x000000, 0x000000, 0x000000,
}

var smaBankMSlug3 = [64]uint32{
	0x000000, 0x020000, 0x040000, 0x060000,
	0x070000, 0x090000, 0x0b0000, 0x0d0000,
	0x0e0000, 0x0f0000, 0x120000, 0x130000,
	0x140000, 0x150000, 0x180000, 0x190000,
	0x1a0000, 0x1b0000, 0x1e0000, 0x1f0000,
	0x200000, 0x210000, 0x240000, 0x250000,
	0x260000, 0x270000, 0x2a0000, 0x2b0000,
	0x2c0000, 0x2d0000, 0x300000, 0x310000,
	0x320000, 0x330000, 0x360000, 0x370000,
	0x380000, 0x390000, 0x3c0000, 0x3d0000,
	0x400000, 0x410000, 0x440000, 0x450000,
	0x460000, 0x470000, 0x4a0000, 0x4b0000,
	0x4c0000,
}

var smaBankMSlug3a = [64]uint32{
	0x000000, 0x030000, 0x040000, 0x070000,
	0x080000, 0x0a0000, 0x0c0000, 0x0e0000,
	0x0f0000, 0x100000, 0x130000, 0x140000,
	0x150000, 0x160000, 0x190000, 0x1a0000,
	0x1b0000, 0x1c0000, 0x1f0000, 0x200000,
	0x210000, 0x220000, 0x250000, 0x260000,
	0x270000, 0x280000, 0x2b0000, 0x2c0000,
	0x2d0000, 0x2e0000, 0x310000, 0x320000,
	0x330000, 0x340000, 0x370000, 0x380000,
	0x390000, 0x3a0000, 0x3d0000, 0x3e0000,
	0x400000, 0x410000, 0x440000, 0x450000,
	0x460000, 0x470000, 0x4a0000, 0x4b0000,
	0x4c0000,
}

var smaBankKOF2000 = [64]uint32{
	0x000000, 0x100000, 0x200000, 0x300000,
	0x3f7800, 0x4f7800, 0x3ff800, 0x4ff800,
	0x407800, 0x507800, 0x40f800, 0x50f800,
	0x416800, 0x516800, 0x41d800, 0x51d800,
	0x424000, 0x524000, 0x523800, 0x623800,
	0x526000, 0x626000, 0x528000, 0x628000,
	0x52a000, 0x62a000, 0x52b800, 0x62b800,
	0x52d000, 0x62d000, 0x52e800, 0x62e800,
	0x618000, 0x619000, 0x61a000, 0x61a800,
}

var smaBank = map[smaTitle][64]uint32{
	SMAKOF99:   smaBankKOF99,
	SMAGarou:   smaBankGarou,
	SMAGarouH:  smaBankGarouH,
	SMAMSlug3:  smaBankMSlug3,
	SMAMSlug3a: smaBankMSlug3a,
	SMAKOF2000: smaBankKOF2000,
}
