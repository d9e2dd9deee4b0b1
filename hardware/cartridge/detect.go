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

import "github.com/jetsetilly/neogeo/curated"

// System identifies which BIOS family a NEO container is being loaded
// against, since a handful of titles are compatible with only one.
type System int

// The two BIOS families a cartridge can be loaded against.
const (
	SystemMVS System = iota
	SystemAES
)

// FixBanksw identifies how the video controller's fix (text) layer is
// bank-switched. Detect derives this from the same NGH/heuristic table
// that picks the board controller; the video package (LSPC) consumes it
// as-is.
type FixBanksw int

// The three known fix-layer banking schemes.
const (
	FixBankswNone FixBanksw = iota
	FixBankswLine
	FixBankswTile
)

// ROMSet bundles the pieces of a loaded NEO container Detect needs:
// separated ROM slices for in-place protection patches, and the whole
// raw container for reading heuristic disambiguation bytes at their
// absolute file offsets.
type ROMSet struct {
	NEOData []uint8 // entire raw container, header included
	P       []uint8 // P ROM (68000 program), aliases into NEOData
	S       []uint8 // S ROM (fix layer tiles), aliases into NEOData
	C       []uint8 // C ROM (sprite tiles), aliases into NEOData
}

// Result carries the non-Controller outcomes of Detect: flags the
// scheduler and input bridge need (mahjong controller presence,
// Irritating Maze's paddle-like controls, V-Liner's extra system port)
// and the fix-layer banking mode LSPC should use.
type Result struct {
	Mahjong        bool
	IrritatingMaze bool
	VLiner         bool
	FixBanksw      FixBanksw
}

// Detect dispatches to a board Controller by NGH code plus, for a
// handful of titles, a handful of disambiguating bytes at fixed file
// offsets. This mirrors the "heuristic byte" ambiguity inherent to the
// NGH field itself: several bootlegs and regional variants share an NGH
// with an otherwise-unrelated title.
//
// ram is the system's main RAM, needed only by the MSlugX board's
// challenge/response protection. vliner is consulted only by BrezzaSoft
// boards that read the V-Liner system input port; it may be nil.
func Detect(roms ROMSet, ngh uint32, sys System, regionUS bool, ram []uint8, vliner VLinerInput) (Controller, Result, error) {
	var res Result
	psz := uint32(len(roms.P))

	switch ngh {
	case 0x006, 0x019, 0x038: // Riding Hero, League Bowling, Thrash Rally
		return NewLinkable(roms.P), res, nil

	case 0x008: // Jockey Grand Prix
		return NewBrezzaSoft(roms.P, vliner), res, nil

	case 0x004, 0x027, 0x036, 0x048:
		// Mahjong Kyo Retsuden, Minasan no Okagesamadesu!, Bakatonosama
		// Mahjong Manyuuki, Janshin Densetsu
		res.Mahjong = true
		return NewDefault(roms.P), res, nil

	case 0x047, 0x052: // Fatal Fury 2, Super Sidekicks
		return NewPROCT0(roms.P), res, nil

	case 0x066: // Digger Man (prototype) / Karnov's Revenge
		if psz < 0x100000 && sys == SystemAES {
			return nil, res, curated.Errorf(curated.UnsupportedTitle, "Digger Man prototype: MVS/Universe BIOS only")
		}
		return NewDefault(roms.P), res, nil

	case 0x080: // Quiz King of Fighters
		if regionUS && sys == SystemMVS {
			return nil, res, curated.Errorf(curated.UnsupportedTitle, "Quiz King of Fighters: incompatible with US MVS")
		}
		return NewDefault(roms.P), res, nil

	case 0x236: // The Irritating Maze
		res.IrritatingMaze = true
		return NewDefault(roms.P), res, nil

	case 0x242: // KOF 98
		return NewKOF98(roms.P), res, nil

	case 0x250: // Metal Slug X
		return NewMSlugX(roms.P, ram), res, nil

	case 0x151, 0x251: // KOF 99
		if psz > 0x500000 {
			return NewSMA(roms.P, SMAKOF99), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x253: // Garou - Mark of the Wolves
		b := heuristicByte(roms.NEOData, 0xc1000+0x3e481)
		switch b {
		case 0x9f: // NEO-SMA KE (AES)
			res.FixBanksw = FixBankswLine
			return NewSMA(roms.P, SMAGarouH), res, nil
		case 0x41: // NEO-SMA KF (MVS)
			res.FixBanksw = FixBankswLine
			return NewSMA(roms.P, SMAGarou), res, nil
		}
		// bootleg and prototype sets: no SMA protection, no fix bankswitching
		return NewDefault(roms.P), res, nil

	case 0x256: // Metal Slug 3
		res.FixBanksw = FixBankswLine
		if psz > 0x500000 {
			if heuristicByte(roms.NEOData, 0x1000+0x141) == 0x33 {
				return NewSMA(roms.P, SMAMSlug3a), res, nil
			}
			return NewSMA(roms.P, SMAMSlug3), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x257: // KOF 2000
		res.FixBanksw = FixBankswTile
		if psz > 0x500000 {
			return NewSMA(roms.P, SMAKOF2000), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x263: // Metal Slug 4
		if heuristicByte(roms.NEOData, 0x1000+0x809) != 0x0c {
			res.FixBanksw = FixBankswLine
		} else if sys == SystemAES {
			return nil, res, curated.Errorf(curated.UnsupportedTitle, "Metal Slug 4 Plus: MVS/Universe BIOS only")
		}
		return NewDefault(roms.P), res, nil

	case 0x266: // Matrimelee
		if heuristicByte(roms.NEOData, 0x1000+0x500088) == 0x22 { // matrimbl
			fixMatrimeleeFixData(roms.S, roms.C)
		}
		res.FixBanksw = FixBankswTile
		return NewDefault(roms.P), res, nil

	case 0x268: // Metal Slug 5
		if heuristicByte(roms.NEOData, 0x1000+0x26b) == 0xb9 { // Metal Slug 5 Plus
			if sys == SystemAES {
				return nil, res, curated.Errorf(curated.UnsupportedTitle, "Metal Slug 5 Plus: MVS/Universe BIOS only")
			}
			return NewMS5Plus(roms.P), res, nil
		}
		if heuristicByte(roms.NEOData, 0x1000+0x267) == 0x4f { // official release
			return NewPVC(roms.P), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x269: // SNK vs. Capcom - SVC Chaos
		if heuristicByte(roms.NEOData, 0x1000+0x9e91) == 0x0f { // MVS-only bootlegs
			if sys == SystemAES {
				return nil, res, curated.Errorf(curated.UnsupportedTitle, "SVC Chaos bootleg: MVS/Universe BIOS only")
			}
		}
		if heuristicByte(roms.NEOData, 0x1000+0x3d25) == 0xc4 { // official release only
			res.FixBanksw = FixBankswTile
		}
		if heuristicByte(roms.NEOData, 0x1000+0x2f8f) == 0xc0 {
			return NewPVC(roms.P), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x271: // KOF 2003
		if heuristicByte(roms.NEOData, 0x1000+0x689) == 0x10 { // kf2k3bla/kf2k3pl
			return NewKF2K3BLA(roms.P), res, nil
		}
		if heuristicByte(roms.NEOData, 0x1000+0xc1) == 0x02 { // kf2k3bl/kf2k3upl
			return NewKF2K3BL(roms.P), res, nil
		}
		res.FixBanksw = FixBankswTile
		return NewPVC(roms.P), res, nil

	case 0x275: // The King of Fighters 10th Anniversary
		if sys == SystemAES {
			return nil, res, curated.Errorf(curated.UnsupportedTitle, "KOF 10th Anniversary bootleg: MVS/Universe BIOS only")
		}
		if heuristicByte(roms.NEOData, 0x1000+0x125) == 0x00 {
			return NewKOF10th(roms.P), res, nil
		}
		return NewDefault(roms.P), res, nil

	case 0x3e7, 0x999: // V-Liner
		res.VLiner = true
		return NewBrezzaSoft(roms.P, vliner), res, nil

	case 0x5003: // Crouching Tiger Hidden Dragon bootlegs
		if sys == SystemAES {
			return nil, res, curated.Errorf(curated.UnsupportedTitle, "Crouching Tiger Hidden Dragon bootleg: MVS/Universe BIOS only")
		}
		if heuristicByte(roms.NEOData, 0x1000+0x30d9) != 0x03 { // not Super Plus Alternative
			return NewCTHD2003(roms.P), res, nil
		}
		return NewDefault(roms.P), res, nil
	}

	return NewDefault(roms.P), res, nil
}

func heuristicByte(neodata []uint8, offset int) uint8 {
	if offset < 0 || offset >= len(neodata) {
		return 0
	}
	return neodata[offset]
}

// fixMatrimeleeFixData re-derives S ROM's fix layer data from the tail
// of C ROM. TerraOnion's NeoBuilder tool (and most other conversion
// tools) decrypt this incorrectly for the matrimbl bootleg set; this
// reproduces the correct bit-scramble directly from raw C ROM.
func fixMatrimeleeFixData(s, c []uint8) {
	tail := c[len(c)-len(s):]
	for i := range s {
		idx := (i &^ 0x1f) + ((i & 0x07) << 2) + ((^i & 0x08) >> 2) + ((i & 0x10) >> 4)
		s[i] = tail[idx]
	}
}
