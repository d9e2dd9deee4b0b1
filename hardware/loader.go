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
	"encoding/binary"
	"strings"

	"github.com/jetsetilly/neogeo/cartridgeloader"
	"github.com/jetsetilly/neogeo/curated"
	"github.com/jetsetilly/neogeo/hardware/cartridge"
	"github.com/jetsetilly/neogeo/hardware/lspc"
	"github.com/jetsetilly/neogeo/hardware/m68k"
	"github.com/jetsetilly/neogeo/logger"
)

const (
	neoHeaderSize = 4096
	neoMagic      = "NEO\x01"
)

// NEOHeader is the fixed 4096-byte NEO container preamble: the six ROM
// segment sizes plus the catalogue metadata a front-end shows in a game
// list.
type NEOHeader struct {
	PSize, SSize, MSize, V1Size, V2Size, CSize uint32
	Year                                       uint32
	Genre                                      uint32
	Screenshot                                 uint32
	NGH                                        uint32
	Name                                       string
	Manufacturer                               string
}

// NEOImage is a fully parsed NEO container: the header plus every ROM
// segment sliced out of the payload that follows it.
type NEOImage struct {
	Header             NEOHeader
	Raw                []uint8 // the whole container, header included; Detect reads heuristic bytes from this
	P, S, M, V1, V2, C []uint8
}

// LoadNEO parses a raw NEO cartridge container (spec.md §6). If the V2
// segment size is zero the V1 slice is reused as V2, matching titles
// whose ADPCM-A and ADPCM-B samples share one ROM and so are stored only
// once.
func LoadNEO(data []uint8) (NEOImage, error) {
	if len(data) < neoHeaderSize || string(data[0:4]) != neoMagic {
		return NEOImage{}, curated.Errorf(curated.InvalidNEOHeader, "missing NEO magic")
	}

	le := binary.LittleEndian
	h := NEOHeader{
		PSize:      le.Uint32(data[4:8]),
		SSize:      le.Uint32(data[8:12]),
		MSize:      le.Uint32(data[12:16]),
		V1Size:     le.Uint32(data[16:20]),
		V2Size:     le.Uint32(data[20:24]),
		CSize:      le.Uint32(data[24:28]),
		Year:       le.Uint32(data[28:32]),
		Genre:      le.Uint32(data[32:36]),
		Screenshot: le.Uint32(data[36:40]),
		NGH:        le.Uint32(data[40:44]),
	}
	h.Name = strings.TrimRight(string(data[44:77]), "\x00")
	h.Manufacturer = strings.TrimRight(string(data[77:94]), "\x00")

	payload := data[neoHeaderSize:]
	total := uint64(h.PSize) + uint64(h.SSize) + uint64(h.MSize) + uint64(h.V1Size) + uint64(h.V2Size) + uint64(h.CSize)
	if uint64(len(payload)) < total {
		return NEOImage{}, curated.Errorf(curated.InvalidNEOHeader, "payload shorter than declared ROM sizes")
	}

	img := NEOImage{Header: h, Raw: data}
	var off uint32
	take := func(sz uint32) []uint8 {
		s := payload[off : off+sz]
		off += sz
		return s
	}

	img.P = take(h.PSize)
	img.S = take(h.SSize)
	img.M = take(h.MSize)
	img.V1 = take(h.V1Size)
	if h.V2Size == 0 {
		img.V2 = img.V1
	} else {
		img.V2 = take(h.V2Size)
	}
	img.C = take(h.CSize)

	return img, nil
}

// biosMember picks the system ROM archive member for the given BIOS
// family, honouring the US region flag for both AES and MVS.
func biosMember(sys cartridge.System, regionUS bool) string {
	if sys == cartridge.SystemAES {
		if regionUS {
			return cartridgeloader.BIOSSPU2
		}
		return cartridgeloader.BIOSSPS2
	}
	if regionUS {
		return cartridgeloader.BIOSNeoPO
	}
	return cartridgeloader.BIOSNeoEPO
}

// LoadBIOS extracts the region-appropriate system ROM, the shared L0
// sprite zoom table (handed to LSPC) and, for MVS, the board's own fix
// and sound driver ROMs from a BIOS ZIP archive, ready for LoadCartridge
// to combine with the cartridge's own ROMs.
func (s *System) LoadBIOS(archive string, sys cartridge.System, regionUS bool) error {
	extract, closeArchive, err := cartridgeloader.OpenBIOSArchive(archive)
	if err != nil {
		return err
	}
	defer closeArchive()

	sp, err := extract(biosMember(sys, regionUS))
	if err != nil {
		return err
	}

	lo, err := extract(cartridgeloader.BIOSCartFixLO)
	if err != nil {
		return err
	}

	s.region = sys
	s.isMVS = sys == cartridge.SystemMVS
	s.bios = sp
	s.LSPC.SetL0ROM(lo)

	if s.isMVS {
		sfix, err := extract(cartridgeloader.BIOSSFix)
		if err != nil {
			return err
		}
		s.LSPC.SetBoardFix(sfix)

		sm1, err := extract(cartridgeloader.BIOSSM1)
		if err != nil {
			return err
		}
		s.biosM1 = sm1
	}

	logger.Logf("loader", "BIOS loaded (%s, MVS=%v)", archive, s.isMVS)
	return nil
}

// LoadCartridge detects the board controller for img, wires its ROMs
// into LSPC and the Z80 sound bus, and builds the 68000 bus. LoadBIOS
// must be called first.
func (s *System) LoadCartridge(img NEOImage, regionUS bool, cartRAM []uint8) error {
	firstLoad := s.m68kBus == nil

	roms := cartridge.ROMSet{
		NEOData: img.Raw,
		P:       img.P,
		S:       img.S,
		C:       img.C,
	}

	ctrl, res, err := cartridge.Detect(roms, img.Header.NGH, s.region, regionUS, cartRAM, nil)
	if err != nil {
		return err
	}
	s.Cart = ctrl

	s.LSPC.SetCROM(img.C)
	s.LSPC.SetCartFix(img.S)
	s.LSPC.SetFixBanksw(res.FixBanksw)
	s.LSPC.SetFixSource(true)
	if dyn, ok := ctrl.(lspc.DynFix); ok {
		s.LSPC.SetCartFix(dyn.DynFix())
	}

	zrom := img.M
	if len(zrom) == 0 {
		zrom = s.biosM1
	}
	s.z80Bus.SetROM(zrom)

	s.m68kBus = m68k.NewBus(s.Cart, s.RTC, s.LSPC, s.Input, s.Latch, s, s, s.bios, s.isMVS)
	if firstLoad {
		s.FormatMemcard()
	}

	s.watchdogCounter = watchdogFrameLimit

	logger.Logf("loader", "cartridge loaded: %q (NGH %03x)", strings.TrimSpace(img.Header.Name), img.Header.NGH)
	return nil
}
