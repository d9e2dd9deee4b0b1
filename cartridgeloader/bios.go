// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/jetsetilly/neogeo/curated"
)

// Recognised BIOS archive member names. The loader picks the one matching
// the configured region/system; a missing member aborts the load.
const (
	BIOSNeoPO    = "neo-po.bin"     // US MVS
	BIOSNeoEPO   = "neo-epo.bin"    // EU MVS
	BIOSJapanJ3  = "japan-j3.bin"   // JP MVS
	BIOSSPU2     = "sp-u2.sp1"      // US AES
	BIOSSPS2     = "sp-s2.sp1"      // JP AES
	BIOSSP45     = "sp-45.sp1"      // AS AES
	BIOSUniBIOS4 = "uni-bios_4_0.rom"

	BIOSCartFixLO = "000-lo.lo"   // mandatory, all systems
	BIOSSFix      = "sfix.sfix"   // MVS/Universe only
	BIOSSM1       = "sm1.sm1"     // MVS/Universe only
)

// OpenBIOSArchive opens filename as a ZIP archive and returns a function
// that extracts a single named member. Every extraction re-opens the
// member stream; callers close the returned closer when done with the
// archive.
func OpenBIOSArchive(filename string) (extract func(member string) ([]byte, error), closeArchive func() error, err error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, nil, curated.Errorf("load: %v", err)
	}

	extract = func(member string) ([]byte, error) {
		for _, f := range r.File {
			if f.Name == member {
				rc, err := f.Open()
				if err != nil {
					return nil, curated.Errorf("load: %v", err)
				}
				defer rc.Close()

				data, err := io.ReadAll(rc)
				if err != nil {
					return nil, curated.Errorf("load: %v", err)
				}
				return data, nil
			}
		}
		return nil, curated.Errorf("load: missing BIOS archive member: %v", fmt.Sprintf("%q", member))
	}

	return extract, r.Close, nil
}
