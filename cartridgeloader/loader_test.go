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

package cartridgeloader_test

import (
	"testing"

	"github.com/jetsetilly/neogeo/cartridgeloader"
	"github.com/jetsetilly/neogeo/test"
)

func TestNewLoaderFromFilenameRejectsEmpty(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromFilename("   ")
	test.ExpectFailure(t, err)
}

func TestNewLoaderFromDataRejectsEmpty(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromData("kof98", []byte{})
	test.ExpectFailure(t, err)

	_, err = cartridgeloader.NewLoaderFromData("", []byte{1, 2, 3})
	test.ExpectFailure(t, err)
}

func TestNewLoaderFromDataHashesImmediately(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("kof98", []byte{1, 2, 3, 4})
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, ld.HashSHA1, "")
	test.ExpectInequality(t, ld.HashMD5, "")
}

func TestNameFromFilename(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NameFromFilename("kof98.neo"), "kof98")
	test.ExpectEquality(t, cartridgeloader.NameFromFilename("/roms/mslug.NEO"), "mslug")
	test.ExpectEquality(t, cartridgeloader.NameFromFilename("bios.zip"), "bios")
	test.ExpectEquality(t, cartridgeloader.NameFromFilename("readme.txt"), "readme.txt")
}

func TestOpenReadsDataIntoLoader(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("kof98", []byte{0xde, 0xad, 0xbe, 0xef})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ld.Open())

	buf := make([]byte, 4)
	n, err := ld.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, buf, []byte{0xde, 0xad, 0xbe, 0xef})
}
