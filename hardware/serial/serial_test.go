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

package serial_test

import (
	"testing"

	"github.com/jetsetilly/neogeo/hardware/serial"
	"github.com/jetsetilly/neogeo/test"
)

func TestScalarRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := serial.NewWriter(buf)

	w.Push8(0x42)
	w.Push16(0xcafe)
	w.Push32(0xdeadbeef)
	w.Push64(0x0102030405060708)

	r := serial.NewReader(buf)
	test.ExpectEquality(t, r.Pop8(), uint8(0x42))
	test.ExpectEquality(t, r.Pop16(), uint16(0xcafe))
	test.ExpectEquality(t, r.Pop32(), uint32(0xdeadbeef))
	test.ExpectEquality(t, r.Pop64(), uint64(0x0102030405060708))
}

func TestBlockRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := serial.NewWriter(buf)

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	w.PushBlock(src)
	test.ExpectEquality(t, w.Size(), len(src))

	dst := make([]byte, len(src))
	r := serial.NewReader(buf)
	r.PopBlock(dst)
	test.ExpectEquality(t, dst, src)
}

func TestBigEndianWireFormat(t *testing.T) {
	buf := make([]byte, 4)
	w := serial.NewWriter(buf)
	w.Push32(0x01020304)
	test.ExpectEquality(t, buf, []byte{0x01, 0x02, 0x03, 0x04})
}

func TestCursorResets(t *testing.T) {
	buf := make([]byte, 8)
	w := serial.NewWriter(buf)
	w.Push32(1)
	w.Begin()
	test.ExpectEquality(t, w.Size(), 0)
	w.Push32(2)
	test.ExpectEquality(t, w.Size(), 4)
}
