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

// Package soundlatch is the one-byte-each-way mailbox the 68000 and Z80
// share to request and acknowledge sound commands: the 68000 writes a
// code and pulses the Z80's NMI line, the Z80 reads the code off port
// 0x00 and replies by writing port 0x0c, which the 68000 reads back at
// 0x320000.
package soundlatch

import "github.com/jetsetilly/neogeo/hardware/serial"

// Latch holds both halves of the mailbox. It satisfies both the m68k
// bus's and the z80 bus's narrower latch interfaces.
type Latch struct {
	code  uint8
	reply uint8
}

// NewLatch creates an empty Latch.
func NewLatch() *Latch {
	return &Latch{}
}

// SoundCode returns the code most recently written by the 68000.
func (l *Latch) SoundCode() uint8 { return l.code }

// SetSoundCode stores a code written by the 68000.
func (l *Latch) SetSoundCode(v uint8) { l.code = v }

// SoundReply returns the reply most recently written by the Z80.
func (l *Latch) SoundReply() uint8 { return l.reply }

// SetSoundReply stores a reply written by the Z80.
func (l *Latch) SetSoundReply(v uint8) { l.reply = v }

// SaveState appends the latch's two bytes to w.
func (l *Latch) SaveState(w *serial.Writer) {
	w.Push8(l.code)
	w.Push8(l.reply)
}

// RestoreState reads the two bytes written by SaveState.
func (l *Latch) RestoreState(r *serial.Reader) {
	l.code = r.Pop8()
	l.reply = r.Pop8()
}
