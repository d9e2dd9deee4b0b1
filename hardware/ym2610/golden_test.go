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

package ym2610

import (
	"os"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
	youpywav "github.com/youpy/go-wav"

	"github.com/jetsetilly/neogeo/hardware/clocks"
	"github.com/jetsetilly/neogeo/hardware/serial"
)

const sampleRateForTest = clocks.SampleRateYM2610

// stubFM is a minimal FM black box: it reports a fixed, deterministic
// waveform and honors timer expiry/status just enough to exercise
// Engine's IRQ routing.
type stubFM struct {
	phase  int32
	timerA bool
}

func (s *stubFM) Write(addr uint16, data uint8) {}
func (s *stubFM) Status() uint8 {
	if s.timerA {
		return StatusTimerA
	}
	return 0
}
func (s *stubFM) TimerExpired(n int) {
	if n == 0 {
		s.timerA = true
	}
}
func (s *stubFM) Clock() (int32, int32) {
	s.phase += 256
	return s.phase, -s.phase
}
func (s *stubFM) Reset()                          { s.phase, s.timerA = 0, false }
func (s *stubFM) SaveState(w *serial.Writer)      { w.Push32(uint32(s.phase)) }
func (s *stubFM) RestoreState(r *serial.Reader)   { s.phase = int32(r.Pop32()) }

type stubADPCMA struct{ eos uint8 }

func (s *stubADPCMA) Write(reg, data uint8)        {}
func (s *stubADPCMA) Clock() bool                  { return false }
func (s *stubADPCMA) EOS() uint8                   { return s.eos }
func (s *stubADPCMA) Reset()                       { s.eos = 0 }
func (s *stubADPCMA) SaveState(w *serial.Writer)   { w.Push8(s.eos) }
func (s *stubADPCMA) RestoreState(r *serial.Reader) { s.eos = r.Pop8() }

type stubADPCMB struct{ live bool }

func (s *stubADPCMB) Write(reg, data uint8)         {}
func (s *stubADPCMB) Clock()                        {}
func (s *stubADPCMB) EOS() bool                     { return s.live }
func (s *stubADPCMB) Reset()                        { s.live = false }
func (s *stubADPCMB) SaveState(w *serial.Writer)    { w.Push8(boolToByte(s.live)) }
func (s *stubADPCMB) RestoreState(r *serial.Reader) { s.live = r.Pop8() != 0 }

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

type stubSSG struct{ v int32 }

func (s *stubSSG) Read(reg uint8) uint8        { return 0 }
func (s *stubSSG) Write(reg, data uint8)       {}
func (s *stubSSG) Clock() int32                { s.v += 17; return s.v % 4000 }
func (s *stubSSG) Reset()                      { s.v = 0 }
func (s *stubSSG) SaveState(w *serial.Writer)  { w.Push32(uint32(s.v)) }
func (s *stubSSG) RestoreState(r *serial.Reader) { s.v = int32(r.Pop32()) }

type stubIRQ struct {
	asserted bool
	vector   uint8
}

func (s *stubIRQ) AssertIRQ(vector uint8) { s.asserted, s.vector = true, vector }
func (s *stubIRQ) ClearIRQ()              { s.asserted = false }

func newTestEngine() *Engine {
	return NewEngine(&stubIRQ{}, &stubFM{}, &stubADPCMA{}, &stubADPCMB{}, &stubSSG{}, false)
}

// TestExecProducesSamples checks that Exec produces a non-silent,
// clamped stereo stream and that the busy flag set by a register write
// eventually clears.
func TestExecProducesSamples(t *testing.T) {
	e := newTestEngine()

	e.Write(0x04, 0x28) // address-low: FM key-on register
	e.Write(0x05, 0x01) // data-low
	require.True(t, e.isBusy())

	var sawNonZero bool
	for i := 0; i < 4096; i++ {
		l, r := e.Exec()
		if l != 0 || r != 0 {
			sawNonZero = true
		}
	}
	require.True(t, sawNonZero)
	require.False(t, e.isBusy(), "busy flag should clear within 4096 sample ticks")
}

// TestTimerIRQRouting checks that a timer reaching zero asserts the Z80
// IRQ line through Engine.checkInterrupts, and that the EOS-reset
// register (0x1c) masks a bit of the extended status port when 1 is
// written to it.
func TestTimerIRQRouting(t *testing.T) {
	e := newTestEngine()
	irq := e.irq.(*stubIRQ)

	e.setTimer(0, 0)
	e.Exec()
	require.True(t, irq.asserted)
	require.Equal(t, uint8(0), irq.vector)

	e.adpcmA.(*stubADPCMA).eos = 0x01
	e.eosStatus |= 0x01
	e.flagMask = 0xff
	require.Equal(t, uint8(0x01), e.Read(0x06))

	e.Write(0x04, 0x1c)
	e.Write(0x05, 0x01) // mask bit 0
	require.Equal(t, uint8(0), e.Read(0x06))
}

// TestWAVRoundTrip renders a short buffer of Engine output, encodes it
// with go-audio/wav, decodes it back, and checks the round trip is
// sample-exact. This is test tooling standing in for comparison against
// a reference capture of the real chip; no golden fixture ships with
// this module.
func TestWAVRoundTrip(t *testing.T) {
	e := newTestEngine()

	const n = 1024
	data := make([]int, n*2)
	for i := 0; i < n; i++ {
		l, r := e.Exec()
		data[i*2] = int(l)
		data[i*2+1] = int(r)
	}

	f, err := os.CreateTemp(t.TempDir(), "ym2610-*.wav")
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRateForTest, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRateForTest},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())

	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	dec := wav.NewDecoder(f)
	out, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Equal(t, len(data), len(out.Data))
	require.Equal(t, data, out.Data)
}

// TestWAVRoundTripYoupy exercises the alternative youpy/go-wav codec
// path against the same rendered samples, independent of go-audio/wav.
func TestWAVRoundTripYoupy(t *testing.T) {
	e := newTestEngine()

	const n = 256
	type pair struct{ l, r int16 }
	samples := make([]pair, n)
	for i := range samples {
		l, r := e.Exec()
		samples[i] = pair{l, r}
	}

	f, err := os.CreateTemp(t.TempDir(), "ym2610-youpy-*.wav")
	require.NoError(t, err)
	defer f.Close()

	w := youpywav.NewWriter(f, uint32(n), 2, sampleRateForTest, 16)
	ws := make([]youpywav.Sample, n)
	for i, s := range samples {
		ws[i].Values[0] = int(s.l)
		ws[i].Values[1] = int(s.r)
	}
	require.NoError(t, w.WriteSamples(ws))

	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	r := youpywav.NewReader(f)
	got, err := r.ReadSamples(uint32(n))
	require.NoError(t, err)
	require.Len(t, got, n)
	for i, s := range samples {
		require.Equal(t, int(s.l), got[i].Values[0])
		require.Equal(t, int(s.r), got[i].Values[1])
	}
}
