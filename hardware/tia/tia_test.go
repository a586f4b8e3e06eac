// This file is part of vcs2600.
//
// vcs2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcs2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcs2600.  If not, see <https://www.gnu.org/licenses/>.

package tia_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/tia"
)

type fakeSink struct {
	frames int
	last   *[262][228]uint8
}

func (f *fakeSink) NewFrame(fb *[262][228]uint8, _ float64) {
	f.frames++
	cp := *fb
	f.last = &cp
}

func newTIA() *tia.TIA {
	return tia.New(3*1193182, 44100, 512)
}

func pumpLines(t *tia.TIA, lines int) {
	for i := 0; i < lines*228; i++ {
		t.Pump()
	}
}

func TestVSYNCFrameDelivery(t *testing.T) {
	vcs := newTIA()
	sink := &fakeSink{}
	vcs.FrameSink = sink

	vcs.Write(0x00, 0x02) // VSYNC rising edge
	pumpLines(vcs, 3)
	vcs.Write(0x00, 0x00) // VSYNC falling edge

	if sink.frames != 1 {
		t.Fatalf("got %d frames delivered, want 1", sink.frames)
	}
	if vcs.Scanline != 0 {
		t.Fatalf("scanline after falling edge = %d, want 0", vcs.Scanline)
	}
}

func TestBackgroundFillAndHBlank(t *testing.T) {
	vcs := newTIA()
	vcs.Write(0x09, 0x1c) // COLUBK

	for i := 0; i < 228; i++ {
		vcs.Pump()
	}

	fb := vcs.Framebuffer()
	for x := 0; x < 68; x++ {
		if fb[0][x] != 0x00 {
			t.Fatalf("HBLANK column %d = %#02x, want 0x00", x, fb[0][x])
		}
	}
	for x := 68; x < 228; x++ {
		if fb[0][x] != 0x1c {
			t.Fatalf("visible column %d = %#02x, want 0x1c", x, fb[0][x])
		}
	}
}

func TestRESP0OutsideHBlankLatency(t *testing.T) {
	vcs := newTIA()
	// advance to CPU cycle 23 of the scanline (pixel clock 69), just
	// outside HBLANK
	for i := 0; i < 23*3; i++ {
		vcs.Pump()
	}
	vcs.Write(0x10, 0x00) // RESP0: reset_timer=5 outside HBLANK

	// See video.Counter's Advance doc and DESIGN.md: the reset_timer==0
	// check runs before the decrement, so the actual reset lands on the
	// (latency+1)th pump call after the strobe.
	for i := 0; i < 6; i++ {
		vcs.Pump()
	}
	if vcs.P0.Value != 0 {
		t.Fatalf("P0 counter after RESP0 outside HBLANK = %d, want 0", vcs.P0.Value)
	}
}

func TestCollisionLatchAndClear(t *testing.T) {
	vcs := newTIA()
	vcs.Write(0x0d, 0xf0) // PF0: left nybble all on -> playfield bit 0..3 set
	vcs.Write(0x0b, 0x00) // REFP0 clear
	vcs.Write(0x04, 0x00) // NUSIZ0: one copy, normal width
	vcs.Write(0x1b, 0xff) // GRP0: all pixels on

	// strobe RESP0 partway through the line so P0's counter passes
	// through 0..7 (and so lines up with the playfield's first group,
	// PF0's top nybble) while the pump is still evaluating this line.
	for i := 0; i < 70; i++ {
		vcs.Pump()
	}
	vcs.Write(0x10, 0x00) // RESP0
	for i := 0; i < 3; i++ {
		vcs.Pump()
	}

	// finish the line so playfield/player collision is evaluated at
	// least once while both are active.
	for i := 0; i < 160; i++ {
		vcs.Pump()
	}

	cx := vcs.Read(0x02) // CXP0FB
	if cx&0x80 == 0 {
		t.Fatalf("expected CXP0FB bit 7 (P0/PF collision) to be set, got %#02x", cx)
	}

	vcs.Write(0x2c, 0x00) // CXCLR
	if got := vcs.Read(0x02); got != 0 {
		t.Fatalf("CXP0FB after CXCLR = %#02x, want 0", got)
	}
}

func TestHMCLRThenHMOVEMatchesNoHMOVE(t *testing.T) {
	a := newTIA()
	b := newTIA()

	a.Write(0x20, 0x70) // HMP0 = 0x70 (motion -7)
	a.Write(0x2b, 0x00) // HMCLR: zero it back out
	a.Write(0x2a, 0x00) // HMOVE

	// b never had any motion set and never strobes HMOVE.
	for i := 0; i < 228; i++ {
		a.Pump()
		b.Pump()
	}

	if a.P0.Value != b.P0.Value {
		t.Fatalf("HMCLR-then-HMOVE P0 = %d, plain P0 = %d; want equal", a.P0.Value, b.P0.Value)
	}
}

func TestBeamInvariant(t *testing.T) {
	vcs := newTIA()
	for i := 0; i < 228*262*3; i++ {
		vcs.Pump()
		if vcs.Hclock < 0 || vcs.Hclock >= 228 {
			t.Fatalf("horizontal_clock out of range: %d", vcs.Hclock)
		}
		if vcs.Scanline < 0 || vcs.Scanline >= 262 {
			t.Fatalf("scanline out of range: %d", vcs.Scanline)
		}
	}
}
