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

package vcs_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/cartridge"
	"github.com/retrocore/vcs2600/hardware/clocks"
	"github.com/retrocore/vcs2600/hardware/vcs"
)

func newConsole(t *testing.T, program []byte) *vcs.VCS {
	t.Helper()
	data := make([]byte, cartridge.Size4K)
	copy(data, program)
	data[0xffc] = 0x00
	data[0xffd] = 0xf0 // reset vector -> 0xf000 (== cartridge offset 0x000)
	cart, err := cartridge.NewFromBytes(data)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	v := vcs.New(cart, clocks.NTSC*1e6, 44100, nil)
	if err := v.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return v
}

func TestResetEntersCartridgeVector(t *testing.T) {
	v := newConsole(t, []byte{0xea}) // NOP
	if v.CPU.Registers.PC != 0xf000 {
		t.Fatalf("PC after reset = %#04x, want 0xf000", v.CPU.Registers.PC)
	}
}

func TestWSYNCFastForwardsToNextLine(t *testing.T) {
	// STA WSYNC ($02, TIA write register 2, masked address 0x02 in
	// zero-page/TIA space) then an infinite loop (JMP back to itself)
	// so a single Step call has to actually perform the fast-forward.
	v := newConsole(t, []byte{
		0xa9, 0x00, // LDA #$00
		0x85, 0x02, // STA $02 (WSYNC)
		0x4c, 0x04, 0xf0, // JMP $f004: jumps to itself (infinite loop marker)
	})

	if _, err := v.Step(); err != nil { // LDA
		t.Fatalf("Step (LDA): %v", err)
	}
	startClk := v.TIA.Clk
	if _, err := v.Step(); err != nil { // STA WSYNC
		t.Fatalf("Step (STA WSYNC): %v", err)
	}
	if v.TIA.Hclock != 0 {
		t.Fatalf("Hclock after WSYNC fast-forward = %d, want 0", v.TIA.Hclock)
	}
	if v.TIA.Clk <= startClk+4 {
		t.Fatalf("WSYNC did not appear to fast-forward: clk advanced by only %d", v.TIA.Clk-startClk)
	}
}
