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

package memory_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/cartridge"
	"github.com/retrocore/vcs2600/hardware/memory"
	"github.com/retrocore/vcs2600/hardware/riot"
	"github.com/retrocore/vcs2600/hardware/tia"
)

func newMem(t *testing.T) *memory.VCSMemory {
	t.Helper()
	data := make([]byte, cartridge.Size4K)
	data[0xffc] = 0x00
	data[0xffd] = 0xf0 // reset vector -> 0xf000
	cart, err := cartridge.NewFromBytes(data)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	return memory.New(cart, tia.New(3*1193182, 44100, 512), riot.New(nil))
}

func assertRead(t *testing.T, m *memory.VCSMemory, address uint16, want uint8) {
	t.Helper()
	got, err := m.Read(address)
	if err != nil {
		t.Fatalf("Read(%#04x): %v", address, err)
	}
	if got != want {
		t.Errorf("Read(%#04x) = %#02x, want %#02x", address, got, want)
	}
}

func TestROMRegion(t *testing.T) {
	m := newMem(t)
	assertRead(t, m, 0xfffd, 0xf0)

	if err := m.Write(0xfffd, 0xff); err != nil {
		t.Fatalf("Write to ROM returned error: %v", err)
	}
	assertRead(t, m, 0xfffd, 0xf0) // write silently ignored
}

func TestRAMRegion(t *testing.T) {
	m := newMem(t)
	// 0x080 selects RAM; 0x00-0x7f is the RAM window.
	if err := m.Write(0x0080, 0x42); err != nil {
		t.Fatalf("Write: %v", err)
	}
	assertRead(t, m, 0x0080, 0x42)
	// mirrored RAM address (same addr&0x7f) reads the same byte.
	assertRead(t, m, 0x0100|0x080, 0x42)
}

func TestTIARegion(t *testing.T) {
	m := newMem(t)
	if err := m.Write(0x0009, 0x1e); err != nil { // COLUBK
		t.Fatalf("Write: %v", err)
	}
	// reading back goes through the TIA's 4-bit read decode, which does
	// not expose COLUBK; this only confirms the write landed on the TIA
	// rather than RAM or RIOT by checking a masked read register it does
	// define (CXM0P, which starts cleared).
	assertRead(t, m, 0x0000, 0x00)
}

func TestRIOTRegion(t *testing.T) {
	m := newMem(t)
	if err := m.Write(0x0296, 0x05); err != nil { // 0x296&0x280==0x280, &0x1f==0x16 (TIM64T)
		t.Fatalf("Write: %v", err)
	}
	// INTIM starts high immediately after a TIM64T write of 5 (no ticks
	// have run yet).
	assertRead(t, m, 0x0284, 0x05) // 0x284&0x1f == 0x04 (INTIM)
}

func TestPeekRefusesChipRegisters(t *testing.T) {
	m := newMem(t)
	if _, err := m.Peek(0x0284); err == nil {
		t.Fatalf("Peek into RIOT register space: want error, got nil")
	}
}
