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

package cartridge_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/cartridge"
)

func TestUnsupportedSize(t *testing.T) {
	_, err := cartridge.NewFromBytes(make([]byte, 100))
	if err == nil {
		t.Fatal("expected an error for an unsupported ROM size")
	}
}

func TestWraparound2K(t *testing.T) {
	data := make([]byte, cartridge.Size2K)
	data[0x1ffc&(cartridge.Size2K-1)] = 0x34
	data[0x1ffd&(cartridge.Size2K-1)] = 0x12
	c, err := cartridge.NewFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.Read(0x1ffc); got != 0x34 {
		t.Fatalf("got %#02x, want 0x34", got)
	}
	// 0x1ffc + 0x0800 wraps back onto the same 2K image.
	if got := c.Read(0x1ffc + cartridge.Size2K); got != 0x34 {
		t.Fatalf("wraparound read got %#02x, want 0x34", got)
	}
	if got := c.ResetVector(); got != 0x1234 {
		t.Fatalf("reset vector got %#04x, want 0x1234", got)
	}
}

func TestRomWritesIgnored(t *testing.T) {
	c, err := cartridge.NewFromBytes(make([]byte, cartridge.Size4K))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0, 0xff)
	if got := c.Read(0); got != 0 {
		t.Fatalf("write to ROM should be a no-op, got %#02x", got)
	}
}
