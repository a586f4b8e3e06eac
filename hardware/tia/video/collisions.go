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

package video

// Collisions holds the eight sticky collision-read registers. Bits only
// ever transition 0->1 until Clear (CXCLR) is called (spec.md §4.7,
// §8). Bit assignments match the real TIA hardware layout.
type Collisions struct {
	CXM0P  uint8
	CXM1P  uint8
	CXP0FB uint8
	CXP1FB uint8
	CXM0FB uint8
	CXM1FB uint8
	CXBLPF uint8
	CXPPMM uint8
}

// Masks is the six 1-bit object masks evaluated for one pixel.
type Masks struct {
	P0, P1, M0, M1, BL, PF bool
}

// Update ORs in any new collisions found among the six masks for this
// pixel. Existing bits are never cleared here.
func (c *Collisions) Update(m Masks) {
	if m.M0 && m.P1 {
		c.CXM0P |= 0x80
	}
	if m.M0 && m.P0 {
		c.CXM0P |= 0x40
	}
	if m.M1 && m.P0 {
		c.CXM1P |= 0x80
	}
	if m.M1 && m.P1 {
		c.CXM1P |= 0x40
	}
	if m.P0 && m.PF {
		c.CXP0FB |= 0x80
	}
	if m.P0 && m.BL {
		c.CXP0FB |= 0x40
	}
	if m.P1 && m.PF {
		c.CXP1FB |= 0x80
	}
	if m.P1 && m.BL {
		c.CXP1FB |= 0x40
	}
	if m.M0 && m.PF {
		c.CXM0FB |= 0x80
	}
	if m.M0 && m.BL {
		c.CXM0FB |= 0x40
	}
	if m.M1 && m.PF {
		c.CXM1FB |= 0x80
	}
	if m.M1 && m.BL {
		c.CXM1FB |= 0x40
	}
	if m.BL && m.PF {
		c.CXBLPF |= 0x80
	}
	if m.P0 && m.P1 {
		c.CXPPMM |= 0x80
	}
	if m.M0 && m.M1 {
		c.CXPPMM |= 0x40
	}
}

// Clear zeroes all eight collision-read registers (CXCLR).
func (c *Collisions) Clear() {
	*c = Collisions{}
}

// Read returns the byte value of one of the eight read registers by its
// masked TIA read address (0x00-0x07).
func (c *Collisions) Read(addr uint8) uint8 {
	switch addr {
	case 0x00:
		return c.CXM0P
	case 0x01:
		return c.CXM1P
	case 0x02:
		return c.CXP0FB
	case 0x03:
		return c.CXP1FB
	case 0x04:
		return c.CXM0FB
	case 0x05:
		return c.CXM1FB
	case 0x06:
		return c.CXBLPF
	case 0x07:
		return c.CXPPMM
	}
	return 0
}
