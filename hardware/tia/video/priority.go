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

// CTRLPF bit positions consulted by priority resolution.
const (
	CtrlpfReflect = 1 << 0
	CtrlpfScore   = 1 << 1
	CtrlpfPriority = 1 << 2
)

// ResolvePixel implements spec.md §4.7: given the six object masks for
// this pixel and the four color registers, returns the palette index
// that should be written to the framebuffer. It does not know about
// HBLANK or VBLANK forcing black — that is layered on top by the pump,
// since it applies regardless of which object is "on".
func ResolvePixel(m Masks, x int, colup0, colup1, colupf, colubk, ctrlpf uint8) uint8 {
	pfColor := colupf
	if ctrlpf&CtrlpfScore != 0 {
		if x < 80 {
			pfColor = colup0
		} else {
			pfColor = colup1
		}
	}

	type tier struct {
		active bool
		color  uint8
	}

	p0m0 := tier{active: m.P0 || m.M0, color: colup0}
	p1m1 := tier{active: m.P1 || m.M1, color: colup1}

	var pfbl tier
	switch {
	case m.PF:
		pfbl = tier{active: true, color: pfColor}
	case m.BL:
		pfbl = tier{active: true, color: colupf}
	}

	var order [3]tier
	if ctrlpf&CtrlpfPriority != 0 {
		order = [3]tier{pfbl, p0m0, p1m1}
	} else {
		order = [3]tier{p0m0, p1m1, pfbl}
	}

	for _, t := range order {
		if t.active {
			return t.color
		}
	}
	return colubk
}
