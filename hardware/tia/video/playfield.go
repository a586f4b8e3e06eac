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

// Playfield decodes the 20-bit PF0/PF1/PF2 concatenation into a single
// bit for a given visible column (spec.md §4.5).
//
// Real TIA hardware latches PF0/PF1/PF2 into an internal shift register
// only at fixed 8-pixel group boundaries, so a write that lands
// mid-group has no visible effect until the next boundary. This is
// modeled here with an explicit Sample call: the pump invokes it at the
// trigger columns named in spec.md §4.5 (67, 83, 99, 147, 163, 179,
// measured in raw horizontal-clock units), copying the then-current
// live register bytes into the cache that Bit reads from.
type Playfield struct {
	pf0, pf1, pf2 uint8 // cached (latched) values used for decoding
	reflect       bool  // CTRLPF bit 0: mirror the right half
}

// TriggerColumns are the horizontal-clock values at which the playfield
// cache is refreshed from the live registers.
var TriggerColumns = map[int]bool{
	67: true, 83: true, 99: true,
	147: true, 163: true, 179: true,
}

// Sample latches the live register bytes into the decode cache. Call
// only when the pump's horizontal clock is a member of TriggerColumns.
func (p *Playfield) Sample(pf0, pf1, pf2 uint8, reflect bool) {
	p.pf0, p.pf1, p.pf2 = pf0, pf1, pf2
	p.reflect = reflect
}

// Bit returns the decoded playfield bit for visible column x (0..159).
func (p *Playfield) Bit(x int) bool {
	group := x / 4 // 0..39

	if group >= 20 {
		if p.reflect {
			group = 39 - group
		} else {
			group -= 20
		}
	}

	switch {
	case group < 4:
		return p.pf0&(1<<(4+group)) != 0
	case group < 12:
		return p.pf1&(1<<(11-group)) != 0
	default:
		return p.pf2&(1<<(group-12)) != 0
	}
}
