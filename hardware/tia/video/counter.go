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

// Package video implements the TIA's per-pixel drawing logic: the five
// object counters, the playfield decoder, the player/missile/ball bit
// generators, and pixel priority/collision resolution (spec.md §4.4-4.7).
package video

// Period is the modulo of every object counter: one full rotation is
// one scanline's worth of counts (160 color clocks of "counting" time,
// matching the 160 visible pixels).
const Period = 160

// Counter is one of the five identical modulo-160 object counters (P0,
// P1, M0, M1, BL), each carrying its own horizontal-motion value and
// reset latency timer (spec.md §3, §4.4).
type Counter struct {
	Value int

	// Motion is the signed horizontal-motion nybble, recomputed on every
	// write to the corresponding HM register (range -8..+7).
	Motion int

	resetTimer   int
	resetPending bool
}

// SetMotion decodes the HMxx register's high nybble into a signed
// -8..+7 motion value. The formula is a negation performed with 4-bit
// twos-complement wraparound, so that nybble 0x8 (which negates to an
// out-of-range +8) wraps back to -8 instead of overflowing, per
// spec.md §4.3's HMP0..HMBL row and the worked example in spec.md §8
// scenario 4 (HMP0=0x70 → motion=-7).
func (c *Counter) SetMotion(hmByte uint8) {
	nybble := int(hmByte>>4) & 0xf
	motion := (0x10 - nybble) & 0xf
	if motion > 7 {
		motion -= 16
	}
	c.Motion = motion
}

// ClearMotion zeroes the motion value (HMCLR, spec.md §4.3).
func (c *Counter) ClearMotion() {
	c.Motion = 0
}

// Strobe arms a pending reset: on the next Advance call where the reset
// latency has elapsed, the counter snaps to 0. latency is expressed in
// pixel clocks and depends on the object and on whether the strobe
// landed inside HBLANK (spec.md §4.3's RESP0/RESM0/RESBL rows).
func (c *Counter) Strobe(latency int) {
	c.resetPending = true
	c.resetTimer = latency
}

// Advance runs exactly the rule in spec.md §4.4 for a single pixel
// clock. withinHBlank, hmoveLatched and hmoveCounter are the shared
// pump state for this tick.
func (c *Counter) Advance(withinHBlank, hmoveLatched bool, hmoveCounter int) {
	comb := hmoveLatched && hmoveCounter > 7-c.Motion
	if !withinHBlank || comb {
		if c.resetPending && c.resetTimer == 0 {
			c.Value = 0
			c.resetPending = false
		} else {
			c.Value = (c.Value + 1) % Period
		}
	}
	if c.resetTimer > 0 {
		c.resetTimer--
	}
}

// CopyFrom sets this counter's value to another's, used by
// RESMP0/RESMP1 to slave a missile counter to its player (spec.md
// §4.3).
func (c *Counter) CopyFrom(other *Counter) {
	c.Value = other.Value
}
