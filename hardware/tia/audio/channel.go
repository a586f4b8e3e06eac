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

// Package audio implements the TIA's two independent digital audio
// channels: an LFSR/divider-polynomial noise and tone generator clocked
// from the pixel clock, scaled by a 4-bit volume and resampled to a
// host sample rate (spec.md §4.8).
package audio

// Channel is one of the TIA's two audio generators.
type Channel struct {
	AUDC uint8 // waveform select (4 bits)
	AUDF uint8 // divider reload value (5 bits)
	AUDV uint8 // volume (4 bits)

	clockSub int // counts pixel clocks up to 114
	count    int // divider countdown, reloaded from AUDF

	bit bool // current output bit

	poly4 uint8
	poly5 uint8
	poly9 uint16

	div2 bool // divide-by-2 toggle state
	div6 int  // 0..5 divide-by-6 counter
	div31 int // 0..30 "31-counter" state
}

// NewChannel returns a channel with its LFSRs seeded to their all-ones
// power-on state, matching real hardware (an all-zero LFSR never
// changes state).
func NewChannel() Channel {
	return Channel{poly4: 0xf, poly5: 0x1f, poly9: 0x1ff}
}

const pixelClocksPerAudioClock = 114

// Tick advances the channel by one pixel clock.
func (c *Channel) Tick() {
	c.clockSub++
	if c.clockSub < pixelClocksPerAudioClock {
		return
	}
	c.clockSub = 0

	if c.count > 0 {
		c.count--
		return
	}
	c.count = int(c.AUDF)
	c.step()
}

func lfsrNext(v uint16, bits int, tap int) uint16 {
	mask := uint16(1)<<uint(bits) - 1
	fb := (v ^ (v >> uint(tap))) & 1
	return ((v >> 1) | (fb << uint(bits-1))) & mask
}

// step advances the internal generators and recomputes the output bit
// per the AUDC waveform table in spec.md §4.8.
func (c *Channel) step() {
	c.div31++
	if c.div31 >= 31 {
		c.div31 = 0
	}
	gate31 := c.div31 == 0

	c.div6++
	if c.div6 >= 6 {
		c.div6 = 0
	}
	div6square := c.div6 < 3

	c.div2 = !c.div2

	c.poly4 = uint8(lfsrNext(uint16(c.poly4), 4, 1))
	c.poly5 = uint8(lfsrNext(uint16(c.poly5), 5, 2))
	c.poly9 = lfsrNext(c.poly9, 9, 4)

	poly4bit := c.poly4&1 != 0
	poly5bit := c.poly5&1 != 0
	poly9bit := c.poly9&1 != 0

	switch c.AUDC & 0xf {
	case 0x0, 0xb:
		c.bit = true
	case 0x1:
		c.bit = poly4bit
	case 0x2:
		c.bit = gate31 && poly4bit
	case 0x3:
		c.bit = poly5bit && poly4bit
	case 0x4, 0x5:
		c.bit = c.div2
	case 0x6, 0xa:
		c.bit = gate31
	case 0x7, 0x9:
		c.bit = poly5bit
	case 0x8:
		c.bit = poly9bit
	case 0xc, 0xd:
		c.bit = div6square
	case 0xe:
		c.bit = gate31 && div6square
	case 0xf:
		c.bit = poly5bit && div6square
	}
}

// Sample returns the current output sample as an unsigned 8-bit PCM
// value, per the formula in spec.md §4.8: 128 is the zero-volume
// midpoint regardless of waveform or divider, which is what makes the
// audio-squelch property (spec.md §8 scenario 6) hold for AUDV==0.
func (c *Channel) Sample() uint8 {
	vol := int(c.AUDV & 0xf)
	if c.bit {
		return uint8(128 + (-128*vol)/128)
	}
	return uint8(128 + (127*vol)/128)
}
