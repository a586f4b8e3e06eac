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

package tia

import "github.com/retrocore/vcs2600/hardware/tia/video"

// Pump advances the TIA by exactly one pixel clock, in the order
// normative per spec.md §4.9: HBLANK state, the five object counters,
// the timer sub-clock, the audio sub-clock, pixel color and collision
// evaluation, the HMOVE comb countdown, and finally the beam position
// (with line/frame wraparound).
func (t *TIA) Pump() {
	t.Clk++

	t.withinHBlank = t.Hclock < hblankEnd || (t.lateResetHBlank && t.Hclock < lateHblankEnd)

	if video.TriggerColumns[t.Hclock] {
		reflect := t.regs[wCTRLPF]&video.CtrlpfReflect != 0
		t.playfield.Sample(t.regs[wPF0], t.regs[wPF1], t.regs[wPF2], reflect)
	}

	t.P0.Advance(t.withinHBlank, t.hmoveLatched, t.hmoveCounter)
	t.P1.Advance(t.withinHBlank, t.hmoveLatched, t.hmoveCounter)
	t.M0.Advance(t.withinHBlank, t.hmoveLatched, t.hmoveCounter)
	t.M1.Advance(t.withinHBlank, t.hmoveLatched, t.hmoveCounter)
	t.BL.Advance(t.withinHBlank, t.hmoveLatched, t.hmoveCounter)

	if t.TimerTick != nil {
		t.TimerTick()
	}

	if left, right, flush := t.Audio.Tick(); flush && t.AudioSink != nil {
		t.AudioSink.QueueAudio(left, right)
	}

	// Object position/shape evaluation and collision latching run every
	// pixel clock, blanked or not: the counters and the collision matrix
	// have no notion of HBLANK or VBLANK (spec.md §4.7 ties blanking
	// only to the output pixel). Only the final color-vs-black
	// substitution below is blanking-gated.
	x := t.Hclock - hblankEnd
	masks := t.computeMasks(x)
	t.collisions.Update(masks)

	vblank := t.regs[wVBLANK]&0x02 != 0
	var color uint8
	if t.withinHBlank || vblank {
		color = 0
	} else {
		color = video.ResolvePixel(masks, x, t.regs[wCOLUP0], t.regs[wCOLUP1], t.regs[wCOLUPF], t.regs[wCOLUBK], t.regs[wCTRLPF])
	}
	t.frame[t.Scanline][t.Hclock] = color

	if t.hmoveCounter > 0 {
		t.hmoveCounter--
	}

	t.Hclock++
	if t.Hclock >= beamWidth {
		t.Hclock = 0
		t.hmoveLatched = false
		t.lateResetHBlank = false
		t.waitForHSync = false
		t.Scanline++
		if t.Scanline >= beamHeight {
			t.Scanline = 0
		}
	}
}

func (t *TIA) computeMasks(x int) video.Masks {
	refp0 := t.regs[wREFP0]&0x08 != 0
	refp1 := t.regs[wREFP1]&0x08 != 0

	var player video.Player
	var missile video.Missile
	var ball video.Ball

	p0 := player.Bit(t.P0.Value, t.regs[wNUSIZ0], t.activeGRP0(), refp0)
	p1 := player.Bit(t.P1.Value, t.regs[wNUSIZ1], t.activeGRP1(), refp1)
	m0 := missile.Bit(t.M0.Value, t.regs[wNUSIZ0], !t.m0Hidden && t.regs[wENAM0]&0x02 != 0)
	m1 := missile.Bit(t.M1.Value, t.regs[wNUSIZ1], !t.m1Hidden && t.regs[wENAM1]&0x02 != 0)
	bl := ball.Bit(t.BL.Value, t.regs[wCTRLPF], t.activeENABL()&0x02 != 0)

	// x runs negative during HBLANK (it is Hclock measured from the end
	// of HBLANK); the playfield only has a defined bit across the 160
	// visible columns, so it reads as clear outside that range rather
	// than indexing Playfield.Bit with an out-of-range column.
	var pf bool
	if x >= 0 && x < 160 {
		pf = t.playfield.Bit(x)
	}

	return video.Masks{P0: p0, P1: p1, M0: m0, M1: m1, BL: bl, PF: pf}
}

// Framebuffer returns the current (possibly in-progress) framebuffer, for
// debugging/inspection. The platform should use FrameSink.NewFrame for
// the normal synchronous handoff.
func (t *TIA) Framebuffer() *[beamHeight][beamWidth]uint8 {
	return &t.frame
}
