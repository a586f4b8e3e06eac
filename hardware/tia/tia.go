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

// Package tia implements the TIA coprocessor: the write-only register
// file and read-only collision/input registers (spec.md §4.3), the
// strobe side effects, the vertical-delay double buffers, and the pixel
// pump that drives the five object counters, the playfield decoder, the
// audio generator, and the interval timer's sub-clock (spec.md §4.9).
package tia

import (
	"github.com/retrocore/vcs2600/hardware/memory/bus"
	"github.com/retrocore/vcs2600/hardware/tia/audio"
	"github.com/retrocore/vcs2600/hardware/tia/video"
)

// Masked TIA write-register addresses (addr & 0x3f).
const (
	wVSYNC  = 0x00
	wVBLANK = 0x01
	wWSYNC  = 0x02
	wRSYNC  = 0x03
	wNUSIZ0 = 0x04
	wNUSIZ1 = 0x05
	wCOLUP0 = 0x06
	wCOLUP1 = 0x07
	wCOLUPF = 0x08
	wCOLUBK = 0x09
	wCTRLPF = 0x0a
	wREFP0  = 0x0b
	wREFP1  = 0x0c
	wPF0    = 0x0d
	wPF1    = 0x0e
	wPF2    = 0x0f
	wRESP0  = 0x10
	wRESP1  = 0x11
	wRESM0  = 0x12
	wRESM1  = 0x13
	wRESBL  = 0x14
	wAUDC0  = 0x15
	wAUDC1  = 0x16
	wAUDF0  = 0x17
	wAUDF1  = 0x18
	wAUDV0  = 0x19
	wAUDV1  = 0x1a
	wGRP0   = 0x1b
	wGRP1   = 0x1c
	wENAM0  = 0x1d
	wENAM1  = 0x1e
	wENABL  = 0x1f
	wHMP0   = 0x20
	wHMP1   = 0x21
	wHMM0   = 0x22
	wHMM1   = 0x23
	wHMBL   = 0x24
	wVDELP0 = 0x25
	wVDELP1 = 0x26
	wVDELBL = 0x27
	wRESMP0 = 0x28
	wRESMP1 = 0x29
	wHMOVE  = 0x2a
	wHMCLR  = 0x2b
	wCXCLR  = 0x2c
)

const (
	hblankEnd     = 68
	lateHblankEnd = 76
	beamWidth     = 228
	beamHeight    = 262
)

// TIA is the console's video/audio coprocessor.
type TIA struct {
	// Input supplies the joystick button bits read back through
	// INPT4/INPT5. Analog paddle resistance (INPT0-3) is a Non-goal
	// (spec.md §1) and always reads 0.
	Input bus.InputSource
	// FrameSink receives the completed framebuffer on VSYNC's falling
	// edge.
	FrameSink bus.FrameSink
	// AudioSink receives resampled stereo PCM blocks as they fill.
	AudioSink bus.AudioSink
	// TimerTick, if set, is invoked once per pixel clock to advance the
	// RIOT's interval timer sub-clock, per spec.md §4.9's pump order.
	TimerTick func()

	regs [0x3f]uint8

	P0, P1, M0, M1, BL video.Counter
	playfield          video.Playfield
	collisions         video.Collisions
	Audio              *audio.Mixer

	grp0, grp1, grp0Old, grp1Old uint8
	enabl, enablOld              uint8
	m0Hidden, m1Hidden           bool

	Hclock, Scanline int
	withinHBlank     bool
	lateResetHBlank  bool
	hmoveLatched     bool
	hmoveCounter     int
	insideVSYNC      bool
	waitForHSync     bool

	// Clk is the pixel clock: a monotonically increasing tick count
	// (spec.md §3). It never decreases.
	Clk uint64

	frame [beamHeight][beamWidth]uint8
}

// New returns a TIA wired to the given clock rate (pixel clocks per
// second) and host audio sample rate.
func New(clockRate, samplingRate float64, audioBlockSize int) *TIA {
	return &TIA{
		Audio: audio.NewMixer(clockRate, samplingRate, audioBlockSize),
	}
}

// WaitingForHSync reports whether a WSYNC strobe is still pending a
// horizontal-blank boundary.
func (t *TIA) WaitingForHSync() bool { return t.waitForHSync }

// Write dispatches a write to a masked (6-bit) TIA register address,
// applying strobe side effects per spec.md §4.3. Reserved indices
// (0x2d-0x3f) are silently ignored.
func (t *TIA) Write(addr uint8, data uint8) {
	switch addr {
	case wVSYNC:
		rising := data&0x02 != 0
		if rising && !t.insideVSYNC {
			t.insideVSYNC = true
		} else if !rising && t.insideVSYNC {
			t.insideVSYNC = false
			t.Scanline = 0
			t.deliverFrame()
		}
		t.regs[wVSYNC] = data
	case wWSYNC:
		t.waitForHSync = true
	case wRSYNC:
		// accepted and ignored: test register, not needed for games.
	case wRESP0:
		t.P0.Strobe(resetLatency(t.withinHBlank, 3, 5))
	case wRESP1:
		t.P1.Strobe(resetLatency(t.withinHBlank, 3, 5))
	case wRESM0:
		t.M0.Strobe(resetLatency(t.withinHBlank, 2, 4))
	case wRESM1:
		t.M1.Strobe(resetLatency(t.withinHBlank, 2, 4))
	case wRESBL:
		t.BL.Strobe(resetLatency(t.withinHBlank, 2, 4))
	case wAUDC0:
		t.Audio.Ch0.AUDC = data
	case wAUDC1:
		t.Audio.Ch1.AUDC = data
	case wAUDF0:
		t.Audio.Ch0.AUDF = data
	case wAUDF1:
		t.Audio.Ch1.AUDF = data
	case wAUDV0:
		t.Audio.Ch0.AUDV = data
	case wAUDV1:
		t.Audio.Ch1.AUDV = data
	case wGRP0:
		t.grp1Old = t.grp1
		t.grp0 = data
	case wGRP1:
		t.grp0Old = t.grp0
		t.enablOld = t.enabl
		t.grp1 = data
	case wENABL:
		if t.regs[wVDELBL]&0x01 != 0 {
			t.enablOld = data
		} else {
			t.enabl = data
		}
	case wHMP0:
		t.regs[wHMP0] = data
		t.P0.SetMotion(data)
	case wHMP1:
		t.regs[wHMP1] = data
		t.P1.SetMotion(data)
	case wHMM0:
		t.regs[wHMM0] = data
		t.M0.SetMotion(data)
	case wHMM1:
		t.regs[wHMM1] = data
		t.M1.SetMotion(data)
	case wHMBL:
		t.regs[wHMBL] = data
		t.BL.SetMotion(data)
	case wRESMP0:
		t.M0.CopyFrom(&t.P0)
		t.m0Hidden = data&0x02 != 0
		t.regs[wRESMP0] = data
	case wRESMP1:
		t.M1.CopyFrom(&t.P1)
		t.m1Hidden = data&0x02 != 0
		t.regs[wRESMP1] = data
	case wHMOVE:
		t.lateResetHBlank = true
		t.hmoveLatched = true
		if t.regs[wVBLANK]&0x02 != 0 {
			t.hmoveCounter = 12
		} else {
			t.hmoveCounter = 15
		}
	case wHMCLR:
		t.regs[wHMP0], t.regs[wHMP1] = 0, 0
		t.regs[wHMM0], t.regs[wHMM1] = 0, 0
		t.regs[wHMBL] = 0
		t.P0.ClearMotion()
		t.P1.ClearMotion()
		t.M0.ClearMotion()
		t.M1.ClearMotion()
		t.BL.ClearMotion()
	case wCXCLR:
		t.collisions.Clear()
	default:
		if int(addr) < len(t.regs) {
			t.regs[addr] = data
		}
		// 0x2d-0x3f: reserved, ignored.
	}
}

func resetLatency(withinHBlank bool, hblank, visible int) int {
	if withinHBlank {
		return hblank
	}
	return visible
}

// Read dispatches a read from a masked (4-bit) TIA register address.
// Undefined addresses (0x0e, 0x0f) return 0.
func (t *TIA) Read(addr uint8) uint8 {
	if addr <= 0x07 {
		return t.collisions.Read(addr)
	}
	switch addr {
	case 0x0c: // INPT4: joystick 0 button, active low, bit 7
		if t.Input != nil && t.Input.Button(0) {
			return 0x00
		}
		return 0x80
	case 0x0d: // INPT5: joystick 1 button
		if t.Input != nil && t.Input.Button(1) {
			return 0x00
		}
		return 0x80
	}
	// INPT0-3 (analog paddles) are a Non-goal; undefined addresses
	// (0x0e, 0x0f) likewise read 0.
	return 0
}

func (t *TIA) activeGRP0() uint8 {
	if t.regs[wVDELP0]&0x01 != 0 {
		return t.grp0Old
	}
	return t.grp0
}

func (t *TIA) activeGRP1() uint8 {
	if t.regs[wVDELP1]&0x01 != 0 {
		return t.grp1Old
	}
	return t.grp1
}

func (t *TIA) activeENABL() uint8 {
	if t.regs[wVDELBL]&0x01 != 0 {
		return t.enablOld
	}
	return t.enabl
}

func (t *TIA) deliverFrame() {
	if t.FrameSink != nil {
		t.FrameSink.NewFrame(&t.frame, 0)
	}
}
