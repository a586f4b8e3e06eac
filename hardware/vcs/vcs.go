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

// Package vcs is the root of the emulation: the VCS type owns the CPU,
// the TIA, the RIOT, the cartridge, and the memory map that ties them
// together, and drives the cooperative scheduler loop described in
// spec.md §4.9 and §9 (CPU steps an instruction, bills pixel clocks to
// the TIA pump, honors WSYNC by fast-forwarding to the next HBLANK).
package vcs

import (
	"github.com/retrocore/vcs2600/hardware/cartridge"
	"github.com/retrocore/vcs2600/hardware/clocks"
	"github.com/retrocore/vcs2600/hardware/cpu"
	"github.com/retrocore/vcs2600/hardware/memory"
	"github.com/retrocore/vcs2600/hardware/memory/bus"
	"github.com/retrocore/vcs2600/hardware/riot"
	"github.com/retrocore/vcs2600/hardware/tia"
	"github.com/retrocore/vcs2600/internal/logger"
)

// VCS is the emulated console: the owned composition of every
// subsystem, breaking the CPU↔TIA reference cycle spec.md §9 describes
// by having the CPU see only the pixelClockSink below, never the TIA
// itself.
type VCS struct {
	CPU   *cpu.CPU
	TIA   *tia.TIA
	RIOT  *riot.RIOT
	Cart  *cartridge.Cartridge
	Mem   *memory.VCSMemory
	clock float64
}

// pixelClockSink is the concrete bus.ClockSink the scheduler hands to
// the CPU: it turns "N CPU cycles elapsed" into 3×N pixel-clock pump
// calls, also ticking the RIOT's timer sub-clock each pixel (spec.md
// §4.9's ordering is owned by tia.TIA.Pump; the RIOT tick is wired
// through TIA.TimerTick so a single call drives both per pixel clock).
type pixelClockSink struct {
	vcs *VCS
}

func (s *pixelClockSink) AddCPUCycles(n int) {
	for i := 0; i < n*clocks.CyclesPerCPUCycle; i++ {
		s.vcs.TIA.Pump()
	}
}

// New builds a console around a loaded cartridge, a CPU clock rate in
// hertz (use one of the hardware/clocks constants ×1e6), a host audio
// sample rate, and the platform's input source, which feeds both the
// RIOT ports and the TIA's fire-button inputs. TIA.FrameSink and
// TIA.AudioSink should be set by the caller (typically cmd/vcs2600)
// before the first Run.
func New(cart *cartridge.Cartridge, cpuClockHz, samplingRate float64, input bus.InputSource) *VCS {
	pixelRate := cpuClockHz * clocks.CyclesPerCPUCycle
	t := tia.New(pixelRate, samplingRate, 512)
	t.Input = input

	v := &VCS{
		Cart:  cart,
		TIA:   t,
		RIOT:  riot.New(input),
		clock: pixelRate,
	}
	v.Mem = memory.New(cart, t, v.RIOT)
	v.CPU = cpu.New(v.Mem, &pixelClockSink{vcs: v})
	t.TimerTick = v.RIOT.Tick
	return v
}

// Reset puts the CPU at the cartridge's reset vector.
func (v *VCS) Reset() error {
	return v.CPU.Reset()
}

// Step executes exactly one CPU instruction and, if it left a WSYNC
// pending, fast-forwards the TIA pump to the next HBLANK boundary
// (spec.md §4.9, step 2), returning the total pixel clocks consumed.
func (v *VCS) Step() (int, error) {
	before := v.TIA.Clk
	if _, err := v.CPU.Step(); err != nil {
		return 0, err
	}
	if v.TIA.WaitingForHSync() {
		v.fastForwardToHSync()
	}
	return int(v.TIA.Clk - before), nil
}

func (v *VCS) fastForwardToHSync() {
	for v.TIA.WaitingForHSync() {
		v.TIA.Pump()
	}
}

// Run steps the console until cont returns false (e.g. a frame-count
// limit, or always-true for an interactive platform loop that exits via
// the process instead). Any CPU or bus error stops the loop and is
// returned to the caller.
func (v *VCS) Run(cont func() bool) error {
	logger.Log("vcs", "starting run loop")
	for cont() {
		if _, err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}
