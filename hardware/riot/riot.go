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

// Package riot implements the console's RIOT ("RAM-I/O-Timer") chip: a
// programmable interval timer and the console-switch/joystick port
// registers. The chip's 128 bytes of general purpose RAM live in the
// sibling hardware/memory package, since the bus decode routes RAM and
// RIOT register accesses to different address ranges (spec.md §4.1).
package riot

import "github.com/retrocore/vcs2600/hardware/memory/bus"

// Prescaler divisors selectable by writing TIM1T/TIM8T/TIM64T/T1024T.
const (
	Prescale1    = 1
	Prescale8    = 8
	Prescale64   = 64
	Prescale1024 = 1024
)

// Masked RIOT register addresses (addr & 0x1f), per hardware/memory/addresses.
const (
	RegSWCHA  = 0x00
	RegSWACNT = 0x01
	RegSWCHB  = 0x02
	RegSWBCNT = 0x03
	RegINTIM  = 0x04
	RegINSTAT = 0x05
	RegTIM1T  = 0x14
	RegTIM8T  = 0x15
	RegTIM64T = 0x16
	RegT1024T = 0x17
)

// Timer is the RIOT's programmable interval timer.
//
// Reading INTIM returns value without side effects. Reading INSTAT
// returns the interrupt flag in bit 7 and clears it. This package
// follows spec.md §3's Data Model account of which register clears the
// flag (INSTAT only); spec.md §4.2 is ambiguous on this point, see
// DESIGN.md.
type Timer struct {
	subcounter  int
	prescaler   int
	subPrescale int
	value       uint8
	interrupt   bool
}

func newTimer() Timer {
	return Timer{prescaler: Prescale1024, subcounter: 2}
}

// Write sets the prescaler and reloads the countdown value. Writing 0
// loads 255 and primes the prescaler so that the first sub-clock step
// (three pixel clocks, one CPU cycle, later) decrements it to 254 instead
// of waiting a full prescaler interval.
func (t *Timer) Write(prescaler int, data uint8) {
	t.prescaler = prescaler
	t.subcounter = 2
	t.interrupt = false
	if data == 0 {
		t.value = 255
		t.subPrescale = prescaler - 1
	} else {
		t.value = data
		t.subPrescale = 0
	}
}

// Tick advances the timer by one pixel clock. The scheduler calls this
// once per pixel clock, so it fires three times per CPU cycle.
func (t *Timer) Tick() {
	t.subcounter--
	if t.subcounter >= 0 {
		return
	}
	t.subcounter = 2

	t.subPrescale++
	if t.subPrescale < t.prescaler {
		return
	}
	t.subPrescale = 0

	if t.value == 0 {
		t.value = 255
		t.interrupt = true
	} else {
		t.value--
	}
}

// ReadINTIM returns the current countdown value. No side effects.
func (t *Timer) ReadINTIM() uint8 {
	return t.value
}

// ReadINSTAT returns the interrupt flag in bit 7 and clears it.
func (t *Timer) ReadINSTAT() uint8 {
	var v uint8
	if t.interrupt {
		v = 0x80
	}
	t.interrupt = false
	return v
}

// Ports routes the platform's joystick/console-switch bytes through the
// four SWCHA/SWACNT/SWCHB/SWBCNT register addresses. Direction registers
// (SWACNT/SWBCNT) and writes to the data registers are accepted and
// stored but otherwise inert: this emulation always drives the data
// registers from the platform's InputSource, as real cartridge software
// never configures the joystick ports for output.
type Ports struct {
	Input bus.InputSource

	swacnt uint8
	swbcnt uint8
	swchaW uint8
	swchbW uint8
}

func (p *Ports) ReadSWCHA() uint8 {
	if p.Input == nil {
		return 0xff
	}
	return p.Input.JoystickByte()
}

func (p *Ports) ReadSWCHB() uint8 {
	if p.Input == nil {
		return 0xff
	}
	return p.Input.SwitchesByte()
}

// RIOT composes the timer and the ports behind a single register
// decode, matching the masked addresses in hardware/memory/addresses.
type RIOT struct {
	Timer Timer
	Ports Ports
}

// New returns a RIOT with its timer in the power-on state (largest
// prescaler, arbitrary countdown value; guest software always
// initializes the timer before depending on it).
func New(input bus.InputSource) *RIOT {
	return &RIOT{
		Timer: newTimer(),
		Ports: Ports{Input: input},
	}
}

// Read dispatches a read from a masked (5-bit) RIOT register address.
func (r *RIOT) Read(addr uint8) uint8 {
	switch addr {
	case RegSWCHA:
		return r.Ports.ReadSWCHA()
	case RegSWACNT:
		return r.Ports.swacnt
	case RegSWCHB:
		return r.Ports.ReadSWCHB()
	case RegSWBCNT:
		return r.Ports.swbcnt
	case RegINTIM:
		return r.Timer.ReadINTIM()
	case RegINSTAT:
		return r.Timer.ReadINSTAT()
	}
	return 0
}

// Write dispatches a write to a masked (5-bit) RIOT register address.
func (r *RIOT) Write(addr uint8, data uint8) {
	switch addr {
	case RegSWCHA:
		r.Ports.swchaW = data
	case RegSWACNT:
		r.Ports.swacnt = data
	case RegSWCHB:
		r.Ports.swchbW = data
	case RegSWBCNT:
		r.Ports.swbcnt = data
	case RegTIM1T:
		r.Timer.Write(Prescale1, data)
	case RegTIM8T:
		r.Timer.Write(Prescale8, data)
	case RegTIM64T:
		r.Timer.Write(Prescale64, data)
	case RegT1024T:
		r.Timer.Write(Prescale1024, data)
	}
}

// Tick advances the interval timer by one pixel clock.
func (r *RIOT) Tick() {
	r.Timer.Tick()
}
