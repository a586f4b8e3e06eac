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

// Package bus defines the memory bus interfaces shared by every memory
// area in the console: ROM, RAM, the TIA register file, and the RIOT.
package bus

// CPUBus is implemented by anything the CPU can read from or write to.
// The VCS memory map implements this by decoding the address and
// forwarding to the correct region, so CPU code never needs to know
// which chip it is actually talking to.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebuggerBus is implemented by memory areas that support out-of-band
// peek/poke, bypassing any side effects a normal Read/Write would have
// (e.g. peeking INSTAT must not clear the timer interrupt flag).
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// ClockSink is the interface the CPU bills pixel clocks through. The
// scheduler supplies the concrete implementation (the TIA pump); the CPU
// and TIA never reference each other directly, breaking the CPU↔TIA
// cycle described in spec.md §9.
type ClockSink interface {
	// AddCPUCycles advances the pixel clock by n CPU cycles worth of
	// pixel clocks (clocks.CyclesPerCPUCycle per CPU cycle).
	AddCPUCycles(n int)
}

// FrameSink is the platform's synchronous receiver of a completed
// framebuffer, handed over on the falling edge of VSYNC.
type FrameSink interface {
	// NewFrame is called with the just-completed 228x262 framebuffer of
	// palette indices, plus an ignored clock-rate hint in megahertz.
	NewFrame(framebuffer *[262][228]uint8, megahertz float64)
}

// AudioSink is the platform's receiver of buffered stereo U8 PCM audio.
// Implementations must not block the caller for long: backpressure is
// the platform's problem, not the core's (spec.md §5).
type AudioSink interface {
	// QueueAudio receives interleaved left/right U8 samples.
	QueueAudio(left, right []uint8)
}

// InputSource is the platform's provider of console switches and
// joystick state, queried each time the guest reads SWCHA, SWCHB, INPT4
// or INPT5.
type InputSource interface {
	// SwitchesByte returns the SWCHB-shaped console-switch byte.
	SwitchesByte() uint8
	// JoystickByte returns the SWCHA-shaped joystick-direction byte for
	// both joysticks (player 0 in bits 4-7, player 1 in bits 0-3).
	JoystickByte() uint8
	// Button reports the state of a joystick's fire button (player 0 or
	// 1); true means pressed.
	Button(player int) bool
}
