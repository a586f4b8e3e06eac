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

// Package termplatform is a bus.InputSource for headless sessions (an
// SSH shell with no SDL display available): it puts the controlling
// terminal into cbreak mode and reads single keystrokes directly,
// without waiting for Enter.
package termplatform

import (
	"os"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal reads raw keystrokes from stdin and exposes them as
// bus.InputSource state. Direction and fire keys are latched: a key is
// considered "held" until a subsequent read reports a different key
// (there is no key-release event on a plain terminal, so held-down
// joystick directions are approximated by repeat-rate autorepeat).
// Keys 1, 4 and 5 (TV-type, P0 difficulty, P1 difficulty) are toggle
// switches instead: each is flipped once, in readLoop, the moment that
// byte is read, since every byte read is already a discrete keypress
// event on a raw terminal.
type Terminal struct {
	fd      uintptr
	canAttr syscall.Termios

	mu                     sync.Mutex
	lastKey                byte
	tvType, p0Diff, p1Diff bool
	quit                   bool
}

// Open switches the controlling terminal (stdin) into cbreak mode and
// starts the background reader. Close must be called to restore the
// terminal's canonical mode.
func Open() (*Terminal, error) {
	t := &Terminal{fd: os.Stdin.Fd()}

	if err := termios.Tcgetattr(t.fd, &t.canAttr); err != nil {
		return nil, err
	}
	var cbreak syscall.Termios
	if err := termios.Tcgetattr(t.fd, &cbreak); err != nil {
		return nil, err
	}
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(t.fd, termios.TCIFLUSH, &cbreak); err != nil {
		return nil, err
	}

	go t.readLoop()
	return t, nil
}

// Close restores the terminal's canonical mode.
func (t *Terminal) Close() {
	termios.Tcsetattr(t.fd, termios.TCIFLUSH, &t.canAttr)
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		t.mu.Lock()
		switch buf[0] {
		case 'q':
			t.quit = true
		case '1':
			t.tvType = !t.tvType
		case '4':
			t.p0Diff = !t.p0Diff
		case '5':
			t.p1Diff = !t.p1Diff
		}
		t.lastKey = buf[0]
		t.mu.Unlock()
	}
}

// Quit reports whether 'q' has been pressed.
func (t *Terminal) Quit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}

// SwitchesByte implements bus.InputSource, matching the console's SWCHB
// layout: bit 0 is RESET (momentary, key 2), bit 1 is SELECT (momentary,
// key 3), bit 3 is the TV-type switch, and bits 6/7 are P0's and P1's
// difficulty switches (toggled by keys 1, 4 and 5 in readLoop).
func (t *Terminal) SwitchesByte() uint8 {
	t.mu.Lock()
	k := t.lastKey
	tvType, p0Diff, p1Diff := t.tvType, t.p0Diff, t.p1Diff
	t.mu.Unlock()

	var v uint8 = 0xff
	switch k {
	case '2':
		v &^= 0x01
	case '3':
		v &^= 0x02
	}
	if tvType {
		v &^= 0x08
	}
	if p0Diff {
		v &^= 0x40
	}
	if p1Diff {
		v &^= 0x80
	}
	return v
}

// JoystickByte implements bus.InputSource: w/a/s/d drives joystick-0
// (SWCHA bits 4..7, per spec.md §6). Joystick-1 (bits 0..3) uses i/j/k/l
// instead of the arrow keys, since a raw terminal delivers arrow keys as
// multi-byte escape sequences this reader does not decode.
func (t *Terminal) JoystickByte() uint8 {
	t.mu.Lock()
	k := t.lastKey
	t.mu.Unlock()

	var v uint8 = 0xff
	switch k {
	case 'w':
		v &^= 0x10
	case 's':
		v &^= 0x20
	case 'a':
		v &^= 0x40
	case 'd':
		v &^= 0x80
	case 'i':
		v &^= 0x01
	case 'k':
		v &^= 0x02
	case 'j':
		v &^= 0x04
	case 'l':
		v &^= 0x08
	}
	return v
}

// Button implements bus.InputSource: the space bar fires player 0's
// button, 'm' fires player 1's; only one is ever true per poll since a
// raw keystroke stream carries a single "last key" at a time.
func (t *Terminal) Button(player int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if player == 0 {
		return t.lastKey == ' '
	}
	return t.lastKey == 'm'
}
