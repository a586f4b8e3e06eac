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

// Package sdlplatform is the interactive platform layer: an SDL2 window
// presenting the framebuffer, an SDL2 audio device consuming the TIA's
// PCM blocks, and a keyboard-driven bus.InputSource. Grounded on
// gui/sdlplay, the teacher's lean (non-debugger) SDL player frontend.
package sdlplatform

import (
	"fmt"

	"github.com/retrocore/vcs2600/internal/logger"
	"github.com/retrocore/vcs2600/platform/palette"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	frameWidth  = 160
	frameHeight = 222 // visible scanlines; spec.md's 262-line field minus VBLANK/overscan at typical titles
	pixelDepth  = 4
)

// Window is an SDL2 bus.FrameSink, bus.AudioSink and bus.InputSource.
// MUST be constructed and driven from the same goroutine SDL was
// initialized on, matching the teacher's "#mainthread" convention.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
	scale    int32

	audioDevice sdl.AudioDeviceID

	keys []uint8

	// tvType, p0Diff and p1Diff are persistent toggle switches (keys 1, 4
	// and 5) that flip on a key-down edge, not while the key is simply
	// held; prev* holds the raw key state seen by the previous PollEvents
	// call so the edge can be detected.
	tvType, p0Diff, p1Diff     bool
	prevTVType, prevP0, prevP1 bool
}

// New opens a scaled SDL2 window and audio device sized for the given
// host sample rate.
func New(scale int32, samplingRate int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdlplatform: sdl.Init: %w", err)
	}

	w := &Window{scale: scale}

	var err error
	w.window, err = sdl.CreateWindow("vcs2600",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		frameWidth*scale, frameHeight*scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlplatform: CreateWindow: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("sdlplatform: CreateRenderer: %w", err)
	}

	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING, frameWidth, frameHeight)
	if err != nil {
		return nil, fmt.Errorf("sdlplatform: CreateTexture: %w", err)
	}

	w.pixels = make([]byte, frameWidth*frameHeight*pixelDepth)
	for i := pixelDepth - 1; i < len(w.pixels); i += pixelDepth {
		w.pixels[i] = 255
	}

	spec := &sdl.AudioSpec{
		Freq:     samplingRate,
		Format:   sdl.AUDIO_U8,
		Channels: 2,
		Samples:  512,
	}
	var actual sdl.AudioSpec
	w.audioDevice, err = sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlplatform: OpenAudioDevice: %w", err)
	}
	sdl.PauseAudioDevice(w.audioDevice, false)

	logger.Log("sdlplatform", "window and audio device opened")
	return w, nil
}

// Close releases every SDL resource the window holds.
func (w *Window) Close() {
	sdl.CloseAudioDevice(w.audioDevice)
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// NewFrame implements bus.FrameSink.
func (w *Window) NewFrame(framebuffer *[262][228]uint8, _ float64) {
	const hblank = 68
	for y := 0; y < frameHeight && y < len(framebuffer); y++ {
		for x := 0; x < frameWidth; x++ {
			r, g, b := palette.RGB(framebuffer[y][x+hblank])
			i := (y*frameWidth + x) * pixelDepth
			w.pixels[i], w.pixels[i+1], w.pixels[i+2] = r, g, b
		}
	}
	w.texture.Update(nil, w.pixels, frameWidth*pixelDepth)
	w.renderer.Copy(w.texture, nil, nil)
	w.renderer.Present()
}

// QueueAudio implements bus.AudioSink.
func (w *Window) QueueAudio(left, right []uint8) {
	interleaved := make([]uint8, 0, len(left)+len(right))
	for i := range left {
		interleaved = append(interleaved, left[i], right[i])
	}
	if err := sdl.QueueAudio(w.audioDevice, interleaved); err != nil {
		logger.Logf(logger.Allow, "sdlplatform", "QueueAudio: %v", err)
	}
}

// PollEvents drains the SDL event queue (must be called regularly from
// the main thread) and refreshes the keyboard snapshot PollEvents'
// sibling methods read from. It returns false once the user has closed
// the window.
func (w *Window) PollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return false
		}
	}
	w.keys = sdl.GetKeyboardState()

	// Keys 1, 4 and 5 are toggle switches (TV-type, P0 difficulty, P1
	// difficulty): they flip once per key-down edge rather than tracking
	// the key as held, so the edge has to be detected here, once per
	// poll, rather than inside SwitchesByte (which may be sampled many
	// times per frame).
	cur1, cur4, cur5 := w.key(sdl.SCANCODE_1), w.key(sdl.SCANCODE_4), w.key(sdl.SCANCODE_5)
	if cur1 && !w.prevTVType {
		w.tvType = !w.tvType
	}
	if cur4 && !w.prevP0 {
		w.p0Diff = !w.p0Diff
	}
	if cur5 && !w.prevP1 {
		w.p1Diff = !w.p1Diff
	}
	w.prevTVType, w.prevP0, w.prevP1 = cur1, cur4, cur5

	return true
}

func (w *Window) key(code sdl.Scancode) bool {
	if w.keys == nil || int(code) >= len(w.keys) {
		return false
	}
	return w.keys[code] != 0
}

// SwitchesByte implements bus.InputSource. Bit layout matches the
// console's SWCHB: bit 0 is RESET (momentary, key 2), bit 1 is SELECT
// (momentary, key 3), bit 3 is the TV-type switch (toggled by key 1),
// bit 6 is P0's difficulty switch and bit 7 is P1's (toggled by keys 4
// and 5). All switches read high (off/B/Color) when not asserted.
func (w *Window) SwitchesByte() uint8 {
	var v uint8 = 0xff
	if w.key(sdl.SCANCODE_2) {
		v &^= 0x01
	}
	if w.key(sdl.SCANCODE_3) {
		v &^= 0x02
	}
	if w.tvType {
		v &^= 0x08
	}
	if w.p0Diff {
		v &^= 0x40
	}
	if w.p1Diff {
		v &^= 0x80
	}
	return v
}

// JoystickByte implements bus.InputSource: W/A/S/D drives joystick-0
// (SWCHA bits 4..7, per spec.md §6) and the arrow keys drive joystick-1
// (SWCHA bits 0..3).
func (w *Window) JoystickByte() uint8 {
	var v uint8 = 0xff
	if w.key(sdl.SCANCODE_W) {
		v &^= 0x10
	}
	if w.key(sdl.SCANCODE_S) {
		v &^= 0x20
	}
	if w.key(sdl.SCANCODE_A) {
		v &^= 0x40
	}
	if w.key(sdl.SCANCODE_D) {
		v &^= 0x80
	}
	if w.key(sdl.SCANCODE_UP) {
		v &^= 0x01
	}
	if w.key(sdl.SCANCODE_DOWN) {
		v &^= 0x02
	}
	if w.key(sdl.SCANCODE_LEFT) {
		v &^= 0x04
	}
	if w.key(sdl.SCANCODE_RIGHT) {
		v &^= 0x08
	}
	return v
}

// Button implements bus.InputSource: space for player 0's fire button,
// left control for player 1's.
func (w *Window) Button(player int) bool {
	if player == 0 {
		return w.key(sdl.SCANCODE_SPACE)
	}
	return w.key(sdl.SCANCODE_LCTRL)
}
