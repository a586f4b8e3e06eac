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

// Package wavcapture is a headless bus.AudioSink that writes the
// console's stereo PCM stream straight to a WAV file, for running a ROM
// without an SDL audio device (CI, scripted playback verification).
package wavcapture

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Capture wraps a go-audio/wav encoder. Close must be called once
// capture is finished, to finalize the WAV header.
type Capture struct {
	f       *os.File
	encoder *wav.Encoder
}

// New creates (truncating) the WAV file at path and prepares an encoder
// for 8-bit, stereo, samplingRate PCM, matching the TIA mixer's native
// output format (spec.md §4.8 resamples to exactly this shape).
func New(path string, samplingRate int) (*Capture, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc := wav.NewEncoder(f, samplingRate, 8, 2, 1)
	return &Capture{f: f, encoder: enc}, nil
}

// QueueAudio implements bus.AudioSink.
func (c *Capture) QueueAudio(left, right []uint8) {
	data := make([]int, 0, len(left)+len(right))
	for i := range left {
		data = append(data, int(left[i]), int(right[i]))
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: c.encoder.SampleRate},
		Data:           data,
		SourceBitDepth: 8,
	}
	if err := c.encoder.Write(buf); err != nil {
		// best effort: a dropped audio block during capture should not
		// crash an otherwise healthy emulation run.
		return
	}
}

// Close finalizes the WAV header and closes the underlying file.
func (c *Capture) Close() error {
	if err := c.encoder.Close(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}
