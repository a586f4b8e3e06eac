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

package audio_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/tia/audio"
)

func TestZeroVolumeSquelchesAllWaveforms(t *testing.T) {
	for audc := 0; audc < 16; audc++ {
		c := audio.NewChannel()
		c.AUDC = uint8(audc)
		c.AUDF = 7
		c.AUDV = 0
		for i := 0; i < 10000; i++ {
			c.Tick()
			if got := c.Sample(); got != 128 {
				t.Fatalf("AUDC=%#x: sample=%d at tick %d, want 128", audc, got, i)
			}
		}
	}
}

func TestMixerEmitsRequestedBlockSize(t *testing.T) {
	m := audio.NewMixer(3*1193182, 44100, 16)
	var gotLeft, gotRight []uint8
	for i := 0; i < 2_000_000 && gotLeft == nil; i++ {
		l, r, flush := m.Tick()
		if flush {
			gotLeft, gotRight = l, r
		}
	}
	if len(gotLeft) != 16 || len(gotRight) != 16 {
		t.Fatalf("got block sizes %d/%d, want 16/16", len(gotLeft), len(gotRight))
	}
}
