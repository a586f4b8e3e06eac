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

package video_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/tia/video"
)

func TestPlayfieldDecodeLeftHalf(t *testing.T) {
	var pf video.Playfield
	// PF0 top nybble all set -> groups 0..3 (columns 0..15) lit.
	pf.Sample(0xf0, 0x00, 0x00, false)
	for x := 0; x < 16; x++ {
		if !pf.Bit(x) {
			t.Errorf("x=%d: want lit", x)
		}
	}
	for x := 16; x < 40; x++ {
		if pf.Bit(x) {
			t.Errorf("x=%d: want dark", x)
		}
	}
}

func TestPlayfieldMirroredRightHalf(t *testing.T) {
	var pf video.Playfield
	pf.Sample(0xf0, 0x00, 0x00, true) // reflect
	// mirrored: group 39 maps back to group 0 (PF0 top nybble), so the
	// rightmost 16 columns (144..159) should be lit.
	for x := 144; x < 160; x++ {
		if !pf.Bit(x) {
			t.Errorf("x=%d: want lit (mirrored)", x)
		}
	}
	for x := 128; x < 144; x++ {
		if pf.Bit(x) {
			t.Errorf("x=%d: want dark", x)
		}
	}
}

func TestPlayfieldTiledRightHalf(t *testing.T) {
	var pf video.Playfield
	pf.Sample(0xf0, 0x00, 0x00, false) // no reflect: tiled
	// tiled: group 20 repeats group 0, so columns 80..95 repeat PF0.
	for x := 80; x < 96; x++ {
		if !pf.Bit(x) {
			t.Errorf("x=%d: want lit (tiled repeat of PF0)", x)
		}
	}
}
