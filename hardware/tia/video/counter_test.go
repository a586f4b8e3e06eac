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

func TestSetMotionWraps(t *testing.T) {
	cases := []struct {
		nybble uint8
		want   int
	}{
		{0x0, 0},
		{0x7, -7},
		{0x8, -8}, // 4-bit wraparound, see counter.go doc comment
		{0x9, 7},
		{0xf, 1},
	}
	for _, c := range cases {
		var cnt video.Counter
		cnt.SetMotion(c.nybble << 4)
		if cnt.Motion != c.want {
			t.Errorf("nybble %#x: motion=%d, want %d", c.nybble, cnt.Motion, c.want)
		}
	}
}

func TestCounterDoesNotAdvanceDuringHBlankWithoutComb(t *testing.T) {
	var c video.Counter
	for i := 0; i < 10; i++ {
		c.Advance(true, false, 0)
	}
	if c.Value != 0 {
		t.Fatalf("counter advanced during HBLANK without HMOVE comb: value=%d", c.Value)
	}
}

func TestCounterWrapsModulo160(t *testing.T) {
	var c video.Counter
	for i := 0; i < video.Period+5; i++ {
		c.Advance(false, false, 0)
	}
	if c.Value != 5 {
		t.Fatalf("counter after %d advances = %d, want 5", video.Period+5, c.Value)
	}
}

func TestStrobeResetsAfterLatency(t *testing.T) {
	var c video.Counter
	for i := 0; i < 50; i++ {
		c.Advance(false, false, 0)
	}
	c.Strobe(3)
	// The reset_timer==0 check runs before the decrement in the same
	// Advance call (spec.md §4.4's pseudocode), so a latency of N ticks
	// takes N+1 Advance calls to actually zero the counter: the first N
	// calls count the countdown down to 0, and the reset fires on the
	// following call. This is the literal reading of §4.4; see
	// DESIGN.md for the corresponding resolution of the Open Question
	// in spec.md §9 about RESPn latency off-by-one behavior.
	for i := 0; i < 4; i++ {
		c.Advance(false, false, 0)
	}
	if c.Value != 0 {
		t.Fatalf("counter value after reset latency = %d, want 0", c.Value)
	}
}
