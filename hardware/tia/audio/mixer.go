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

package audio

// Mixer ties the two audio channels to a pixel-clock-rate source and
// resamples their output down to a host sample rate, buffering
// complete stereo blocks for the platform sink (spec.md §4.8, §5).
type Mixer struct {
	Ch0, Ch1 Channel

	clockRate    float64 // pixel clock rate, e.g. clocks.NTSC_TIA * 1e6
	samplingRate float64 // host rate, e.g. 44100

	clock            uint64
	nextSampleIndex  uint64
	blockSize        int

	left, right []uint8
}

// NewMixer creates a mixer that emits blocks of blockSize stereo frames
// once filled, resampling from clockRate (pixel clocks per second) to
// samplingRate (host samples per second).
func NewMixer(clockRate, samplingRate float64, blockSize int) *Mixer {
	return &Mixer{
		Ch0:          NewChannel(),
		Ch1:          NewChannel(),
		clockRate:    clockRate,
		samplingRate: samplingRate,
		blockSize:    blockSize,
	}
}

// Tick advances both channels and the resampling clock by one pixel
// clock, appending a new stereo sample to the pending block whenever
// the resampler's schedule calls for one. It returns a completed block
// (left, right) and true when blockSize frames have accumulated; the
// caller must hand that block to the platform's AudioSink and is free
// to reuse the returned slices after this call.
func (m *Mixer) Tick() (left, right []uint8, flush bool) {
	m.Ch0.Tick()
	m.Ch1.Tick()
	m.clock++

	nextSampleClock := uint64(float64(m.nextSampleIndex) * m.clockRate / m.samplingRate)
	for nextSampleClock <= m.clock {
		m.left = append(m.left, m.Ch0.Sample())
		m.right = append(m.right, m.Ch1.Sample())
		m.nextSampleIndex++
		nextSampleClock = uint64(float64(m.nextSampleIndex) * m.clockRate / m.samplingRate)

		if len(m.left) >= m.blockSize {
			l, r := m.left, m.right
			m.left, m.right = nil, nil
			return l, r, true
		}
	}
	return nil, nil, false
}
