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

package memory

// RAMSize is the console's general purpose RAM, shared with the CPU's
// stack (spec.md §3, §4.1).
const RAMSize = 128

// RAM is the console's 128 bytes of battery-less, power-on-undefined
// general purpose memory. It powers on zeroed here; real hardware powers
// on with whatever the capacitors happened to hold, but no title relies
// on that for correct behaviour.
type RAM struct {
	data [RAMSize]byte
}

func (r *RAM) Read(addr uint8) uint8 {
	return r.data[addr]
}

func (r *RAM) Write(addr uint8, data uint8) {
	r.data[addr] = data
}
