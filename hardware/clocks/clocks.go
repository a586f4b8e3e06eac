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

// Package clocks defines the constant values that govern the speed of
// the main clock in the console. The TIA's pixel (color) clock runs at
// exactly three times the CPU's clock, for every television standard.
//
// Values taken from the well known "Stella Programmer's Guide" clock
// tables.
package clocks

// CPU clock rates, in megahertz, by television standard.
const (
	NTSC  = 1.193182
	PAL   = 1.182298
	PAL_M = 1.191870
	SECAM = 1.187500
)

// TIA pixel-clock rates: three color clocks per CPU cycle.
const (
	NTSC_TIA  = NTSC * 3
	PAL_TIA   = PAL * 3
	PAL_M_TIA = PAL_M * 3
	SECAM_TIA = SECAM * 3
)

// CyclesPerCPUCycle is the fixed pixel-clock-to-CPU-cycle ratio used
// throughout the scheduler: every CPU cycle bills exactly three pixel
// clocks to the TIA, regardless of television standard.
const CyclesPerCPUCycle = 3
