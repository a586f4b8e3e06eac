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

// Package addresses holds the canonical register layout of the TIA and
// RIOT chips: the normalised (masked) address of each register and its
// mnemonic, plus the reset and IRQ vector addresses read by the CPU. The
// mnemonic tables map addresses to names only.
package addresses

// Reset is the address, in ROM space, holding the little-endian reset
// vector.
const Reset = uint16(0xfffc)

// IRQ is the address, in ROM space, holding the little-endian IRQ/BRK
// vector. The 6507 in the console has its IRQ line tied off, but the
// vector is still read by BRK.
const IRQ = uint16(0xfffe)

// TIAWriteSymbols indexes every TIA write register by its masked
// (6-bit) address.
var TIAWriteSymbols = map[uint8]string{
	0x00: "VSYNC",
	0x01: "VBLANK",
	0x02: "WSYNC",
	0x03: "RSYNC",
	0x04: "NUSIZ0",
	0x05: "NUSIZ1",
	0x06: "COLUP0",
	0x07: "COLUP1",
	0x08: "COLUPF",
	0x09: "COLUBK",
	0x0a: "CTRLPF",
	0x0b: "REFP0",
	0x0c: "REFP1",
	0x0d: "PF0",
	0x0e: "PF1",
	0x0f: "PF2",
	0x10: "RESP0",
	0x11: "RESP1",
	0x12: "RESM0",
	0x13: "RESM1",
	0x14: "RESBL",
	0x15: "AUDC0",
	0x16: "AUDC1",
	0x17: "AUDF0",
	0x18: "AUDF1",
	0x19: "AUDV0",
	0x1a: "AUDV1",
	0x1b: "GRP0",
	0x1c: "GRP1",
	0x1d: "ENAM0",
	0x1e: "ENAM1",
	0x1f: "ENABL",
	0x20: "HMP0",
	0x21: "HMP1",
	0x22: "HMM0",
	0x23: "HMM1",
	0x24: "HMBL",
	0x25: "VDELP0",
	0x26: "VDELP1",
	0x27: "VDELBL",
	0x28: "RESMP0",
	0x29: "RESMP1",
	0x2a: "HMOVE",
	0x2b: "HMCLR",
	0x2c: "CXCLR",
}

// TIAReadSymbols indexes every TIA read register by its masked (4-bit)
// address.
var TIAReadSymbols = map[uint8]string{
	0x00: "CXM0P",
	0x01: "CXM1P",
	0x02: "CXP0FB",
	0x03: "CXP1FB",
	0x04: "CXM0FB",
	0x05: "CXM1FB",
	0x06: "CXBLPF",
	0x07: "CXPPMM",
	0x08: "INPT0",
	0x09: "INPT1",
	0x0a: "INPT2",
	0x0b: "INPT3",
	0x0c: "INPT4",
	0x0d: "INPT5",
}

// RIOTSymbols indexes every RIOT register by its masked (5-bit) address.
// Address 0x05 is listed as INSTAT; some documentation lineages call the
// same register TIMINT, a name this table does not carry.
var RIOTSymbols = map[uint8]string{
	0x00: "SWCHA",
	0x01: "SWACNT",
	0x02: "SWCHB",
	0x03: "SWBCNT",
	0x04: "INTIM",
	0x05: "INSTAT",
	0x14: "TIM1T",
	0x15: "TIM8T",
	0x16: "TIM64T",
	0x17: "T1024T",
}
