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

// Package registers implements the 6507's programmer-visible state: the
// accumulator, index registers, stack pointer, program counter, and the
// status flags, packed to and from the single status byte pushed by PHP,
// BRK, and interrupts.
package registers

import "fmt"

// Status is the 6502 flag register, kept as individual booleans (as the
// instruction set manipulates them individually far more often than as
// a packed byte) with Pack/SetFromByte for the handful of operations
// (PHP, PLP, BRK, RTI) that need the byte form.
type Status struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// bit 5 of the status byte is unused on real hardware and always reads
// back as 1.
const unusedBit = 0x20

// Pack returns the status flags as a single byte, in P-register bit
// order (NV-BDIZC).
func (s Status) Pack(fromInstruction bool) uint8 {
	var v uint8 = unusedBit
	if s.Negative {
		v |= 0x80
	}
	if s.Overflow {
		v |= 0x40
	}
	if fromInstruction {
		v |= 0x10
	}
	if s.Decimal {
		v |= 0x08
	}
	if s.InterruptDisable {
		v |= 0x04
	}
	if s.Zero {
		v |= 0x02
	}
	if s.Carry {
		v |= 0x01
	}
	return v
}

// SetFromByte unpacks a status byte (as pulled by PLP or RTI) into the
// individual flags. The break flag is not a real latch on the 6502 and
// is left untouched by this call.
func (s *Status) SetFromByte(v uint8) {
	s.Negative = v&0x80 != 0
	s.Overflow = v&0x40 != 0
	s.Decimal = v&0x08 != 0
	s.InterruptDisable = v&0x04 != 0
	s.Zero = v&0x02 != 0
	s.Carry = v&0x01 != 0
}

// SetNZ sets the Zero and Negative flags from the given result byte, the
// single most common flag update in the instruction set.
func (s *Status) SetNZ(v uint8) {
	s.Zero = v == 0
	s.Negative = v&0x80 != 0
}

func (s Status) String() string {
	bit := func(b bool, c byte) byte {
		if b {
			return c
		}
		return c - 'A' + 'a'
	}
	return fmt.Sprintf("%c%c-%c%c%c%c%c",
		bit(s.Negative, 'N'), bit(s.Overflow, 'V'),
		bit(s.Break, 'B'), bit(s.Decimal, 'D'),
		bit(s.InterruptDisable, 'I'), bit(s.Zero, 'Z'), bit(s.Carry, 'C'))
}

// Registers holds every programmer-visible register of the 6507.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status Status
}
