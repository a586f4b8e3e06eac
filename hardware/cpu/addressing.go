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

package cpu

// mode identifies how an instruction's operand byte(s) resolve to an
// effective address. Named and ordered the way the NMOS 6502's own
// documentation groups them.
type mode int

const (
	modeImplied mode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect // JMP only
	modeIndexedIndirectX
	modeIndirectIndexedY
	modeRelative // branches
)

// resolved is the effective address (or accumulator flag) plus whether
// resolving it crossed a page boundary, which costs the NMOS 6502 one
// extra cycle on read instructions in the affected addressing modes.
type resolved struct {
	address     uint16
	accumulator bool
	pageCrossed bool
}

func (c *CPU) resolve(m mode) (resolved, error) {
	switch m {
	case modeImplied:
		return resolved{}, nil
	case modeAccumulator:
		return resolved{accumulator: true}, nil
	case modeImmediate:
		addr := c.Registers.PC
		c.Registers.PC++
		return resolved{address: addr}, nil
	case modeZeroPage:
		b, err := c.fetch()
		return resolved{address: uint16(b)}, err
	case modeZeroPageX:
		b, err := c.fetch()
		return resolved{address: uint16(b + c.Registers.X)}, err
	case modeZeroPageY:
		b, err := c.fetch()
		return resolved{address: uint16(b + c.Registers.Y)}, err
	case modeAbsolute:
		addr, err := c.fetch16()
		return resolved{address: addr}, err
	case modeAbsoluteX:
		base, err := c.fetch16()
		if err != nil {
			return resolved{}, err
		}
		addr := base + uint16(c.Registers.X)
		return resolved{address: addr, pageCrossed: (base & 0xff00) != (addr & 0xff00)}, nil
	case modeAbsoluteY:
		base, err := c.fetch16()
		if err != nil {
			return resolved{}, err
		}
		addr := base + uint16(c.Registers.Y)
		return resolved{address: addr, pageCrossed: (base & 0xff00) != (addr & 0xff00)}, nil
	case modeIndirect:
		ptr, err := c.fetch16()
		if err != nil {
			return resolved{}, err
		}
		addr, err := c.readIndirect16(ptr)
		return resolved{address: addr}, err
	case modeIndexedIndirectX:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		ptr := uint16(b + c.Registers.X)
		addr, err := c.readIndirect16ZeroPage(ptr)
		return resolved{address: addr}, err
	case modeIndirectIndexedY:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		base, err := c.readIndirect16ZeroPage(uint16(b))
		if err != nil {
			return resolved{}, err
		}
		addr := base + uint16(c.Registers.Y)
		return resolved{address: addr, pageCrossed: (base & 0xff00) != (addr & 0xff00)}, nil
	case modeRelative:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		offset := int8(b)
		addr := uint16(int32(c.Registers.PC) + int32(offset))
		return resolved{address: addr, pageCrossed: (c.Registers.PC & 0xff00) != (addr & 0xff00)}, nil
	}
	return resolved{}, nil
}

// readIndirect16 reproduces the 6502's JMP (indirect) page-boundary bug:
// if the pointer's low byte is 0xFF, the high byte is fetched from the
// start of the same page rather than the next one.
func (c *CPU) readIndirect16(ptr uint16) (uint16, error) {
	lo, err := c.mem.Read(ptr)
	if err != nil {
		return 0, err
	}
	hiAddr := (ptr & 0xff00) | uint16(uint8(ptr)+1)
	hi, err := c.mem.Read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readIndirect16ZeroPage is the same wraparound behaviour, but for the
// (zp,X) and (zp),Y addressing modes, where the pointer always wraps
// within page zero.
func (c *CPU) readIndirect16ZeroPage(ptr uint16) (uint16, error) {
	lo, err := c.mem.Read(ptr & 0xff)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read((ptr + 1) & 0xff)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
