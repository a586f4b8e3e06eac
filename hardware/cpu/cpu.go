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

// Package cpu implements the 6507 found in the console: the 6502
// instruction set, minus decimal-mode (BCD) arithmetic and the
// undocumented opcodes, which are explicitly out of scope (spec.md §1
// names the instruction decoder itself as an external collaborator the
// core merely drives through a clock sink; this package is that
// collaborator's concrete implementation for a runnable build).
package cpu

import (
	"fmt"

	"github.com/retrocore/vcs2600/hardware/cpu/registers"
	"github.com/retrocore/vcs2600/hardware/memory/addresses"
	"github.com/retrocore/vcs2600/hardware/memory/bus"
)

// CPU drives a bus.CPUBus one instruction at a time, billing pixel
// clocks to a bus.ClockSink as it goes (spec.md §9's owned-composition
// design: the CPU never talks to the TIA directly).
type CPU struct {
	Registers registers.Registers

	mem   bus.CPUBus
	clock bus.ClockSink

	// NoFlowControl suppresses the effect of branches, jumps, and
	// subroutine calls (but not bank-switching, which this console
	// doesn't have). Used by static analysis tools that need to step
	// through every byte of a ROM once regardless of what it does.
	NoFlowControl bool
}

// New returns a CPU wired to the given bus and clock sink. Call Reset
// before the first Step.
func New(mem bus.CPUBus, clock bus.ClockSink) *CPU {
	return &CPU{mem: mem, clock: clock}
}

// Reset loads the program counter from the reset vector and establishes
// the 6502's documented power-on register state.
func (c *CPU) Reset() error {
	lo, err := c.mem.Read(addresses.Reset)
	if err != nil {
		return err
	}
	hi, err := c.mem.Read(addresses.Reset + 1)
	if err != nil {
		return err
	}
	c.Registers.PC = uint16(hi)<<8 | uint16(lo)
	c.Registers.SP = 0xfd
	c.Registers.Status = registers.Status{InterruptDisable: true}
	return nil
}

func (c *CPU) fetch() (uint8, error) {
	v, err := c.mem.Read(c.Registers.PC)
	c.Registers.PC++
	return v, err
}

func (c *CPU) fetch16() (uint16, error) {
	lo, err := c.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *CPU) push(v uint8) error {
	err := c.mem.Write(0x0100|uint16(c.Registers.SP), v)
	c.Registers.SP--
	return err
}

func (c *CPU) pop() (uint8, error) {
	c.Registers.SP++
	return c.mem.Read(0x0100 | uint16(c.Registers.SP))
}

func (c *CPU) push16(v uint16) error {
	if err := c.push(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push(uint8(v))
}

func (c *CPU) pop16() (uint16, error) {
	lo, err := c.pop()
	if err != nil {
		return 0, err
	}
	hi, err := c.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *CPU) readOperand(r resolved) (uint8, error) {
	if r.accumulator {
		return c.Registers.A, nil
	}
	return c.mem.Read(r.address)
}

func (c *CPU) writeOperand(r resolved, v uint8) error {
	if r.accumulator {
		c.Registers.A = v
		return nil
	}
	return c.mem.Write(r.address, v)
}

// Step executes exactly one instruction, bills its cycle count (plus
// any page-crossing penalty) to the clock sink, and returns the number
// of CPU cycles it took.
func (c *CPU) Step() (int, error) {
	opcodeByte, err := c.fetch()
	if err != nil {
		return 0, err
	}

	def, ok := opcodes[opcodeByte]
	if !ok {
		// Undocumented opcodes are a Non-goal (spec.md §1): treat any
		// unlisted byte as a single-cycle-accurate-enough NOP so a
		// stray data byte fetched as code cannot wedge the scheduler.
		c.clock.AddCPUCycles(2)
		return 2, nil
	}

	r, err := c.resolve(def.mode)
	if err != nil {
		return 0, err
	}

	cycles := def.cycles
	extra, err := c.execute(def.mnemonic, r)
	if err != nil {
		return 0, err
	}
	cycles += extra
	if def.pageSensitive && r.pageCrossed {
		cycles++
	}

	c.clock.AddCPUCycles(cycles)
	return cycles, nil
}

// execute runs one instruction's semantics and returns any additional
// cycles it consumes beyond the opcode table's base count (taken
// branches cost one extra cycle, plus one more if the branch crosses a
// page).
func (c *CPU) execute(mnemonic string, r resolved) (int, error) {
	switch mnemonic {
	case "ADC":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.adc(v)
	case "AND":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.A &= v
		c.Registers.Status.SetNZ(c.Registers.A)
	case "ASL":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.Status.Carry = v&0x80 != 0
		v <<= 1
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "BCC":
		return c.branch(r, !c.Registers.Status.Carry)
	case "BCS":
		return c.branch(r, c.Registers.Status.Carry)
	case "BEQ":
		return c.branch(r, c.Registers.Status.Zero)
	case "BMI":
		return c.branch(r, c.Registers.Status.Negative)
	case "BNE":
		return c.branch(r, !c.Registers.Status.Zero)
	case "BPL":
		return c.branch(r, !c.Registers.Status.Negative)
	case "BVC":
		return c.branch(r, !c.Registers.Status.Overflow)
	case "BVS":
		return c.branch(r, c.Registers.Status.Overflow)
	case "BIT":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.Status.Zero = c.Registers.A&v == 0
		c.Registers.Status.Overflow = v&0x40 != 0
		c.Registers.Status.Negative = v&0x80 != 0
	case "BRK":
		return 0, c.brk()
	case "CLC":
		c.Registers.Status.Carry = false
	case "CLD":
		c.Registers.Status.Decimal = false
	case "CLI":
		c.Registers.Status.InterruptDisable = false
	case "CLV":
		c.Registers.Status.Overflow = false
	case "CMP":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.compare(c.Registers.A, v)
	case "CPX":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.compare(c.Registers.X, v)
	case "CPY":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.compare(c.Registers.Y, v)
	case "DEC":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		v--
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "DEX":
		c.Registers.X--
		c.Registers.Status.SetNZ(c.Registers.X)
	case "DEY":
		c.Registers.Y--
		c.Registers.Status.SetNZ(c.Registers.Y)
	case "EOR":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.A ^= v
		c.Registers.Status.SetNZ(c.Registers.A)
	case "INC":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		v++
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "INX":
		c.Registers.X++
		c.Registers.Status.SetNZ(c.Registers.X)
	case "INY":
		c.Registers.Y++
		c.Registers.Status.SetNZ(c.Registers.Y)
	case "JMP":
		if !c.NoFlowControl {
			c.Registers.PC = r.address
		}
	case "JSR":
		if !c.NoFlowControl {
			if err := c.push16(c.Registers.PC - 1); err != nil {
				return 0, err
			}
			c.Registers.PC = r.address
		}
	case "LDA":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.A = v
		c.Registers.Status.SetNZ(v)
	case "LDX":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.X = v
		c.Registers.Status.SetNZ(v)
	case "LDY":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.Y = v
		c.Registers.Status.SetNZ(v)
	case "LSR":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.Status.Carry = v&0x01 != 0
		v >>= 1
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "NOP":
	case "ORA":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.Registers.A |= v
		c.Registers.Status.SetNZ(c.Registers.A)
	case "PHA":
		return 0, c.push(c.Registers.A)
	case "PHP":
		return 0, c.push(c.Registers.Status.Pack(true))
	case "PLA":
		v, err := c.pop()
		if err != nil {
			return 0, err
		}
		c.Registers.A = v
		c.Registers.Status.SetNZ(v)
	case "PLP":
		v, err := c.pop()
		if err != nil {
			return 0, err
		}
		c.Registers.Status.SetFromByte(v)
	case "ROL":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		carryIn := uint8(0)
		if c.Registers.Status.Carry {
			carryIn = 1
		}
		c.Registers.Status.Carry = v&0x80 != 0
		v = v<<1 | carryIn
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "ROR":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		carryIn := uint8(0)
		if c.Registers.Status.Carry {
			carryIn = 0x80
		}
		c.Registers.Status.Carry = v&0x01 != 0
		v = v>>1 | carryIn
		c.Registers.Status.SetNZ(v)
		return 0, c.writeOperand(r, v)
	case "RTI":
		status, err := c.pop()
		if err != nil {
			return 0, err
		}
		c.Registers.Status.SetFromByte(status)
		pc, err := c.pop16()
		if err != nil {
			return 0, err
		}
		if !c.NoFlowControl {
			c.Registers.PC = pc
		}
	case "RTS":
		pc, err := c.pop16()
		if err != nil {
			return 0, err
		}
		if !c.NoFlowControl {
			c.Registers.PC = pc + 1
		}
	case "SBC":
		v, err := c.readOperand(r)
		if err != nil {
			return 0, err
		}
		c.adc(^v)
	case "SEC":
		c.Registers.Status.Carry = true
	case "SED":
		c.Registers.Status.Decimal = true
	case "SEI":
		c.Registers.Status.InterruptDisable = true
	case "STA":
		return 0, c.writeOperand(r, c.Registers.A)
	case "STX":
		return 0, c.writeOperand(r, c.Registers.X)
	case "STY":
		return 0, c.writeOperand(r, c.Registers.Y)
	case "TAX":
		c.Registers.X = c.Registers.A
		c.Registers.Status.SetNZ(c.Registers.X)
	case "TAY":
		c.Registers.Y = c.Registers.A
		c.Registers.Status.SetNZ(c.Registers.Y)
	case "TSX":
		c.Registers.X = c.Registers.SP
		c.Registers.Status.SetNZ(c.Registers.X)
	case "TXA":
		c.Registers.A = c.Registers.X
		c.Registers.Status.SetNZ(c.Registers.A)
	case "TXS":
		c.Registers.SP = c.Registers.X
	case "TYA":
		c.Registers.A = c.Registers.Y
		c.Registers.Status.SetNZ(c.Registers.A)
	default:
		return 0, fmt.Errorf("cpu: unimplemented mnemonic %s", mnemonic)
	}
	return 0, nil
}

// adc implements both ADC and, via SBC's ones-complement trick, SBC.
// SED/CLD set and clear the Decimal flag, but this core only performs
// binary addition: the flag does not change ADC or SBC results.
func (c *CPU) adc(v uint8) {
	carry := uint16(0)
	if c.Registers.Status.Carry {
		carry = 1
	}
	sum := uint16(c.Registers.A) + uint16(v) + carry
	result := uint8(sum)
	c.Registers.Status.Overflow = (c.Registers.A^v)&0x80 == 0 && (c.Registers.A^result)&0x80 != 0
	c.Registers.Status.Carry = sum > 0xff
	c.Registers.A = result
	c.Registers.Status.SetNZ(result)
}

func (c *CPU) compare(reg, v uint8) {
	c.Registers.Status.Carry = reg >= v
	c.Registers.Status.SetNZ(reg - v)
}

// branch returns the extra cycle cost of a branch instruction (1 if
// taken, plus 1 more if it crossed a page), applying the jump to PC
// only when taken.
func (c *CPU) branch(r resolved, take bool) (int, error) {
	if !take {
		return 0, nil
	}
	extra := 1
	if r.pageCrossed {
		extra++
	}
	if !c.NoFlowControl {
		c.Registers.PC = r.address
	}
	return extra, nil
}

func (c *CPU) brk() error {
	if err := c.push16(c.Registers.PC + 1); err != nil {
		return err
	}
	if err := c.push(c.Registers.Status.Pack(true)); err != nil {
		return err
	}
	c.Registers.Status.InterruptDisable = true
	lo, err := c.mem.Read(addresses.IRQ)
	if err != nil {
		return err
	}
	hi, err := c.mem.Read(addresses.IRQ + 1)
	if err != nil {
		return err
	}
	if !c.NoFlowControl {
		c.Registers.PC = uint16(hi)<<8 | uint16(lo)
	}
	return nil
}
