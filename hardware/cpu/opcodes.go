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

// opcode describes one entry of the instruction set: its mnemonic (for
// the exec dispatch and for diagnostics), addressing mode, and base
// cycle count. pageSensitive instructions take one extra cycle when
// resolve() crosses a page boundary. Undocumented opcodes are a
// Non-goal; any index not listed here is treated as a one-byte,
// two-cycle NOP so that stray data bytes executed as code do not wedge
// the CPU, matching real hardware's tendency to fall through illegal
// opcodes rather than halt (exact illegal-opcode semantics are not
// reproduced).
type opcode struct {
	mnemonic      string
	mode          mode
	cycles        int
	pageSensitive bool
}

var opcodes = map[uint8]opcode{
	0x69: {"ADC", modeImmediate, 2, false},
	0x65: {"ADC", modeZeroPage, 3, false},
	0x75: {"ADC", modeZeroPageX, 4, false},
	0x6d: {"ADC", modeAbsolute, 4, false},
	0x7d: {"ADC", modeAbsoluteX, 4, true},
	0x79: {"ADC", modeAbsoluteY, 4, true},
	0x61: {"ADC", modeIndexedIndirectX, 6, false},
	0x71: {"ADC", modeIndirectIndexedY, 5, true},

	0x29: {"AND", modeImmediate, 2, false},
	0x25: {"AND", modeZeroPage, 3, false},
	0x35: {"AND", modeZeroPageX, 4, false},
	0x2d: {"AND", modeAbsolute, 4, false},
	0x3d: {"AND", modeAbsoluteX, 4, true},
	0x39: {"AND", modeAbsoluteY, 4, true},
	0x21: {"AND", modeIndexedIndirectX, 6, false},
	0x31: {"AND", modeIndirectIndexedY, 5, true},

	0x0a: {"ASL", modeAccumulator, 2, false},
	0x06: {"ASL", modeZeroPage, 5, false},
	0x16: {"ASL", modeZeroPageX, 6, false},
	0x0e: {"ASL", modeAbsolute, 6, false},
	0x1e: {"ASL", modeAbsoluteX, 7, false},

	0x90: {"BCC", modeRelative, 2, false},
	0xb0: {"BCS", modeRelative, 2, false},
	0xf0: {"BEQ", modeRelative, 2, false},
	0x30: {"BMI", modeRelative, 2, false},
	0xd0: {"BNE", modeRelative, 2, false},
	0x10: {"BPL", modeRelative, 2, false},
	0x50: {"BVC", modeRelative, 2, false},
	0x70: {"BVS", modeRelative, 2, false},

	0x24: {"BIT", modeZeroPage, 3, false},
	0x2c: {"BIT", modeAbsolute, 4, false},

	0x00: {"BRK", modeImplied, 7, false},

	0x18: {"CLC", modeImplied, 2, false},
	0xd8: {"CLD", modeImplied, 2, false},
	0x58: {"CLI", modeImplied, 2, false},
	0xb8: {"CLV", modeImplied, 2, false},

	0xc9: {"CMP", modeImmediate, 2, false},
	0xc5: {"CMP", modeZeroPage, 3, false},
	0xd5: {"CMP", modeZeroPageX, 4, false},
	0xcd: {"CMP", modeAbsolute, 4, false},
	0xdd: {"CMP", modeAbsoluteX, 4, true},
	0xd9: {"CMP", modeAbsoluteY, 4, true},
	0xc1: {"CMP", modeIndexedIndirectX, 6, false},
	0xd1: {"CMP", modeIndirectIndexedY, 5, true},

	0xe0: {"CPX", modeImmediate, 2, false},
	0xe4: {"CPX", modeZeroPage, 3, false},
	0xec: {"CPX", modeAbsolute, 4, false},

	0xc0: {"CPY", modeImmediate, 2, false},
	0xc4: {"CPY", modeZeroPage, 3, false},
	0xcc: {"CPY", modeAbsolute, 4, false},

	0xc6: {"DEC", modeZeroPage, 5, false},
	0xd6: {"DEC", modeZeroPageX, 6, false},
	0xce: {"DEC", modeAbsolute, 6, false},
	0xde: {"DEC", modeAbsoluteX, 7, false},

	0xca: {"DEX", modeImplied, 2, false},
	0x88: {"DEY", modeImplied, 2, false},

	0x49: {"EOR", modeImmediate, 2, false},
	0x45: {"EOR", modeZeroPage, 3, false},
	0x55: {"EOR", modeZeroPageX, 4, false},
	0x4d: {"EOR", modeAbsolute, 4, false},
	0x5d: {"EOR", modeAbsoluteX, 4, true},
	0x59: {"EOR", modeAbsoluteY, 4, true},
	0x41: {"EOR", modeIndexedIndirectX, 6, false},
	0x51: {"EOR", modeIndirectIndexedY, 5, true},

	0xe6: {"INC", modeZeroPage, 5, false},
	0xf6: {"INC", modeZeroPageX, 6, false},
	0xee: {"INC", modeAbsolute, 6, false},
	0xfe: {"INC", modeAbsoluteX, 7, false},

	0xe8: {"INX", modeImplied, 2, false},
	0xc8: {"INY", modeImplied, 2, false},

	0x4c: {"JMP", modeAbsolute, 3, false},
	0x6c: {"JMP", modeIndirect, 5, false},

	0x20: {"JSR", modeAbsolute, 6, false},

	0xa9: {"LDA", modeImmediate, 2, false},
	0xa5: {"LDA", modeZeroPage, 3, false},
	0xb5: {"LDA", modeZeroPageX, 4, false},
	0xad: {"LDA", modeAbsolute, 4, false},
	0xbd: {"LDA", modeAbsoluteX, 4, true},
	0xb9: {"LDA", modeAbsoluteY, 4, true},
	0xa1: {"LDA", modeIndexedIndirectX, 6, false},
	0xb1: {"LDA", modeIndirectIndexedY, 5, true},

	0xa2: {"LDX", modeImmediate, 2, false},
	0xa6: {"LDX", modeZeroPage, 3, false},
	0xb6: {"LDX", modeZeroPageY, 4, false},
	0xae: {"LDX", modeAbsolute, 4, false},
	0xbe: {"LDX", modeAbsoluteY, 4, true},

	0xa0: {"LDY", modeImmediate, 2, false},
	0xa4: {"LDY", modeZeroPage, 3, false},
	0xb4: {"LDY", modeZeroPageX, 4, false},
	0xac: {"LDY", modeAbsolute, 4, false},
	0xbc: {"LDY", modeAbsoluteX, 4, true},

	0x4a: {"LSR", modeAccumulator, 2, false},
	0x46: {"LSR", modeZeroPage, 5, false},
	0x56: {"LSR", modeZeroPageX, 6, false},
	0x4e: {"LSR", modeAbsolute, 6, false},
	0x5e: {"LSR", modeAbsoluteX, 7, false},

	0xea: {"NOP", modeImplied, 2, false},

	0x09: {"ORA", modeImmediate, 2, false},
	0x05: {"ORA", modeZeroPage, 3, false},
	0x15: {"ORA", modeZeroPageX, 4, false},
	0x0d: {"ORA", modeAbsolute, 4, false},
	0x1d: {"ORA", modeAbsoluteX, 4, true},
	0x19: {"ORA", modeAbsoluteY, 4, true},
	0x01: {"ORA", modeIndexedIndirectX, 6, false},
	0x11: {"ORA", modeIndirectIndexedY, 5, true},

	0x48: {"PHA", modeImplied, 3, false},
	0x08: {"PHP", modeImplied, 3, false},
	0x68: {"PLA", modeImplied, 4, false},
	0x28: {"PLP", modeImplied, 4, false},

	0x2a: {"ROL", modeAccumulator, 2, false},
	0x26: {"ROL", modeZeroPage, 5, false},
	0x36: {"ROL", modeZeroPageX, 6, false},
	0x2e: {"ROL", modeAbsolute, 6, false},
	0x3e: {"ROL", modeAbsoluteX, 7, false},

	0x6a: {"ROR", modeAccumulator, 2, false},
	0x66: {"ROR", modeZeroPage, 5, false},
	0x76: {"ROR", modeZeroPageX, 6, false},
	0x6e: {"ROR", modeAbsolute, 6, false},
	0x7e: {"ROR", modeAbsoluteX, 7, false},

	0x40: {"RTI", modeImplied, 6, false},
	0x60: {"RTS", modeImplied, 6, false},

	0xe9: {"SBC", modeImmediate, 2, false},
	0xe5: {"SBC", modeZeroPage, 3, false},
	0xf5: {"SBC", modeZeroPageX, 4, false},
	0xed: {"SBC", modeAbsolute, 4, false},
	0xfd: {"SBC", modeAbsoluteX, 4, true},
	0xf9: {"SBC", modeAbsoluteY, 4, true},
	0xe1: {"SBC", modeIndexedIndirectX, 6, false},
	0xf1: {"SBC", modeIndirectIndexedY, 5, true},

	0x38: {"SEC", modeImplied, 2, false},
	0xf8: {"SED", modeImplied, 2, false},
	0x78: {"SEI", modeImplied, 2, false},

	0x85: {"STA", modeZeroPage, 3, false},
	0x95: {"STA", modeZeroPageX, 4, false},
	0x8d: {"STA", modeAbsolute, 4, false},
	0x9d: {"STA", modeAbsoluteX, 5, false},
	0x99: {"STA", modeAbsoluteY, 5, false},
	0x81: {"STA", modeIndexedIndirectX, 6, false},
	0x91: {"STA", modeIndirectIndexedY, 6, false},

	0x86: {"STX", modeZeroPage, 3, false},
	0x96: {"STX", modeZeroPageY, 4, false},
	0x8e: {"STX", modeAbsolute, 4, false},

	0x84: {"STY", modeZeroPage, 3, false},
	0x94: {"STY", modeZeroPageX, 4, false},
	0x8c: {"STY", modeAbsolute, 4, false},

	0xaa: {"TAX", modeImplied, 2, false},
	0xa8: {"TAY", modeImplied, 2, false},
	0xba: {"TSX", modeImplied, 2, false},
	0x8a: {"TXA", modeImplied, 2, false},
	0x9a: {"TXS", modeImplied, 2, false},
	0x98: {"TYA", modeImplied, 2, false},
}
