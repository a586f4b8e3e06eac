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

package cpu_test

import (
	"testing"

	"github.com/retrocore/vcs2600/hardware/cpu"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (m *mockMem) Read(address uint16) (uint8, error) {
	return m.internal[address], nil
}

func (m *mockMem) Write(address uint16, data uint8) error {
	m.internal[address] = data
	return nil
}

func (m *mockMem) putInstructions(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.internal[origin+uint16(i)] = b
	}
}

type mockClock struct {
	cycles int
}

func (c *mockClock) AddCPUCycles(n int) { c.cycles += n }

func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem, *mockClock) {
	t.Helper()
	mem := newMockMem()
	mem.internal[0xfffc] = 0x00
	mem.internal[0xfffd] = 0x10 // reset vector -> 0x1000
	clock := &mockClock{}
	c := cpu.New(mem, clock)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return c, mem, clock
}

func TestResetVector(t *testing.T) {
	c, _, _ := newTestCPU(t)
	if c.Registers.PC != 0x1000 {
		t.Fatalf("PC after reset = %#04x, want 0x1000", c.Registers.PC)
	}
	if c.Registers.SP != 0xfd {
		t.Fatalf("SP after reset = %#02x, want 0xfd", c.Registers.SP)
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, mem, clock := newTestCPU(t)
	mem.putInstructions(0x1000, 0xa9, 0x00) // LDA #$00
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2", cycles)
	}
	if clock.cycles != 2 {
		t.Fatalf("clock billed %d cycles, want 2", clock.cycles)
	}
	if !c.Registers.Status.Zero {
		t.Fatalf("Zero flag not set after LDA #$00")
	}
	if c.Registers.Status.Negative {
		t.Fatalf("Negative flag unexpectedly set")
	}
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, mem, _ := newTestCPU(t)
	mem.putInstructions(0x1000,
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
	)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Registers.A != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", c.Registers.A)
	}
	if !c.Registers.Status.Overflow {
		t.Fatalf("Overflow not set for 0x7f+0x01 signed overflow")
	}
	if c.Registers.Status.Carry {
		t.Fatalf("Carry unexpectedly set")
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem, _ := newTestCPU(t)
	mem.putInstructions(0x1000,
		0x20, 0x00, 0x20, // JSR $2000
	)
	mem.putInstructions(0x2000,
		0x60, // RTS
	)
	if _, err := c.Step(); err != nil { // JSR
		t.Fatalf("Step (JSR): %v", err)
	}
	if c.Registers.PC != 0x2000 {
		t.Fatalf("PC after JSR = %#04x, want 0x2000", c.Registers.PC)
	}
	if _, err := c.Step(); err != nil { // RTS
		t.Fatalf("Step (RTS): %v", err)
	}
	if c.Registers.PC != 0x1003 {
		t.Fatalf("PC after RTS = %#04x, want 0x1003", c.Registers.PC)
	}
}

func TestBranchTakenCostsExtraCycle(t *testing.T) {
	c, mem, _ := newTestCPU(t)
	mem.putInstructions(0x1000,
		0x38,       // SEC
		0xb0, 0x02, // BCS +2
	)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (SEC): %v", err)
	}
	cycles, err := c.Step() // BCS, taken
	if err != nil {
		t.Fatalf("Step (BCS): %v", err)
	}
	if cycles != 3 {
		t.Fatalf("taken branch cycles = %d, want 3", cycles)
	}
	if c.Registers.PC != 0x1005 {
		t.Fatalf("PC after taken branch = %#04x, want 0x1005", c.Registers.PC)
	}
}

func TestStackWraps(t *testing.T) {
	c, mem, _ := newTestCPU(t)
	mem.putInstructions(0x1000, 0x48) // PHA
	c.Registers.SP = 0x00
	c.Registers.A = 0x42
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if mem.internal[0x0100] != 0x42 {
		t.Fatalf("stack byte at 0x0100 = %#02x, want 0x42", mem.internal[0x0100])
	}
	if c.Registers.SP != 0xff {
		t.Fatalf("SP after PHA at 0x00 = %#02x, want 0xff (wrapped)", c.Registers.SP)
	}
}
