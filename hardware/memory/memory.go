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

// Package memory implements the console's address decode (spec.md §4.1):
// the single bus.CPUBus the CPU sees is really four regions — cartridge
// ROM, 128 bytes of RAM, the TIA register file, and the RIOT — and this
// package is the switchboard that routes a CPU address to the right one.
package memory

import (
	"github.com/retrocore/vcs2600/hardware/cartridge"
	"github.com/retrocore/vcs2600/hardware/riot"
	"github.com/retrocore/vcs2600/hardware/tia"
	"github.com/retrocore/vcs2600/internal/curated"
)

// VCSMemory is the console's complete address space: cartridge ROM, RAM,
// and the two chip register files, addressed the way the CPU presents
// them (a full 16-bit value; only the low bits the decode rule actually
// inspects matter, mirroring the fact that the physical 6507 only
// drives 13 address pins).
type VCSMemory struct {
	Cart *cartridge.Cartridge
	RAM  RAM
	TIA  *tia.TIA
	RIOT *riot.RIOT
}

// New returns a memory map wired to the given cartridge, TIA, and RIOT.
func New(cart *cartridge.Cartridge, t *tia.TIA, r *riot.RIOT) *VCSMemory {
	return &VCSMemory{Cart: cart, TIA: t, RIOT: r}
}

// Read implements bus.CPUBus, applying the decode rule in spec.md §4.1.
func (m *VCSMemory) Read(address uint16) (uint8, error) {
	switch {
	case address >= 0xf000:
		return m.Cart.Read(address), nil
	case address&0x280 == 0x080:
		return m.RAM.Read(uint8(address & 0x7f)), nil
	case address&0x280 == 0x280:
		return m.RIOT.Read(uint8(address & 0x1f)), nil
	default:
		return m.TIA.Read(uint8(address & 0x0f)), nil
	}
}

// Write implements bus.CPUBus. Writes to ROM are silently ignored.
func (m *VCSMemory) Write(address uint16, data uint8) error {
	switch {
	case address >= 0xf000:
		// ROM is read-only; spec.md §4.1 says writes are dropped, not an
		// error.
		return nil
	case address&0x280 == 0x080:
		m.RAM.Write(uint8(address&0x7f), data)
	case address&0x280 == 0x280:
		m.RIOT.Write(uint8(address&0x1f), data)
	default:
		m.TIA.Write(uint8(address&0x3f), data)
	}
	return nil
}

// Peek and Poke implement bus.DebuggerBus: out-of-band access for
// disassemblers and debuggers that must not trip strobe side effects.
// Only RAM and ROM support this safely; TIA and RIOT registers are
// peeked through their ordinary (masked) Read, which for the RIOT's
// INSTAT would incorrectly clear the interrupt flag, so those accesses
// report an error instead of silently lying.
func (m *VCSMemory) Peek(address uint16) (uint8, error) {
	switch {
	case address >= 0xf000:
		return m.Cart.Read(address), nil
	case address&0x280 == 0x080:
		return m.RAM.Read(uint8(address & 0x7f)), nil
	default:
		return 0, curated.Errorf(curated.AddressUndefined, address)
	}
}

func (m *VCSMemory) Poke(address uint16, value uint8) error {
	switch {
	case address >= 0xf000:
		return nil
	case address&0x280 == 0x080:
		m.RAM.Write(uint8(address&0x7f), value)
		return nil
	default:
		return curated.Errorf(curated.AddressUndefined, address)
	}
}
