// This file is part of Gopher8008.
//
// Gopher8008 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8008 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8008.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the 16KB address space of an 8008 system. The
// CPU can only drive fourteen address bits so the whole space is always
// mapped; an optional boundary marks the low portion as ROM, which is how
// the monitor program of a typical system is protected from itself.
package memory

import "github.com/jetsetilly/gopher8008/curated"

// AddressSpace is the size of the addressable memory: fourteen address bits.
const AddressSpace = 0x4000

// error patterns for illegal memory operations.
const (
	ReadOnlyError = "memory: write to read-only address %#04x"
	OriginError   = "memory: program of %d bytes does not fit at origin %#04x"
)

// Memory is a flat 16KB store with an optional read-only region starting at
// address zero.
type Memory struct {
	data [AddressSpace]uint8

	// addresses below romTop reject writes from the CPU. zero means the
	// whole space is RAM
	romTop uint16
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// SetROM marks addresses below top as read-only. Pass zero to make the whole
// space writable again.
func (m *Memory) SetROM(top uint16) {
	m.romTop = top & (AddressSpace - 1)
}

// Read implements the bus.Memory interface. Addresses are masked to fourteen
// bits, mirroring the fact that the upper pins simply do not exist.
func (m *Memory) Read(address uint16) (uint8, error) {
	return m.data[address&(AddressSpace-1)], nil
}

// Write implements the bus.Memory interface. Writes into the ROM region
// return a curated error.
func (m *Memory) Write(address uint16, data uint8) error {
	address &= AddressSpace - 1
	if address < m.romTop {
		return curated.Errorf(ReadOnlyError, address)
	}
	m.data[address] = data
	return nil
}

// Load copies a program image into memory at origin, ignoring any ROM
// protection. Used when setting a system up, not by the running CPU.
func (m *Memory) Load(origin uint16, program []uint8) error {
	if int(origin)+len(program) > AddressSpace {
		return curated.Errorf(OriginError, len(program), origin)
	}
	copy(m.data[origin:], program)
	return nil
}

// Peek reads an address without going through the bus interface. For
// debuggers and tests.
func (m *Memory) Peek(address uint16) uint8 {
	return m.data[address&(AddressSpace-1)]
}

// Poke writes an address directly, ignoring ROM protection. For debuggers
// and tests.
func (m *Memory) Poke(address uint16, data uint8) {
	m.data[address&(AddressSpace-1)] = data
}
