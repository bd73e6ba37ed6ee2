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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/disassembly"
	"github.com/jetsetilly/gopher8008/hardware/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	mem := memory.NewMemory()
	require.NoError(t, mem.Load(0x0000, []uint8{
		0x06, 0x42, // LAI 0x42
		0xc7,             // LAM
		0xf8,             // LMA
		0x44, 0x34, 0x12, // JMP 0x1234
		0x3d, // RST 7
		0xff, // HLT
	}))

	entries := disassembly.Disassemble(mem, 0x0000, 6)
	require.Len(t, entries, 6)

	assert.Equal(t, "LAI", entries[0].Mnemonic)
	assert.Equal(t, "0x42", entries[0].Operand)
	assert.Equal(t, uint16(0x0000), entries[0].Address)

	// memory operands add cycles but not bytes
	assert.Equal(t, "LAM", entries[1].Mnemonic)
	assert.Len(t, entries[1].Bytes, 1)
	assert.Equal(t, uint16(0x0002), entries[1].Address)

	assert.Equal(t, "LMA", entries[2].Mnemonic)

	assert.Equal(t, "JMP", entries[3].Mnemonic)
	assert.Equal(t, "0x1234", entries[3].Operand)
	assert.Len(t, entries[3].Bytes, 3)

	assert.Equal(t, "RST 7", entries[4].Mnemonic)
	assert.Equal(t, "HLT", entries[5].Mnemonic)
}

func TestEntryString(t *testing.T) {
	mem := memory.NewMemory()
	require.NoError(t, mem.Load(0x0000, []uint8{0x44, 0x34, 0x12}))

	entries := disassembly.Disassemble(mem, 0x0000, 1)
	assert.Equal(t, "0000  44 34 12  JMP 0x1234", entries[0].String())
}
