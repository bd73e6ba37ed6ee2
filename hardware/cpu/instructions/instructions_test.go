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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/hardware/cpu/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleByte(t *testing.T) {
	assert := assert.New(t)

	// register moves, register ALU ops, rotates, increments, returns and
	// restarts need no further operand cycles
	for _, op := range []uint8{
		0xc1, // LAB
		0x81, // ADB
		0x02, // RLC
		0x08, // INB
		0x07, // RET
		0x03, // RFC
		0x3d, // RST 7
	} {
		r := instructions.Decode(op)
		assert.False(r.Immediate, "opcode %02x", op)
		assert.False(r.Address, "opcode %02x", op)
		assert.False(r.IO, "opcode %02x", op)
		assert.False(r.Write, "opcode %02x", op)
		assert.Equal(1, r.CycleCount(), "opcode %02x", op)
	}
}

func TestDecode_Immediate(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []uint8{
		0x06, // LAI
		0x04, // ADI
		0x3c, // CPI
		0xc7, // LAM - memory operand reads look like an immediate to the sequencer
		0x87, // ADM
	} {
		r := instructions.Decode(op)
		assert.True(r.Immediate, "opcode %02x", op)
		assert.False(r.Address, "opcode %02x", op)
		assert.Equal(2, r.CycleCount(), "opcode %02x", op)
	}
}

func TestDecode_Address(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []uint8{
		0x44, // JMP
		0x46, // CAL
		0x40, // JFC
		0x6a, // CTZ
	} {
		r := instructions.Decode(op)
		assert.True(r.Address, "opcode %02x", op)
		assert.Equal(3, r.CycleCount(), "opcode %02x", op)
	}
}

func TestDecode_Writes(t *testing.T) {
	assert := assert.New(t)

	// LMr: a single memory write cycle
	r := instructions.Decode(0xf8) // LMA
	assert.True(r.Write)
	assert.False(r.Immediate)
	assert.Equal(2, r.CycleCount())

	// LMI: immediate read then memory write
	r = instructions.Decode(0x3e)
	assert.True(r.Write)
	assert.True(r.Immediate)
	assert.Equal(3, r.CycleCount())
}

func TestDecode_IO(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []uint8{0x41, 0x47, 0x51, 0x7f} {
		r := instructions.Decode(op)
		assert.True(r.IO, "opcode %02x", op)
		assert.Equal(2, r.CycleCount(), "opcode %02x", op)
	}
}

func TestDecode_HaltAliases(t *testing.T) {
	assert := assert.New(t)

	// the HLT encodings decode identically
	a := instructions.Decode(0x00)
	b := instructions.Decode(0xff)
	assert.Equal(a, b)
	assert.True(a.Halt)
	assert.True(instructions.Decode(0x01).Halt)
}

func TestTable_Complete(t *testing.T) {
	defs := instructions.GetDefinitions()
	require.Len(t, defs, 256)
	for i, defn := range defs {
		require.NotNil(t, defn, "opcode %02x", i)
		require.Equal(t, uint8(i), defn.OpCode)
		require.NotEmpty(t, defn.Mnemonic, "opcode %02x", i)
		require.GreaterOrEqual(t, defn.Cycles, 1, "opcode %02x", i)
		require.LessOrEqual(t, defn.Cycles, 3, "opcode %02x", i)
	}
}

func TestTable_Mnemonics(t *testing.T) {
	assert := assert.New(t)

	defs := instructions.GetDefinitions()
	assert.Equal("LAB", defs[0xc1].Mnemonic)
	assert.Equal("LMA", defs[0xf8].Mnemonic)
	assert.Equal("LAM", defs[0xc7].Mnemonic)
	assert.Equal("LAI", defs[0x06].Mnemonic)
	assert.Equal("LMI", defs[0x3e].Mnemonic)
	assert.Equal("ADB", defs[0x81].Mnemonic)
	assert.Equal("ACI", defs[0x0c].Mnemonic)
	assert.Equal("SBI", defs[0x1c].Mnemonic)
	assert.Equal("CPM", defs[0xbf].Mnemonic)
	assert.Equal("JMP", defs[0x44].Mnemonic)
	assert.Equal("JTC", defs[0x60].Mnemonic)
	assert.Equal("CFC", defs[0x42].Mnemonic)
	assert.Equal("CTC", defs[0x62].Mnemonic)
	assert.Equal("RET", defs[0x07].Mnemonic)
	assert.Equal("RTZ", defs[0x2b].Mnemonic)
	assert.Equal("RST 7", defs[0x3d].Mnemonic)
	assert.Equal("INP 3", defs[0x47].Mnemonic)
	assert.Equal("OUT 8", defs[0x51].Mnemonic)
	assert.Equal("HLT", defs[0x00].Mnemonic)
	assert.Equal("HLT", defs[0xff].Mnemonic)
}

func TestTable_ConditionFields(t *testing.T) {
	assert := assert.New(t)

	defs := instructions.GetDefinitions()

	// JFC: test carry for false
	jfc := defs[0x40]
	assert.True(jfc.Conditional)
	assert.Equal(uint8(0), jfc.ConditionFlag)
	assert.False(jfc.ConditionTrue)

	// JTP: test parity for true
	jtp := defs[0x78]
	assert.True(jtp.Conditional)
	assert.Equal(uint8(3), jtp.ConditionFlag)
	assert.True(jtp.ConditionTrue)

	// unconditional jump must bypass evaluation
	assert.False(defs[0x44].Conditional)
}

func TestTable_RestartVectors(t *testing.T) {
	assert := assert.New(t)

	defs := instructions.GetDefinitions()
	for k := uint8(0); k < 8; k++ {
		defn := defs[0x05|k<<3]
		assert.Equal(instructions.Restart, defn.Class)
		assert.Equal(k, defn.Vector)
	}
}
