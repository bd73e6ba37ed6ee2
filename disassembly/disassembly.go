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

// Package disassembly produces source-like listings of 8008 machine code.
// Disassembly is linear from a starting address; with only fourteen address
// bits and no variable addressing modes the format is simple enough that
// linear decoding is almost always what is wanted.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8008/hardware/cpu/instructions"
)

// Peeker is any source of memory content that can be read without side
// effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Entry is one disassembled instruction.
type Entry struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string
	Operand  string
}

func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	if e.Operand == "" {
		return fmt.Sprintf("%04x  %-9s %s", e.Address, b.String(), e.Mnemonic)
	}
	return fmt.Sprintf("%04x  %-9s %s %s", e.Address, b.String(), e.Mnemonic, e.Operand)
}

// byteLength returns the length in bytes of an instruction. Note that this
// is not the same as the machine cycle count: a memory operand adds a cycle
// but no bytes, an immediate adds one byte, a jump target two.
func byteLength(defn *instructions.Definition) int {
	switch defn.Class {
	case instructions.MoveImmediate, instructions.MoveImmediateToMemory, instructions.ALUImmediate:
		return 2
	case instructions.Jump, instructions.Call:
		return 3
	}
	return 1
}

var defs = instructions.GetDefinitions()

// Disassemble decodes n instructions starting at origin.
func Disassemble(mem Peeker, origin uint16, n int) []Entry {
	entries := make([]Entry, 0, n)
	address := origin

	for i := 0; i < n; i++ {
		e := disassembleOne(mem, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}

	return entries
}

// Write a listing of n instructions starting at origin.
func Write(w io.Writer, mem Peeker, origin uint16, n int) {
	for _, e := range Disassemble(mem, origin, n) {
		fmt.Fprintln(w, e.String())
	}
}

func disassembleOne(mem Peeker, address uint16) Entry {
	opcode := mem.Peek(address)
	defn := defs[opcode]

	e := Entry{
		Address:  address,
		Bytes:    []uint8{opcode},
		Mnemonic: defn.Mnemonic,
	}

	switch byteLength(defn) {
	case 2:
		operand := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, operand)
		e.Operand = fmt.Sprintf("%#02x", operand)
	case 3:
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		e.Operand = fmt.Sprintf("%#04x", uint16(hi&0x3f)<<8|uint16(lo))
	}

	return e
}
