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

package instructions

// Requirements are the operand-fetch flags the decoder produces for an
// opcode. They say nothing about what the instruction does - only what shape
// of machine cycles it needs. The machine cycle sequencer works from these
// five booleans and nothing else.
type Requirements struct {
	// one further read cycle is needed: an immediate byte or a memory
	// operand addressed by H:L
	Immediate bool

	// two further read cycles are needed for a 14-bit address
	Address bool

	// the second cycle is an I/O cycle
	IO bool

	// the final cycle writes to memory
	Write bool

	// the opcode is a halt
	Halt bool
}

// CycleCount returns the number of machine cycles implied by the flags.
func (r Requirements) CycleCount() int {
	if r.Address {
		return 3
	}
	if r.Immediate && r.Write {
		// store-immediate-to-memory: fetch, immediate read, write
		return 3
	}
	if r.Immediate || r.IO || r.Write {
		return 2
	}
	return 1
}

// Decode classifies an opcode into its operand-fetch requirements. It is a
// pure function with no side effects and no internal state - the stateful
// sequencing built on top of it lives in the timing package.
func Decode(opcode uint8) Requirements {
	var r Requirements

	switch opcode >> 6 {
	case 0b00:
		switch opcode & 0b111 {
		case 0b000, 0b001:
			// the two degenerate increment/decrement slots halt the machine
			if opcode == 0x00 || opcode == 0x01 {
				r.Halt = true
			}
		case 0b100, 0b110:
			// ALU immediate and load immediate
			r.Immediate = true
			if opcode == 0x3e {
				// LMI: the immediate byte is written to memory at H:L
				r.Write = true
			}
		}

	case 0b01:
		if opcode&0b1 == 0b1 {
			// INP/OUT
			r.IO = true
		} else {
			// jumps and calls, conditional or not, always fetch both
			// address bytes
			r.Address = true
		}

	case 0b10:
		// ALU operation: SSS=111 means a memory operand
		if opcode&0b111 == 0b111 {
			r.Immediate = true
		}

	case 0b11:
		if opcode == 0xff {
			r.Halt = true
		} else if opcode&0b111 == 0b111 {
			// LrM
			r.Immediate = true
		} else if opcode>>3&0b111 == 0b111 {
			// LMr
			r.Write = true
		}
	}

	return r
}
