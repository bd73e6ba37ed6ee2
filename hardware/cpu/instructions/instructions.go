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

import (
	"fmt"

	"github.com/jetsetilly/gopher8008/hardware/cpu/alu"
)

// Class categorises an instruction by the effect it has when executed. The
// machine cycle sequencer never sees the class - it works from the
// Requirements flags alone - but the execution stage dispatches on it.
type Class int

// List of instruction classes.
const (
	Halt Class = iota

	MoveRegister          // Lr1r2
	MoveFromMemory        // LrM
	MoveToMemory          // LMr
	MoveImmediate         // LrI
	MoveImmediateToMemory // LMI

	ALURegister   // ADr etc.
	ALUFromMemory // ADM etc.
	ALUImmediate  // ADI etc.

	Increment // INr
	Decrement // DCr
	Rotate    // RLC/RRC/RAL/RAR

	Jump    // JMP and conditional jumps
	Call    // CAL and conditional calls
	Return  // RET and conditional returns
	Restart // RST

	Input  // INP
	Output // OUT

	// the handful of unassigned slots in the opcode map. executed as a
	// do-nothing single cycle instruction
	Undefined
)

// Rotate direction/carry variants, as encoded in bits 4-3 of the rotate
// opcodes.
const (
	RotateLeftCircular uint8 = iota
	RotateRightCircular
	RotateLeftThroughCarry
	RotateRightThroughCarry
)

// Definition defines each instruction in the instruction set; one entry per
// opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Class    Class

	// the operand-fetch requirements, as produced by Decode()
	Requirements Requirements

	// number of machine cycles, derived from Requirements
	Cycles int

	// SSS/DDD register select fields where meaningful
	Source      uint8
	Destination uint8

	// ALU operation for the ALU classes
	ALUOp alu.Op

	// rotate variant for the Rotate class
	RotateOp uint8

	// condition evaluation. when Conditional is false the instruction is
	// unconditional and must always proceed
	Conditional   bool
	ConditionFlag uint8
	ConditionTrue bool

	// RST vector (0-7); target address is Vector * 8
	Vector uint8

	// I/O port for Input (0-7) and Output (8-31)
	Port uint8
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Cycles)
}
