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

// register select letters indexed by the SSS/DDD field. index 7 is the
// pseudo-register M, the memory location addressed by H:L.
const registerLetters = "ABCDEHLM"

// condition letters indexed by the 2-bit flag select field.
const conditionLetters = "CZSP"

var rotateMnemonics = [...]string{"RLC", "RRC", "RAL", "RAR"}

// GetDefinitions returns the complete opcode table. Every one of the 256
// byte values has an entry; the unassigned slots decode as Undefined.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)
	for op := 0; op <= 0xff; op++ {
		defs[op] = newDefinition(uint8(op))
	}
	return defs
}

func newDefinition(op uint8) *Definition {
	defn := &Definition{
		OpCode:       op,
		Requirements: Decode(op),
	}
	defn.Cycles = defn.Requirements.CycleCount()

	sss := op & 0b111
	ddd := op >> 3 & 0b111

	switch op >> 6 {
	case 0b00:
		switch op & 0b111 {
		case 0b000:
			if op == 0x00 {
				defn.Class = Halt
				defn.Mnemonic = "HLT"
			} else if ddd == 0b111 {
				defn.Class = Undefined
				defn.Mnemonic = "???"
			} else {
				defn.Class = Increment
				defn.Destination = ddd
				defn.Mnemonic = fmt.Sprintf("IN%c", registerLetters[ddd])
			}
		case 0b001:
			if op == 0x01 {
				defn.Class = Halt
				defn.Mnemonic = "HLT"
			} else if ddd == 0b111 {
				defn.Class = Undefined
				defn.Mnemonic = "???"
			} else {
				defn.Class = Decrement
				defn.Destination = ddd
				defn.Mnemonic = fmt.Sprintf("DC%c", registerLetters[ddd])
			}
		case 0b010:
			// only four rotate variants exist. the upper four slots are not
			// assigned but the hardware decodes them on bits 4-3 alone, so
			// they alias the assigned rotates
			defn.Class = Rotate
			defn.RotateOp = op >> 3 & 0b11
			defn.Mnemonic = rotateMnemonics[defn.RotateOp]
		case 0b011:
			defn.Class = Return
			defn.Conditional = true
			defn.ConditionFlag = op >> 3 & 0b11
			defn.ConditionTrue = op>>5&0b1 == 0b1
			defn.Mnemonic = conditionMnemonic("R", defn)
		case 0b100:
			defn.Class = ALUImmediate
			defn.ALUOp = alu.Op(ddd)
			defn.Mnemonic = fmt.Sprintf("%sI", defn.ALUOp)
		case 0b101:
			defn.Class = Restart
			defn.Vector = ddd
			defn.Mnemonic = fmt.Sprintf("RST %d", ddd)
		case 0b110:
			if ddd == 0b111 {
				defn.Class = MoveImmediateToMemory
				defn.Mnemonic = "LMI"
			} else {
				defn.Class = MoveImmediate
				defn.Destination = ddd
				defn.Mnemonic = fmt.Sprintf("L%cI", registerLetters[ddd])
			}
		case 0b111:
			defn.Class = Return
			defn.Mnemonic = "RET"
		}

	case 0b01:
		if op&0b1 == 0b1 {
			if op>>4&0b11 == 0b00 {
				defn.Class = Input
				defn.Port = op >> 1 & 0b111
				defn.Mnemonic = fmt.Sprintf("INP %d", defn.Port)
			} else {
				defn.Class = Output
				defn.Port = op >> 1 & 0b11111
				defn.Mnemonic = fmt.Sprintf("OUT %d", defn.Port)
			}
		} else {
			switch op & 0b111 {
			case 0b000:
				defn.Class = Jump
				defn.Conditional = true
				defn.ConditionFlag = op >> 3 & 0b11
				defn.ConditionTrue = op>>5&0b1 == 0b1
				defn.Mnemonic = conditionMnemonic("J", defn)
			case 0b010:
				defn.Class = Call
				defn.Conditional = true
				defn.ConditionFlag = op >> 3 & 0b11
				defn.ConditionTrue = op>>5&0b1 == 0b1
				defn.Mnemonic = conditionMnemonic("C", defn)
			case 0b100:
				defn.Class = Jump
				defn.Mnemonic = "JMP"
			case 0b110:
				defn.Class = Call
				defn.Mnemonic = "CAL"
			}
		}

	case 0b10:
		defn.ALUOp = alu.Op(ddd)
		defn.Source = sss
		if sss == 0b111 {
			defn.Class = ALUFromMemory
			defn.Mnemonic = fmt.Sprintf("%sM", defn.ALUOp)
		} else {
			defn.Class = ALURegister
			defn.Mnemonic = fmt.Sprintf("%s%c", defn.ALUOp, registerLetters[sss])
		}

	case 0b11:
		if op == 0xff {
			defn.Class = Halt
			defn.Mnemonic = "HLT"
		} else if sss == 0b111 {
			defn.Class = MoveFromMemory
			defn.Destination = ddd
			defn.Mnemonic = fmt.Sprintf("L%cM", registerLetters[ddd])
		} else if ddd == 0b111 {
			defn.Class = MoveToMemory
			defn.Source = sss
			defn.Mnemonic = fmt.Sprintf("LM%c", registerLetters[sss])
		} else {
			defn.Class = MoveRegister
			defn.Source = sss
			defn.Destination = ddd
			defn.Mnemonic = fmt.Sprintf("L%c%c", registerLetters[ddd], registerLetters[sss])
		}
	}

	return defn
}

func conditionMnemonic(group string, defn *Definition) string {
	polarity := "F"
	if defn.ConditionTrue {
		polarity = "T"
	}
	return fmt.Sprintf("%s%s%c", group, polarity, conditionLetters[defn.ConditionFlag])
}
