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

package registers

import "strings"

// Condition select codes, as encoded in bits 4-3 of the conditional jump,
// call and return opcodes.
const (
	ConditionCarry  uint8 = 0b00
	ConditionZero   uint8 = 0b01
	ConditionSign   uint8 = 0b10
	ConditionParity uint8 = 0b11
)

// StatusRegister holds the four persistent condition flags. Flags change
// only when an executing ALU or compare operation says so; loads, moves and
// I/O leave them alone.
type StatusRegister struct {
	Carry  bool
	Zero   bool
	Sign   bool
	Parity bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "Flags"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Carry = false
	sr.Zero = false
	sr.Sign = false
	sr.Parity = false
}

// Evaluate tests the selected flag against the tested polarity. When enabled
// is false the instruction is unconditional and the answer is always true -
// this is distinct from testing the false polarity of a flag, a conflation
// that has caused bugs before.
func (sr StatusRegister) Evaluate(enabled bool, condition uint8, testTrue bool) bool {
	if !enabled {
		return true
	}

	var flag bool
	switch condition & 0b11 {
	case ConditionCarry:
		flag = sr.Carry
	case ConditionZero:
		flag = sr.Zero
	case ConditionSign:
		flag = sr.Sign
	case ConditionParity:
		flag = sr.Parity
	}

	return flag == testTrue
}
