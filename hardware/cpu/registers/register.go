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

import "fmt"

// Register is an 8-bit scratchpad or temporary register. The seven scratchpad
// registers (A to L), the instruction register and the two operand latches in
// front of the ALU are all instances of this type.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new 8 bit register with the given label and initial
// value.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the identifying string given at creation.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}
