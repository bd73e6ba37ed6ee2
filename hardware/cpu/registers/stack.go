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

import (
	"fmt"
	"strings"
)

// StackDepth is the number of return addresses the address stack can hold.
const StackDepth = 8

// Stack is the 8-level on-chip address stack. The 3-bit pointer indexes the
// next slot to write on a push and wraps modulo 8 in both directions. There
// is no overflow detection: a ninth nested call silently overwrites the
// first return address. That is how the hardware behaves and it is preserved
// here deliberately.
type Stack struct {
	entries [StackDepth]uint16
	pointer uint8
}

// NewStack is the preferred method of initialisation for Stack.
func NewStack() *Stack {
	return &Stack{}
}

func (s Stack) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("SP=%d [", s.pointer))
	for i, e := range s.entries {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%04x", e))
	}
	b.WriteString("]")
	return b.String()
}

// Label returns an identifying string for the stack.
func (s Stack) Label() string {
	return "Stack"
}

// Pointer returns the current value of the 3-bit stack pointer.
func (s Stack) Pointer() uint8 {
	return s.pointer
}

// Push writes addr at the current pointer value and then increments the
// pointer.
func (s *Stack) Push(addr uint16) {
	s.entries[s.pointer] = addr & AddressMask
	s.pointer = (s.pointer + 1) % StackDepth
}

// Pop decrements the pointer and then reads the entry at the new pointer
// value. The ordering matters: decrement-then-read. The reverse ordering is a
// bug that has bitten this design before.
func (s *Stack) Pop() uint16 {
	s.pointer = (s.pointer + StackDepth - 1) % StackDepth
	return s.entries[s.pointer]
}

// Reset returns the pointer and all entries to zero.
func (s *Stack) Reset() {
	s.pointer = 0
	for i := range s.entries {
		s.entries[i] = 0
	}
}
