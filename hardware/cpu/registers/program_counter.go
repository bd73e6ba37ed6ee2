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

	"github.com/jetsetilly/gopher8008/curated"
)

// AddressMask limits addresses to the 14 bits the 8008 can drive.
const AddressMask = 0x3fff

// StrobeError is the pattern for illegal strobe combinations on the program
// counter. Incrementing and loading in the same state is undefined upstream
// and is reported rather than normalised.
const StrobeError = "program counter: %s strobed in same state as %s"

// ProgramCounter is the 14-bit program counter. Unlike a conventional
// counter it increments in two externally visible steps: the low byte during
// T1 (latching any carry out) and the high 6 bits during T2 (adding the
// latched carry). Interrupt logic depends on observing the counter between
// the two steps so the split is preserved here rather than collapsed into a
// single addition.
type ProgramCounter struct {
	value uint16

	// carry out of the most recent IncrementLower(), consumed by
	// IncrementUpper()
	carry bool

	// most recent strobe this state. see NewState()
	strobe string
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) *ProgramCounter {
	return &ProgramCounter{value: val & AddressMask}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC as a 14-bit address.
func (pc ProgramCounter) Address() uint16 {
	return pc.value & AddressMask
}

// Low returns the low 8 bits of the PC, as driven onto the bus during T1.
func (pc ProgramCounter) Low() uint8 {
	return uint8(pc.value)
}

// High returns the high 6 bits of the PC, as driven onto the bus during T2
// (alongside the cycle type code).
func (pc ProgramCounter) High() uint8 {
	return uint8(pc.value>>8) & 0x3f
}

// NewState resets strobe tracking. called once at the start of every state.
func (pc *ProgramCounter) NewState() {
	pc.strobe = ""
}

// IncrementLower increments the low byte of the PC, latching any carry out
// for a later IncrementUpper(). The high bits are untouched, leaving the
// counter mid-increment until T2.
func (pc *ProgramCounter) IncrementLower() error {
	if pc.strobe == "load" {
		return curated.Errorf(StrobeError, "increment", pc.strobe)
	}
	pc.strobe = "increment"

	low := uint8(pc.value) + 1
	pc.carry = low == 0
	pc.value = (pc.value & 0xff00) | uint16(low)

	return nil
}

// IncrementUpper adds the carry latched by the previous IncrementLower() to
// the high bits of the PC, wrapping mod 2^14.
func (pc *ProgramCounter) IncrementUpper() error {
	if pc.strobe == "load" {
		return curated.Errorf(StrobeError, "increment", pc.strobe)
	}
	pc.strobe = "increment"

	if pc.carry {
		pc.value = (pc.value + 0x0100) & AddressMask
		pc.carry = false
	}

	return nil
}

// MidIncrement returns true between an IncrementLower() that carried and the
// IncrementUpper() that consumes the carry.
func (pc ProgramCounter) MidIncrement() bool {
	return pc.carry
}

// Load replaces the full 14-bit value.
func (pc *ProgramCounter) Load(val uint16) error {
	if pc.strobe == "increment" {
		return curated.Errorf(StrobeError, "load", pc.strobe)
	}
	pc.strobe = "load"

	pc.value = val & AddressMask
	pc.carry = false

	return nil
}
