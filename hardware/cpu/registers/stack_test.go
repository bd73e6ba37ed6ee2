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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/hardware/cpu/registers"
	"github.com/stretchr/testify/assert"
)

func TestStack_PushPopOrdering(t *testing.T) {
	assert := assert.New(t)

	s := registers.NewStack()
	s.Push(0x0100)
	s.Push(0x0200)
	s.Push(0x0300)
	assert.Equal(uint8(3), s.Pointer())

	// values return in reverse push order
	assert.Equal(uint16(0x0300), s.Pop())
	assert.Equal(uint16(0x0200), s.Pop())
	assert.Equal(uint8(1), s.Pointer())
}

func TestStack_PointerWrapsOnPush(t *testing.T) {
	assert := assert.New(t)

	s := registers.NewStack()
	for i := 0; i < 8; i++ {
		s.Push(uint16(i) * 8)
	}

	// eighth push wraps the 3-bit pointer back to zero
	assert.Equal(uint8(0), s.Pointer())

	// a ninth push silently overwrites the first entry
	s.Push(0x3fff)
	assert.Equal(uint8(1), s.Pointer())
	for i := 0; i < 8; i++ {
		s.Pop()
	}
	assert.Equal(uint16(0x3fff), s.Pop())
}

func TestStack_PopWrapsToSlotSeven(t *testing.T) {
	assert := assert.New(t)

	s := registers.NewStack()
	for i := 0; i < 8; i++ {
		s.Push(uint16(i + 1))
	}
	assert.Equal(uint8(0), s.Pointer())

	// pop from pointer=0 wraps to reading slot 7. decrement happens before
	// the read - the returned value must be the most recent push, not slot 0
	assert.Equal(uint16(8), s.Pop())
	assert.Equal(uint8(7), s.Pointer())
}

func TestStack_AddressesMaskedTo14Bits(t *testing.T) {
	assert := assert.New(t)

	s := registers.NewStack()
	s.Push(0xffff)
	assert.Equal(uint16(0x3fff), s.Pop())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := registers.NewStack()
	s.Push(0x0123)
	s.Push(0x0456)
	s.Reset()
	assert.Equal(uint8(0), s.Pointer())
	assert.Equal(uint16(0), s.Pop())
}
