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

// Package alu implements the 8-bit arithmetic/logic unit of the 8008. It is
// a pure function of its two operands, the 3-bit operation select and the
// carry in.
//
// Addition and subtraction are performed with an explicit bit-by-bit
// generate/propagate carry chain rather than the host's native arithmetic.
// The carry flag semantics of the 8008 fall out of the chain naturally and
// the result is the same on any platform regardless of overflow behaviour.
package alu

// Op is the 3-bit operation select, as encoded in bits 5-3 of the ALU
// opcodes.
type Op uint8

// The eight ALU operations.
const (
	Add Op = iota
	AddCarry
	Sub
	SubBorrow
	And
	Xor
	Or
	Compare
)

func (op Op) String() string {
	switch op {
	case Add:
		return "AD"
	case AddCarry:
		return "AC"
	case Sub:
		return "SU"
	case SubBorrow:
		return "SB"
	case And:
		return "ND"
	case Xor:
		return "XR"
	case Or:
		return "OR"
	case Compare:
		return "CP"
	}
	return "??"
}

// WritesAccumulator returns false for operations whose result byte is
// discarded. Compare computes exactly like Sub but only the flags are
// externally observable.
func (op Op) WritesAccumulator() bool {
	return op != Compare
}

// Result is the 9-bit output of the ALU - the result byte plus final carry -
// along with the other three computed flags.
type Result struct {
	Value  uint8
	Carry  bool
	Zero   bool
	Sign   bool
	Parity bool
}

// Operate runs one ALU operation. Operand a is the accumulator side, b the
// operand latch. When enable is false the ALU output is gated: the result
// and all flags present as zero whatever the inputs.
func Operate(enable bool, op Op, a uint8, b uint8, carry bool) Result {
	if !enable {
		return Result{}
	}

	var r Result

	switch op {
	case Add:
		r.Value, r.Carry = addChain(a, b, false)
	case AddCarry:
		r.Value, r.Carry = addChain(a, b, carry)
	case Sub, Compare:
		// two's complement subtraction: a + ^b + 1. the carry out of the
		// chain is inverted to give the borrow flag
		var c bool
		r.Value, c = addChain(a, ^b, true)
		r.Carry = !c
	case SubBorrow:
		var c bool
		r.Value, c = addChain(a, ^b, !carry)
		r.Carry = !c
	case And:
		r.Value = a & b
	case Xor:
		r.Value = a ^ b
	case Or:
		r.Value = a | b
	}

	r.Zero = r.Value == 0
	r.Sign = r.Value&0x80 == 0x80
	r.Parity = parity(r.Value)

	return r
}

// addChain adds two bytes with a bit-serial generate/propagate carry chain.
func addChain(a uint8, b uint8, carry bool) (uint8, bool) {
	var sum uint8

	for i := 0; i < 8; i++ {
		abit := a>>i&0x01 == 0x01
		bbit := b>>i&0x01 == 0x01

		generate := abit && bbit
		propagate := abit != bbit

		// sum bit is propagate xor carry-in
		if propagate != carry {
			sum |= 0x01 << i
		}

		carry = generate || (propagate && carry)
	}

	return sum, carry
}

// parity returns true for an even number of set bits. in 8008 terms a set
// parity flag means even parity.
func parity(v uint8) bool {
	n := 0
	for i := 0; i < 8; i++ {
		if v>>i&0x01 == 0x01 {
			n++
		}
	}
	return n%2 == 0
}
