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

package cpu

import (
	"github.com/jetsetilly/gopher8008/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8008/hardware/cpu/instructions"
)

// readTransfer routes the byte arriving at T3 of a PCR cycle. Intermediate
// cycles latch the byte for later; the final cycle of an instruction does
// the instruction's work with it.
func (mc *CPU) readTransfer(data uint8) error {
	if !mc.cc.LastCycle() {
		// low address byte of a jump/call target, or the immediate byte of
		// LMI waiting for the write cycle
		v, err := mc.ibus.Value(mc.TmpB.Label())
		if err != nil {
			return err
		}
		mc.TmpB.Load(v)
		return nil
	}

	switch mc.defn.Class {
	case instructions.MoveImmediate, instructions.MoveFromMemory:
		v, err := mc.ibus.Value(mc.regs[mc.defn.Destination].Label())
		if err != nil {
			return err
		}
		mc.regs[mc.defn.Destination].Load(v)

	case instructions.ALUImmediate, instructions.ALUFromMemory:
		mc.aluOperate(mc.defn.ALUOp, data)

	case instructions.Jump:
		if mc.take {
			target := uint16(data&0x3f)<<8 | uint16(mc.TmpB.Value())
			return mc.PC.Load(target)
		}

	case instructions.Call:
		if mc.take {
			target := uint16(data&0x3f)<<8 | uint16(mc.TmpB.Value())
			mc.Stack.Push(mc.PC.Address())
			return mc.PC.Load(target)
		}
	}

	return nil
}

// executeT4 runs the T4 half of a single-cycle instruction: moving source
// values into the temporary latches, or the stack push of a restart.
func (mc *CPU) executeT4() error {
	switch mc.defn.Class {
	case instructions.MoveRegister, instructions.ALURegister:
		src := mc.regs[mc.defn.Source]
		if err := mc.ibus.Drive(src.Label(), src.Value()); err != nil {
			return err
		}
		v, err := mc.ibus.Value(mc.TmpB.Label())
		if err != nil {
			return err
		}
		mc.TmpB.Load(v)

	case instructions.Increment, instructions.Decrement:
		dst := mc.regs[mc.defn.Destination]
		if err := mc.ibus.Drive(dst.Label(), dst.Value()); err != nil {
			return err
		}
		v, err := mc.ibus.Value(mc.TmpB.Label())
		if err != nil {
			return err
		}
		mc.TmpB.Load(v)

	case instructions.Restart:
		// the pushed address is whatever the program counter holds now. for
		// an injected RST the counter was never incremented, so this is the
		// interrupted address
		mc.Stack.Push(mc.PC.Address())
	}

	return nil
}

// executeT5 runs the T5 half of a single-cycle instruction: results reach
// their destinations.
func (mc *CPU) executeT5() error {
	switch mc.defn.Class {
	case instructions.MoveRegister:
		if err := mc.ibus.Drive(mc.TmpB.Label(), mc.TmpB.Value()); err != nil {
			return err
		}
		dst := mc.regs[mc.defn.Destination]
		v, err := mc.ibus.Value(dst.Label())
		if err != nil {
			return err
		}
		dst.Load(v)

	case instructions.ALURegister:
		mc.aluOperate(mc.defn.ALUOp, mc.TmpB.Value())

	case instructions.Increment:
		r := alu.Operate(true, alu.Add, mc.TmpB.Value(), 1, false)
		mc.regs[mc.defn.Destination].Load(r.Value)
		mc.setIncrementFlags(r)

	case instructions.Decrement:
		r := alu.Operate(true, alu.Sub, mc.TmpB.Value(), 1, false)
		mc.regs[mc.defn.Destination].Load(r.Value)
		mc.setIncrementFlags(r)

	case instructions.Rotate:
		mc.rotate(mc.defn.RotateOp)

	case instructions.Return:
		if mc.take {
			return mc.PC.Load(mc.Stack.Pop())
		}

	case instructions.Restart:
		return mc.PC.Load(uint16(mc.defn.Vector) * 8)
	}

	return nil
}

// aluOperate loads the operand latches, runs the ALU and distributes result
// and flags. Used by the register, memory and immediate ALU classes alike.
func (mc *CPU) aluOperate(op alu.Op, operand uint8) {
	mc.TmpA.Load(mc.A.Value())
	mc.TmpB.Load(operand)

	r := alu.Operate(true, op, mc.TmpA.Value(), mc.TmpB.Value(), mc.Status.Carry)

	if op.WritesAccumulator() {
		mc.A.Load(r.Value)
	}

	mc.Status.Carry = r.Carry
	mc.Status.Zero = r.Zero
	mc.Status.Sign = r.Sign
	mc.Status.Parity = r.Parity
}

// setIncrementFlags updates the flags for INr/DCr: zero, sign and parity
// change but carry survives, which is what makes the increments usable for
// loop counting without disturbing multi-byte arithmetic.
func (mc *CPU) setIncrementFlags(r alu.Result) {
	mc.Status.Zero = r.Zero
	mc.Status.Sign = r.Sign
	mc.Status.Parity = r.Parity
}

// rotate applies one of the four accumulator rotates. Only the carry flag is
// affected.
func (mc *CPU) rotate(op uint8) {
	a := mc.A.Value()
	c := mc.Status.Carry

	switch op {
	case instructions.RotateLeftCircular:
		mc.Status.Carry = a&0x80 == 0x80
		a = a<<1 | a>>7
	case instructions.RotateRightCircular:
		mc.Status.Carry = a&0x01 == 0x01
		a = a>>1 | a<<7
	case instructions.RotateLeftThroughCarry:
		mc.Status.Carry = a&0x80 == 0x80
		a = a << 1
		if c {
			a |= 0x01
		}
	case instructions.RotateRightThroughCarry:
		mc.Status.Carry = a&0x01 == 0x01
		a = a >> 1
		if c {
			a |= 0x80
		}
	}

	mc.A.Load(a)
}
