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

package timing

import (
	"github.com/jetsetilly/gopher8008/hardware/bus"
	"github.com/jetsetilly/gopher8008/hardware/cpu/instructions"
)

// CycleControl tracks which of the 1-3 machine cycles the current
// instruction is in and derives the cycle type code presented during T2. It
// has no opcode knowledge beyond the decoder's requirement flags, latched at
// T3 of the fetch cycle - it is a counter-driven sequencer and nothing more,
// which keeps it testable in isolation.
type CycleControl struct {
	cycle   int
	req     instructions.Requirements
	latched bool
}

// NewCycleControl is the preferred method of initialisation for
// CycleControl.
func NewCycleControl() *CycleControl {
	return &CycleControl{cycle: 1}
}

// NewInstruction begins cycle 1 of a fresh instruction. The requirement
// flags of the previous instruction are forgotten.
func (cc *CycleControl) NewInstruction() {
	cc.cycle = 1
	cc.req = instructions.Requirements{}
	cc.latched = false
}

// LatchRequirements stores the decoder flags for the opcode fetched in this
// instruction's first cycle. Called at T3 of the fetch.
func (cc *CycleControl) LatchRequirements(req instructions.Requirements) {
	cc.req = req
	cc.latched = true
}

// NextCycle advances the cycle counter.
func (cc *CycleControl) NextCycle() {
	cc.cycle++
}

// Cycle returns the current cycle number, counting from 1.
func (cc *CycleControl) Cycle() int {
	return cc.cycle
}

// Type returns the cycle type code for the current cycle, as presented on
// the data pins during T2. Cycle 1 is always an instruction fetch; later
// cycles depend on the latched requirement flags.
func (cc *CycleControl) Type() bus.CycleType {
	switch cc.cycle {
	case 2:
		if cc.req.IO {
			return bus.PCC
		}
		if cc.req.Write && !cc.req.Immediate {
			return bus.PCW
		}
		return bus.PCR
	case 3:
		if cc.req.Write {
			return bus.PCW
		}
		return bus.PCR
	}
	return bus.PCI
}

// Advance reports whether the current cycle ends at T3, returning the state
// machine to T1. The first cycle of every instruction runs the full five
// states; subsequent cycles are three states long.
func (cc *CycleControl) Advance() bool {
	return cc.cycle > 1
}

// LastCycle reports whether the current cycle is the instruction's final
// machine cycle. Meaningless before the requirement flags have been latched.
func (cc *CycleControl) LastCycle() bool {
	return cc.latched && cc.cycle >= cc.req.CycleCount()
}

// Halt reports whether the latched instruction is a halt.
func (cc *CycleControl) Halt() bool {
	return cc.latched && cc.req.Halt
}
