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

import "github.com/jetsetilly/gopher8008/hardware/bus"

// State is one phase of the CPU's internal timing cycle.
type State int

// The timing states. T1 and T1I are mutually exclusive: when an interrupt is
// serviced the generator moves to T1I without ever visiting T1.
const (
	T1 State = iota
	T2
	T3
	T4
	T5
	T1I
	Stopped
)

func (s State) String() string {
	switch s {
	case T1:
		return "T1"
	case T2:
		return "T2"
	case T3:
		return "T3"
	case T4:
		return "T4"
	case T5:
		return "T5"
	case T1I:
		return "T1I"
	case Stopped:
		return "STOPPED"
	}
	return "???"
}

// StatusCode returns the 3-bit code presented on the external status lines
// for the state.
func (s State) StatusCode() uint8 {
	switch s {
	case T1:
		return bus.StatusT1
	case T2:
		return bus.StatusT2
	case T3:
		return bus.StatusT3
	case T4:
		return bus.StatusT4
	case T5:
		return bus.StatusT5
	case T1I:
		return bus.StatusT1I
	case Stopped:
		return bus.StatusStopped
	}
	return bus.StatusWait
}

// Control gathers the signals that decide the transition out of the current
// state. The generator itself knows nothing about opcodes or cycle counting -
// everything it needs arrives through this struct.
type Control struct {
	// the sampled READY line. when false the generator holds its current
	// state (a wait state). the line must be sampled once per state by the
	// synchronizer, never read live
	Ready bool

	// return to T1 after T3 instead of continuing into the execute states
	Advance bool

	// the state following this one starts a new instruction. qualifies the
	// interrupt detour: an interrupt is only serviced at a fetch boundary,
	// never between the cycles of one instruction
	EndOfInstruction bool

	// pending interrupt latch
	Interrupt bool

	// a halt instruction has been latched
	Halt bool
}

// Generator is the master state machine. It advances exactly one state per
// clock pulse and drives every other block through the state it reports.
type Generator struct {
	state State
}

// NewGenerator is the preferred method of initialisation for Generator.
func NewGenerator() *Generator {
	return &Generator{state: Stopped}
}

// State returns the current timing state.
func (tg *Generator) State() State {
	return tg.state
}

// Reset parks the generator in the Stopped state. The machine leaves Stopped
// only when an interrupt arrives, which is also how the real part is brought
// out of reset.
func (tg *Generator) Reset() {
	tg.state = Stopped
}

// Tick advances the generator by one state. When the sampled READY line is
// low the current state is re-presented unchanged.
func (tg *Generator) Tick(ct Control) State {
	if !ct.Ready {
		return tg.state
	}

	switch tg.state {
	case T1, T1I:
		tg.state = T2

	case T2:
		tg.state = T3

	case T3:
		switch {
		case ct.Halt:
			tg.state = Stopped
		case ct.Advance:
			// the interrupt detour bypasses T1 entirely
			if ct.EndOfInstruction && ct.Interrupt {
				tg.state = T1I
			} else {
				tg.state = T1
			}
		default:
			tg.state = T4
		}

	case T4:
		tg.state = T5

	case T5:
		// T5 ends either the instruction or, for multi-cycle instructions,
		// just the first machine cycle
		if ct.EndOfInstruction && ct.Interrupt {
			tg.state = T1I
		} else {
			tg.state = T1
		}

	case Stopped:
		// parked until an interrupt arrives
		if ct.Interrupt {
			tg.state = T1I
		}
	}

	return tg.state
}
