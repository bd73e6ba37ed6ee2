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

package hardware

import (
	"github.com/jetsetilly/gopher8008/hardware/cpu"
	"github.com/jetsetilly/gopher8008/hardware/memory"
	"github.com/jetsetilly/gopher8008/hardware/peripherals"
	"github.com/jetsetilly/gopher8008/logger"
)

// MCS8 is the main container for the emulated components of an 8008 system:
// the CPU, 16KB of memory, the port latches and the interrupt controller.
// The name is borrowed from Intel's designation for the 8008 system design.
type MCS8 struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	Ports *peripherals.Latches
	IntC  *peripherals.InterruptController
}

// NewMCS8 creates a new MCS8 and everything associated with the hardware. It
// is used for all aspects of emulation: debugging sessions and regular runs.
func NewMCS8() *MCS8 {
	sys := &MCS8{
		Mem:   memory.NewMemory(),
		Ports: peripherals.NewLatches(),
		IntC:  peripherals.NewInterruptController(),
	}
	sys.CPU = cpu.NewCPU(sys.Mem, sys.Ports, sys.IntC)
	return sys
}

// AttachProgram loads a program image into memory at the given origin and
// resets the machine ready to run it.
func (sys *MCS8) AttachProgram(origin uint16, program []uint8) error {
	if err := sys.Mem.Load(origin, program); err != nil {
		return err
	}
	logger.Logf("mcs8", "%d byte program at %#04x", len(program), origin)
	return sys.Reset()
}

// Reset emulates the power-on condition followed by the conventional startup
// interrupt. An 8008 wakes up in the Stopped state; the board logic starts
// it by raising an interrupt with RST 0 jammed on the bus, which lands
// execution at address zero.
func (sys *MCS8) Reset() error {
	sys.CPU.Reset()
	sys.IntC.JamRST(0)
	sys.CPU.RaiseInterrupt()
	logger.Log("mcs8", "reset")
	return nil
}

// Interrupt raises an interrupt with a restart to the given vector jammed on
// the bus.
func (sys *MCS8) Interrupt(vector uint8) {
	sys.IntC.JamRST(vector)
	sys.CPU.RaiseInterrupt()
}

// Step the machine by one timing state.
func (sys *MCS8) Step() error {
	return sys.CPU.Step()
}

// StepInstruction steps the machine to the next instruction boundary.
func (sys *MCS8) StepInstruction() error {
	return sys.CPU.StepInstruction()
}
