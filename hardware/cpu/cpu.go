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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8008/curated"
	"github.com/jetsetilly/gopher8008/hardware/bus"
	"github.com/jetsetilly/gopher8008/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8008/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8008/hardware/cpu/timing"
)

// error patterns returned by the CPU.
const (
	NoPortDevice = "cpu: %s cycle with no port device attached"
)

// CPU implements the processor at the level of individual timing states.
// Step() advances the machine by exactly one state; everything externally
// observable between states - address assembly, the two-step program counter
// increment, the status codes - is faithful to that granularity.
type CPU struct {
	mem      bus.Memory
	ports    bus.PortDevice
	injector bus.Injector

	PC *registers.ProgramCounter

	// the seven scratchpad registers, indexed by the SSS/DDD opcode field.
	// the named fields alias the array entries
	regs [7]*registers.Register
	A    *registers.Register
	B    *registers.Register
	C    *registers.Register
	D    *registers.Register
	E    *registers.Register
	H    *registers.Register
	L    *registers.Register

	IR   *registers.Register
	TmpA *registers.Register
	TmpB *registers.Register

	Status registers.StatusRegister
	Stack  *registers.Stack

	// the single internal transfer bus. one driver per state, enforced
	ibus bus.Internal

	tg   *timing.Generator
	cc   *timing.CycleControl
	sync *timing.Synchronizer

	defs []*instructions.Definition

	// the instruction latched at T3 of the most recent fetch cycle
	defn *instructions.Definition

	// address latched over T1/T2 of the current machine cycle
	addrLow  uint8
	addrHigh uint8

	// outcome of the condition evaluation for the latched instruction.
	// always true for unconditional instructions
	take bool

	// the current instruction's fetch began with T1I
	interruptCycle bool

	// live READY input. sampled once per state by the synchronizer
	readyLine bool

	// TraceFunc, when not nil, is called once per state with the externally
	// visible bus activity for that state
	TraceFunc func(bus.Transaction)

	// LastTransaction is the bus activity of the most recent state
	LastTransaction bus.Transaction
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The port device and injector may be nil for systems without I/O or an
// interrupt controller.
func NewCPU(mem bus.Memory, ports bus.PortDevice, injector bus.Injector) *CPU {
	mc := &CPU{
		mem:      mem,
		ports:    ports,
		injector: injector,
		defs:     instructions.GetDefinitions(),
		tg:       timing.NewGenerator(),
		cc:       timing.NewCycleControl(),
		sync:     timing.NewSynchronizer(),
	}

	labels := "ABCDEHL"
	for i := range mc.regs {
		mc.regs[i] = registers.NewRegister(0, string(labels[i]))
	}
	mc.A = mc.regs[0]
	mc.B = mc.regs[1]
	mc.C = mc.regs[2]
	mc.D = mc.regs[3]
	mc.E = mc.regs[4]
	mc.H = mc.regs[5]
	mc.L = mc.regs[6]

	mc.IR = registers.NewRegister(0, "IR")
	mc.TmpA = registers.NewRegister(0, "reg.a")
	mc.TmpB = registers.NewRegister(0, "reg.b")

	mc.PC = registers.NewProgramCounter(0)
	mc.Status = registers.NewStatusRegister()
	mc.Stack = registers.NewStack()

	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%s ", mc.PC))
	for _, r := range mc.regs {
		s.WriteString(fmt.Sprintf("%s ", r))
	}
	s.WriteString(fmt.Sprintf("%s %s", mc.Status, mc.tg.State()))
	if mc.defn != nil {
		s.WriteString(fmt.Sprintf(" [%s cycle %d]", mc.defn.Mnemonic, mc.cc.Cycle()))
	}
	return s.String()
}

// Reset the CPU to the power-on condition: registers and flags cleared, the
// stack emptied and the state machine parked in Stopped. The machine does
// not begin fetching until an interrupt arrives - raising one is how a
// system starts execution at address zero.
func (mc *CPU) Reset() {
	for _, r := range mc.regs {
		r.Load(0)
	}
	mc.IR.Load(0)
	mc.TmpA.Load(0)
	mc.TmpB.Load(0)

	mc.PC = registers.NewProgramCounter(0)
	mc.Status.Reset()
	mc.Stack.Reset()

	mc.tg.Reset()
	mc.sync.Reset()
	mc.cc.NewInstruction()

	mc.defn = nil
	mc.interruptCycle = false
	mc.readyLine = true
	mc.ibus.NewState()

	mc.LastTransaction = bus.Transaction{Status: bus.StatusStopped}
}

// State returns the current timing state.
func (mc *CPU) State() timing.State {
	return mc.tg.State()
}

// Cycle returns the current machine cycle number, counting from 1.
func (mc *CPU) Cycle() int {
	return mc.cc.Cycle()
}

// CycleType returns the type code of the current machine cycle.
func (mc *CPU) CycleType() bus.CycleType {
	return mc.cc.Type()
}

// Halted returns true when the state machine is parked in Stopped.
func (mc *CPU) Halted() bool {
	return mc.tg.State() == timing.Stopped
}

// InstructionDefinition returns the definition of the most recently fetched
// instruction. Nil before the first fetch completes.
func (mc *CPU) InstructionDefinition() *instructions.Definition {
	return mc.defn
}

// RaiseInterrupt sets the pending-interrupt latch. The latch holds until the
// next instruction fetch boundary, at which point the fetch runs as an
// acknowledge cycle (T1I in place of T1).
func (mc *CPU) RaiseInterrupt() {
	mc.sync.RaiseInterrupt()
}

// SetReady drives the READY input line. While low, the CPU holds its current
// state and presents the WAIT status code.
func (mc *CPU) SetReady(line bool) {
	mc.readyLine = line
}

// Step advances the CPU by exactly one timing state.
func (mc *CPU) Step() error {
	mc.sync.SampleReady(mc.readyLine)

	ct := timing.Control{
		Ready:            mc.sync.Ready(),
		Advance:          mc.cc.Advance(),
		EndOfInstruction: mc.cc.LastCycle(),
		Halt:             mc.cc.Halt(),
		Interrupt:        mc.sync.Pending(),
	}

	prev := mc.tg.State()
	state := mc.tg.Tick(ct)

	if !mc.sync.Ready() {
		// wait state: the previous activity is re-presented under the WAIT
		// code until READY returns
		tr := mc.LastTransaction
		tr.Status = bus.StatusWait
		mc.trace(tr)
		return nil
	}

	// machine cycle bookkeeping on entering T1/T1I. a T1 reached from the
	// final cycle of an instruction starts a fresh one; otherwise it is the
	// next cycle of the instruction in progress
	switch state {
	case timing.T1:
		if mc.cc.LastCycle() {
			mc.cc.NewInstruction()
			mc.interruptCycle = false
		} else if prev == timing.T3 || prev == timing.T5 {
			mc.cc.NextCycle()
		}
	case timing.T1I:
		// the latch clears on entry to T1I and at no other time
		mc.sync.Acknowledge()
		mc.cc.NewInstruction()
		mc.interruptCycle = true
	case timing.Stopped:
		mc.trace(bus.Transaction{Status: bus.StatusStopped})
		return nil
	}

	mc.ibus.NewState()
	mc.PC.NewState()

	switch state {
	case timing.T1, timing.T1I:
		return mc.stateT1(state)
	case timing.T2:
		return mc.stateT2()
	case timing.T3:
		return mc.stateT3()
	case timing.T4:
		return mc.stateT4()
	case timing.T5:
		return mc.stateT5()
	}

	return nil
}

// StepInstruction runs Step() until the current instruction has completed.
// Returns early when the machine halts or READY is low.
func (mc *CPU) StepInstruction() error {
	for {
		if err := mc.Step(); err != nil {
			return err
		}
		if !mc.sync.Ready() {
			return nil
		}

		switch mc.tg.State() {
		case timing.Stopped:
			return nil
		case timing.T5:
			// the T5 of a multi-cycle instruction's first machine cycle does
			// not end the instruction
			if mc.cc.LastCycle() {
				return nil
			}
		case timing.T3:
			if mc.cc.Advance() && mc.cc.LastCycle() {
				return nil
			}
		}
	}
}

func (mc *CPU) trace(tr bus.Transaction) {
	mc.LastTransaction = tr
	if mc.TraceFunc != nil {
		mc.TraceFunc(tr)
	}
}

// pcAddressed returns true when the current machine cycle takes its address
// from the program counter stream. The alternative sources are the H:L
// pointer and, for I/O cycles, the accumulator.
func (mc *CPU) pcAddressed() bool {
	if mc.cc.Cycle() == 1 || mc.defn == nil {
		return true
	}

	switch mc.defn.Class {
	case instructions.MoveFromMemory, instructions.ALUFromMemory, instructions.MoveToMemory:
		return false
	case instructions.MoveImmediateToMemory:
		return mc.cc.Cycle() != 3
	case instructions.Input, instructions.Output:
		return false
	}

	return true
}

// hlAddress assembles the memory pointer from the H and L registers: all
// eight bits of H shifted into the upper half and the low six bits of L.
func (mc *CPU) hlAddress() uint16 {
	return (uint16(mc.H.Value())<<6 | uint16(mc.L.Value()&0x3f)) & registers.AddressMask
}

// cycleAddress returns the 14-bit address for the current machine cycle,
// read from whichever source pcAddressed() indicates.
func (mc *CPU) cycleAddress() uint16 {
	if mc.pcAddressed() {
		return mc.PC.Address()
	}
	if mc.defn.Class == instructions.Input || mc.defn.Class == instructions.Output {
		return uint16(mc.A.Value())
	}
	return mc.hlAddress()
}

// stateT1 presents the low address byte and, for program counter addressed
// cycles, performs the first half of the split increment. During T1I neither
// half of the increment happens - the interrupted address must survive to be
// pushed by an injected RST.
func (mc *CPU) stateT1(state timing.State) error {
	ctype := mc.cc.Type()

	addr := mc.cycleAddress()
	mc.addrLow = uint8(addr)
	mc.addrHigh = uint8(addr>>8) & 0x3f

	label := "PC"
	if !mc.pcAddressed() {
		label = "HL"
		if mc.defn.Class == instructions.Input || mc.defn.Class == instructions.Output {
			label = "A"
		}
	}
	if err := mc.ibus.Drive(label, mc.addrLow); err != nil {
		return err
	}

	if state != timing.T1I && mc.pcAddressed() {
		if err := mc.PC.IncrementLower(); err != nil {
			return err
		}
	}

	data, err := mc.ibus.Value("address latch")
	if err != nil {
		return err
	}

	mc.trace(bus.Transaction{
		Status:    state.StatusCode(),
		Data:      data,
		Cycle:     ctype,
		Address:   addr,
		CPUDriven: true,
	})
	return nil
}

// stateT2 presents the cycle type code alongside the high six address bits
// and completes the split increment by folding in the carry latched at T1.
func (mc *CPU) stateT2() error {
	ctype := mc.cc.Type()

	high := mc.addrHigh
	if ctype == bus.PCC {
		// I/O cycles present the opcode during T2; the port number is
		// embedded in it
		high = mc.IR.Value() & 0x3f
	}

	if err := mc.ibus.Drive("cycle control", uint8(ctype)<<6|high); err != nil {
		return err
	}

	if mc.pcAddressed() && !(mc.interruptCycle && mc.cc.Cycle() == 1) {
		if err := mc.PC.IncrementUpper(); err != nil {
			return err
		}
	}

	data, err := mc.ibus.Value("address latch")
	if err != nil {
		return err
	}

	mc.trace(bus.Transaction{
		Status:    timing.T2.StatusCode(),
		Data:      data,
		Cycle:     ctype,
		Address:   uint16(mc.addrHigh)<<8 | uint16(mc.addrLow),
		CPUDriven: true,
	})
	return nil
}

// stateT3 is the transfer state: the fetched opcode, a read or written data
// byte, or an I/O transfer, according to the cycle type.
func (mc *CPU) stateT3() error {
	ctype := mc.cc.Type()
	addr := uint16(mc.addrHigh)<<8 | uint16(mc.addrLow)

	switch ctype {
	case bus.PCI:
		return mc.fetch(addr)

	case bus.PCR:
		data, err := mc.mem.Read(addr)
		if err != nil {
			return err
		}
		if err := mc.ibus.Drive("memory", data); err != nil {
			return err
		}
		if err := mc.readTransfer(data); err != nil {
			return err
		}
		mc.trace(bus.Transaction{
			Status:  timing.T3.StatusCode(),
			Data:    data,
			Cycle:   ctype,
			Address: addr,
		})
		return nil

	case bus.PCC:
		return mc.ioTransfer(addr)

	case bus.PCW:
		var data uint8
		if mc.defn.Class == instructions.MoveImmediateToMemory {
			data = mc.TmpB.Value()
		} else {
			data = mc.regs[mc.defn.Source].Value()
		}
		if err := mc.ibus.Drive("register file", data); err != nil {
			return err
		}
		if err := mc.mem.Write(addr, data); err != nil {
			return err
		}
		mc.trace(bus.Transaction{
			Status:    timing.T3.StatusCode(),
			Data:      data,
			Cycle:     ctype,
			Address:   addr,
			CPUDriven: true,
		})
		return nil
	}

	return nil
}

// fetch completes T3 of a fetch cycle: the opcode arrives from memory, or
// from the interrupt controller when this cycle began with T1I.
func (mc *CPU) fetch(addr uint16) error {
	var data uint8
	injected := false

	if mc.interruptCycle && mc.injector != nil {
		data, injected = mc.injector.Inject()
	}
	if !injected {
		var err error
		data, err = mc.mem.Read(addr)
		if err != nil {
			return err
		}
	}

	if err := mc.ibus.Drive("memory", data); err != nil {
		return err
	}
	v, err := mc.ibus.Value(mc.IR.Label())
	if err != nil {
		return err
	}
	mc.IR.Load(v)

	mc.defn = mc.defs[v]
	mc.cc.LatchRequirements(mc.defn.Requirements)
	mc.take = mc.Status.Evaluate(mc.defn.Conditional, mc.defn.ConditionFlag, mc.defn.ConditionTrue)

	mc.trace(bus.Transaction{
		Status:  timing.T3.StatusCode(),
		Data:    v,
		Cycle:   bus.PCI,
		Address: addr,
	})
	return nil
}

// ioTransfer completes T3 of an I/O cycle.
func (mc *CPU) ioTransfer(addr uint16) error {
	if mc.ports == nil {
		return curated.Errorf(NoPortDevice, mc.defn.Mnemonic)
	}

	if mc.defn.Class == instructions.Output {
		data := mc.A.Value()
		if err := mc.ibus.Drive(mc.A.Label(), data); err != nil {
			return err
		}
		if err := mc.ports.Output(mc.defn.Port, data); err != nil {
			return err
		}
		mc.trace(bus.Transaction{
			Status:    timing.T3.StatusCode(),
			Data:      data,
			Cycle:     bus.PCC,
			Address:   addr,
			CPUDriven: true,
		})
		return nil
	}

	data, err := mc.ports.Input(mc.defn.Port)
	if err != nil {
		return err
	}
	if err := mc.ibus.Drive("port", data); err != nil {
		return err
	}
	v, err := mc.ibus.Value(mc.A.Label())
	if err != nil {
		return err
	}
	mc.A.Load(v)

	mc.trace(bus.Transaction{
		Status:  timing.T3.StatusCode(),
		Data:    data,
		Cycle:   bus.PCC,
		Address: addr,
	})
	return nil
}

// stateT4 is the first execute state of a single-cycle instruction: source
// values move to the temporary latches over the internal bus. For
// multi-cycle instructions, whose work happens at T3 of their later cycles,
// T4 is an idle state.
func (mc *CPU) stateT4() error {
	mc.trace(bus.Transaction{
		Status:  timing.T4.StatusCode(),
		Cycle:   mc.cc.Type(),
		Address: uint16(mc.addrHigh)<<8 | uint16(mc.addrLow),
	})

	if !mc.cc.LastCycle() {
		return nil
	}
	return mc.executeT4()
}

// stateT5 is the second execute state: results move to their destinations.
func (mc *CPU) stateT5() error {
	mc.trace(bus.Transaction{
		Status:  timing.T5.StatusCode(),
		Cycle:   mc.cc.Type(),
		Address: uint16(mc.addrHigh)<<8 | uint16(mc.addrLow),
	})

	if !mc.cc.LastCycle() {
		return nil
	}
	return mc.executeT5()
}
