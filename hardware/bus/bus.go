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

package bus

// Status line codes for the external S2/S1/S0 pins. One code is presented for
// every state of the CPU. External hardware uses these to qualify what is on
// the data pins.
const (
	StatusT1      uint8 = 0b010
	StatusT2      uint8 = 0b100
	StatusT3      uint8 = 0b001
	StatusT4      uint8 = 0b111
	StatusT5      uint8 = 0b101
	StatusT1I     uint8 = 0b110
	StatusStopped uint8 = 0b011
	StatusWait    uint8 = 0b000
)

// CycleType is the 2-bit machine cycle code presented on the two high data
// pins during T2.
type CycleType uint8

// The four machine cycle types.
const (
	PCI CycleType = 0b00 // instruction fetch
	PCR CycleType = 0b01 // memory/immediate read
	PCC CycleType = 0b10 // I/O
	PCW CycleType = 0b11 // memory write
)

func (ct CycleType) String() string {
	switch ct {
	case PCI:
		return "PCI"
	case PCR:
		return "PCR"
	case PCC:
		return "PCC"
	case PCW:
		return "PCW"
	}
	return "???"
}

// Memory defines the operations required of any memory device attached to the
// CPU. Addresses are the 14-bit effective addresses the CPU assembles over
// T1/T2 of a machine cycle.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// PortDevice defines the operations required of I/O peripherals. Input ports
// are numbered 0 to 7, output ports 8 to 31 - the port number is embedded in
// the INP/OUT opcode.
type PortDevice interface {
	Input(port uint8) (uint8, error)
	Output(port uint8, data uint8) error
}

// Injector is implemented by an interrupt controller that wants to override
// the byte transferred during T3 of the fetch cycle that follows an interrupt
// acknowledge. Inject() returns false when the controller has nothing to
// place on the bus, in which case the fetch reads memory as normal.
type Injector interface {
	Inject() (uint8, bool)
}

// Transaction describes the externally visible bus activity for a single
// state. A fresh Transaction is presented on every state, equivalent to the
// SYNC pulse marking the start of the state.
type Transaction struct {
	// 3-bit status code for the state (StatusT1, StatusT2, etc.)
	Status uint8

	// value on the data pins during this state. during T1/T2 this is address
	// and cycle-type information driven by the CPU; during T3 it is the byte
	// being transferred
	Data uint8

	// the machine cycle type. valid from T2 of the cycle onwards
	Cycle CycleType

	// the assembled 14-bit effective address for the cycle. not visible on
	// real pins in this form but convenient for tracing and testing
	Address uint16

	// true when the CPU is driving the data pins (T1, T2 and write-type T3);
	// false when an external device is expected to drive them
	CPUDriven bool
}
