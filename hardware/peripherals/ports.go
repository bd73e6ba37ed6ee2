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

package peripherals

import "github.com/jetsetilly/gopher8008/curated"

// error patterns for the port latches.
const (
	InputPortError  = "ports: input of port %d (input ports are 0 to 7)"
	OutputPortError = "ports: output to port %d (output ports are 8 to 31)"
)

// Latches is a plain latch board: eight input ports the host can set and
// twenty-four output ports the program can write, all observable from
// outside. It implements the bus.PortDevice interface and stands in for
// whatever front panel or teletype interface a real system carried.
type Latches struct {
	in  [8]uint8
	out [32]uint8
}

// NewLatches is the preferred method of initialisation for Latches.
func NewLatches() *Latches {
	return &Latches{}
}

// SetInput sets the value an input port will present to the CPU.
func (p *Latches) SetInput(port uint8, data uint8) {
	p.in[port&0x07] = data
}

// Latched returns the most recent value written to an output port.
func (p *Latches) Latched(port uint8) uint8 {
	return p.out[port&0x1f]
}

// Input implements the bus.PortDevice interface.
func (p *Latches) Input(port uint8) (uint8, error) {
	if port > 7 {
		return 0, curated.Errorf(InputPortError, port)
	}
	return p.in[port], nil
}

// Output implements the bus.PortDevice interface.
func (p *Latches) Output(port uint8, data uint8) error {
	if port < 8 || port > 31 {
		return curated.Errorf(OutputPortError, port)
	}
	p.out[port] = data
	return nil
}
