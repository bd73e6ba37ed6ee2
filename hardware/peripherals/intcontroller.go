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

// InterruptController models the external logic that pulls the interrupt
// line and jams an instruction onto the data bus during the acknowledge
// cycle. On real boards this is a handful of gates wired to present an RST;
// here any single opcode can be jammed.
//
// The controller implements the bus.Injector interface. A jammed opcode is
// consumed by the first acknowledge cycle that reads it; an acknowledge with
// nothing jammed lets the fetch fall through to memory.
type InterruptController struct {
	opcode uint8
	armed  bool
}

// NewInterruptController is the preferred method of initialisation for
// InterruptController.
func NewInterruptController() *InterruptController {
	return &InterruptController{}
}

// Jam arms the controller with the opcode to present at the next
// acknowledge cycle.
func (ic *InterruptController) Jam(opcode uint8) {
	ic.opcode = opcode
	ic.armed = true
}

// JamRST arms the controller with a restart to the given vector (0 to 7).
func (ic *InterruptController) JamRST(vector uint8) {
	ic.Jam(0x05 | (vector&0x07)<<3)
}

// Armed returns true while a jammed opcode is waiting to be consumed.
func (ic *InterruptController) Armed() bool {
	return ic.armed
}

// Inject implements the bus.Injector interface.
func (ic *InterruptController) Inject() (uint8, bool) {
	if !ic.armed {
		return 0, false
	}
	ic.armed = false
	return ic.opcode, true
}
