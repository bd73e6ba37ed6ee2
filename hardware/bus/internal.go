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

import "github.com/jetsetilly/gopher8008/curated"

// error patterns for the internal bus.
const (
	ContentionError = "internal bus: %s driving while already driven by %s"
	UndrivenError   = "internal bus: read of undriven bus by %s"
)

// Internal is the single 8-bit bus inside the CPU. Every register-like block
// transfers values over it. In the original hardware it is a tri-stated wire
// bundle; here it is an arbitration type that allows at most one source per
// state.
//
// The CPU calls NewState() at the start of every state. A block drives the
// bus with Drive(); a second Drive() before the next NewState() is bus
// contention and returns a curated error. A sink reads with Value(), which
// fails if nothing is driving.
type Internal struct {
	driven bool
	source string
	data   uint8
}

// NewState releases the bus. called once at the start of every state.
func (b *Internal) NewState() {
	b.driven = false
	b.source = ""
	b.data = 0
}

// Drive the bus with a value. The source label is used for contention
// diagnostics.
func (b *Internal) Drive(source string, data uint8) error {
	if b.driven {
		return curated.Errorf(ContentionError, source, b.source)
	}
	b.driven = true
	b.source = source
	b.data = data
	return nil
}

// Value returns the byte currently on the bus.
func (b *Internal) Value(sink string) (uint8, error) {
	if !b.driven {
		return 0, curated.Errorf(UndrivenError, sink)
	}
	return b.data, nil
}

// Driven returns true if a source is currently driving the bus.
func (b *Internal) Driven() bool {
	return b.driven
}
