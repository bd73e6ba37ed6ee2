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

// Package instructions defines the 8008 instruction set in two layers. The
// Decode() function reduces an opcode to the five requirement flags the
// machine cycle sequencer needs - how many cycles and of what type - without
// saying anything about what the instruction does. The definitions table
// adds the rest: class, operand fields, mnemonics.
//
// The split reflects the hardware, where cycle sequencing is decided by a
// handful of gates on the instruction register while full decoding happens
// in the execute states. It also means every one of the 256 byte values has
// well defined cycle behaviour, including the unassigned slots.
package instructions
