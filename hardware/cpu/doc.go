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

// Package cpu emulates the Intel 8008 at the granularity of its internal
// timing states, not at the granularity of whole instructions. One call to
// Step() is one state; an instruction takes five, eight or eleven of them
// (one, two or three machine cycles). The external pinout behaviour - the
// multiplexed address/data phases, the status codes, the READY and interrupt
// lines - falls out of the per-state model rather than being reconstructed
// afterwards.
//
// The pieces mirror the functional blocks of the original silicon: the
// timing package holds the state generator and machine cycle sequencer, the
// registers package the scratchpad, program counter, address stack and
// flags, the alu package the arithmetic unit, and the instructions package
// the decode tables. The CPU structure wires them together over a single
// arbitrated internal bus.
//
// Three deliberate quirks of the original are preserved: the program counter
// increments in two externally visible halves (low byte at T1, high bits at
// T2), the address stack wraps silently on overflow, and a machine coming
// out of reset sits in the Stopped state until an interrupt starts it.
package cpu
