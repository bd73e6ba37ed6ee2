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

// Package timing implements the state and cycle sequencing of the 8008:
// the T1-T5 state generator with its T1I and Stopped detours, the machine
// cycle counter that decides how many cycles an instruction needs and what
// type each one is, and the synchronizer that latches interrupt requests
// and samples the READY line.
//
// The generator on its own is a very small state machine. All the difficult
// decisions - does this T3 end the cycle? does the next T1 start a new
// instruction? - arrive as inputs through the Control struct, computed by
// the CPU from the cycle counter. Keeping the generator ignorant of opcodes
// keeps the interrupt boundary rule in exactly one place.
package timing
