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

// Package debugger provides a line-oriented terminal debugger for the
// emulated machine. Because the emulation is stepped by timing state rather
// than by instruction, the debugger can show the machine between states:
// the program counter mid-increment, the address half-assembled, the status
// lines changing.
//
// Commands are plain words (HELP lists them). The DUMP command writes a
// graphviz rendering of the entire machine state, which is an effective way
// of seeing the relationships between the register file, stack and timing
// blocks at a glance.
package debugger
