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

// Package registers implements the storage elements of the 8008: the 8-bit
// scratchpad registers, the 14-bit program counter with its two-step
// increment, the 8-level address stack and the condition flags.
//
// Note that the memory pointer formed from H and L is not a register and is
// not stored anywhere in this package - it is derived combinationally by the
// cpu package whenever an address is needed, so a load of H or L takes effect
// immediately.
package registers
