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

// Package peripherals holds the devices that sit on the other side of the
// CPU's bus interfaces: the interrupt controller that jams instructions
// during acknowledge cycles and the I/O port latches. Both are deliberately
// simple - they model the minimal external logic an 8008 needs to run,
// which on period hardware was often little more than this.
package peripherals
