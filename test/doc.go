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

// Package test contains helper functions to remove common boilerplate from
// the integration tests in the hardware packages.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint8, uint16) can be compared against int for convenience. See
// Equate() documentation for discussion why.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions; in particular they accept error values,
// where nil indicates success.
//
// Unit tests for the leaf packages (registers, alu, instructions, timing)
// use the testify package instead. Both styles are in use in this codebase.
package test
