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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("blockage in pipe %d", 4)
//
//	if curated.Is(e, "blockage in pipe %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when an error from a deep part of the
// emulation has been wrapped by an intermediate layer.
//
// Sentinel patterns used throughout the emulation are defined as string
// constants in the package they originate from. For example, the bus package
// defines the ContentionError pattern that is raised when two parts of the
// CPU drive the internal bus in the same state.
package curated
