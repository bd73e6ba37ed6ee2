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

// Package bus defines the two buses of the 8008 model.
//
// The external side is the chip's multiplexed address/data/status protocol:
// the 3-bit status codes presented on S2/S1/S0, the 2-bit machine cycle codes
// presented during T2, and the Memory/PortDevice interfaces that external
// collaborators implement. The Transaction type records one state's worth of
// bus activity and is delivered to the trace callback on every state - the
// Go equivalent of watching the pins with a logic analyzer.
//
// The internal side is the single 8-bit transfer bus inside the CPU. The
// Internal type enforces the one-driver-per-state invariant that tri-state
// hardware gets for free; a second driver in the same state is reported as a
// curated error rather than resolved by last-writer-wins.
package bus
