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

package timing

// Synchronizer latches interrupt requests and samples the READY line once
// per state, isolating the state machine from the asynchronous outside
// world.
//
// The interrupt latch is cleared only by an explicit acknowledge, never by
// time alone: a request raised during any bus phase stays pending until the
// next fetch boundary.
type Synchronizer struct {
	pending bool
	ready   bool
}

// NewSynchronizer is the preferred method of initialisation for
// Synchronizer. The READY sample starts high - an unconnected READY pin
// means no wait states.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{ready: true}
}

// Reset clears the interrupt latch and returns the READY sample to high.
func (sy *Synchronizer) Reset() {
	sy.pending = false
	sy.ready = true
}

// RaiseInterrupt sets the pending-interrupt latch.
func (sy *Synchronizer) RaiseInterrupt() {
	sy.Latch(true, false)
}

// Acknowledge clears the pending-interrupt latch. Called on entry to T1I.
func (sy *Synchronizer) Acknowledge() {
	sy.Latch(false, true)
}

// Latch resolves the set and clear inputs to the interrupt latch. When both
// are asserted in the same state, clear takes priority.
func (sy *Synchronizer) Latch(set bool, clear bool) {
	if clear {
		sy.pending = false
		return
	}
	if set {
		sy.pending = true
	}
}

// Pending returns the state of the interrupt latch.
func (sy *Synchronizer) Pending() bool {
	return sy.pending
}

// SampleReady samples the READY line. Called once per state; the sampled
// value is what the state machine sees, not the live line.
func (sy *Synchronizer) SampleReady(line bool) {
	sy.ready = line
}

// Ready returns the most recent READY sample.
func (sy *Synchronizer) Ready() bool {
	return sy.ready
}
