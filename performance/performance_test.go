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

package performance_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8008/hardware"
	"github.com/jetsetilly/gopher8008/performance"
	"github.com/jetsetilly/gopher8008/test"
)

func TestCheck(t *testing.T) {
	sys := hardware.NewMCS8()
	prog := []uint8{
		0x08,             // INB
		0x44, 0x00, 0x00, // JMP 0x0000
	}
	test.ExpectedSuccess(t, sys.AttachProgram(0x0000, prog))

	b := &strings.Builder{}
	test.ExpectedSuccess(t, performance.Check(b, performance.ProfileNone, sys, "50ms"))
	test.Equate(t, strings.Contains(b.String(), "states/sec"), true)
}

func TestCheckRestartsHaltedMachine(t *testing.T) {
	sys := hardware.NewMCS8()

	// the program halts immediately. the check must keep restarting the
	// machine and still return when the timer expires
	test.ExpectedSuccess(t, sys.AttachProgram(0x0000, []uint8{0xff}))

	b := &strings.Builder{}
	test.ExpectedSuccess(t, performance.Check(b, performance.ProfileNone, sys, "50ms"))
}

func TestCheckBadDuration(t *testing.T) {
	sys := hardware.NewMCS8()
	test.ExpectedFailure(t, performance.Check(io.Discard, performance.ProfileNone, sys, "not-a-duration"))
}
