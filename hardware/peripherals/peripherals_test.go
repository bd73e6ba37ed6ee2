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

package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/curated"
	"github.com/jetsetilly/gopher8008/hardware/peripherals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptController(t *testing.T) {
	ic := peripherals.NewInterruptController()

	// nothing jammed: the fetch falls through to memory
	_, ok := ic.Inject()
	assert.False(t, ok)

	ic.JamRST(7)
	assert.True(t, ic.Armed())

	op, ok := ic.Inject()
	require.True(t, ok)
	assert.Equal(t, uint8(0x3d), op)

	// consumed by the first acknowledge
	_, ok = ic.Inject()
	assert.False(t, ok)
}

func TestLatches(t *testing.T) {
	p := peripherals.NewLatches()

	p.SetInput(3, 0x99)
	v, err := p.Input(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)

	require.NoError(t, p.Output(8, 0x2a))
	assert.Equal(t, uint8(0x2a), p.Latched(8))
}

func TestLatches_PortRanges(t *testing.T) {
	p := peripherals.NewLatches()

	_, err := p.Input(8)
	require.Error(t, err)
	assert.True(t, curated.Is(err, peripherals.InputPortError))

	err = p.Output(3, 0x00)
	require.Error(t, err)
	assert.True(t, curated.Is(err, peripherals.OutputPortError))
}
