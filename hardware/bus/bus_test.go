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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/curated"
	"github.com/jetsetilly/gopher8008/hardware/bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternal_DriveAndRead(t *testing.T) {
	var b bus.Internal

	b.NewState()
	assert.False(t, b.Driven())

	require.NoError(t, b.Drive("PC", 0x42))
	assert.True(t, b.Driven())

	v, err := b.Value("IR")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	// multiple sinks may read the same driven value
	v, err = b.Value("reg.b")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
}

func TestInternal_Contention(t *testing.T) {
	var b bus.Internal

	b.NewState()
	require.NoError(t, b.Drive("PC", 0x01))

	// a second driver in the same state is contention, not last-writer-wins
	err := b.Drive("A", 0x02)
	require.Error(t, err)
	assert.True(t, curated.Is(err, bus.ContentionError))

	// the original value survives
	v, err := b.Value("IR")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v)

	// a new state releases the bus
	b.NewState()
	require.NoError(t, b.Drive("A", 0x02))
}

func TestInternal_Undriven(t *testing.T) {
	var b bus.Internal

	b.NewState()
	_, err := b.Value("IR")
	require.Error(t, err)
	assert.True(t, curated.Is(err, bus.UndrivenError))
}

func TestCycleType_String(t *testing.T) {
	assert.Equal(t, "PCI", bus.PCI.String())
	assert.Equal(t, "PCR", bus.PCR.String())
	assert.Equal(t, "PCC", bus.PCC.String())
	assert.Equal(t, "PCW", bus.PCW.String())
}
