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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8008/curated"
	"github.com/jetsetilly/gopher8008/hardware/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	m := memory.NewMemory()

	require.NoError(t, m.Write(0x0042, 0x99))
	v, err := m.Read(0x0042)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)
}

func TestAddressMirroring(t *testing.T) {
	m := memory.NewMemory()

	// only fourteen address bits exist: 0x4042 is 0x0042
	require.NoError(t, m.Write(0x0042, 0x99))
	v, err := m.Read(0x4042)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x99), v)

	require.NoError(t, m.Write(0xc001, 0x55))
	assert.Equal(t, uint8(0x55), m.Peek(0x0001))
}

func TestROMProtection(t *testing.T) {
	m := memory.NewMemory()
	m.SetROM(0x0800)

	err := m.Write(0x0100, 0x01)
	require.Error(t, err)
	assert.True(t, curated.Is(err, memory.ReadOnlyError))

	// the boundary itself is writable
	require.NoError(t, m.Write(0x0800, 0x01))

	// loading a program image bypasses the protection
	require.NoError(t, m.Load(0x0000, []uint8{0x06, 0x42}))
	assert.Equal(t, uint8(0x06), m.Peek(0x0000))

	// as does poking
	m.Poke(0x0001, 0x43)
	assert.Equal(t, uint8(0x43), m.Peek(0x0001))
}

func TestLoadBounds(t *testing.T) {
	m := memory.NewMemory()

	err := m.Load(0x3fff, []uint8{0x01, 0x02})
	require.Error(t, err)
	assert.True(t, curated.Is(err, memory.OriginError))

	require.NoError(t, m.Load(0x3ffe, []uint8{0x01, 0x02}))
	assert.Equal(t, uint8(0x02), m.Peek(0x3fff))
}
