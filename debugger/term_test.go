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

package debugger

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchByte(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	check, stop := watchByte(r)
	defer stop()
	assert.False(t, check())

	_, err = w.Write([]byte{'q'})
	require.NoError(t, err)

	// the watcher polls on a short deadline so the byte is not seen
	// immediately
	deadline := time.Now().Add(2 * time.Second)
	for !check() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, check())
}

func TestWatchByteStop(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	check, stop := watchByte(r)
	stop()

	// after stop() the watcher must not consume input meant for whoever
	// reads the file next. the sleep outlasts the watcher's poll interval
	time.Sleep(200 * time.Millisecond)

	_, err = w.Write([]byte{'x'})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	assert.False(t, check())

	b := make([]byte, 1)
	require.NoError(t, r.SetReadDeadline(time.Now().Add(time.Second)))
	n, err := r.Read(b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint8('x'), b[0])
}
