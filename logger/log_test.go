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

package logger

import (
	"strings"
	"testing"
)

func TestRepeatFolding(t *testing.T) {
	l := newLogger(16)
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "goodbye")

	if len(l.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(l.entries))
	}

	b := &strings.Builder{}
	l.write(b)
	if !strings.Contains(b.String(), "repeat x3") {
		t.Errorf("expected repeat count in output: %q", b.String())
	}
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(4)
	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")
	l.log("test", "d")
	l.log("test", "e")

	if len(l.entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(l.entries))
	}
	if l.entries[0].detail != "b" {
		t.Errorf("oldest entry should have been dropped")
	}
}

func TestTail(t *testing.T) {
	l := newLogger(16)
	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	b := &strings.Builder{}
	l.tail(b, 2)
	if strings.Contains(b.String(), "a") {
		t.Errorf("tail(2) should not contain the first entry")
	}
	if !strings.Contains(b.String(), "c") {
		t.Errorf("tail(2) should contain the last entry")
	}
}
