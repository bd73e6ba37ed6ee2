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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
)

// Profile selects which profiles a performance check writes.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0x00
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll  Profile = ProfileCPU | ProfileMem
)

// ParseProfile converts the command line representation ("cpu", "mem",
// "all", "none") to a Profile value. Unrecognised strings mean no profiling.
func ParseProfile(s string) Profile {
	switch s {
	case "cpu":
		return ProfileCPU
	case "mem":
		return ProfileMem
	case "all":
		return ProfileAll
	}
	return ProfileNone
}

func profileRun(profile Profile, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create("mem.profile")
		if err != nil {
			return err
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}
