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

package hardware

// A full continue check on every instruction can be expensive. The
// PerformanceBrake is a standard value a continueCheck() implementation can
// use to filter its expensive paths:
//
//	filter++
//	if filter >= hardware.PerformanceBrake {
//		filter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run the machine as quickly as possible. The continueCheck() function is
// called at every instruction boundary; returning false ends the run
// cleanly. Run also returns when the machine halts.
func (sys *MCS8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := sys.CPU.StepInstruction(); err != nil {
			return err
		}

		if sys.CPU.Halted() {
			return nil
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
