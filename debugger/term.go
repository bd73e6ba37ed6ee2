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
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// watchByte watches f for a single byte arriving in the background. The
// returned check function reports whether the byte has arrived; the stop
// function ends the watch. The file must support read deadlines: the watcher
// polls rather than blocking indefinitely, so that stop() is honoured
// promptly and no reader is left behind to swallow later input.
func watchByte(f *os.File) (check func() bool, stop func()) {
	var pressed int32
	done := make(chan bool)

	go func() {
		b := make([]byte, 1)
		for {
			select {
			case <-done:
				return
			default:
			}
			_ = f.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
			if n, _ := f.Read(b); n > 0 {
				atomic.StoreInt32(&pressed, 1)
				return
			}
		}
	}()

	check = func() bool {
		return atomic.LoadInt32(&pressed) == 1
	}

	stop = func() {
		close(done)
	}

	return check, stop
}

// keyboardInterrupt puts the controlling terminal into cbreak mode and
// watches for a keypress, so a free-running machine can be stopped from the
// keyboard. The returned check function is safe to poll from the run loop;
// the restore function returns the terminal to canonical mode and must be
// called however the run ends.
func keyboardInterrupt() (check func() bool, restore func(), err error) {
	fd := os.Stdin.Fd()

	var canAttr unix.Termios
	var cbreakAttr unix.Termios

	if err := termios.Tcgetattr(fd, &canAttr); err != nil {
		return nil, nil, err
	}
	cbreakAttr = canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	// watch a duplicate of stdin rather than stdin itself. the duplicate is
	// put into non-blocking mode, which lets the runtime poller honour read
	// deadlines on it
	dupfd, err := syscall.Dup(int(fd))
	if err != nil {
		return nil, nil, err
	}
	if err := syscall.SetNonblock(dupfd, true); err != nil {
		_ = syscall.Close(dupfd)
		return nil, nil, err
	}
	input := os.NewFile(uintptr(dupfd), "stdin")

	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &cbreakAttr); err != nil {
		input.Close()
		return nil, nil, err
	}

	check, stop := watchByte(input)

	restore = func() {
		stop()
		input.Close()

		// non-blocking is a property of the shared file description so it
		// must be undone before the command loop reads stdin again
		_ = syscall.SetNonblock(int(fd), false)
		_ = termios.Tcsetattr(fd, termios.TCIFLUSH, &canAttr)
	}

	return check, restore, nil
}
