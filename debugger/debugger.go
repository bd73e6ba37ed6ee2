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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8008/curated"
	"github.com/jetsetilly/gopher8008/disassembly"
	"github.com/jetsetilly/gopher8008/hardware"
	"github.com/jetsetilly/gopher8008/hardware/bus"
	"github.com/jetsetilly/gopher8008/logger"
)

// error patterns for the debugger.
const (
	CommandError = "debugger: %v"
)

// Debugger is a terminal front-end for inspecting and controlling a running
// machine one state or one instruction at a time.
type Debugger struct {
	sys *hardware.MCS8

	input  *bufio.Scanner
	output io.Writer

	breakpoints map[uint16]bool

	// bus tracing prints every transaction as it happens
	tracing bool

	running bool
}

// NewDebugger is the preferred method of initialisation for Debugger.
func NewDebugger(sys *hardware.MCS8, input io.Reader, output io.Writer) *Debugger {
	return &Debugger{
		sys:         sys,
		input:       bufio.NewScanner(input),
		output:      output,
		breakpoints: make(map[uint16]bool),
	}
}

// Start the debugger input loop. Returns when the user quits or input ends.
func (dbg *Debugger) Start() error {
	dbg.printf("%s", dbg.sys.CPU.String())
	dbg.running = true

	for dbg.running {
		fmt.Fprintf(dbg.output, "[8008] ")
		if !dbg.input.Scan() {
			break
		}

		if err := dbg.parseCommand(dbg.input.Text()); err != nil {
			if curated.IsAny(err) {
				dbg.printf("%v", err)
			} else {
				return err
			}
		}
	}

	return nil
}

func (dbg *Debugger) printf(format string, a ...interface{}) {
	fmt.Fprintf(dbg.output, format, a...)
	fmt.Fprintln(dbg.output)
}

func (dbg *Debugger) parseCommand(line string) error {
	tokens := strings.Fields(strings.ToUpper(line))
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case "HELP":
		dbg.printf("STEP [n]     advance n timing states")
		dbg.printf("NEXT [n]     advance n instructions")
		dbg.printf("RUN          run to breakpoint or halt")
		dbg.printf("BREAK addr   set breakpoint")
		dbg.printf("CLEAR        clear all breakpoints")
		dbg.printf("REGS         show registers and flags")
		dbg.printf("MEM addr [n] show memory")
		dbg.printf("DIS [addr]   disassemble")
		dbg.printf("POKE addr v  write memory directly")
		dbg.printf("INT [vector] raise interrupt (RST vector)")
		dbg.printf("TRACE        toggle bus tracing")
		dbg.printf("DUMP [file]  write machine state graph (graphviz)")
		dbg.printf("QUIT         leave the debugger")

	case "QUIT", "EXIT":
		dbg.running = false

	case "STEP", "S":
		n := dbg.count(tokens, 1)
		for i := 0; i < n; i++ {
			if err := dbg.sys.Step(); err != nil {
				return err
			}
			dbg.printTransaction(dbg.sys.CPU.LastTransaction)
		}
		dbg.printf("%s", dbg.sys.CPU.String())

	case "NEXT", "N":
		n := dbg.count(tokens, 1)
		for i := 0; i < n; i++ {
			if err := dbg.sys.StepInstruction(); err != nil {
				return err
			}
		}
		dbg.printf("%s", dbg.sys.CPU.String())

	case "RUN", "R":
		return dbg.run()

	case "BREAK", "B":
		addr, err := dbg.address(tokens, 1)
		if err != nil {
			return err
		}
		dbg.breakpoints[addr] = true
		dbg.printf("breakpoint at %#04x", addr)

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)

	case "REGS":
		dbg.printf("%s", dbg.sys.CPU.String())
		dbg.printf("%s", dbg.sys.CPU.Stack.String())

	case "MEM", "M":
		addr, err := dbg.address(tokens, 1)
		if err != nil {
			return err
		}
		n := 8
		if len(tokens) > 2 {
			n = dbg.count(tokens, 2)
		}
		dbg.showMemory(addr, n)

	case "DIS", "D":
		addr := dbg.sys.CPU.PC.Address()
		if len(tokens) > 1 {
			var err error
			addr, err = dbg.address(tokens, 1)
			if err != nil {
				return err
			}
		}
		disassembly.Write(dbg.output, dbg.sys.Mem, addr, 8)

	case "POKE":
		addr, err := dbg.address(tokens, 1)
		if err != nil {
			return err
		}
		if len(tokens) < 3 {
			return curated.Errorf(CommandError, "POKE needs a value")
		}
		v, err := strconv.ParseUint(tokens[2], 0, 8)
		if err != nil {
			return curated.Errorf(CommandError, err)
		}
		dbg.sys.Mem.Poke(addr, uint8(v))

	case "INT", "I":
		vector := uint16(0)
		if len(tokens) > 1 {
			var err error
			vector, err = dbg.address(tokens, 1)
			if err != nil {
				return err
			}
		}
		dbg.sys.Interrupt(uint8(vector & 0x07))
		dbg.printf("interrupt raised (RST %d)", vector&0x07)

	case "TRACE", "T":
		dbg.tracing = !dbg.tracing
		if dbg.tracing {
			dbg.sys.CPU.TraceFunc = dbg.printTransaction
			dbg.printf("bus tracing on")
		} else {
			dbg.sys.CPU.TraceFunc = nil
			dbg.printf("bus tracing off")
		}

	case "DUMP":
		filename := "gopher8008_state.dot"
		if len(tokens) > 1 {
			filename = strings.ToLower(tokens[1])
		}
		return dbg.dump(filename)

	default:
		return curated.Errorf(CommandError, fmt.Sprintf("unrecognised command %s", tokens[0]))
	}

	return nil
}

// run the machine until a breakpoint, a halt, or a keypress.
func (dbg *Debugger) run() error {
	interrupt, restore, err := keyboardInterrupt()
	if err != nil {
		// raw terminal mode is a convenience, not a requirement. piped
		// input, for instance, has no terminal to put into raw mode
		logger.Logf("debugger", "no keyboard interrupt: %v", err)
		interrupt = func() bool { return false }
		restore = func() {}
	}
	defer restore()

	brake := 0
	err = dbg.sys.Run(func() (bool, error) {
		if dbg.breakpoints[dbg.sys.CPU.PC.Address()] {
			dbg.printf("breakpoint at %#04x", dbg.sys.CPU.PC.Address())
			return false, nil
		}

		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			if interrupt() {
				dbg.printf("interrupted")
				return false, nil
			}
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	if dbg.sys.CPU.Halted() {
		dbg.printf("halted")
	}
	dbg.printf("%s", dbg.sys.CPU.String())

	return nil
}

func (dbg *Debugger) printTransaction(tr bus.Transaction) {
	driver := "dev"
	if tr.CPUDriven {
		driver = "cpu"
	}
	dbg.printf("%03b %s %#04x %02x (%s)", tr.Status, tr.Cycle, tr.Address, tr.Data, driver)
}

func (dbg *Debugger) showMemory(addr uint16, n int) {
	for i := 0; i < n; i++ {
		a := addr + uint16(i)
		dbg.printf("%04x: %02x", a, dbg.sys.Mem.Peek(a))
	}
}

// dump writes a graphviz visualisation of the whole machine state.
func (dbg *Debugger) dump(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(CommandError, err)
	}
	defer f.Close()

	memviz.Map(f, dbg.sys.CPU)
	dbg.printf("state written to %s", filename)

	return nil
}

// count parses tokens[idx] as a decimal count, falling back to def.
func (dbg *Debugger) count(tokens []string, idx int) int {
	if len(tokens) <= idx {
		return 1
	}
	n, err := strconv.Atoi(tokens[idx])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// address parses tokens[idx] as an address. Plain numbers are hexadecimal;
// the 0x and 0 prefixes select bases explicitly.
func (dbg *Debugger) address(tokens []string, idx int) (uint16, error) {
	if len(tokens) <= idx {
		return 0, curated.Errorf(CommandError, "address required")
	}

	s := strings.ToLower(tokens[idx])
	base := 16
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0") {
		base = 0
	}

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf(CommandError, err)
	}

	return uint16(v) & 0x3fff, nil
}
