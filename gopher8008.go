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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8008/debugger"
	"github.com/jetsetilly/gopher8008/disassembly"
	"github.com/jetsetilly/gopher8008/hardware"
	"github.com/jetsetilly/gopher8008/hardware/bus"
	"github.com/jetsetilly/gopher8008/hardware/memory"
	"github.com/jetsetilly/gopher8008/logger"
	"github.com/jetsetilly/gopher8008/performance"
	"github.com/jetsetilly/gopher8008/statsview"
	"github.com/jetsetilly/gopher8008/version"
)

func main() {
	progModes := []string{"RUN", "DEBUG", "PERFORMANCE", "DISASM", "VERSION"}
	defaultMode := "RUN"

	// mode is either the first argument or the default
	mode := defaultMode
	args := os.Args[1:]
	if len(args) > 0 {
		m := strings.ToUpper(args[0])
		for _, p := range progModes {
			if m == p {
				mode = m
				args = args[1:]
				break
			}
		}
	}

	var err error

	switch mode {
	case "RUN":
		err = run(mode, args)
	case "DEBUG":
		err = debug(mode, args)
	case "PERFORMANCE":
		err = perform(mode, args)
	case "DISASM":
		err = disasm(mode, args)
	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrs)
		fmt.Printf("  revision: %s\n", rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// prepare a machine with the program named on the command line loaded at
// origin. common to every mode that runs or inspects a program.
func prepare(md *flag.FlagSet, origin string, rom bool) (*hardware.MCS8, error) {
	if md.NArg() != 1 {
		md.Usage()
		return nil, fmt.Errorf("one program file required")
	}

	o, err := parseAddress(origin)
	if err != nil {
		return nil, err
	}

	program, err := os.ReadFile(md.Arg(0))
	if err != nil {
		return nil, err
	}

	sys := hardware.NewMCS8()
	if rom {
		sys.Mem.SetROM(o + uint16(len(program)))
	}
	if err := sys.AttachProgram(o, program); err != nil {
		return nil, err
	}

	return sys, nil
}

func run(mode string, args []string) error {
	md := flag.NewFlagSet(mode, flag.ExitOnError)
	origin := md.String("origin", "0x0000", "load address of the program")
	rom := md.Bool("rom", false, "protect the program image as ROM")
	trace := md.Bool("trace", false, "print every bus transaction")
	log := md.Bool("log", false, "echo log to stderr")
	stats := md.Bool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	md.Parse(args)

	if *log {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not in this build (build with the statsview tag)")
		}
		statsview.Launch(os.Stdout)
	}

	sys, err := prepare(md, *origin, *rom)
	if err != nil {
		return err
	}

	if *trace {
		sys.CPU.TraceFunc = func(tr bus.Transaction) {
			fmt.Printf("%03b %s %#04x %02x\n", tr.Status, tr.Cycle, tr.Address, tr.Data)
		}
	}

	err = sys.Run(func() (bool, error) {
		return true, nil
	})
	if err != nil {
		return err
	}

	fmt.Println(sys.CPU.String())
	return nil
}

func debug(mode string, args []string) error {
	md := flag.NewFlagSet(mode, flag.ExitOnError)
	origin := md.String("origin", "0x0000", "load address of the program")
	rom := md.Bool("rom", false, "protect the program image as ROM")
	log := md.Bool("log", false, "echo log to stderr")
	md.Parse(args)

	if *log {
		logger.SetEcho(os.Stderr)
	}

	sys, err := prepare(md, *origin, *rom)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(sys, os.Stdin, os.Stdout)
	return dbg.Start()
}

func perform(mode string, args []string) error {
	md := flag.NewFlagSet(mode, flag.ExitOnError)
	origin := md.String("origin", "0x0000", "load address of the program")
	duration := md.String("duration", "5s", "run duration (with an additional startup penalty)")
	profile := md.String("profile", "none", "run performance check with profiling: cpu, mem or all")
	log := md.Bool("log", false, "echo log to stderr")
	stats := md.Bool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	md.Parse(args)

	if *log {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not in this build (build with the statsview tag)")
		}
		statsview.Launch(os.Stdout)
	}

	sys, err := prepare(md, *origin, false)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, performance.ParseProfile(*profile), sys, *duration)
}

func disasm(mode string, args []string) error {
	md := flag.NewFlagSet(mode, flag.ExitOnError)
	origin := md.String("origin", "0x0000", "load address of the program")
	md.Parse(args)

	if md.NArg() != 1 {
		md.Usage()
		return fmt.Errorf("one program file required")
	}

	o, err := parseAddress(*origin)
	if err != nil {
		return err
	}

	program, err := os.ReadFile(md.Arg(0))
	if err != nil {
		return err
	}

	return writeDisassembly(os.Stdout, o, program)
}

// writeDisassembly prints a listing of a program image. Using the image
// length as the instruction count over-shoots, so the listing is cut at the
// end of the image rather than running into unset memory.
func writeDisassembly(w io.Writer, origin uint16, program []uint8) error {
	mem := memory.NewMemory()
	if err := mem.Load(origin, program); err != nil {
		return err
	}

	end := origin + uint16(len(program))
	for _, e := range disassembly.Disassemble(mem, origin, len(program)) {
		if e.Address >= end {
			break
		}
		fmt.Fprintln(w, e.String())
	}

	return nil
}

func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %s", s)
	}
	return uint16(v) & 0x3fff, nil
}
