// Package linker implements a two-pass linker for a toy assembly dialect:
// a 512-word flat address space and four-decimal-digit instruction words.
// The first pass sizes every module and builds the global symbol table; the
// second re-reads the same file and rewrites each instruction according to
// its addressing mode, emitting the memory map and diagnostics.
package linker

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/marie-linker/parser"
)

// Run links the object file at path, writing the full report to w: pass-one
// warnings, the symbol table, the memory map with inline errors and uselist
// warnings, and the defined-but-never-used warnings. It returns the process
// exit status (0 on success or open failure, 1 on a parse error) and, on
// success, a structured Report of the run.
func Run(path string, w io.Writer) (int, *Report) {
	tz, err := parser.Open(path)
	if err != nil {
		fmt.Fprintf(w, "Unable to open file %s\n", path)
		return 0, nil
	}
	symbols, modules, perr := FirstPass(tz, w)
	_ = tz.Close()
	if perr != nil {
		fmt.Fprintln(w, perr.Error())
		return 1, nil
	}

	fmt.Fprintln(w, "Symbol Table")
	for _, sym := range symbols.Symbols() {
		fmt.Fprintf(w, "%s=%d", sym.Name, sym.Addr)
		if sym.Redefined {
			fmt.Fprint(w, " Error: This variable is multiple times defined; first value used")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nMemory Map")

	tz, err = parser.Open(path)
	if err != nil {
		fmt.Fprintf(w, "Unable to open file %s\n", path)
		return 0, nil
	}
	rep := &Report{Symbols: symbols.Symbols(), Modules: modules}
	perr = SecondPass(tz, symbols, modules, w, rep)
	_ = tz.Close()
	if perr != nil {
		fmt.Fprintln(w, perr.Error())
		return 1, nil
	}

	fmt.Fprintln(w)
	for _, sym := range symbols.Symbols() {
		if !sym.Used {
			fmt.Fprintf(w, "Warning: Module %d: %s was defined but never used\n", sym.Module-1, sym.Name)
		}
	}

	return 0, rep
}
