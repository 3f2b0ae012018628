package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/marie-linker/config"
	"github.com/lookbusy1344/marie-linker/linker"
	"github.com/lookbusy1344/marie-linker/tools"
	"github.com/lookbusy1344/marie-linker/viewer"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	// Command-line flags
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Browse the link result in a TUI after linking")
		xrefMode    = flag.Bool("xref", false, "Append a symbol cross-reference report")
		outFile     = flag.String("o", "", "Write the report to a file instead of stdout")
		configPath  = flag.String("config", "", "Config file path (default: platform config dir)")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
	)

	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("MARIE Linker %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	// Show help
	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	// Require exactly one object file
	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s <input-file>\n", os.Args[0])
		os.Exit(1)
	}
	objFile := flag.Arg(0)

	// Load configuration; -o takes precedence over the file's output path,
	// and the file's xref setting turns the cross-reference on whatever the
	// -xref flag says
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *outFile == "" {
		*outFile = cfg.Output.File
	}
	if cfg.Output.Xref {
		*xrefMode = true
	}

	if *verboseMode {
		fmt.Printf("Linking object file: %s\n", objFile)
	}

	// Run both passes into a buffer so the TUI can browse the same linker
	// output that is written out; the cross-reference report is appended to
	// the written report only, never to the TUI's panels
	var buf bytes.Buffer
	status, rep := linker.Run(objFile, &buf)
	linkOutput := buf.String()

	if *xrefMode && rep != nil {
		fmt.Fprintln(&buf)
		tools.WriteXRef(&buf, rep)
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile) // #nosec G304 -- user-specified report output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", err)
			}
		}()
		out = f
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode && rep != nil {
		words := 0
		for _, mod := range rep.Modules {
			words += mod.Size
		}
		fmt.Printf("Linked %d modules, %d words, %d symbols\n",
			len(rep.Modules), words, len(rep.Symbols))
	}

	// Browse the result interactively on request; never after a failed link
	if *tuiMode && status == 0 && rep != nil {
		v := viewer.New(linkOutput, rep, cfg)
		if err := v.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(status)
}

func printHelp() {
	fmt.Printf(`MARIE Linker %s

Two-pass linker for MARIE object files: resolves symbols across modules,
relocates relative and module-base references, and prints the symbol table
and memory map.

Usage: marie-linker [options] <input-file>

Options:
  -help          Show this help message
  -version       Show version information
  -o FILE        Write the report to FILE instead of stdout
  -tui           Browse the link result in a TUI after linking
  -xref          Append a symbol cross-reference report
  -config FILE   Config file path (default: platform config dir)
  -verbose       Enable verbose output

Input format (whitespace-delimited, modules concatenated):
  defcount (symbol relativeaddr)...
  usecount symbol...
  instrcount (mode word)...

where mode is one of M (module base), A (absolute), R (relative),
I (immediate), E (external) and word is a 4-digit decimal instruction.

Examples:
  # Link an object file
  marie-linker program.obj

  # Link and browse the memory map interactively
  marie-linker -tui program.obj

  # Write the report to a file with a cross-reference appended
  marie-linker -xref -o report.txt program.obj
`, Version)
}
