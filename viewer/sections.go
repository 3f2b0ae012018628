package viewer

import (
	"strings"
)

// Sections is the linker report split into its display panels
type Sections struct {
	Symbols  []string // symbol table lines, one per symbol
	Map      []string // memory map lines, inline errors included
	Warnings []string // every warning line, pass one and pass two
}

// splitReport splits the linker's rendered output into panel sections.
// Warning lines are routed to the warnings panel wherever they appear in the
// stream; the section headers and blank separators are dropped.
func splitReport(out string) Sections {
	var s Sections
	section := ""

	for _, line := range strings.Split(out, "\n") {
		switch {
		case line == "":
			continue
		case line == "Symbol Table":
			section = "symbols"
			continue
		case line == "Memory Map":
			section = "map"
			continue
		case strings.HasPrefix(line, "Warning:"):
			s.Warnings = append(s.Warnings, line)
			continue
		}

		switch section {
		case "symbols":
			s.Symbols = append(s.Symbols, line)
		case "map":
			s.Map = append(s.Map, line)
		default:
			// Lines before the symbol table that are not warnings only
			// occur on a failed run; the viewer is never shown then.
		}
	}

	return s
}
