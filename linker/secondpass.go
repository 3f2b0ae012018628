package linker

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/marie-linker/parser"
)

// SecondPass re-reads the input with a fresh tokenizer and emits the memory
// map. It receives only the symbol table and module table from the first
// pass. Map lines, per-instruction errors and per-module uselist warnings go
// to w in stream order. When rep is non-nil the per-module use lists and
// referenced uselist indices are recorded on it for the ancillary tooling.
func SecondPass(tz *parser.Tokenizer, symbols *SymbolTable, modules []Module, w io.Writer, rep *Report) *parser.ParseError {
	base := 0
	moduleNum := 0
	mapIndex := 0

	tok := tz.Next()
	for tok.Contents != "" {
		moduleNum++

		defCount, perr := parser.ReadInt(tok)
		if perr != nil {
			return perr
		}
		tok = tz.Next()

		// Definitions were handled in the first pass; skip the pairs
		for i := 0; i < 2*defCount; i++ {
			tok = tz.Next()
		}

		useCount, perr := parser.ReadInt(tok)
		if perr != nil {
			return perr
		}
		tok = tz.Next()

		useList := make([]string, 0, useCount)
		var referenced []int
		for i := 0; i < useCount; i++ {
			name, perr := parser.ReadSymbol(tok)
			if perr != nil {
				return perr
			}
			useList = append(useList, name)
			tok = tz.Next()
		}

		instrTok := tok
		instrCount, perr := parser.ReadInt(instrTok)
		if perr != nil {
			return perr
		}
		tok = tz.Next()
		if instrCount > MachineWords {
			return parser.NewParseError(instrTok, parser.TooManyInstr)
		}

		for i := 0; i < instrCount; i++ {
			mode, perr := parser.ReadMode(tok)
			if perr != nil {
				return perr
			}
			tok = tz.Next()

			word, perr := parser.ReadInt(tok)
			if perr != nil {
				return perr
			}
			tok = tz.Next()

			final, errText := resolveWord(mode, word, base, instrCount, modules, symbols, useList, &referenced)
			if errText != "" {
				fmt.Fprintf(w, "%03d: %04d %s\n", mapIndex, final, errText)
			} else {
				fmt.Fprintf(w, "%03d: %04d\n", mapIndex, final)
			}
			mapIndex++
		}

		base += instrCount

		// Warn about uselist entries no E-mode instruction referenced
		for i, name := range useList {
			found := false
			for _, r := range referenced {
				if r == i {
					found = true
				}
			}
			if !found {
				fmt.Fprintf(w, "Warning: Module %d: uselist[%d]=%s was not used\n", moduleNum-1, i, name)
			}
		}

		if rep != nil {
			rep.Uses = append(rep.Uses, ModuleUses{
				Module:     moduleNum,
				UseList:    useList,
				Referenced: referenced,
			})
		}
	}

	return nil
}
