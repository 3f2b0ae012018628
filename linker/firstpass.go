package linker

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/marie-linker/parser"
)

// FirstPass walks every module in the input, sizing them and collecting
// symbol definitions. It returns the global symbol table and the module
// table; the out-of-bounds and redefinition warnings are written to w after
// the walk, in definition order. A structural error aborts the walk before
// any warning is written.
func FirstPass(tz *parser.Tokenizer, w io.Writer) (*SymbolTable, []Module, *parser.ParseError) {
	symbols := NewSymbolTable()
	var defLog []Definition
	var modules []Module

	base := 0
	moduleNum := 0
	totalInstr := 0

	tok := tz.Next()
	for tok.Contents != "" {
		moduleNum++

		defCount, perr := parser.ReadInt(tok)
		if perr != nil {
			return nil, nil, perr
		}
		// The cap violation points at the count token itself
		if defCount > MaxDefsPerModule {
			return nil, nil, parser.NewParseError(tok, parser.TooManyDefInModule)
		}
		tok = tz.Next()

		for i := 0; i < defCount; i++ {
			name, perr := parser.ReadSymbol(tok)
			if perr != nil {
				return nil, nil, perr
			}
			tok = tz.Next()

			rel, perr := parser.ReadInt(tok)
			if perr != nil {
				return nil, nil, perr
			}
			tok = tz.Next()

			def := Definition{
				Name:         name,
				Addr:         rel + base,
				RelativeAddr: rel,
				Module:       moduleNum,
			}
			for _, earlier := range defLog {
				if earlier.Name == name {
					def.Redefined = true
					break
				}
			}
			defLog = append(defLog, def)

			symbols.Define(Symbol{
				Name:         name,
				Addr:         rel + base,
				RelativeAddr: rel,
				Module:       moduleNum,
			})
		}

		useCount, perr := parser.ReadInt(tok)
		if perr != nil {
			return nil, nil, perr
		}
		if useCount > MaxUsesPerModule {
			return nil, nil, parser.NewParseError(tok, parser.TooManyUseInModule)
		}
		tok = tz.Next()

		// Use lists are validated but not recorded; only the second pass
		// needs them.
		for i := 0; i < useCount; i++ {
			if _, perr := parser.ReadSymbol(tok); perr != nil {
				return nil, nil, perr
			}
			tok = tz.Next()
		}

		instrTok := tok
		instrCount, perr := parser.ReadInt(instrTok)
		if perr != nil {
			return nil, nil, perr
		}
		totalInstr += instrCount
		tok = tz.Next()
		if totalInstr > MachineWords {
			return nil, nil, parser.NewParseError(instrTok, parser.TooManyInstr)
		}

		// Instructions are validated and discarded; the first pass only
		// needs the count.
		for i := 0; i < instrCount; i++ {
			if _, perr := parser.ReadMode(tok); perr != nil {
				return nil, nil, perr
			}
			tok = tz.Next()
			if _, perr := parser.ReadInt(tok); perr != nil {
				return nil, nil, perr
			}
			tok = tz.Next()
		}

		modules = append(modules, Module{Base: base, Size: instrCount})
		base += instrCount
	}

	emitDefinitionWarnings(w, defLog, symbols, modules)

	return symbols, modules, nil
}

// emitDefinitionWarnings replays the definition log in source order. A first
// definition whose relative address falls outside its module is warned about
// and reset to the module base; every duplicate definition gets a
// redefinition warning. Module numbers print 0-based.
//
// The printed address reproduces the reference linker exactly: when the
// symbol's defining module is not the first, the module base is subtracted
// from both the table entry and the log entry before printing.
func emitDefinitionWarnings(w io.Writer, defLog []Definition, symbols *SymbolTable, modules []Module) {
	for i := range defLog {
		def := &defLog[i]
		mod := modules[def.Module-1]
		sym, _ := symbols.Lookup(def.Name)

		if def.RelativeAddr > mod.Size-1 && !def.Redefined {
			if sym.Module > 1 {
				sym.Addr -= modules[sym.Module-1].Base
				def.Addr -= mod.Base
			}
			fmt.Fprintf(w, "Warning: Module %d: %s=%d valid=[0..%d] assume zero relative\n",
				def.Module-1, def.Name, def.Addr, mod.Size-1)
			sym.Addr = modules[sym.Module-1].Base
			def.Addr = mod.Base
		}

		if def.Redefined {
			fmt.Fprintf(w, "Warning: Module %d: %s redefinition ignored\n", def.Module-1, def.Name)
		}
	}
}
