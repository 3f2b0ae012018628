package linker

import (
	"testing"
)

func testSymbols() *SymbolTable {
	st := NewSymbolTable()
	st.Define(Symbol{Name: "A", Addr: 0, Module: 1})
	st.Define(Symbol{Name: "B", Addr: 3, Module: 2})
	return st
}

func TestResolveWord_Modes(t *testing.T) {
	modules := []Module{{Base: 0, Size: 3}, {Base: 3, Size: 2}}
	symbols := testSymbols()
	useList := []string{"B", "X"}

	tests := []struct {
		name    string
		mode    byte
		word    int
		base    int
		size    int
		final   int
		errText string
	}{
		{"absolute in range", 'A', 1400, 0, 3, 1400, ""},
		{"absolute at limit", 'A', 1512, 0, 3, 1000, "Error: Absolute address exceeds machine size; zero used"},
		{"relative in range", 'R', 1002, 3, 3, 1005, ""},
		{"relative out of range", 'R', 1003, 3, 3, 1003, "Error: Relative address exceeds module size; relative zero used"},
		{"immediate in range", 'I', 1899, 0, 3, 1899, ""},
		{"immediate illegal", 'I', 1900, 0, 3, 1999, "Error: Illegal immediate operand; treated as 999"},
		{"module base", 'M', 5001, 0, 3, 5003, ""},
		{"module out of range", 'M', 5002, 0, 3, 5000, "Error: Illegal module operand ; treated as module=0"},
		{"illegal opcode", 'A', 10000, 0, 3, 9999, "Error: Illegal opcode; treated as 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var referenced []int
			final, errText := resolveWord(tt.mode, tt.word, tt.base, tt.size, modules, symbols, useList, &referenced)
			if final != tt.final {
				t.Errorf("expected word %d, got %d", tt.final, final)
			}
			if errText != tt.errText {
				t.Errorf("expected error %q, got %q", tt.errText, errText)
			}
		})
	}
}

func TestResolveWord_External(t *testing.T) {
	modules := []Module{{Base: 0, Size: 2}}
	useList := []string{"B", "X"}

	// Resolved external: symbol address replaces the operand, the symbol is
	// marked used and the uselist slot recorded
	symbols := testSymbols()
	var referenced []int
	final, errText := resolveWord('E', 1000, 0, 2, modules, symbols, useList, &referenced)
	if final != 1003 || errText != "" {
		t.Errorf("expected 1003 with no error, got %d %q", final, errText)
	}
	if sym, _ := symbols.Lookup("B"); !sym.Used {
		t.Error("expected B marked used")
	}
	if len(referenced) != 1 || referenced[0] != 0 {
		t.Errorf("expected referenced=[0], got %v", referenced)
	}

	// Undefined external: the slot is still recorded before the failed
	// lookup, so its not-used warning stays suppressed
	referenced = nil
	final, errText = resolveWord('E', 1001, 0, 2, modules, symbols, useList, &referenced)
	if final != 1000 || errText != "Error: X is not defined; zero used" {
		t.Errorf("unexpected result %d %q", final, errText)
	}
	if len(referenced) != 1 || referenced[0] != 1 {
		t.Errorf("expected referenced=[1] despite failed lookup, got %v", referenced)
	}

	// Operand past the uselist: relative zero, nothing recorded
	referenced = nil
	final, errText = resolveWord('E', 1002, 5, 2, modules, symbols, useList, &referenced)
	if final != 1005 || errText != "Error: External operand exceeds length of uselist; treated as relative=0" {
		t.Errorf("unexpected result %d %q", final, errText)
	}
	if len(referenced) != 0 {
		t.Errorf("expected no recorded reference, got %v", referenced)
	}

	// Illegal opcode short-circuits before mode dispatch: the uselist slot
	// is not touched
	referenced = nil
	final, errText = resolveWord('E', 10000, 0, 2, modules, symbols, useList, &referenced)
	if final != 9999 || errText != "Error: Illegal opcode; treated as 9999" {
		t.Errorf("unexpected result %d %q", final, errText)
	}
	if len(referenced) != 0 {
		t.Errorf("expected no recorded reference, got %v", referenced)
	}
}
