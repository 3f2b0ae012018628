package linker

// resolveWord applies the addressing-mode rewrite rules to one instruction
// word, returning the resolved word and the inline error message, empty when
// the instruction is clean.
//
// The illegal-opcode check runs before mode dispatch, so an E-mode word
// above 9999 never touches its uselist slot. E-mode records the operand as
// referenced before the symbol lookup; an in-range operand naming an
// undefined symbol therefore still counts as a use of its slot.
func resolveWord(mode byte, word, base, moduleSize int, modules []Module, symbols *SymbolTable, useList []string, referenced *[]int) (int, string) {
	opcode := word / 1000
	operand := word % 1000

	if word > maxWord {
		return maxWord, "Error: Illegal opcode; treated as 9999"
	}

	switch mode {
	case 'M':
		if operand > len(modules)-1 {
			return opcode * 1000, "Error: Illegal module operand ; treated as module=0"
		}
		return opcode*1000 + modules[operand].Base, ""

	case 'A':
		if operand >= MachineWords {
			return opcode * 1000, "Error: Absolute address exceeds machine size; zero used"
		}
		return word, ""

	case 'R':
		if operand >= moduleSize {
			return base + opcode*1000, "Error: Relative address exceeds module size; relative zero used"
		}
		return base + opcode*1000 + operand, ""

	case 'I':
		if operand >= maxImmediate {
			return opcode*1000 + 999, "Error: Illegal immediate operand; treated as 999"
		}
		return word, ""

	case 'E':
		if operand >= len(useList) {
			return opcode*1000 + base, "Error: External operand exceeds length of uselist; treated as relative=0"
		}
		*referenced = append(*referenced, operand)
		name := useList[operand]
		sym, ok := symbols.Lookup(name)
		if !ok {
			return opcode * 1000, "Error: " + name + " is not defined; zero used"
		}
		sym.Used = true
		return opcode*1000 + sym.Addr, ""
	}

	// ReadMode only yields the five letters above
	return 0, ""
}
