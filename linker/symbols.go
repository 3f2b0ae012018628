package linker

// Symbol is one entry in the global symbol table. Addr is the absolute
// address; the first definition of a name wins, later definitions only set
// Redefined. Used flips true when an E-mode instruction resolves to the
// symbol during the second pass.
type Symbol struct {
	Name         string
	Addr         int
	RelativeAddr int
	Module       int // 1-based module of the first definition
	Redefined    bool
	Used         bool
}

// SymbolTable holds the global symbols in first-definition order. Order
// matters: the symbol-table listing and the defined-but-never-used warnings
// are both emitted in it.
type SymbolTable struct {
	order  []*Symbol
	byName map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// Define records a definition. A name seen before marks the existing entry
// Redefined and keeps its first address; a new name is appended.
func (st *SymbolTable) Define(sym Symbol) {
	if existing, ok := st.byName[sym.Name]; ok {
		existing.Redefined = true
		return
	}
	s := sym
	st.order = append(st.order, &s)
	st.byName[s.Name] = &s
}

// Lookup returns the symbol for name, if defined
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.byName[name]
	return sym, ok
}

// Symbols returns all entries in first-definition order
func (st *SymbolTable) Symbols() []*Symbol {
	return st.order
}

// Len returns the number of distinct symbols
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Definition records one definition exactly as it appeared in source,
// duplicates included. The first pass replays this log after the walk to
// emit out-of-bounds and redefinition warnings in source order.
type Definition struct {
	Name         string
	Addr         int
	RelativeAddr int
	Module       int  // 1-based module it appeared in
	Redefined    bool // an earlier log entry carries the same name
}
