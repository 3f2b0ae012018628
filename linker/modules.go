package linker

// Module describes one object module placed in the address space: its base
// address and its size in instruction words. The module table is built by
// the first pass and read, unchanged, by the second.
type Module struct {
	Base int
	Size int
}
