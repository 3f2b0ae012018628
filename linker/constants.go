package linker

// Machine and format limits
const (
	// MachineWords is the size of the flat address space, in words
	MachineWords = 512

	// MaxDefsPerModule caps a module's definition list
	MaxDefsPerModule = 16

	// MaxUsesPerModule caps a module's use list
	MaxUsesPerModule = 16

	// maxWord is the largest legal instruction word (opcode 9, operand 999)
	maxWord = 9999

	// maxImmediate is the first illegal immediate operand value
	maxImmediate = 900
)
