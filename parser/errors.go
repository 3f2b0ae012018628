package parser

import (
	"fmt"
)

// Position represents a location in the object file
type Position struct {
	Line   int // 1-based line number
	Offset int // 1-based column of the token's first character
}

func (p Position) String() string {
	return fmt.Sprintf("line %d offset %d", p.Line, p.Offset)
}

// ErrCode identifies one of the fatal parse-error conditions
type ErrCode int

const (
	NumExpected        ErrCode = iota // token is not a base-10 integer
	SymExpected                       // token is not a valid symbol
	MarieExpected                     // token is not one of M A R I E
	SymTooLong                        // symbol longer than 16 characters
	TooManyDefInModule                // more than 16 definitions in a module
	TooManyUseInModule                // more than 16 use-list entries in a module
	TooManyInstr                      // instruction total exceeds the machine size
)

var errCodeNames = [...]string{
	NumExpected:        "NUM_EXPECTED",
	SymExpected:        "SYM_EXPECTED",
	MarieExpected:      "MARIE_EXPECTED",
	SymTooLong:         "SYM_TOO_LONG",
	TooManyDefInModule: "TOO_MANY_DEF_IN_MODULE",
	TooManyUseInModule: "TOO_MANY_USE_IN_MODULE",
	TooManyInstr:       "TOO_MANY_INSTR",
}

func (c ErrCode) String() string {
	if int(c) < len(errCodeNames) {
		return errCodeNames[c]
	}
	return fmt.Sprintf("ErrCode(%d)", int(c))
}

// ParseError is a fatal structural error in the input. Its rendered form is
// the external diagnostic line; the caller prints it and stops the run.
type ParseError struct {
	Pos  Position
	Code ErrCode
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse Error %s: %s", e.Pos, e.Code)
}

// NewParseError creates a parse error located at the given token
func NewParseError(tok Token, code ErrCode) *ParseError {
	return &ParseError{Pos: tok.Pos, Code: code}
}
