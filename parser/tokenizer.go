package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Token is one whitespace-delimited token with its source position. The
// empty-contents token marks end of stream; its position is where the next
// token would have begun.
type Token struct {
	Pos      Position
	Contents string
}

func (t Token) String() string {
	if t.Contents == "" {
		return fmt.Sprintf("EOF at %s", t.Pos)
	}
	return fmt.Sprintf("%q at %s", t.Contents, t.Pos)
}

// Tokenizer splits an object file into tokens delimited by spaces, tabs and
// newlines, tracking the 1-based line and column of each. Each linker pass
// creates its own Tokenizer; no state survives the stream.
type Tokenizer struct {
	file    *os.File // non-nil when opened from a path; closed by Close
	scanner *bufio.Scanner
	line    string
	col     int // byte index into line
	lineNum int // number of lines read so far
	last    Token
}

// New creates a tokenizer over r
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{
		scanner: bufio.NewScanner(r),
		// The end-of-stream position for an empty input is line 0
		// offset 1.
		last: Token{Pos: Position{Line: 0, Offset: 1}},
	}
}

// Open creates a tokenizer reading from the file at path
func Open(path string) (*Tokenizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	t := New(f)
	t.file = f
	return t, nil
}

// Close releases the underlying file, if any
func (t *Tokenizer) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	if err != nil {
		return fmt.Errorf("failed to close input: %w", err)
	}
	return nil
}

// Next returns the next token, or the end-of-stream token once the input is
// exhausted. The end-of-stream token points at the column immediately after
// the last real token, or at column 1 of a later line when the file ends
// with newlines past the last token's line.
func (t *Tokenizer) Next() Token {
	for {
		for t.col < len(t.line) && isDelimiter(t.line[t.col]) {
			t.col++
		}
		if t.col < len(t.line) {
			break
		}
		if !t.scanner.Scan() {
			return t.eofToken()
		}
		t.line = t.scanner.Text()
		t.lineNum++
		t.col = 0
	}

	start := t.col
	for t.col < len(t.line) && !isDelimiter(t.line[t.col]) {
		t.col++
	}

	tok := Token{
		Pos:      Position{Line: t.lineNum, Offset: start + 1},
		Contents: t.line[start:t.col],
	}
	t.last = tok
	return tok
}

// LastMeaningful returns the last non-empty token produced on this stream
func (t *Tokenizer) LastMeaningful() Token {
	return t.last
}

func (t *Tokenizer) eofToken() Token {
	if t.lineNum > t.last.Pos.Line {
		// Lines were consumed past the last token's line; point at the
		// start of the last physical line read.
		return Token{Pos: Position{Line: t.lineNum, Offset: 1}}
	}
	return Token{Pos: Position{
		Line:   t.last.Pos.Line,
		Offset: t.last.Pos.Offset + len(t.last.Contents),
	}}
}

func isDelimiter(c byte) bool {
	return c == ' ' || c == '\t'
}
