// Package scan provides the cursor-based text scanner shared by the markup
// and stylesheet parsers.
package scan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a scanner operation is invoked at or past
// the end of the input.
var ErrOutOfBounds = errors.New("scan: read past end of input")

// Scanner is a forward-only cursor over an immutable input string. It never
// backtracks; both parsers are written so that a single byte of lookahead
// (Peek) is always enough.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos reports the current byte offset. Diagnostic only; callers must not
// build parsing decisions on it.
func (s *Scanner) Pos() int {
	return s.pos
}

// AtEnd reports whether the cursor is at or past the end of the input.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.input)
}

// Peek returns the byte under the cursor without consuming it.
func (s *Scanner) Peek() (byte, error) {
	if s.AtEnd() {
		return 0, fmt.Errorf("peek at offset %d: %w", s.pos, ErrOutOfBounds)
	}
	return s.input[s.pos], nil
}

// StartsWith reports whether the unconsumed input begins with prefix.
func (s *Scanner) StartsWith(prefix string) bool {
	return strings.HasPrefix(s.input[min(s.pos, len(s.input)):], prefix)
}

// Advance consumes and returns the byte under the cursor.
func (s *Scanner) Advance() (byte, error) {
	if s.AtEnd() {
		return 0, fmt.Errorf("advance at offset %d: %w", s.pos, ErrOutOfBounds)
	}
	ch := s.input[s.pos]
	s.pos++
	return ch, nil
}

// ConsumeWhile advances while pred holds for the byte under the cursor and
// returns the consumed text. The result may be empty; ConsumeWhile never
// fails.
func (s *Scanner) ConsumeWhile(pred func(byte) bool) string {
	start := s.pos
	for !s.AtEnd() && pred(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// SkipWhitespace consumes any run of whitespace under the cursor.
func (s *Scanner) SkipWhitespace() {
	s.ConsumeWhile(IsWhitespace)
}

// IsWhitespace reports whether ch is markup/stylesheet whitespace.
func IsWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
