/*
 * Text Format Scanner - Token Stream
 *
 * This file implements the scanner itself: the character-class dispatch that
 * turns the raw input into typed tokens, the LIFO token pushback stack, the
 * end-of-input latch, and the structural helpers a recursive-descent parser
 * drives the scanner with.
 *
 * The scanner has two tokenization modes. Next performs generic value
 * scanning; NextKey performs the narrower scan used where a message field
 * name is expected, which is the only place bracketed extension names are
 * recognized.
 */

package textformat

import (
	"errors"
	"io"
)

// ExtensionRegistry resolves bracketed extension field names to whatever
// representation the driving parser uses. The scanner holds the registry on
// behalf of the parser and never consults it during tokenization.
type ExtensionRegistry interface {
	ResolveExtension(name string) (any, bool)
}

// Scanner converts text-format input into a stream of tokens. A Scanner is
// consumed strictly top-to-bottom by a single goroutine; it is not safe for
// concurrent use.
type Scanner struct {
	input      string
	cs         charStream
	pushback   []Token // LIFO: the last element is returned first
	eof        bool    // latches once the character input is exhausted
	extensions ExtensionRegistry
}

// Option configures a Scanner at construction time.
type Option func(*Scanner)

// WithPushback seeds the token pushback stack. The tokens are replayed in
// the order given, before any character input is consumed. A driving parser
// uses this to hand already-classified lookahead tokens back to a scanner.
func WithPushback(tokens ...Token) Option {
	return func(s *Scanner) {
		// The stack is LIFO, so load it in reverse to replay in list order.
		for i := len(tokens) - 1; i >= 0; i-- {
			s.pushback = append(s.pushback, tokens[i])
		}
	}
}

// WithExtensions attaches an extension-name registry for the driving parser
// to retrieve via Extensions.
func WithExtensions(reg ExtensionRegistry) Option {
	return func(s *Scanner) {
		s.extensions = reg
	}
}

// NewScanner returns a scanner over the complete in-memory input text.
func NewScanner(input string, opts ...Option) *Scanner {
	s := &Scanner{
		input: input,
		cs:    newCharStream(input),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extensions returns the registry attached at construction, or nil.
func (s *Scanner) Extensions() ExtensionRegistry {
	return s.extensions
}

// Next returns the next token in generic value scanning mode. Clean end of
// input is reported as io.EOF; malformed input as a *SyntaxError. Tokens on
// the pushback stack are drained first and remain retrievable after the
// character input is exhausted.
func (s *Scanner) Next() (Token, error) {
	if tok, ok := s.popPushback(); ok {
		return tok, nil
	}
	c, ok, err := s.skipWhitespaceAndComments()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, io.EOF
	}

	switch c {
	case ':':
		return ColonToken, nil
	case ',':
		return CommaToken, nil
	case ';':
		return SemicolonToken, nil
	case '{':
		return BeginObjectToken, nil
	case '}':
		return EndObjectToken, nil
	case '<':
		return AltBeginObjectToken, nil
	case '>':
		return AltEndObjectToken, nil
	case '[':
		return BeginArrayToken, nil
	case ']':
		return EndArrayToken, nil
	case '\'', '"':
		return s.scanString(c)
	}
	switch {
	case c == '-' || isDigit(c):
		return s.scanNumber(c)
	case isLetter(c):
		return NewIdentifierToken(s.scanIdentifier(c)), nil
	default:
		return Token{}, s.errorAtf(s.cs.offset()-1, "unexpected character %q", c)
	}
}

// NextKey returns the next token in key scanning mode, used where a message
// field name is expected. Only plain identifiers, bracketed extension names,
// and the two object terminators are valid here; key mode never yields
// numeric or string tokens.
func (s *Scanner) NextKey() (Token, error) {
	if tok, ok := s.popPushback(); ok {
		return tok, nil
	}
	c, ok, err := s.skipWhitespaceAndComments()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, io.EOF
	}

	switch {
	case c == '}':
		return EndObjectToken, nil
	case c == '>':
		return AltEndObjectToken, nil
	case c == '[':
		return s.scanExtensionIdentifier()
	case isLetter(c):
		return NewIdentifierToken(s.scanIdentifier(c)), nil
	default:
		return Token{}, s.errorAtf(s.cs.offset()-1, "expected field name, found %q", c)
	}
}

// Pushback pushes a token onto the replay stack. The most recently pushed
// token is returned by the next Next or NextKey call; any number of tokens
// may be queued.
func (s *Scanner) Pushback(tok Token) {
	s.pushback = append(s.pushback, tok)
}

// SkipRequired consumes the next token and fails unless it equals want.
func (s *Scanner) SkipRequired(want Token) error {
	got, err := s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return s.errorAtf(s.cs.offset(), "expected %s, found end of input", want)
		}
		return err
	}
	if got != want {
		return s.errorAtf(s.cs.offset(), "expected %s, found %s", want, got)
	}
	return nil
}

// SkipOptional consumes the next token if it equals want and reports whether
// it did; a non-matching token is pushed back. End of input where a token
// was expected is an error, not a false result.
func (s *Scanner) SkipOptional(want Token) (bool, error) {
	got, err := s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, s.errorAtf(s.cs.offset(), "expected a token, found end of input")
		}
		return false, err
	}
	if got == want {
		return true, nil
	}
	s.Pushback(got)
	return false, nil
}

// SkipOptionalSeparator consumes and discards a comma or semicolon if one is
// next; anything else is pushed back. End of input is not an error here.
func (s *Scanner) SkipOptionalSeparator() error {
	got, err := s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if got.Type == TokenComma || got.Type == TokenSemicolon {
		return nil
	}
	s.Pushback(got)
	return nil
}

// ReadObjectStart consumes an object-start token and returns the terminator
// the caller must later expect: "}" for "{" and ">" for "<".
func (s *Scanner) ReadObjectStart() (Token, error) {
	got, err := s.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{}, s.errorAtf(s.cs.offset(), "expected %s or %s, found end of input", BeginObjectToken, AltBeginObjectToken)
		}
		return Token{}, err
	}
	switch got {
	case BeginObjectToken:
		return EndObjectToken, nil
	case AltBeginObjectToken:
		return AltEndObjectToken, nil
	default:
		return Token{}, s.errorAtf(s.cs.offset(), "expected %s or %s, found %s", BeginObjectToken, AltBeginObjectToken, got)
	}
}

// Complete reports whether all remaining character input, including any
// pending pushed-back character, is whitespace. It is a pure lookahead over
// a copy of the cursor and never mutates scanner state; a driving parser
// calls it to verify no trailing garbage follows a fully parsed message.
func (s *Scanner) Complete() bool {
	cs := s.cs // value copy: an independent cursor over the same input
	for {
		c, ok := cs.next()
		if !ok {
			return true
		}
		if !isWhitespace(c) {
			return false
		}
	}
}

// popPushback pops the most recently pushed token, if any.
func (s *Scanner) popPushback() (Token, bool) {
	n := len(s.pushback)
	if n == 0 {
		return Token{}, false
	}
	tok := s.pushback[n-1]
	s.pushback = s.pushback[:n-1]
	return tok, true
}

// skipWhitespaceAndComments advances past whitespace and '#' line comments
// and returns the first significant character. The second result is false at
// clean end of input; once that happens the eof latch permanently suppresses
// further character reads.
func (s *Scanner) skipWhitespaceAndComments() (byte, bool, error) {
	if s.eof {
		return 0, false, nil
	}
	for {
		c, ok := s.cs.next()
		if !ok {
			s.eof = true
			return 0, false, nil
		}
		if isWhitespace(c) {
			continue
		}
		if c == '#' {
			s.skipComment()
			continue
		}
		return c, true, nil
	}
}

// skipComment discards characters through the end of the current line,
// leaving the newline itself for the whitespace loop.
func (s *Scanner) skipComment() {
	for {
		c, ok := s.cs.next()
		if !ok {
			return
		}
		if c == '\n' {
			s.cs.pushback(c)
			return
		}
	}
}

// errorAtf builds a malformed-text error at the given byte offset.
func (s *Scanner) errorAtf(pos int, format string, args ...any) *SyntaxError {
	return newSyntaxError(s.input, pos, format, args...)
}
