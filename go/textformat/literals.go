/*
 * Text Format Scanner - Literal Sub-Scanners
 *
 * This file implements the sub-scanners the token stream dispatches to once
 * the leading character of a literal has been consumed: identifiers,
 * bracketed extension names, quoted strings, and numeric literals in their
 * decimal, octal, hexadecimal, and floating-point forms.
 *
 * Each sub-scanner consumes from the shared character cursor and leaves at
 * most one over-read character pushed back when a literal ends.
 */

package textformat

import "strings"

// scanIdentifier consumes an identifier whose first character has already
// been read. It never fails: a valid starting letter always yields an
// identifier of length >= 1.
func (s *Scanner) scanIdentifier(first byte) string {
	var b strings.Builder
	b.WriteByte(first)
	s.scanIdentifierRun(&b)
	return b.String()
}

// scanIdentifierRun greedily consumes letters, digits, and underscores,
// pushing back the first non-matching character.
func (s *Scanner) scanIdentifierRun(b *strings.Builder) {
	for {
		c, ok := s.cs.next()
		if !ok {
			return
		}
		if !isIdentChar(c) {
			s.cs.pushback(c)
			return
		}
		b.WriteByte(c)
	}
}

// scanString consumes a quoted string whose opening quote has already been
// read; terminator is that quote character. The returned token carries the
// contents between the quotes verbatim: escape sequences are preserved
// unprocessed for the downstream unescaper.
func (s *Scanner) scanString(terminator byte) (Token, error) {
	var b strings.Builder
	for {
		c, ok := s.cs.next()
		if !ok {
			return Token{}, s.errorAtf(s.cs.offset(), "unterminated string literal")
		}
		if c == terminator {
			return NewStringToken(b.String()), nil
		}
		if c == '\\' {
			b.WriteByte('\\')
			esc, ok := s.cs.next()
			if !ok {
				return Token{}, s.errorAtf(s.cs.offset(), "unterminated string literal")
			}
			b.WriteByte(esc)
			continue
		}
		b.WriteByte(c)
	}
}

// scanExtensionIdentifier consumes a bracketed extension field name whose
// opening '[' has already been read. The name must start with a letter and
// may continue with letters, digits, underscores, dots, and slashes; the
// closing ']' is included in the token text. Anything else, including end of
// input before ']', is malformed.
func (s *Scanner) scanExtensionIdentifier() (Token, error) {
	c, ok := s.cs.next()
	if !ok {
		return Token{}, s.errorAtf(s.cs.offset(), "unterminated extension field name")
	}
	if !isLetter(c) {
		return Token{}, s.errorAtf(s.cs.offset()-1, "extension field name must start with a letter, found %q", c)
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteByte(c)
	for {
		c, ok := s.cs.next()
		if !ok {
			return Token{}, s.errorAtf(s.cs.offset(), "unterminated extension field name")
		}
		if c == ']' {
			b.WriteByte(']')
			return NewIdentifierToken(b.String()), nil
		}
		if !isExtNameChar(c) {
			return Token{}, s.errorAtf(s.cs.offset()-1, "invalid character %q in extension field name", c)
		}
		b.WriteByte(c)
	}
}

// scanNumber consumes a numeric literal whose first character (a '-' or a
// digit) has already been read. Disambiguation is order-sensitive:
//
//  1. A '-' followed by a letter is a signed special float such as
//     "-Infinity": the whole run is one floatingPointLiteral. A '-' at end
//     of input is malformed.
//  2. A leading '0' selects octal ("0" then 1-7), hexadecimal ("0x"), or the
//     float continuation ("0."). A hex marker with no following hex digits
//     is accepted as-is ("0x"); downstream validation decides its fate.
//  3. Any other leading digit consumes a greedy numeric run and is tagged
//     decimalInteger even if the run contains '.' or an exponent. Only the
//     "0." path and the signed-letter path produce floatingPointLiteral.
func (s *Scanner) scanNumber(first byte) (Token, error) {
	var b strings.Builder
	c := first

	if c == '-' {
		b.WriteByte('-')
		nc, ok := s.cs.next()
		if !ok {
			return Token{}, s.errorAtf(s.cs.offset(), "expected digit after '-'")
		}
		if isLetter(nc) {
			b.WriteByte(nc)
			s.scanIdentifierRun(&b)
			return NewFloatToken(b.String()), nil
		}
		c = nc
	}

	if c == '0' {
		b.WriteByte('0')
		nc, ok := s.cs.next()
		if !ok {
			return Token{TokenDecimalInteger, b.String()}, nil
		}
		switch {
		case nc >= '1' && nc <= '7':
			b.WriteByte(nc)
			s.scanDigitRun(&b, isOctalDigit)
			return Token{TokenOctalInteger, b.String()}, nil
		case nc == 'x':
			b.WriteByte('x')
			s.scanDigitRun(&b, isHexDigit)
			return Token{TokenHexInteger, b.String()}, nil
		case nc == '.':
			b.WriteByte('.')
			s.scanNumericRun(&b)
			return NewFloatToken(b.String()), nil
		default:
			s.cs.pushback(nc)
			return Token{TokenDecimalInteger, b.String()}, nil
		}
	}

	s.cs.pushback(c)
	s.scanNumericRun(&b)
	return Token{TokenDecimalInteger, b.String()}, nil
}

// scanDigitRun consumes digits matching the given class, pushing back the
// first non-matching character.
func (s *Scanner) scanDigitRun(b *strings.Builder, match func(byte) bool) {
	for {
		c, ok := s.cs.next()
		if !ok {
			return
		}
		if !match(c) {
			s.cs.pushback(c)
			return
		}
		b.WriteByte(c)
	}
}

// scanNumericRun greedily consumes the permissive numeric character class:
// digits plus '.', '+', '-', 'e', 'E' in any sequence. A trailing 'f' or 'u'
// legacy suffix is consumed and dropped, ending the literal.
func (s *Scanner) scanNumericRun(b *strings.Builder) {
	for {
		c, ok := s.cs.next()
		if !ok {
			return
		}
		switch {
		case isNumericRunChar(c):
			b.WriteByte(c)
		case c == 'f' || c == 'u':
			return
		default:
			s.cs.pushback(c)
			return
		}
	}
}
