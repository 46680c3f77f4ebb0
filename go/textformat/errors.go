/*
 * Text Format Scanner - Error Handling
 *
 * This file implements the single error kind the scanner produces: malformed
 * text. Errors carry the byte offset, 1-based line/column, and a sanitized
 * snippet of nearby input. Clean end-of-input is not an error; the scanner
 * signals it with io.EOF so callers can tell "stream exhausted" from
 * "stream invalid".
 */

package textformat

import (
	"fmt"
	"strings"
	"unicode"
)

// SyntaxError reports malformed text-format input. Scanning is a pure
// function of the remaining input, so any SyntaxError is fatal to the
// current parse; there is no recovery.
type SyntaxError struct {
	Message  string // Primary error message
	Position int    // Byte offset where the error occurred
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	NearText string // Sanitized input text near the error
	AtEOF    bool   // True if the error occurred at end of input
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.AtEOF {
		return fmt.Sprintf("%s at end of input", e.Message)
	}
	if e.NearText != "" {
		return fmt.Sprintf("%s at line %d, column %d (near %q)", e.Message, e.Line, e.Column, e.NearText)
	}
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

// newSyntaxError builds a SyntaxError for the given byte offset in input.
func newSyntaxError(input string, pos int, format string, args ...any) *SyntaxError {
	line, col := lineColumn(input, pos)
	return &SyntaxError{
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Line:     line,
		Column:   col,
		NearText: nearText(input, pos),
		AtEOF:    pos >= len(input),
	}
}

// lineColumn calculates 1-based line and column numbers for a byte offset.
func lineColumn(input string, pos int) (line, column int) {
	if pos < 0 {
		return 1, 1
	}
	if pos > len(input) {
		pos = len(input)
	}
	line = 1
	column = 1
	for i := 0; i < pos; i++ {
		if input[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// nearText extracts a short sanitized snippet of input starting at pos for
// inclusion in error messages.
func nearText(input string, pos int) string {
	const maxNearTextLen = 20

	if pos < 0 {
		pos = 0
	}
	if pos >= len(input) {
		return ""
	}
	end := pos + maxNearTextLen
	if end > len(input) {
		end = len(input)
	}
	return sanitizeNearText(input[pos:end], maxNearTextLen)
}

// sanitizeNearText replaces control characters and limits length so error
// snippets stay printable on one line.
func sanitizeNearText(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' {
			return '.'
		}
		return r
	}, text)
	if len(sanitized) > maxLen {
		sanitized = sanitized[:maxLen] + "..."
	}
	return sanitized
}
