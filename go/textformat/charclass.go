/*
 * Text Format Scanner - Character Classification
 *
 * This file implements character classification using a precomputed lookup
 * table instead of per-call comparisons. The classes encode the character
 * sets the text format cares about: whitespace, identifier characters,
 * the numeric-literal run class, and the extension-name class.
 */

package textformat

// charClass represents character classification flags using bit fields.
type charClass uint16

const (
	// Character class flags - can be combined with bitwise OR
	classDigit      charClass = 1 << iota // 0-9
	classLetter                           // a-z, A-Z
	classIdent                            // letters, digits, underscore
	classWhitespace                       // space, tab, CR, LF
	classHexDigit                         // 0-9, a-f, A-F
	classOctalDigit                       // 0-7
	classNumericRun                       // digits plus '.', '+', '-', 'e', 'E'
	classExtName                          // identifier chars plus '.' and '/'
)

// Character classification lookup table - precomputed for all 256 byte values.
var charClassTable [256]charClass

func init() {
	// Digits: 0-9
	for b := byte('0'); b <= '9'; b++ {
		charClassTable[b] |= classDigit | classHexDigit | classIdent | classNumericRun | classExtName
		if b <= '7' {
			charClassTable[b] |= classOctalDigit
		}
	}

	// Lowercase letters: a-z
	for b := byte('a'); b <= 'z'; b++ {
		charClassTable[b] |= classLetter | classIdent | classExtName
		if b <= 'f' {
			charClassTable[b] |= classHexDigit
		}
	}

	// Uppercase letters: A-Z
	for b := byte('A'); b <= 'Z'; b++ {
		charClassTable[b] |= classLetter | classIdent | classExtName
		if b <= 'F' {
			charClassTable[b] |= classHexDigit
		}
	}

	// Underscore continues identifiers and extension names
	charClassTable['_'] |= classIdent | classExtName

	// Whitespace skipped between tokens: space, tab, CR, LF
	charClassTable[' '] |= classWhitespace
	charClassTable['\t'] |= classWhitespace
	charClassTable['\r'] |= classWhitespace
	charClassTable['\n'] |= classWhitespace

	// The greedy numeric run consumes these beyond plain digits. The run is
	// deliberately permissive; grammatical well-formedness of a float is left
	// to the consumer of the token.
	for _, b := range []byte(".+-eE") {
		charClassTable[b] |= classNumericRun
	}

	// Dotted/slashed extension type names
	charClassTable['.'] |= classExtName
	charClassTable['/'] |= classExtName
}

// isDigit checks if a byte is a decimal digit (0-9)
func isDigit(b byte) bool {
	return charClassTable[b]&classDigit != 0
}

// isLetter checks if a byte is an ASCII letter (a-z, A-Z)
func isLetter(b byte) bool {
	return charClassTable[b]&classLetter != 0
}

// isIdentChar checks if a byte can continue an identifier
func isIdentChar(b byte) bool {
	return charClassTable[b]&classIdent != 0
}

// isWhitespace checks if a byte is inter-token whitespace
func isWhitespace(b byte) bool {
	return charClassTable[b]&classWhitespace != 0
}

// isHexDigit checks if a byte is a hexadecimal digit (0-9, a-f, A-F)
func isHexDigit(b byte) bool {
	return charClassTable[b]&classHexDigit != 0
}

// isOctalDigit checks if a byte is an octal digit (0-7)
func isOctalDigit(b byte) bool {
	return charClassTable[b]&classOctalDigit != 0
}

// isNumericRunChar checks if a byte belongs to the greedy numeric run class
func isNumericRunChar(b byte) bool {
	return charClassTable[b]&classNumericRun != 0
}

// isExtNameChar checks if a byte is legal inside a bracketed extension name
func isExtNameChar(b byte) bool {
	return charClassTable[b]&classExtName != 0
}
