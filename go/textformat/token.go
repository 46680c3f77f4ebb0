/*
 * Text Format Scanner - Token Model
 *
 * This file defines the closed set of lexical token types produced by the
 * text-format scanner, the Token value type, and the canonical instances of
 * the structural tokens.
 */

package textformat

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType int

const (
	// Structural tokens, no payload beyond their canonical spelling.
	TokenColon          TokenType = iota // ":"
	TokenComma                           // ","
	TokenSemicolon                       // ";"
	TokenBeginObject                     // "{"
	TokenEndObject                       // "}"
	TokenAltBeginObject                  // "<"
	TokenAltEndObject                    // ">"
	TokenBeginArray                      // "["
	TokenEndArray                        // "]"

	// Payload-bearing tokens. Text carries the raw matched input verbatim:
	// no numeric conversion and no escape processing happens here.
	TokenString
	TokenIdentifier
	TokenDecimalInteger
	TokenOctalInteger
	TokenHexInteger
	TokenFloat
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenColon:
		return "COLON"
	case TokenComma:
		return "COMMA"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenBeginObject:
		return "BEGIN_OBJECT"
	case TokenEndObject:
		return "END_OBJECT"
	case TokenAltBeginObject:
		return "ALT_BEGIN_OBJECT"
	case TokenAltEndObject:
		return "ALT_END_OBJECT"
	case TokenBeginArray:
		return "BEGIN_ARRAY"
	case TokenEndArray:
		return "END_ARRAY"
	case TokenString:
		return "STRING"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenDecimalInteger:
		return "DECIMAL_INTEGER"
	case TokenOctalInteger:
		return "OCTAL_INTEGER"
	case TokenHexInteger:
		return "HEX_INTEGER"
	case TokenFloat:
		return "FLOAT"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one classified lexical unit. Tokens are immutable values;
// two tokens are equal iff their type and text are equal, so plain ==
// comparison is the intended equality check.
type Token struct {
	Type TokenType
	Text string
}

// Canonical instances of the structural tokens. Structural tokens always
// carry their single-character spelling as text, so these compare equal to
// any structural token returned by the scanner.
var (
	ColonToken          = Token{TokenColon, ":"}
	CommaToken          = Token{TokenComma, ","}
	SemicolonToken      = Token{TokenSemicolon, ";"}
	BeginObjectToken    = Token{TokenBeginObject, "{"}
	EndObjectToken      = Token{TokenEndObject, "}"}
	AltBeginObjectToken = Token{TokenAltBeginObject, "<"}
	AltEndObjectToken   = Token{TokenAltEndObject, ">"}
	BeginArrayToken     = Token{TokenBeginArray, "["}
	EndArrayToken       = Token{TokenEndArray, "]"}
)

// NewStringToken returns a string token carrying the raw (still escaped)
// contents of a quoted string, without the surrounding quotes.
func NewStringToken(text string) Token {
	return Token{TokenString, text}
}

// NewIdentifierToken returns an identifier token.
func NewIdentifierToken(text string) Token {
	return Token{TokenIdentifier, text}
}

// NewFloatToken returns a floating-point literal token.
func NewFloatToken(text string) Token {
	return Token{TokenFloat, text}
}

// IsNumericLiteral reports whether the token is any of the numeric
// literal categories.
func (t Token) IsNumericLiteral() bool {
	switch t.Type {
	case TokenDecimalInteger, TokenOctalInteger, TokenHexInteger, TokenFloat:
		return true
	default:
		return false
	}
}

// IsStructural reports whether the token is a single-character structural
// token rather than a literal.
func (t Token) IsStructural() bool {
	switch t.Type {
	case TokenColon, TokenComma, TokenSemicolon,
		TokenBeginObject, TokenEndObject,
		TokenAltBeginObject, TokenAltEndObject,
		TokenBeginArray, TokenEndArray:
		return true
	default:
		return false
	}
}

// String formats the token for debugging and error messages.
func (t Token) String() string {
	if t.IsStructural() {
		return fmt.Sprintf("%q", t.Text)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Text)
}
