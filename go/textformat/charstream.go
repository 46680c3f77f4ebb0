/*
 * Text Format Scanner - Character Cursor
 *
 * This file implements the forward-only character cursor the scanner and its
 * literal sub-scanners read from. The cursor has exactly one slot of pushback
 * capacity: each sub-scanner pushes back at most the single lookahead
 * character it over-read, so a deeper buffer is never needed.
 */

package textformat

// charStream is a forward byte cursor over the in-memory input with a
// one-slot pushback buffer. It is a value type: copying a charStream yields
// an independent cursor over the same input, which is how Complete performs
// its read-only lookahead.
type charStream struct {
	buf        []byte
	pos        int
	pending    byte
	hasPending bool
}

func newCharStream(input string) charStream {
	return charStream{buf: []byte(input)}
}

// next returns the pending pushed-back character if one exists, else the
// next character from the input. The second result is false once the input
// is exhausted and nothing is pending.
func (cs *charStream) next() (byte, bool) {
	if cs.hasPending {
		cs.hasPending = false
		return cs.pending, true
	}
	if cs.pos >= len(cs.buf) {
		return 0, false
	}
	b := cs.buf[cs.pos]
	cs.pos++
	return b, true
}

// pushback stores one character to be returned by the next call to next.
// At most one character may be pending at a time; the scanner guarantees
// this by construction, so a second pushback is a programming error.
func (cs *charStream) pushback(b byte) {
	if cs.hasPending {
		panic("textformat: character pushback slot already occupied")
	}
	cs.pending = b
	cs.hasPending = true
}

// offset returns the byte offset of the next character next would return.
func (cs *charStream) offset() int {
	if cs.hasPending {
		return cs.pos - 1
	}
	return cs.pos
}
