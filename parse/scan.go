package parse

import (
	"unicode"
	"unicode/utf8"
)

// TakeWhile consumes the longest prefix whose runes all satisfy pred and
// returns it. An empty match is valid, so TakeWhile never fails.
func TakeWhile(c *Cursor, pred func(rune) bool) string {
	start := c.Mark()
	rest := c.Remaining()
	n := 0
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	c.advance(n)
	return c.Consumed(start)
}

// TakeUntil consumes runes up to, not including, the first rune that
// satisfies pred.
func TakeUntil(c *Cursor, pred func(rune) bool) string {
	return TakeWhile(c, func(r rune) bool { return !pred(r) })
}

// IsSpace reports whether r is whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
