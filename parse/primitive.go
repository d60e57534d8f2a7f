package parse

import (
	"strconv"
	"unicode/utf8"
)

// Token consumes a maximal run of non-whitespace runes. It never fails;
// at whitespace or end of input it yields the empty string.
var Token = Func[string](func(c *Cursor) (string, error) {
	return TakeUntil(c, IsSpace), nil
})

// Whitespace consumes a maximal run of whitespace. It never fails.
var Whitespace = Func[struct{}](func(c *Cursor) (struct{}, error) {
	TakeWhile(c, IsSpace)
	return struct{}{}, nil
})

// Uint consumes a maximal run of ASCII digits and returns its value.
// It fails with Backtrack when there are no digits or the value does not
// fit in 64 bits; in both cases the cursor is left where it was.
var Uint = Func[uint64](func(c *Cursor) (uint64, error) {
	start := c.Mark()
	digits := TakeWhile(c, IsDigit)
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		c.Reset(start)
		return 0, Backtrack
	}
	return v, nil
})

// FixedLength returns a parser that takes exactly n runes, none of them
// whitespace. Scanning stops early at whitespace or end of input, in which
// case the parser fails with Backtrack and restores the cursor.
func FixedLength(n int) Parser[string] {
	if n < 0 {
		panic("parse: FixedLength called with negative length")
	}
	return Func[string](func(c *Cursor) (string, error) {
		start := c.Mark()
		count := 0
		TakeWhile(c, func(r rune) bool {
			if count >= n || IsSpace(r) {
				return false
			}
			count++
			return true
		})
		if count < n {
			c.Reset(start)
			return "", Backtrack
		}
		return c.Consumed(start), nil
	})
}

// Literal returns a parser that matches text exactly. It reads as many
// runes as text has using FixedLength and compares them, so a text that
// contains whitespace never matches. Any failure restores the cursor.
func Literal(text string) Parser[string] {
	word := FixedLength(utf8.RuneCountInString(text))
	return Func[string](func(c *Cursor) (string, error) {
		start := c.Mark()
		read, err := word.ParseNext(c)
		if err != nil {
			return "", err
		}
		if read != text {
			c.Reset(start)
			return "", Backtrack
		}
		return read, nil
	})
}
