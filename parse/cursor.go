package parse

// Cursor is the unconsumed remainder of a parse input.
// The input string never changes; only the offset moves, so saving and
// restoring a position is an integer copy.
type Cursor struct {
	input  string
	offset int
}

// Mark is a saved cursor position.
type Mark int

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Remaining returns the input that has not been consumed yet.
func (c *Cursor) Remaining() string {
	return c.input[c.offset:]
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.input) - c.offset
}

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.input)
}

// Mark records the current position for a later Reset.
func (c *Cursor) Mark() Mark {
	return Mark(c.offset)
}

// Reset moves the cursor back (or forward) to a position obtained from Mark.
func (c *Cursor) Reset(m Mark) {
	c.offset = int(m)
}

// Consumed returns the text consumed between m and the current position.
func (c *Cursor) Consumed(m Mark) string {
	return c.input[m:c.offset]
}

func (c *Cursor) advance(n int) {
	c.offset += n
	if c.offset > len(c.input) {
		c.offset = len(c.input)
	}
}
