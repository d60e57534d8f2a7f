package parse

// Parser is anything that can consume a prefix of the cursor.
//
// On success the cursor has advanced past the consumed text. On failure
// the cursor position is whatever the concrete parser documents; the
// primitives in this package restore it, see the individual docs.
type Parser[T any] interface {
	ParseNext(c *Cursor) (T, error)
}

// Func adapts an ordinary function to the Parser interface.
// Closures and plain functions qualify through a conversion:
//
//	p := parse.Func[string](func(c *parse.Cursor) (string, error) { ... })
type Func[T any] func(c *Cursor) (T, error)

// ParseNext calls f(c).
func (f Func[T]) ParseNext(c *Cursor) (T, error) {
	return f(c)
}

// Run parses input with p and returns the value together with the text
// left unconsumed.
func Run[T any](p Parser[T], input string) (T, string, error) {
	c := NewCursor(input)
	v, err := p.ParseNext(c)
	return v, c.Remaining(), err
}
