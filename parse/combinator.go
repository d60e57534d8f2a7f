package parse

// Repeat runs p until it fails and returns the values it produced, in
// order. The failing attempt is not rolled back, so p must leave the
// cursor alone when it fails (wrap it in Backtracking if it does not).
// A success that consumes nothing also ends the loop and is dropped;
// otherwise a parser such as Token would match the empty string forever.
func Repeat[T any](c *Cursor, p Parser[T]) []T {
	var values []T
	for {
		start := c.Mark()
		v, err := p.ParseNext(c)
		if err != nil || c.Mark() == start {
			return values
		}
		values = append(values, v)
	}
}

// Interleaved parses item, then sep, then item, and so on. It returns an
// empty slice when the first item fails and otherwise stops at the first
// failing item or separator, keeping every item parsed so far. A failed
// separator is not rolled back. Items may match the empty string as long
// as the item and separator together consume something; a round that
// consumes nothing ends the loop and its item is dropped.
func Interleaved[T, S any](c *Cursor, item Parser[T], sep Parser[S]) []T {
	var values []T
	for {
		start := c.Mark()
		v, err := item.ParseNext(c)
		if err != nil {
			return values
		}
		_, sepErr := sep.ParseNext(c)
		if c.Mark() == start {
			return values
		}
		values = append(values, v)
		if sepErr != nil {
			return values
		}
	}
}

// Numbers parses whitespace-separated unsigned integers, stopping at the
// first token that is not a number or at end of input.
func Numbers(c *Cursor) []uint64 {
	return Interleaved[uint64, struct{}](c, Uint, Whitespace)
}

// Many is Repeat as a Parser. It never fails.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) ([]T, error) {
		return Repeat(c, p), nil
	})
}

// SepBy is Interleaved as a Parser. It never fails.
func SepBy[T, S any](item Parser[T], sep Parser[S]) Parser[[]T] {
	return Func[[]T](func(c *Cursor) ([]T, error) {
		return Interleaved(c, item, sep), nil
	})
}

// Backtracking wraps p so that any failure restores the cursor to where
// p started.
func Backtracking[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (T, error) {
		start := c.Mark()
		v, err := p.ParseNext(c)
		if err != nil {
			c.Reset(start)
		}
		return v, err
	})
}

// Alt tries each parser at the same position and returns the first
// success. Only Backtrack moves on to the next alternative; any other
// error is returned as is. When every alternative backtracks, Alt fails
// with Backtrack.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (T, error) {
		var zero T
		start := c.Mark()
		for _, p := range ps {
			v, err := p.ParseNext(c)
			if err == nil {
				return v, nil
			}
			c.Reset(start)
			if !IsBacktrack(err) {
				return zero, err
			}
		}
		return zero, Backtrack
	})
}

// Map transforms the value produced by p.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return Func[U](func(c *Cursor) (U, error) {
		v, err := p.ParseNext(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

// Optional runs p and yields fallback instead of failing when p
// backtracks. The cursor is restored in that case.
func Optional[T any](p Parser[T], fallback T) Parser[T] {
	return Func[T](func(c *Cursor) (T, error) {
		start := c.Mark()
		v, err := p.ParseNext(c)
		if err == nil {
			return v, nil
		}
		c.Reset(start)
		if IsBacktrack(err) {
			return fallback, nil
		}
		var zero T
		return zero, err
	})
}
