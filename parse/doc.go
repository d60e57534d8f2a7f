// Package parse provides small parser combinators over string input.
//
// # Calling Convention
//
// Every parser takes a *Cursor and returns a value and an error:
//
//	type Parser[T any] interface {
//	    ParseNext(c *Cursor) (T, error)
//	}
//
// On success the cursor has moved past the consumed text. On failure the
// error is one of the Error kinds; Backtrack tells the caller it may try
// something else. Plain functions become parsers through Func:
//
//	word := parse.Func[string](func(c *parse.Cursor) (string, error) {
//	    return parse.TakeWhile(c, unicode.IsLetter), nil
//	})
//
// # Backtracking
//
// A Cursor is the input string plus an offset. Mark and Reset save and
// restore the offset, which is how the primitives undo a partial match:
//
//	┌──────────────┬───────────────┬──────────────────────┐
//	│ Parser       │ Fails when    │ Cursor after failure │
//	├──────────────┼───────────────┼──────────────────────┤
//	│ Token        │ never         │ -                    │
//	│ Whitespace   │ never         │ -                    │
//	│ Uint         │ no digits,    │ unchanged            │
//	│              │ overflow      │                      │
//	│ FixedLength  │ too short     │ unchanged            │
//	│ Literal      │ too short,    │ unchanged            │
//	│              │ mismatch      │                      │
//	└──────────────┴───────────────┴──────────────────────┘
//
// Repeat and Interleaved do not roll back the attempt that ends them.
// They are only safe with parsers that leave the cursor alone on failure;
// wrap anything else in Backtracking.
//
// # Example
//
//	c := parse.NewCursor("123 456 789 0")
//	parse.Numbers(c) // []uint64{123, 456, 789, 0}
package parse
