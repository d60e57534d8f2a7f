package parse

import "errors"

// Error is the kind of a parse failure. Failures carry no position or
// message; callers only branch on whether an alternative may be tried.
type Error int

const (
	// EndOfInput is reserved for parsers that need to distinguish running
	// out of input. None of the built-in parsers return it.
	EndOfInput Error = iota + 1

	// Backtrack means the parser did not match here and the caller may try
	// an alternative.
	Backtrack
)

func (e Error) Error() string {
	return e.String()
}

func (e Error) String() string {
	switch e {
	case EndOfInput:
		return "EndOfInput"
	case Backtrack:
		return "Backtrack"
	default:
		return "Error(unknown)"
	}
}

// IsBacktrack reports whether err is, or wraps, a Backtrack failure.
func IsBacktrack(err error) bool {
	return errors.Is(err, Backtrack)
}
