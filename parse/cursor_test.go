package parse

import (
	"errors"
	"fmt"
	"testing"
)

func TestCursorNew(t *testing.T) {
	c := NewCursor("hello")

	if c.Offset() != 0 {
		t.Errorf("Offset = %d, want %d", c.Offset(), 0)
	}
	if c.Len() != 5 {
		t.Errorf("Len = %d, want %d", c.Len(), 5)
	}
	if c.Remaining() != "hello" {
		t.Errorf("Remaining = %q, want %q", c.Remaining(), "hello")
	}
	if c.AtEnd() {
		t.Error("AtEnd = true, want false")
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := NewCursor("abcdef")
	start := c.Mark()

	c.advance(4)
	if c.Remaining() != "ef" {
		t.Errorf("Remaining = %q, want %q", c.Remaining(), "ef")
	}
	if got := c.Consumed(start); got != "abcd" {
		t.Errorf("Consumed = %q, want %q", got, "abcd")
	}

	c.Reset(start)
	if c.Remaining() != "abcdef" {
		t.Errorf("after Reset, Remaining = %q, want %q", c.Remaining(), "abcdef")
	}
}

func TestCursorAdvancePastEnd(t *testing.T) {
	c := NewCursor("ab")
	c.advance(10)

	if !c.AtEnd() {
		t.Error("AtEnd = false, want true")
	}
	if c.Remaining() != "" {
		t.Errorf("Remaining = %q, want empty", c.Remaining())
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err       error
		name      string
		backtrack bool
	}{
		{Backtrack, "Backtrack", true},
		{EndOfInput, "EndOfInput", false},
		{fmt.Errorf("item: %w", Backtrack), "item: Backtrack", true},
		{errors.New("other"), "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.name {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.name)
			}
			if got := IsBacktrack(tt.err); got != tt.backtrack {
				t.Errorf("IsBacktrack = %v, want %v", got, tt.backtrack)
			}
		})
	}
}

func TestRun(t *testing.T) {
	v, rest, err := Run[string](Token, "hello world")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != "hello" {
		t.Errorf("value = %q, want %q", v, "hello")
	}
	if rest != " world" {
		t.Errorf("rest = %q, want %q", rest, " world")
	}
}

func TestFuncAdapter(t *testing.T) {
	calls := 0
	counter := Func[int](func(c *Cursor) (int, error) {
		calls++
		return calls, nil
	})

	var p Parser[int] = counter
	c := NewCursor("")
	p.ParseNext(c)
	v, _ := p.ParseNext(c)

	if v != 2 {
		t.Errorf("second call = %d, want %d", v, 2)
	}
}
