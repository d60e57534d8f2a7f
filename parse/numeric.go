package parse

import (
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// UintN is Uint for any unsigned integer type. The digit run must fit in
// T, so UintN[uint8] rejects "256".
func UintN[T constraints.Unsigned](c *Cursor) (T, error) {
	start := c.Mark()
	digits := TakeWhile(c, IsDigit)
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > uint64(^T(0)) {
		c.Reset(start)
		return 0, Backtrack
	}
	return T(v), nil
}

// Uint256 parses a digit run as a 256-bit unsigned integer.
var Uint256 = Func[*uint256.Int](func(c *Cursor) (*uint256.Int, error) {
	start := c.Mark()
	digits := TakeWhile(c, IsDigit)
	if digits == "" {
		return nil, Backtrack
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		c.Reset(start)
		return nil, Backtrack
	}
	return v, nil
})

// Decimal parses digits with an optional fractional part, as in "12" or
// "3.25". A dot not followed by a digit is left unconsumed.
var Decimal = Func[decimal.Decimal](func(c *Cursor) (decimal.Decimal, error) {
	start := c.Mark()
	if TakeWhile(c, IsDigit) == "" {
		return decimal.Zero, Backtrack
	}
	beforeDot := c.Mark()
	if strings.HasPrefix(c.Remaining(), ".") {
		c.advance(1)
		if TakeWhile(c, IsDigit) == "" {
			c.Reset(beforeDot)
		}
	}
	d, err := decimal.NewFromString(c.Consumed(start))
	if err != nil {
		c.Reset(start)
		return decimal.Zero, Backtrack
	}
	return d, nil
})
