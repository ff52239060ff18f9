package portfolio

import (
	"errors"
	"strconv"
	"strings"
)

// Number is an integer parsed from a slot. A value that could not be
// parsed is NaN: every comparison against it is false.
type Number struct {
	value int64
	nan   bool
}

// NaN is the not-a-number sentinel.
var NaN = Number{nan: true}

// ParseNumber parses a slot value. Surrounding whitespace is ignored and
// values outside the int64 range saturate at its bounds.
func ParseNumber(s string) Number {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Number{value: v}
		}
		return NaN
	}
	return Number{value: v}
}

// IsNaN reports whether n is the not-a-number sentinel.
func (n Number) IsNaN() bool { return n.nan }

// Int returns the parsed value and false for NaN.
func (n Number) Int() (int64, bool) { return n.value, !n.nan }

func (n Number) Less(x int64) bool    { return !n.nan && n.value < x }
func (n Number) Greater(x int64) bool { return !n.nan && n.value > x }
func (n Number) AtMost(x int64) bool  { return !n.nan && n.value <= x }

func (n Number) String() string {
	if n.nan {
		return "NaN"
	}
	return strconv.FormatInt(n.value, 10)
}
