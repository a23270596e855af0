package object

import (
	"math"
	"strconv"
)

// Number is the only numeric type. It holds a float64.
type Number struct {
	value float64
}

func (n *Number) Type() Type {
	return NUMBER
}

func (n *Number) Value() float64 {
	return n.value
}

// IsInteger reports whether the number has no fractional part.
func (n *Number) IsInteger() bool {
	return !math.IsInf(n.value, 0) && n.value == math.Trunc(n.value)
}

func (n *Number) String() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n *Number) Inspect() string {
	return n.String()
}

func (n *Number) Interface() any {
	return n.value
}

func NewNumber(value float64) *Number {
	return &Number{value: value}
}
