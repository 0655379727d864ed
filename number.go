package numagg

import (
	"math"
	"strconv"
)

// Number is a scalar that is either an int64 or a float64. Integers are the
// default representation; any operation with a float operand promotes the
// result to float.
type Number struct {
	float bool
	i     int64
	f     float64
}

func Int(v int64) Number {
	return Number{i: v}
}

func Float(v float64) Number {
	return Number{float: true, f: v}
}

func (n Number) IsFloat() bool {
	return n.float
}

func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

// Int64 returns the integer form of n, truncating a float value.
func (n Number) Int64() int64 {
	if n.float {
		return int64(n.f)
	}
	return n.i
}

func (n Number) IsZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.i == 0
}

// Value returns n as an int64 or a float64.
func (n Number) Value() any {
	if n.float {
		return n.f
	}
	return n.i
}

// Cmp returns 0 if n == o, -1 if n < o and +1 if n > o, comparing by
// numeric value regardless of representation.
func (n Number) Cmp(o Number) int {
	if !n.float && !o.float {
		switch {
		case n.i < o.i:
			return -1
		case n.i > o.i:
			return 1
		}
		return 0
	}
	a, b := n.Float64(), o.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports whether n and o hold the same value in the same
// representation: Int(1) and Float(1) are not equal.
func (n Number) Equal(o Number) bool {
	return n == o
}

func (n Number) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	f := n.f
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
