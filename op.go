package numagg

import (
	"fmt"
	"math"
)

// Op enumerates the operators that broadcast over aggregates. Binary tags
// come first, unary tags start at OpPos.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpAnd
	OpOr
	OpXor
	OpIntDiv
	OpModulo
	OpQuo
	OpFDiv
	OpRem

	OpPos
	OpNeg
	OpBitNot
	OpAbs
	OpCeil
	OpFloor
	OpRound
	OpTrunc
)

var opNames = map[Op]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpPow:    "**",
	OpAnd:    "&",
	OpOr:     "|",
	OpXor:    "^",
	OpIntDiv: "div",
	OpModulo: "modulo",
	OpQuo:    "quo",
	OpFDiv:   "fdiv",
	OpRem:    "remainder",
	OpPos:    "+@",
	OpNeg:    "-@",
	OpBitNot: "~",
	OpAbs:    "abs",
	OpCeil:   "ceil",
	OpFloor:  "floor",
	OpRound:  "round",
	OpTrunc:  "truncate",
}

func (op Op) String() string {
	s, ok := opNames[op]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Unary reports whether op maps over single values rather than combining two.
func (op Op) Unary() bool {
	return op >= OpPos
}

// evalBinary applies op to two numbers. Integer operands keep integer
// results except for quo/fdiv, which always divide in float. Host numeric
// behavior is preserved: integer division or remainder by zero panics with
// Go's native runtime error, float division by zero yields ±Inf. Bitwise
// operators require integer operands.
func evalBinary(op Op, a, b Number) (Number, error) {
	switch op {
	case OpQuo, OpFDiv:
		return Float(a.Float64() / b.Float64()), nil
	case OpAnd, OpOr, OpXor:
		if a.float || b.float {
			return Number{}, fmt.Errorf("operator %s requires integer operands, got %s and %s", op, a, b)
		}
		switch op {
		case OpAnd:
			return Int(a.i & b.i), nil
		case OpOr:
			return Int(a.i | b.i), nil
		}
		return Int(a.i ^ b.i), nil
	}
	if a.float || b.float {
		return evalBinaryFloat(op, a.Float64(), b.Float64())
	}
	return evalBinaryInt(op, a.i, b.i)
}

func evalBinaryInt(op Op, a, b int64) (Number, error) {
	switch op {
	case OpAdd:
		return Int(a + b), nil
	case OpSub:
		return Int(a - b), nil
	case OpMul:
		return Int(a * b), nil
	case OpDiv:
		return Int(a / b), nil
	case OpMod, OpRem:
		return Int(a % b), nil
	case OpIntDiv:
		q := a / b
		if (a%b != 0) && ((a < 0) != (b < 0)) {
			q--
		}
		return Int(q), nil
	case OpModulo:
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return Int(r), nil
	case OpPow:
		if b >= 0 {
			return Int(ipow(a, b)), nil
		}
		return Float(math.Pow(float64(a), float64(b))), nil
	}
	return Number{}, fmt.Errorf("operator %s is not binary", op)
}

func evalBinaryFloat(op Op, a, b float64) (Number, error) {
	switch op {
	case OpAdd:
		return Float(a + b), nil
	case OpSub:
		return Float(a - b), nil
	case OpMul:
		return Float(a * b), nil
	case OpDiv:
		return Float(a / b), nil
	case OpMod, OpRem:
		return Float(math.Mod(a, b)), nil
	case OpIntDiv:
		return Int(int64(math.Floor(a / b))), nil
	case OpModulo:
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return Float(r), nil
	case OpPow:
		return Float(math.Pow(a, b)), nil
	}
	return Number{}, fmt.Errorf("operator %s is not binary", op)
}

func ipow(base, exp int64) int64 {
	res := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}

// evalUnary applies op to a single number. Rounding operators are the
// identity on integers; on floats they follow the math package (round is
// half away from zero) and keep the float representation.
func evalUnary(op Op, n Number) (Number, error) {
	switch op {
	case OpPos:
		return n, nil
	case OpNeg:
		if n.float {
			return Float(-n.f), nil
		}
		return Int(-n.i), nil
	case OpBitNot:
		if n.float {
			return Number{}, fmt.Errorf("operator %s requires an integer operand, got %s", op, n)
		}
		return Int(^n.i), nil
	case OpAbs:
		if n.float {
			return Float(math.Abs(n.f)), nil
		}
		if n.i < 0 {
			return Int(-n.i), nil
		}
		return n, nil
	case OpCeil, OpFloor, OpRound, OpTrunc:
		if !n.float {
			return n, nil
		}
		switch op {
		case OpCeil:
			return Float(math.Ceil(n.f)), nil
		case OpFloor:
			return Float(math.Floor(n.f)), nil
		case OpRound:
			return Float(math.Round(n.f)), nil
		}
		return Float(math.Trunc(n.f)), nil
	}
	return Number{}, fmt.Errorf("operator %s is not unary", op)
}
