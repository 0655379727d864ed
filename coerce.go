package numagg

import (
	"fmt"
	"math/big"

	"github.com/treemath/numagg/debug"
)

// Float64er is the float-conversion capability, checked before Int64er.
type Float64er interface {
	Float64() float64
}

// Int64er is the integer-conversion capability.
type Int64er interface {
	Int64() int64
}

// defaultInitial is the value a missing or nil slot coerces to.
var defaultInitial = Int(0)

// ToNumber converts an arbitrary leaf value into a definite Number. Numbers
// pass through, nested aggregates reduce to their recursive total, nil
// becomes the default 0 and Go numeric types convert directly. Other types
// are checked for conversion capabilities in priority order: Float64er, then
// Int64er. Everything else fails with ErrTypeConversion.
func ToNumber(v any) (Number, error) {
	switch x := v.(type) {
	case nil:
		return defaultInitial, nil
	case Number:
		return x, nil
	case Value:
		return x.Number(), nil
	case *Aggregate:
		return x.Total(), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case *big.Rat:
		f, _ := x.Float64()
		return Float(f), nil
	}
	switch x := v.(type) {
	case Float64er:
		return Float(x.Float64()), nil
	case Int64er:
		return Int(x.Int64()), nil
	}
	if debug.Coerce() {
		debug.Logf("coerce failed on %T (%v)\n", v, v)
	}
	return Number{}, fmt.Errorf("%w: %T (%v)", ErrTypeConversion, v, v)
}
