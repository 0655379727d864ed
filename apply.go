package numagg

import (
	"fmt"

	"github.com/treemath/numagg/debug"
)

// Apply combines the aggregate with arg under a binary operator, returning a
// new aggregate.
//
// A scalar arg applies to every value, recursing through nested aggregates.
// An aggregate arg combines per key over the union of both key sets: keys
// only in the receiver keep their value, keys only in arg combine against
// the default 0. When shapes disagree at a key, a nested receiver value
// dispatches recursively against arg's value, and a nested arg value is
// mapped leaf by leaf with the receiver's coerced scalar as the left
// operand.
func (a *Aggregate) Apply(op Op, arg any) (*Aggregate, error) {
	if op.Unary() {
		return nil, fmt.Errorf("operator %s is not binary", op)
	}
	switch x := arg.(type) {
	case *Aggregate:
		return a.applyAggregate(op, x)
	case Value:
		if x.IsAggregate() {
			return a.applyAggregate(op, x.Aggregate())
		}
		return a.applyScalar(op, x.Number())
	}
	n, err := ToNumber(arg)
	if err != nil {
		return nil, err
	}
	return a.applyScalar(op, n)
}

func (a *Aggregate) applyScalar(op Op, n Number) (*Aggregate, error) {
	res := New()
	for k, v := range a.vals {
		if v.IsAggregate() {
			sub, err := v.Aggregate().applyScalar(op, n)
			if err != nil {
				return nil, err
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		out, err := evalBinary(op, v.Number(), n)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = NumberValue(out)
	}
	return res, nil
}

func (a *Aggregate) applyAggregate(op Op, arg *Aggregate) (*Aggregate, error) {
	if debug.Apply() {
		debug.Logf("apply %s: %s with %s\n", op, a, arg)
	}
	res := a.Clone()
	for _, k := range arg.Keys() {
		av := arg.vals[k]
		cur, ok := res.vals[k]
		if ok && cur.IsAggregate() {
			sub, err := cur.Aggregate().Apply(op, av)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		curN := defaultInitial
		if ok {
			curN = cur.Number()
		}
		if av.IsAggregate() {
			sub, err := applyScalarLeft(op, curN, av.Aggregate())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		out, err := evalBinary(op, curN, av.Number())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = NumberValue(out)
	}
	return res, nil
}

// applyScalarLeft maps op across every leaf of agg with n as the left
// operand.
func applyScalarLeft(op Op, n Number, agg *Aggregate) (*Aggregate, error) {
	res := New()
	for k, v := range agg.vals {
		if v.IsAggregate() {
			sub, err := applyScalarLeft(op, n, v.Aggregate())
			if err != nil {
				return nil, err
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		out, err := evalBinary(op, n, v.Number())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = NumberValue(out)
	}
	return res, nil
}

// MapUnary maps a unary operator over every value, recursing into nested
// aggregates.
func (a *Aggregate) MapUnary(op Op) (*Aggregate, error) {
	if !op.Unary() {
		return nil, fmt.Errorf("operator %s is not unary", op)
	}
	res := New()
	for k, v := range a.vals {
		if v.IsAggregate() {
			sub, err := v.Aggregate().MapUnary(op)
			if err != nil {
				return nil, err
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		out, err := evalUnary(op, v.Number())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.vals[k] = NumberValue(out)
	}
	return res, nil
}

func (a *Aggregate) Add(arg any) (*Aggregate, error)    { return a.Apply(OpAdd, arg) }
func (a *Aggregate) Sub(arg any) (*Aggregate, error)    { return a.Apply(OpSub, arg) }
func (a *Aggregate) Mul(arg any) (*Aggregate, error)    { return a.Apply(OpMul, arg) }
func (a *Aggregate) Div(arg any) (*Aggregate, error)    { return a.Apply(OpDiv, arg) }
func (a *Aggregate) Mod(arg any) (*Aggregate, error)    { return a.Apply(OpMod, arg) }
func (a *Aggregate) Pow(arg any) (*Aggregate, error)    { return a.Apply(OpPow, arg) }
func (a *Aggregate) And(arg any) (*Aggregate, error)    { return a.Apply(OpAnd, arg) }
func (a *Aggregate) Or(arg any) (*Aggregate, error)     { return a.Apply(OpOr, arg) }
func (a *Aggregate) Xor(arg any) (*Aggregate, error)    { return a.Apply(OpXor, arg) }
func (a *Aggregate) IntDiv(arg any) (*Aggregate, error) { return a.Apply(OpIntDiv, arg) }
func (a *Aggregate) Modulo(arg any) (*Aggregate, error) { return a.Apply(OpModulo, arg) }
func (a *Aggregate) Quo(arg any) (*Aggregate, error)    { return a.Apply(OpQuo, arg) }
func (a *Aggregate) FDiv(arg any) (*Aggregate, error)   { return a.Apply(OpFDiv, arg) }
func (a *Aggregate) Rem(arg any) (*Aggregate, error)    { return a.Apply(OpRem, arg) }

func (a *Aggregate) Pos() (*Aggregate, error)    { return a.MapUnary(OpPos) }
func (a *Aggregate) Neg() (*Aggregate, error)    { return a.MapUnary(OpNeg) }
func (a *Aggregate) BitNot() (*Aggregate, error) { return a.MapUnary(OpBitNot) }
func (a *Aggregate) Abs() (*Aggregate, error)    { return a.MapUnary(OpAbs) }
func (a *Aggregate) Ceil() (*Aggregate, error)   { return a.MapUnary(OpCeil) }
func (a *Aggregate) Floor() (*Aggregate, error)  { return a.MapUnary(OpFloor) }
func (a *Aggregate) Round() (*Aggregate, error)  { return a.MapUnary(OpRound) }
func (a *Aggregate) Trunc() (*Aggregate, error)  { return a.MapUnary(OpTrunc) }

// Sum folds a collection of aggregates with +, returning an empty aggregate
// for an empty collection.
func Sum(aggs []*Aggregate) (*Aggregate, error) {
	res := New()
	for _, agg := range aggs {
		var err error
		res, err = res.Apply(OpAdd, agg)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
