package numagg

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/treemath/numagg/debug"
)

// Reject returns a new aggregate without the entries whose leaf value
// matches pred. Nested aggregates are filtered recursively; a nested
// aggregate that becomes empty is dropped from its parent entirely.
func (a *Aggregate) Reject(pred func(key string, n Number) bool) *Aggregate {
	return a.filter(func(k string, n Number) bool { return !pred(k, n) })
}

// Select is the predicate complement of Reject: it keeps the entries whose
// leaf value matches pred, pruning emptied branches.
func (a *Aggregate) Select(pred func(key string, n Number) bool) *Aggregate {
	return a.filter(pred)
}

func (a *Aggregate) filter(keep func(string, Number) bool) *Aggregate {
	res := New()
	for k, v := range a.vals {
		if v.IsAggregate() {
			sub := v.Aggregate().filter(keep)
			if sub.Len() == 0 {
				if debug.Filter() {
					debug.Logf("filter pruned empty branch %q\n", k)
				}
				continue
			}
			res.vals[k] = AggregateValue(sub)
			continue
		}
		if keep(k, v.Number()) {
			res.vals[k] = v
		}
	}
	return res
}

// SelectExpr compiles src as a boolean expression over the environment
// {key, value} and selects the leaves it evaluates true for.
func (a *Aggregate) SelectExpr(src string) (*Aggregate, error) {
	return a.filterExpr(src, false)
}

// RejectExpr is the complement of SelectExpr.
func (a *Aggregate) RejectExpr(src string) (*Aggregate, error) {
	return a.filterExpr(src, true)
}

func (a *Aggregate) filterExpr(src string, complement bool) (*Aggregate, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", src, err)
	}
	var runErr error
	res := a.filter(func(k string, n Number) bool {
		if runErr != nil {
			return false
		}
		out, err := expr.Run(prg, map[string]any{
			"key":   k,
			"value": n.Value(),
		})
		if err != nil {
			runErr = fmt.Errorf("predicate %q at key %q: %w", src, k, err)
			return false
		}
		b, ok := out.(bool)
		if !ok {
			runErr = fmt.Errorf("predicate %q at key %q: got %T, want bool", src, k, out)
			return false
		}
		return b != complement
	})
	if runErr != nil {
		return nil, runErr
	}
	return res, nil
}
