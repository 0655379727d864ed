// Package numagg implements a recursive numeric aggregate: a mapping from
// string keys to values, where each value is either a Number or another
// nested aggregate.
//
// # Overview
//
// The aggregate supports elementwise arithmetic, normalization, filtering
// and structural merging over its recursive shape, so operations like
// "add two budgets", "normalize a weight distribution to 100%" or "merge a
// partial override into a nested configuration" are single calls instead of
// manual tree walks.
//
// # Data Model
//
// A Value is a tagged union of Number and *Aggregate. A Number is an int64
// or a float64; integers are the default and any float operand promotes the
// result to float. Aggregates form finite trees: nested aggregates are
// owned by their parent and never aliased across parents — construction,
// Set and merge deep-copy aggregate inputs, and non-mutating operations
// return fresh structures.
//
// # Construction
//
//	a, err := numagg.FromKeys([]string{"a", "b"})       // {a: 0, b: 0}
//	b, err := numagg.FromMap(map[string]any{
//	    "a": 1,
//	    "b": map[string]any{"c": 2.5},
//	})
//	c, err := numagg.From(contents)                     // dispatches on shape
//
// Arbitrary leaf values route through ToNumber, which checks the Float64er
// and Int64er conversion capabilities in that order and fails with
// ErrTypeConversion otherwise.
//
// # Arithmetic
//
// Binary operators broadcast: a scalar argument applies to every leaf, an
// aggregate argument combines per key over the union of both key sets,
// recursing into mismatched nesting. Unary operators map over every leaf.
//
//	sum, err := a.Add(b)
//	scaled := a.Normalize(100) // values summing to 100
//
// Host numeric behavior is preserved: integer division by zero panics with
// Go's native runtime error, float division by zero yields ±Inf.
//
// # Structural Operations
//
// Reject and Select filter leaves recursively, pruning nested aggregates
// that become empty. DeepMerge merges another aggregate or raw mapping,
// recursing where both sides are nested; with MatchStructure(true) it first
// verifies the incoming key/shape tree is a subset of the target's and
// fails with ErrStructureMismatch before any mutation.
//
// # Bridging
//
// FromYAML/FromJSON and ToYAML/ToJSON convert to and from plain mapping
// documents, and MergePatchJSON applies an RFC 7386 merge patch.
// SelectExpr/RejectExpr compile string predicates over {key, value}.
//
// # Thread Safety
//
// Aggregates are not thread-safe. Mutating variants (ApplyKeys, ApplyMap,
// CompressInPlace, MergeInPlace) require exclusive ownership of the
// receiver; they validate their input fully before mutating, so a failed
// call leaves the receiver untouched.
//
// # Related Packages
//
//   - github.com/treemath/numagg/encode - text rendering and diffs
//   - github.com/treemath/numagg/debug - env-gated debug logging
package numagg
