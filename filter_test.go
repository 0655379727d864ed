package numagg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isZero(_ string, n Number) bool {
	return n.IsZero()
}

func TestRejectPrunesEmptyBranches(t *testing.T) {
	a := mustFromMap(t, map[string]any{
		"a": 1,
		"b": 0.0,
		"c": map[string]any{"d": 0, "e": -2},
		"f": map[string]any{"g": 0.0},
	})
	got := a.Reject(isZero)
	want := map[string]any{
		"a": int64(1),
		"c": map[string]any{"e": int64(-2)},
	}
	if diff := cmp.Diff(want, got.ToMapAny()); diff != "" {
		t.Errorf("Reject(isZero) (-want +got):\n%s", diff)
	}
}

func TestSelectComplement(t *testing.T) {
	a := mustFromMap(t, map[string]any{
		"a": 1,
		"b": 0,
		"c": map[string]any{"d": 0, "e": -2},
	})
	got := a.Select(isZero)
	want := map[string]any{
		"b": int64(0),
		"c": map[string]any{"d": int64(0)},
	}
	if diff := cmp.Diff(want, got.ToMapAny()); diff != "" {
		t.Errorf("Select(isZero) (-want +got):\n%s", diff)
	}
}

func countLeaves(a *Aggregate) int {
	n := 0
	for _, k := range a.Keys() {
		v := a.At(k)
		if v.IsAggregate() {
			n += countLeaves(v.Aggregate())
			continue
		}
		n++
	}
	return n
}

func TestRejectSelectPartition(t *testing.T) {
	a := mustFromMap(t, map[string]any{
		"a": 1,
		"b": 0,
		"c": map[string]any{"d": 0, "e": -2, "f": map[string]any{"g": 3}},
	})
	sel := a.Select(isZero)
	rej := a.Reject(isZero)
	if got, want := countLeaves(sel)+countLeaves(rej), countLeaves(a); got != want {
		t.Errorf("partition leaf count = %d, want %d", got, want)
	}
}

func TestFilterDoesNotMutateReceiver(t *testing.T) {
	a := mustFromMap(t, map[string]any{"a": 0, "b": 1})
	_ = a.Reject(isZero)
	want := map[string]any{"a": int64(0), "b": int64(1)}
	if diff := cmp.Diff(want, a.ToMapAny()); diff != "" {
		t.Errorf("receiver mutated (-want +got):\n%s", diff)
	}
}

func TestSelectExpr(t *testing.T) {
	a := mustFromMap(t, map[string]any{
		"a": 1,
		"b": -2,
		"c": map[string]any{"d": 3, "e": -4},
	})
	got, err := a.SelectExpr("value > 0")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": int64(1),
		"c": map[string]any{"d": int64(3)},
	}
	if diff := cmp.Diff(want, got.ToMapAny()); diff != "" {
		t.Errorf(`SelectExpr("value > 0") (-want +got):`+"\n%s", diff)
	}
}

func TestRejectExprByKey(t *testing.T) {
	a := mustFromMap(t, map[string]any{"keep": 1, "drop": 2})
	got, err := a.RejectExpr(`key == "drop"`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"keep": int64(1)}
	if diff := cmp.Diff(want, got.ToMapAny()); diff != "" {
		t.Errorf("RejectExpr (-want +got):\n%s", diff)
	}
}

func TestFilterExprCompileError(t *testing.T) {
	a := mustFromMap(t, map[string]any{"a": 1})
	if _, err := a.SelectExpr("value >"); err == nil {
		t.Error("expected compile error")
	}
}
