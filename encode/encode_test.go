package encode

import (
	"strings"
	"testing"

	"github.com/treemath/numagg"
)

func mustFromMap(t *testing.T, m map[string]any) *numagg.Aggregate {
	t.Helper()
	a, err := numagg.FromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
		want string
	}{
		{
			name: "flat",
			m:    map[string]any{"b": 2, "a": 1},
			want: "a: 1\nb: 2\n",
		},
		{
			name: "nested",
			m:    map[string]any{"a": 1, "b": map[string]any{"c": 2.5}},
			want: "a: 1\nb:\n  c: 2.5\n",
		},
		{
			name: "deep",
			m:    map[string]any{"x": map[string]any{"y": map[string]any{"z": -1}}},
			want: "x:\n  y:\n    z: -1\n",
		},
		{
			name: "empty",
			m:    map[string]any{},
			want: "{}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(mustFromMap(t, tt.m))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringIndent(t *testing.T) {
	a := mustFromMap(t, map[string]any{"b": map[string]any{"c": 1}})
	got, err := String(a, Indent(4))
	if err != nil {
		t.Fatal(err)
	}
	if want := "b:\n    c: 1\n"; got != want {
		t.Errorf("String(Indent(4)) = %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	a := mustFromMap(t, map[string]any{"a": 1})
	if got, want := MustString(a), "a: 1"; got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}

func TestDiff(t *testing.T) {
	a := mustFromMap(t, map[string]any{"a": 1, "b": 2})
	if d := Diff(a, a.Clone()); d != "" {
		t.Errorf("Diff of equal aggregates = %q, want empty", d)
	}
	b := mustFromMap(t, map[string]any{"a": 1, "b": 3})
	d := Diff(a, b)
	if d == "" {
		t.Error("Diff of different aggregates should not be empty")
	}
	if !strings.Contains(d, "a: 1") {
		t.Errorf("diff %q should carry the common prefix", d)
	}
}
