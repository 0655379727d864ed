package encode

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treemath/numagg"
)

// Diff returns a readable character diff of the canonical encodings of two
// aggregates, or the empty string when they render identically.
func Diff(a, b *numagg.Aggregate) string {
	at, bt := MustString(a), MustString(b)
	if at == bt {
		return ""
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	return dmp.DiffPrettyText(diffs)
}
