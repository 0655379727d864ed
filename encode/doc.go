// Package encode renders numeric aggregates as indented text.
//
// # Usage
//
//	a, _ := numagg.FromMap(map[string]any{"x": 1, "y": map[string]any{"z": 2}})
//	out, err := encode.String(a)
//
//	// colored output on terminals
//	err = encode.Encode(a, os.Stdout, encode.AutoColor(os.Stdout))
//
//	// readable diff of two aggregates
//	s := encode.Diff(a, b)
//
// # Related Packages
//
//   - github.com/treemath/numagg - the aggregate type
package encode
