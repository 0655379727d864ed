package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Apply  bool
	Merge  bool
	Filter bool
	Coerce bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("NUMAGG_DEBUG_APPLY")
	d.Merge = boolEnv("NUMAGG_DEBUG_MERGE")
	d.Filter = boolEnv("NUMAGG_DEBUG_FILTER")
	d.Coerce = boolEnv("NUMAGG_DEBUG_COERCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Merge() bool {
	return d.Merge
}
func Filter() bool {
	return d.Filter
}
func Coerce() bool {
	return d.Coerce
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
